package pubspec

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/qoobee/assetgen/core/config"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/template_engine"
	"gopkg.in/yaml.v3"
)

var ErrInputNotFound = errors.New("asset list not found")

const (
	assetsHeader       = "# Generated flutter assets section\n"
	dependenciesHeader = "\n# Generated dependencies section\n"
)

// Sections holds the two rendered blocks meant for pasting into pubspec.yaml.
type Sections struct {
	Assets       string
	Dependencies string
}

func (s Sections) Document() string {
	return assetsHeader + s.Assets + dependenciesHeader + s.Dependencies
}

// ReadAssetList returns the unique, non-blank lines of the asset list.
func ReadAssetList(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, filePath)
		}
		return nil, fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	seen := make(map[string]struct{})
	var paths []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	return paths, nil
}

// parentDir returns everything before the last slash with trailing slashes
// trimmed, or "" for a bare file name. A root made only of slashes is kept
// as-is, and "." is not cleaned away, so "./x.png" yields ".".
func parentDir(p string) string {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return ""
	}
	head := p[:i+1]
	if strings.Trim(head, "/") == "" {
		return head
	}
	return strings.TrimRight(head, "/")
}

// Directories returns the sorted set of parent directories, each with a
// trailing slash. Bare file names have no parent and are dropped.
func Directories(paths []string) []string {
	set := make(map[string]struct{})
	for _, p := range paths {
		dir := parentDir(p)
		if dir == "" {
			continue
		}
		set[dir+"/"] = struct{}{}
	}

	dirs := make([]string, 0, len(set))
	for d := range set {
		dirs = append(dirs, d)
	}
	slices.Sort(dirs)
	return dirs
}

type Generator struct {
	cfg    *config.Config
	engine *template_engine.TemplateEngine
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg:    cfg,
		engine: template_engine.NewTemplateEngine(),
	}
}

func (g *Generator) Render(dirs []string) (Sections, error) {
	assets, err := g.engine.Render(template_engine.TEMPLATES.FLUTTER_ASSETS, struct {
		UsesMaterialDesign bool
		Directories        []string
	}{
		UsesMaterialDesign: g.cfg.Pubspec.UsesMaterialDesign,
		Directories:        dirs,
	})
	if err != nil {
		return Sections{}, fmt.Errorf("failed to render assets section: %w", err)
	}

	deps, err := g.engine.Render(template_engine.TEMPLATES.DEPENDENCIES, struct {
		Dependencies []config.Dependency
	}{
		Dependencies: g.cfg.Pubspec.Dependencies,
	})
	if err != nil {
		return Sections{}, fmt.Errorf("failed to render dependencies section: %w", err)
	}

	return Sections{Assets: string(assets), Dependencies: string(deps)}, nil
}

// Validate reports whether the document parses as YAML.
func Validate(document string) error {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(document), &node); err != nil {
		return fmt.Errorf("generated sections are not valid yaml: %w", err)
	}
	return nil
}

// Generate reads the asset list at input and writes the pubspec sections to
// output. Nothing is written unless every step succeeds.
func (g *Generator) Generate(input, output string) (Sections, error) {
	paths, err := ReadAssetList(input)
	if err != nil {
		return Sections{}, err
	}

	dirs := Directories(paths)
	logger.Debug("Derived %d asset directories from %d paths", len(dirs), len(paths))

	sections, err := g.Render(dirs)
	if err != nil {
		return Sections{}, err
	}

	document := sections.Document()
	if err := Validate(document); err != nil {
		logger.Warn("%v", err)
	}

	if err := template_engine.WriteFile(output, []byte(document)); err != nil {
		return Sections{}, fmt.Errorf("error writing %s: %w", output, err)
	}

	return sections, nil
}

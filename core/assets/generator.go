package assets

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/qoobee/assetgen/core/config"
	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/models"
	"github.com/qoobee/assetgen/core/resolver"
	"github.com/qoobee/assetgen/core/stickers"
	"github.com/qoobee/assetgen/core/template_engine"
)

var ErrNoAssets = errors.New("no asset paths were generated")

// Generator predicts the Flutter asset path of every sticker plus the fixed
// UI and WebP assets.
type Generator struct {
	cfg      *config.Config
	resolver *resolver.Resolver
	engine   *template_engine.TemplateEngine
}

func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg:      cfg,
		resolver: resolver.New(cfg.Stickers),
		engine:   template_engine.NewTemplateEngine(),
	}
}

func (g *Generator) isExempt(setName string) bool {
	return slices.Contains(g.cfg.Stickers.Exempt, strings.ToUpper(setName))
}

// Paths returns the deduplicated, lexicographically sorted asset list.
func (g *Generator) Paths(catalog models.Catalog) []string {
	set := make(map[string]struct{})
	add := func(p string) { set[p] = struct{}{} }

	for _, pack := range catalog.Packs() {
		if pack.IsEmpty() {
			if !g.isExempt(pack.SetName) {
				logger.Debug("Skipping pack with no name or stickers: %q", pack.SetName)
			}
			continue
		}

		for _, name := range pack.Names {
			add(g.resolver.TargetPath(pack.SetName, name))
		}
	}

	for _, target := range g.FixedTargets() {
		add(target)
	}

	paths := make([]string, 0, len(set))
	for p := range set {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	return paths
}

// FixedMappings lists the UI, banner and WebP assets that ship regardless of
// sticker data.
func (g *Generator) FixedMappings() []config.AssetMapping {
	ui := g.cfg.UIAssets
	mappings := slices.Clone(ui.Mappings)

	for i := 0; i < ui.BannerCount; i++ {
		file := fmt.Sprintf("Banner%d.png", i)
		mappings = append(mappings, config.AssetMapping{
			Source: ui.BannerSource + "/" + file,
			Target: ui.BannerTarget + "/" + file,
		})
	}
	if ui.FooterBanner != "" {
		mappings = append(mappings, config.AssetMapping{
			Source: ui.BannerSource + "/" + ui.FooterBanner,
			Target: ui.BannerTarget + "/" + ui.FooterBanner,
		})
	}

	webp := g.cfg.WebP
	for _, file := range webp.Files {
		mappings = append(mappings, config.AssetMapping{
			Source: webp.Source + "/" + file,
			Target: webp.Target + "/" + file,
		})
	}

	return mappings
}

func (g *Generator) FixedTargets() []string {
	mappings := g.FixedMappings()
	targets := make([]string, 0, len(mappings))
	for _, m := range mappings {
		targets = append(targets, m.Target)
	}
	return targets
}

// Generate reads the sticker data at input and writes the asset list to
// output. Nothing is written when loading fails or the list is empty.
func (g *Generator) Generate(input, output string) (int, error) {
	catalog, err := stickers.Load(input)
	if err != nil {
		return 0, err
	}

	paths := g.Paths(catalog)
	if len(paths) == 0 {
		return 0, ErrNoAssets
	}

	data := struct {
		Paths []string
	}{
		Paths: paths,
	}
	if err := g.engine.GenerateFile(template_engine.TEMPLATES.ASSET_LIST, output, data); err != nil {
		return 0, fmt.Errorf("error writing %s: %w", output, err)
	}

	return len(paths), nil
}

package template_engine

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/qoobee/assetgen/core/logger"
	"github.com/qoobee/assetgen/core/shared"
)

type TemplateRef struct {
	Path string
}

type TemplateEngine struct {
	funcMap template.FuncMap
}

func getDefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"title":     shared.ToTitle,
		"trim":      strings.TrimSpace,
		"replace":   strings.ReplaceAll,
		"contains":  strings.Contains,
		"hasPrefix": strings.HasPrefix,
		"hasSuffix": strings.HasSuffix,
		"join":      strings.Join,
	}
}

func NewTemplateEngine() *TemplateEngine {
	return &TemplateEngine{
		funcMap: getDefaultFuncMap(),
	}
}

// Render executes the referenced template into memory.
func (te *TemplateEngine) Render(templateRef TemplateRef, data any) ([]byte, error) {
	templatePath := path.Join("templates", templateRef.Path)
	content, err := TemplateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", templatePath, err)
	}

	tmpl, err := template.New(path.Base(templateRef.Path)).Funcs(te.funcMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", templateRef.Path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", templateRef.Path, err)
	}

	return buf.Bytes(), nil
}

// GenerateFile renders the template fully before touching outputPath, so a
// failed render never leaves a partial file behind.
func (te *TemplateEngine) GenerateFile(templateRef TemplateRef, outputPath string, data any) error {
	content, err := te.Render(templateRef, data)
	if err != nil {
		return err
	}

	return WriteFile(outputPath, content)
}

func WriteFile(outputPath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}

	logger.Debug("Wrote %d bytes to %s", len(content), outputPath)
	return nil
}

func (te *TemplateEngine) ListTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(TemplateFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			templates = append(templates, strings.TrimPrefix(p, "templates/"))
		}

		return nil
	})

	return templates, err
}

func (te *TemplateEngine) ValidateTemplate(templateRef TemplateRef) error {
	templatePath := path.Join("templates", templateRef.Path)

	info, err := fs.Stat(TemplateFS, templatePath)
	if err != nil {
		return fmt.Errorf("template not found: %s", templateRef.Path)
	}

	if info.IsDir() {
		return fmt.Errorf("template reference %s points at a directory", templateRef.Path)
	}

	return nil
}

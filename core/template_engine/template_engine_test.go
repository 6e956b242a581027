package template_engine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTemplatesAreValid(t *testing.T) {
	engine := NewTemplateEngine()

	for _, ref := range []TemplateRef{TEMPLATES.ASSET_LIST, TEMPLATES.FLUTTER_ASSETS, TEMPLATES.DEPENDENCIES} {
		assert.NoError(t, engine.ValidateTemplate(ref), ref.Path)
	}

	templates, err := engine.ListTemplates()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"asset_list.txt.tmpl", "flutter_assets.yaml.tmpl", "dependencies.yaml.tmpl"}, templates)
}

func TestRenderAssetList(t *testing.T) {
	out, err := NewTemplateEngine().Render(TEMPLATES.ASSET_LIST, struct{ Paths []string }{[]string{"a/b.png", "c/d.png"}})
	require.NoError(t, err)
	assert.Equal(t, "a/b.png\nc/d.png\n", string(out))
}

func TestGenerateFileLeavesNoPartialOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out", "asset_list.txt")

	// A data value without a Paths field fails mid-execution.
	err := NewTemplateEngine().GenerateFile(TEMPLATES.ASSET_LIST, output, struct{ Other int }{})
	require.Error(t, err)
	assert.NoFileExists(t, output)

	err = NewTemplateEngine().GenerateFile(TemplateRef{Path: "missing.tmpl"}, output, nil)
	require.Error(t, err)
	assert.NoFileExists(t, output)
}

func TestGenerateFileCreatesParentDirs(t *testing.T) {
	output := filepath.Join(t.TempDir(), "nested", "dir", "asset_list.txt")

	err := NewTemplateEngine().GenerateFile(TEMPLATES.ASSET_LIST, output, struct{ Paths []string }{[]string{"x.png"}})
	require.NoError(t, err)
	assert.FileExists(t, output)
}

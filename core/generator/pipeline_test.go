package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/qoobee/assetgen/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stickerData = `[
  [{"stickerSetName": "FAVOURITES", "stickerNames": []}, {"stickerSetName": "INFO", "stickerNames": []}],
  [{"stickerSetName": "EVERYDAY 5", "stickerNames": ["Everyday4_0", "Everyday4_1"]}],
  [{"stickerSetName": "FESTIVE 1", "stickerNames": ["Festive0_0"]}],
  [{"stickerSetName": "LOVE 4", "stickerNames": ["Love3_0"]}]
]`

func TestRun(t *testing.T) {
	wd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, "all_stickers_data.json"), []byte(stickerData), 0644))

	p := NewPipeline(wd, config.Default())
	require.NoError(t, p.Run())

	list, err := os.ReadFile(p.AssetListPath())
	require.NoError(t, err)
	assert.Contains(t, string(list), "assets/stickers/Everyday/5/Everyday4_1.png\n")
	assert.Contains(t, string(list), "assets/stickers/Festive/Festive0_0.png\n")

	sections, err := os.ReadFile(p.PubspecPath())
	require.NoError(t, err)
	doc := string(sections)
	assert.True(t, strings.HasPrefix(doc, "# Generated flutter assets section\nflutter:\n"))
	for _, dir := range []string{
		"assets/stickers/Everyday/5/",
		"assets/stickers/Festive/",
		"assets/stickers/Love/4/",
		"assets/stickers_webp/FestiveWA/",
		"assets/ui_elements/",
	} {
		assert.Contains(t, doc, "    - "+dir+"\n")
	}
	assert.Equal(t, 5, strings.Count(doc, "    - "))
}

func TestRunMissingInput(t *testing.T) {
	wd := t.TempDir()
	p := NewPipeline(wd, config.Default())

	require.Error(t, p.Run())
	assert.NoFileExists(t, p.AssetListPath())
	assert.NoFileExists(t, p.PubspecPath())
}

func TestAbsolutePathsAreKept(t *testing.T) {
	cfg := config.Default()
	abs := filepath.Join(t.TempDir(), "custom.txt")
	cfg.Files.AssetList = abs

	p := NewPipeline("/work", cfg)
	assert.Equal(t, abs, p.AssetListPath())
	assert.Equal(t, filepath.Join("/work", "pubspec_sections.yaml"), p.PubspecPath())
}

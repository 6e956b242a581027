package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	yaml := `files:
  asset_list: build/assets.txt
stickers:
  categories:
    BONUS: Extra
  flat: [Festive]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yaml), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "build/assets.txt", cfg.Files.AssetList)
	assert.Equal(t, "all_stickers_data.json", cfg.Files.StickerData)
	assert.Equal(t, "Extra", cfg.Stickers.Categories["BONUS"])
	assert.Equal(t, "Angry", cfg.Stickers.Categories["ANNOYED"])
	assert.Equal(t, []string{"Festive"}, cfg.Stickers.Flat)
	assert.Len(t, cfg.WebP.Files, 8)
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("files: [unterminated"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestMarshalLoadsBack(t *testing.T) {
	dir := t.TempDir()
	data, err := Marshal(Default())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), data, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default().Pubspec, cfg.Pubspec)
	assert.Equal(t, Default().UIAssets, cfg.UIAssets)
}

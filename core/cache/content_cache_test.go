package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "all_stickers_data.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	cc := NewContentCache()
	assert.True(t, cc.HasChanged(path), "first sighting counts as a change")
	assert.False(t, cc.HasChanged(path))

	require.NoError(t, os.WriteFile(path, []byte("[[]]"), 0644))
	assert.True(t, cc.HasChanged(path))
	assert.False(t, cc.HasChanged(path))

	cc.Invalidate(path)
	assert.True(t, cc.HasChanged(path))

	stats := cc.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(3), stats.Misses)
	assert.Equal(t, int64(1), stats.Invalidations)
	assert.Equal(t, 1, stats.TotalEntries)
	assert.InDelta(t, 40.0, stats.HitRate, 0.001)
}

func TestHasChangedMissingFile(t *testing.T) {
	cc := NewContentCache()
	path := filepath.Join(t.TempDir(), "assetgen.yaml")

	assert.True(t, cc.HasChanged(path), "first sighting counts as a change")
	assert.False(t, cc.HasChanged(path), "still absent")

	require.NoError(t, os.WriteFile(path, []byte("files: {}"), 0644))
	assert.True(t, cc.HasChanged(path), "created")

	require.NoError(t, os.Remove(path))
	assert.True(t, cc.HasChanged(path), "removed")
	assert.False(t, cc.HasChanged(path))
	assert.Equal(t, 1, cc.Stats().TotalEntries)
}

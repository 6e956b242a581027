package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchRunsOnChange(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "all_stickers_data.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(input, []byte("[]"), 0644))

	var runs atomic.Int32
	fw, err := NewFileWatcher([]string{input}, func() error {
		runs.Add(1)
		return nil
	})
	require.NoError(t, err)
	fw.Debounce = 20 * time.Millisecond
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Watch(ctx) }()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))

	i := 0
	require.Eventually(t, func() bool {
		i++
		_ = os.WriteFile(input, []byte(fmt.Sprintf("[[], %d]", i)), 0644)
		return runs.Load() > 0
	}, 5*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestUnchangedContentIsSkipped(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "all_stickers_data.json")
	require.NoError(t, os.WriteFile(input, []byte("[]"), 0644))

	fw, err := NewFileWatcher([]string{input}, func() error { return nil })
	require.NoError(t, err)
	defer fw.Close()

	assert.False(t, fw.changed())
	require.NoError(t, os.WriteFile(input, []byte("[[]]"), 0644))
	assert.True(t, fw.changed())
	assert.False(t, fw.changed())
}

func TestSameBytesWithAbsentConfigIsSkipped(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "all_stickers_data.json")
	configFile := filepath.Join(dir, "assetgen.yaml")
	require.NoError(t, os.WriteFile(input, []byte("[]"), 0644))

	fw, err := NewFileWatcher([]string{input, configFile}, func() error { return nil })
	require.NoError(t, err)
	defer fw.Close()

	require.NoError(t, os.WriteFile(input, []byte("[]"), 0644))
	assert.False(t, fw.changed())

	require.NoError(t, os.WriteFile(configFile, []byte("files: {}"), 0644))
	assert.True(t, fw.changed())
	assert.False(t, fw.changed())
}

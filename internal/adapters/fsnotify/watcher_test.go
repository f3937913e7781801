package fsnotify

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shops.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	var fired atomic.Int32
	require.NoError(t, w.Watch(path, func() { fired.Add(1) }))

	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"x"}]`), 0644))

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shops.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Stop()

	var fired atomic.Int32
	require.NoError(t, w.Watch(path, func() { fired.Add(1) }))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("[]"), 0644))

	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestStop_Idempotent(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

package quilt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const watchManifestV1 = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false, "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    }
  }
}`

const watchManifestV2 = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false, "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 64, "h": 64},
      "sourceSize": {"w": 64, "h": 64}
    },
    "enemy.png": {
      "frame": {"x": 64, "y": 0, "w": 32, "h": 48},
      "rotated": false, "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 32, "h": 48},
      "sourceSize": {"w": 32, "h": 48}
    }
  }
}`

func waitForRecords(ch <-chan []RegionRecord, timeout time.Duration) ([]RegionRecord, bool) {
	select {
	case recs := <-ch:
		return recs, true
	case <-time.After(timeout):
		return nil, false
	}
}

func waitForError(ch <-chan error, timeout time.Duration) (error, bool) {
	select {
	case err := <-ch:
		return err, true
	case <-time.After(timeout):
		return nil, false
	}
}

func TestWatchManifest_DeliversOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.json")
	require.NoError(t, os.WriteFile(path, []byte(watchManifestV1), 0644))

	w, err := WatchManifest(path, ParseTexturePackerJSON)
	require.NoError(t, err)
	defer w.Stop()

	// Give the watcher time to start.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(watchManifestV2), 0644))

	recs, ok := waitForRecords(w.Records(), 2*time.Second)
	require.True(t, ok, "expected records after manifest change")
	assert.Len(t, recs, 2)
}

func TestWatchManifest_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.json")
	require.NoError(t, os.WriteFile(path, []byte(watchManifestV1), 0644))

	w, err := WatchManifest(path, ParseTexturePackerJSON)
	require.NoError(t, err)
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)

	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(other, []byte(watchManifestV2), 0644))

	_, ok := waitForRecords(w.Records(), 300*time.Millisecond)
	assert.False(t, ok, "sibling file change must not trigger a reload")
}

func TestWatchManifest_ReportsParseErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.json")
	require.NoError(t, os.WriteFile(path, []byte(watchManifestV1), 0644))

	w, err := WatchManifest(path, ParseTexturePackerJSON)
	require.NoError(t, err)
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))

	parseErr, ok := waitForError(w.Errors(), 2*time.Second)
	require.True(t, ok, "expected a parse error after writing broken JSON")
	assert.Error(t, parseErr)
}

func TestWatchManifest_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "atlas.json")
	require.NoError(t, os.WriteFile(path, []byte(watchManifestV1), 0644))

	w, err := WatchManifest(path, ParseTexturePackerJSON)
	require.NoError(t, err)

	w.Stop()
	w.Stop() // must not panic or block

	// The records channel closes once the pump drains.
	select {
	case _, open := <-w.Records():
		assert.False(t, open, "records channel should be closed after Stop")
	case <-time.After(2 * time.Second):
		t.Fatal("records channel not closed after Stop")
	}
}

func TestWatchManifest_MissingDirectory(t *testing.T) {
	_, err := WatchManifest(filepath.Join(t.TempDir(), "missing", "atlas.json"), ParseTexturePackerJSON)
	assert.Error(t, err)
}

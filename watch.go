package quilt

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ManifestWatcher watches one manifest file on disk and delivers freshly
// parsed region records whenever it changes. Intended for development-time
// hot reload: the watcher parses on its own goroutine, but hands the result
// across a channel so the consumer applies it with [Atlas.Reload] from the
// game loop goroutine, keeping the Atlas itself single-threaded.
//
//	w, err := quilt.WatchManifest("assets/atlas.json", quilt.ParseTexturePackerJSON)
//	...
//	// in Update:
//	select {
//	case recs := <-w.Records():
//		atlas.Reload(recs)
//	default:
//	}
type ManifestWatcher struct {
	fw      *fsnotify.Watcher
	path    string
	parse   func([]byte) ([]RegionRecord, error)
	records chan []RegionRecord
	errs    chan error

	mu      sync.Mutex
	stopped bool
}

// watchDebounce suppresses the duplicate events editors fire per save
// (write + chmod, or create + write on atomic replace).
const watchDebounce = 50 * time.Millisecond

// WatchManifest starts watching the manifest at path, re-parsing it with
// parse on every change. The watch is placed on the parent directory, since
// most editors replace files by rename, which drops a watch placed on the
// file itself.
func WatchManifest(path string, parse func([]byte) ([]RegionRecord, error)) (*ManifestWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("quilt: watch manifest: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("quilt: watch manifest: %w", err)
	}
	if err := fw.Add(filepath.Dir(absPath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("quilt: watch manifest: %w", err)
	}

	w := &ManifestWatcher{
		fw:      fw,
		path:    absPath,
		parse:   parse,
		records: make(chan []RegionRecord, 1),
		errs:    make(chan error, 1),
	}
	go w.pump()
	return w, nil
}

// Records returns the channel carrying re-parsed manifest records. Only the
// most recent unconsumed parse is retained; slower consumers see the latest
// state, not every intermediate save. The channel is closed by Stop.
func (w *ManifestWatcher) Records() <-chan []RegionRecord {
	return w.records
}

// Errors returns the channel carrying read and parse failures. A failure
// does not stop the watcher; the next successful save delivers records
// again. The channel is closed by Stop.
func (w *ManifestWatcher) Errors() <-chan error {
	return w.errs
}

// Stop stops watching and closes the Records and Errors channels. Safe to
// call more than once.
func (w *ManifestWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	w.fw.Close()
}

// pump drains fsnotify events until the watcher is closed.
func (w *ManifestWatcher) pump() {
	defer close(w.records)
	defer close(w.errs)

	var lastEvent time.Time
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			now := time.Now()
			if now.Sub(lastEvent) < watchDebounce {
				continue
			}
			lastEvent = now
			w.reload()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.deliverErr(fmt.Errorf("quilt: watch manifest: %w", err))
		}
	}
}

// reload re-reads and re-parses the manifest, delivering the result.
func (w *ManifestWatcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.deliverErr(fmt.Errorf("quilt: reload manifest: %w", err))
		return
	}
	recs, err := w.parse(data)
	if err != nil {
		w.deliverErr(err)
		return
	}
	// Latest wins: displace an unconsumed older parse rather than block.
	for {
		select {
		case w.records <- recs:
			return
		default:
			select {
			case <-w.records:
			default:
			}
		}
	}
}

func (w *ManifestWatcher) deliverErr(err error) {
	select {
	case w.errs <- err:
	default:
	}
}

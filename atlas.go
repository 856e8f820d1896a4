package quilt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas maps string names to sub-regions of one texture-atlas page.
//
// Lookups return explicit absent values (ok=false or nil) rather than
// errors. Names and Textures answer prefix queries from a lazily built,
// case-insensitively sorted name index; any mutation invalidates the index
// and the next query rebuilds it.
//
// An Atlas is not safe for concurrent use. Treat it as owned by the game
// loop goroutine; [ManifestWatcher] hands reload data across a channel for
// exactly this reason.
type Atlas struct {
	page    *ebiten.Image
	entries map[string]Texture

	// sorted is valid only while sortedValid is true. An empty atlas still
	// builds a valid (empty) index, so nil-ness of the slice carries no
	// meaning on its own.
	sorted      []string
	sortedValid bool

	disposed bool
}

// NewAtlas creates an Atlas over the given page and inserts each record via
// AddRegion, so construction-time and late additions share one code path.
//
// page may be nil for metadata-only use (for example inspecting a manifest
// without a graphics context); Texture lookups then resolve to entries whose
// Image method returns nil.
func NewAtlas(page *ebiten.Image, records []RegionRecord) *Atlas {
	a := &Atlas{
		page:    page,
		entries: make(map[string]Texture, len(records)),
	}
	for _, rec := range records {
		a.AddRegion(rec.Name, rec.Region, rec.Frame, rec.Rotated)
	}
	return a
}

// Page returns the atlas page image. Nil for metadata-only atlases or after
// Dispose.
func (a *Atlas) Page() *ebiten.Image {
	return a.page
}

// Len returns the number of registered entries.
func (a *Atlas) Len() int {
	return len(a.entries)
}

// Region returns the stored region rectangle for name. ok is false when the
// name is not registered.
func (a *Atlas) Region(name string) (r Rect, ok bool) {
	if globalDebug {
		debugCheckDisposed(a, "Region")
	}
	t, ok := a.entries[name]
	if !ok {
		return Rect{}, false
	}
	return t.Region(), true
}

// Frame returns the untrimmed logical bounds for name. ok is false when the
// name is not registered or the region was not trimmed.
func (a *Atlas) Frame(name string) (r Rect, ok bool) {
	if globalDebug {
		debugCheckDisposed(a, "Frame")
	}
	t, ok := a.entries[name]
	if !ok {
		return Rect{}, false
	}
	return t.Frame()
}

// Rotation reports whether the pixels stored for name are rotated 90 degrees
// clockwise on the page. Unknown names report false; absence is not
// distinguished from "not rotated". Use Region's ok result to test presence.
func (a *Atlas) Rotation(name string) bool {
	if globalDebug {
		debugCheckDisposed(a, "Rotation")
	}
	t, ok := a.entries[name]
	if !ok {
		return false
	}
	return t.Rotated()
}

// Texture returns the descriptor registered under name, or nil when the name
// is not registered. In debug mode misses are logged to stderr.
func (a *Atlas) Texture(name string) Texture {
	if globalDebug {
		debugCheckDisposed(a, "Texture")
	}
	t, ok := a.entries[name]
	if !ok {
		debugLogMiss(name)
		return nil
	}
	return t
}

// Names appends to dst every registered name that begins with prefix and
// returns the extended slice. Results come from the cached full name index,
// sorted case-insensitively (ties between names equal under case folding
// break on the exact byte order, so the order is total and deterministic).
// The prefix comparison itself is case-sensitive and literal. An empty
// prefix yields every name.
//
// dst may be nil; pass a reused buffer to avoid per-call allocation.
func (a *Atlas) Names(prefix string, dst []string) []string {
	if globalDebug {
		debugCheckDisposed(a, "Names")
	}
	a.buildNameIndex()
	if prefix == "" {
		return append(dst, a.sorted...)
	}
	for _, n := range a.sorted {
		if strings.HasPrefix(n, prefix) {
			dst = append(dst, n)
		}
	}
	return dst
}

// Textures appends the descriptor for every name beginning with prefix, in
// the same order Names produces, and returns the extended slice.
func (a *Atlas) Textures(prefix string, dst []Texture) []Texture {
	if globalDebug {
		debugCheckDisposed(a, "Textures")
	}
	a.buildNameIndex()
	for _, n := range a.sorted {
		if strings.HasPrefix(n, prefix) {
			dst = append(dst, a.entries[n])
		}
	}
	return dst
}

// AddRegion registers a SubTexture for the stored rectangle region of the
// atlas page, overwriting any existing entry with the same name. frame may
// be nil for untrimmed regions.
func (a *Atlas) AddRegion(name string, region Rect, frame *Rect, rotated bool) {
	if globalDebug {
		debugCheckDisposed(a, "AddRegion")
	}
	a.entries[name] = NewSubTexture(a.page, region, frame, rotated)
	a.sortedValid = false
}

// AddSubTexture registers a caller-built descriptor under name, overwriting
// any existing entry. The descriptor must be backed by this atlas's page; a
// mismatch silently produces incorrect sampling, so it is rejected here.
func (a *Atlas) AddSubTexture(name string, t Texture) error {
	if globalDebug {
		debugCheckDisposed(a, "AddSubTexture")
	}
	if t == nil {
		return fmt.Errorf("quilt: AddSubTexture %q: nil texture", name)
	}
	if t.Page() != a.page {
		return fmt.Errorf("quilt: AddSubTexture %q: texture is backed by a different atlas page", name)
	}
	a.entries[name] = t
	a.sortedValid = false
	return nil
}

// RemoveRegion disposes the entry's region-local resources and removes it.
// Removing an unregistered name is a no-op. The shared page is untouched.
func (a *Atlas) RemoveRegion(name string) {
	if globalDebug {
		debugCheckDisposed(a, "RemoveRegion")
	}
	t, ok := a.entries[name]
	if !ok {
		return
	}
	t.Dispose()
	delete(a.entries, name)
	a.sortedValid = false
}

// Reload replaces every entry with the given records, disposing the old
// entries' region-local resources first. Intended for manifest hot reload;
// see [ManifestWatcher].
func (a *Atlas) Reload(records []RegionRecord) {
	if globalDebug {
		debugCheckDisposed(a, "Reload")
	}
	for _, t := range a.entries {
		t.Dispose()
	}
	clear(a.entries)
	for _, rec := range records {
		a.AddRegion(rec.Name, rec.Region, rec.Frame, rec.Rotated)
	}
}

// Dispose deallocates the atlas page and disposes every entry. The Atlas
// must not be used afterwards; in debug mode any further call panics.
func (a *Atlas) Dispose() {
	for _, t := range a.entries {
		t.Dispose()
	}
	if a.page != nil {
		a.page.Deallocate()
		a.page = nil
	}
	a.entries = nil
	a.sorted = nil
	a.sortedValid = false
	a.disposed = true
}

// buildNameIndex rebuilds the sorted name cache if a mutation invalidated it.
func (a *Atlas) buildNameIndex() {
	if a.sortedValid {
		return
	}
	a.sorted = a.sorted[:0]
	for n := range a.entries {
		a.sorted = append(a.sorted, n)
	}
	sort.SliceStable(a.sorted, func(i, j int) bool {
		li, lj := strings.ToLower(a.sorted[i]), strings.ToLower(a.sorted[j])
		if li != lj {
			return li < lj
		}
		return a.sorted[i] < a.sorted[j]
	})
	a.sortedValid = true
}

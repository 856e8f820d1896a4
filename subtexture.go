package quilt

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is the capability set an atlas entry must provide. The Atlas and
// the draw helpers depend only on this interface, so callers may register
// their own variants via [Atlas.AddSubTexture] (a nine-slice descriptor, a
// procedurally generated region, ...).
type Texture interface {
	// Region returns the rectangle on the atlas page where the pixel data
	// lives, in its possibly-rotated, possibly-trimmed stored form.
	Region() Rect

	// Frame returns the untrimmed logical bounds and true when the stored
	// pixels were trimmed, or a zero Rect and false otherwise.
	Frame() (Rect, bool)

	// Rotated reports whether the stored pixel data is rotated 90 degrees
	// clockwise relative to its logical upright orientation.
	Rotated() bool

	// Page returns the atlas page image backing this entry. May be nil for
	// metadata-only use.
	Page() *ebiten.Image

	// Image returns the rendering handle for the region, or nil when no
	// page is attached.
	Image() *ebiten.Image

	// Dispose releases region-local resources. It must not release the
	// shared page; that is the owning Atlas's job.
	Dispose()
}

// SubTexture is the default Texture implementation: one named rectangle of
// an atlas page, plus the trim frame and rotation metadata packing tools
// emit. The *ebiten.Image handle is created lazily on first use and cached.
type SubTexture struct {
	page    *ebiten.Image
	region  Rect
	frame   *Rect
	rotated bool
	sub     *ebiten.Image
}

// NewSubTexture creates a SubTexture for the given stored region of page.
// frame may be nil for untrimmed regions. page may be nil when only the
// metadata is needed (no rendering).
func NewSubTexture(page *ebiten.Image, region Rect, frame *Rect, rotated bool) *SubTexture {
	t := &SubTexture{
		page:    page,
		region:  region,
		rotated: rotated,
	}
	if frame != nil {
		f := *frame
		t.frame = &f
	}
	return t
}

// Region returns the stored rectangle on the atlas page.
func (t *SubTexture) Region() Rect {
	return t.region
}

// Frame returns the untrimmed logical bounds, if the region was trimmed.
func (t *SubTexture) Frame() (Rect, bool) {
	if t.frame == nil {
		return Rect{}, false
	}
	return *t.frame, true
}

// Rotated reports whether the stored pixels are rotated 90 degrees clockwise.
func (t *SubTexture) Rotated() bool {
	return t.rotated
}

// Page returns the atlas page image backing this entry.
func (t *SubTexture) Page() *ebiten.Image {
	return t.page
}

// Image returns the *ebiten.Image handle for the stored region. The handle
// is a sub-image view of the page, created on first call and cached until
// Dispose. Returns nil when the SubTexture has no page.
func (t *SubTexture) Image() *ebiten.Image {
	if t.sub == nil && t.page != nil {
		r := t.region
		t.sub = t.page.SubImage(image.Rect(
			int(r.X), int(r.Y),
			int(r.X+r.Width), int(r.Y+r.Height),
		)).(*ebiten.Image)
	}
	return t.sub
}

// Size returns the logical on-screen size of the sub-texture: the frame
// dimensions when trimmed, otherwise the stored dimensions counter-rotated
// back to upright when necessary.
func (t *SubTexture) Size() (w, h float64) {
	if t.frame != nil {
		return t.frame.Width, t.frame.Height
	}
	if t.rotated {
		return t.region.Height, t.region.Width
	}
	return t.region.Width, t.region.Height
}

// Dispose drops the cached sub-image handle. The shared page is untouched;
// a later Image call recreates the handle.
func (t *SubTexture) Dispose() {
	t.sub = nil
}

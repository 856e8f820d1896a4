package quilt

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawOpts controls how DrawColored submits a texture.
type DrawOpts struct {
	// X and Y are the draw position of the logical (untrimmed, upright)
	// top-left corner, in pixels.
	X, Y float64
	// ScaleX and ScaleY are scale factors. Zero defaults to 1.0.
	ScaleX, ScaleY float64
	// Rotation is the rotation in radians (clockwise).
	Rotation float64
	// PivotX and PivotY are the transform origin for scale and rotation,
	// relative to the logical top-left corner.
	PivotX, PivotY float64
	// Alpha is the opacity multiplier. Zero defaults to 1.0 (fully opaque).
	Alpha float64
	// Color is a multiplicative tint. The zero value is the identity scale.
	Color ebiten.ColorScale
	// Blend selects the compositing operation. The zero value is the
	// standard source-over blend.
	Blend ebiten.Blend
}

// Draw submits t onto dst with its logical top-left corner at (x, y).
// Stored-rotated regions are counter-rotated upright and trim-frame offsets
// applied, so trimmed and untrimmed variants of a sprite land identically.
// A nil t or a t without a page is a no-op.
func Draw(dst *ebiten.Image, t Texture, x, y float64) {
	if t == nil {
		return
	}
	img := t.Image()
	if img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = uprightGeoM(t, x, y)
	dst.DrawImage(img, &op)
}

// DrawColored submits t onto dst with full transform, tint, alpha, and blend
// control. A nil t or a t without a page is a no-op.
func DrawColored(dst *ebiten.Image, t Texture, opts DrawOpts) {
	if t == nil {
		return
	}
	img := t.Image()
	if img == nil {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM = uprightGeoM(t, 0, 0)

	op.GeoM.Translate(-opts.PivotX, -opts.PivotY)
	sx, sy := opts.ScaleX, opts.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	op.GeoM.Scale(sx, sy)
	if opts.Rotation != 0 {
		op.GeoM.Rotate(opts.Rotation)
	}
	op.GeoM.Translate(opts.X+opts.PivotX, opts.Y+opts.PivotY)

	alpha := opts.Alpha
	if alpha == 0 {
		alpha = 1
	}
	op.ColorScale = opts.Color
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Blend = opts.Blend

	dst.DrawImage(img, &op)
}

// uprightGeoM builds the geometry that maps t's stored pixels to its logical
// upright placement with the logical top-left corner at (x, y): counter-
// rotate stored-rotated pixels by -π/2, then shift by the trim-frame offset.
func uprightGeoM(t Texture, x, y float64) ebiten.GeoM {
	var g ebiten.GeoM
	if t.Rotated() {
		g.Rotate(-math.Pi / 2)
		g.Translate(0, t.Region().Width)
	}
	offX, offY := 0.0, 0.0
	if f, ok := t.Frame(); ok {
		// Frame X/Y are negative when content was trimmed from that edge;
		// the stored pixels sit at -frame offset inside the logical box.
		offX, offY = -f.X, -f.Y
	}
	g.Translate(x+offX, y+offY)
	return g
}

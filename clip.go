package quilt

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Clip plays a flipbook of atlas textures sharing a name prefix. Frames come
// from [Atlas.Textures], so "run_0" through "run_9" play in sorted order.
// Frame timing is driven by a gween tween across the frame range: ease.Linear
// gives uniform frame durations, any other easing function redistributes
// time across the sequence.
//
// There is no global animation manager — callers invoke Update themselves,
// once per tick with the elapsed time in seconds.
type Clip struct {
	frames []Texture
	tween  *gween.Tween
	frame  int

	// Loop restarts playback when the last frame finishes.
	Loop bool
	// Done is set when a non-looping clip has finished.
	Done bool
}

// NewClip builds a clip from every atlas entry whose name begins with prefix,
// playing over duration seconds with the given easing function. Returns an
// error when no entry matches.
func NewClip(a *Atlas, prefix string, duration float32, fn ease.TweenFunc) (*Clip, error) {
	frames := a.Textures(prefix, nil)
	if len(frames) == 0 {
		return nil, fmt.Errorf("quilt: no atlas entries match prefix %q", prefix)
	}
	return &Clip{
		frames: frames,
		tween:  gween.New(0, float32(len(frames)), duration, fn),
	}, nil
}

// Update advances playback by dt seconds.
func (c *Clip) Update(dt float32) {
	if c.Done {
		return
	}
	val, finished := c.tween.Update(dt)
	idx := int(val)
	if idx >= len(c.frames) {
		idx = len(c.frames) - 1
	}
	c.frame = idx
	if finished {
		if c.Loop {
			c.tween.Reset()
			c.frame = 0
		} else {
			c.Done = true
		}
	}
}

// Current returns the texture for the current frame.
func (c *Clip) Current() Texture {
	return c.frames[c.frame]
}

// FrameIndex returns the current frame index, in [0, Len).
func (c *Clip) FrameIndex() int {
	return c.frame
}

// Len returns the number of frames in the clip.
func (c *Clip) Len() int {
	return len(c.frames)
}

// Restart rewinds the clip to its first frame and clears Done.
func (c *Clip) Restart() {
	c.tween.Reset()
	c.frame = 0
	c.Done = false
}

// Draw submits the current frame onto dst at (x, y). See [Draw] for the
// trim and rotation handling.
func (c *Clip) Draw(dst *ebiten.Image, x, y float64) {
	Draw(dst, c.frames[c.frame], x, y)
}

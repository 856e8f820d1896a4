package quilt

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newClipAtlas() *Atlas {
	a := NewAtlas(nil, nil)
	// Insert out of order; the clip must still play 0..3.
	for _, n := range []string{"walk_2", "walk_0", "walk_3", "walk_1", "idle"} {
		a.AddRegion(n, Rect{Width: 8, Height: 8}, nil, false)
	}
	return a
}

func TestNewClip_CollectsPrefixFramesInOrder(t *testing.T) {
	a := newClipAtlas()
	clip, err := NewClip(a, "walk_", 1.0, ease.Linear)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}
	if clip.Len() != 4 {
		t.Errorf("Len = %d, want 4", clip.Len())
	}
	if clip.Current() != a.Texture("walk_0") {
		t.Error("clip does not start on walk_0")
	}
}

func TestNewClip_NoMatches(t *testing.T) {
	a := newClipAtlas()
	if _, err := NewClip(a, "swim_", 1.0, ease.Linear); err == nil {
		t.Error("expected error for prefix with no matches, got nil")
	}
}

func TestClip_Update_AdvancesFrames(t *testing.T) {
	a := newClipAtlas()
	clip, err := NewClip(a, "walk_", 1.0, ease.Linear)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}

	clip.Update(0.3) // 30% through 4 frames -> frame 1
	if clip.FrameIndex() != 1 {
		t.Errorf("frame after 0.3s = %d, want 1", clip.FrameIndex())
	}
	clip.Update(0.45) // 75% -> frame 3
	if clip.FrameIndex() != 3 {
		t.Errorf("frame after 0.75s = %d, want 3", clip.FrameIndex())
	}
	if clip.Done {
		t.Error("clip Done before duration elapsed")
	}
}

func TestClip_FinishesAndClamps(t *testing.T) {
	a := newClipAtlas()
	clip, err := NewClip(a, "walk_", 0.4, ease.Linear)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}

	clip.Update(1.0) // overshoot
	if !clip.Done {
		t.Error("clip not Done after overshooting duration")
	}
	if clip.FrameIndex() != 3 {
		t.Errorf("final frame = %d, want 3 (clamped)", clip.FrameIndex())
	}
	clip.Update(0.1) // further updates are no-ops
	if clip.FrameIndex() != 3 {
		t.Errorf("frame moved after Done: %d", clip.FrameIndex())
	}
}

func TestClip_Loop(t *testing.T) {
	a := newClipAtlas()
	clip, err := NewClip(a, "walk_", 0.4, ease.Linear)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}
	clip.Loop = true

	clip.Update(0.5)
	if clip.Done {
		t.Error("looping clip set Done")
	}
	if clip.FrameIndex() != 0 {
		t.Errorf("looping clip frame after wrap = %d, want 0", clip.FrameIndex())
	}
	clip.Update(0.15)
	if clip.FrameIndex() != 1 {
		t.Errorf("frame after wrap + 0.15s = %d, want 1", clip.FrameIndex())
	}
}

func TestClip_Restart(t *testing.T) {
	a := newClipAtlas()
	clip, err := NewClip(a, "walk_", 0.4, ease.Linear)
	if err != nil {
		t.Fatalf("NewClip: %v", err)
	}

	clip.Update(1.0)
	clip.Restart()
	if clip.Done || clip.FrameIndex() != 0 {
		t.Errorf("after Restart: Done=%v frame=%d, want false/0", clip.Done, clip.FrameIndex())
	}
	clip.Update(0.15)
	if clip.FrameIndex() != 1 {
		t.Errorf("frame after restart + 0.15s = %d, want 1", clip.FrameIndex())
	}
}

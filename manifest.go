package quilt

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
)

// RegionRecord is one already-parsed manifest entry: the input [NewAtlas]
// and [Atlas.Reload] consume. Region is the stored rectangle on the page
// (width/height swapped relative to the logical size when Rotated). Frame is
// nil for untrimmed regions.
type RegionRecord struct {
	Name    string
	Region  Rect
	Frame   *Rect
	Rotated bool
}

// --- TexturePacker JSON ---

type jsonRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonSize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// ParseTexturePackerJSON parses TexturePacker JSON manifest data into region
// records. Both the hash format (a single "frames" object) and the array
// format ("textures") are accepted, but an Atlas owns exactly one page, so
// an array with more than one texture page is an error — export one manifest
// per page instead.
//
// Trimmed entries gain a frame rectangle with the TexturePacker sprite
// source offset negated, so frame X/Y are <= 0. Rotated entries store their
// region rectangle in page space, width and height swapped relative to the
// logical sprite size.
func ParseTexturePackerJSON(data []byte) ([]RegionRecord, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("quilt: failed to parse atlas JSON: %w", err)
	}

	var frames map[string]jsonFrame
	switch {
	case probe.Textures != nil:
		var pages []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &pages); err != nil {
			return nil, fmt.Errorf("quilt: failed to parse atlas textures array: %w", err)
		}
		if len(pages) != 1 {
			return nil, fmt.Errorf("quilt: atlas JSON describes %d texture pages, want exactly 1 per atlas", len(pages))
		}
		frames = pages[0].Frames
	case probe.Frames != nil:
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("quilt: failed to parse atlas frames: %w", err)
		}
	default:
		return nil, fmt.Errorf("quilt: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	records := make([]RegionRecord, 0, len(frames))
	for name, f := range frames {
		records = append(records, frameToRecord(name, f))
	}
	return records, nil
}

func frameToRecord(name string, f jsonFrame) RegionRecord {
	rec := RegionRecord{
		Name:    name,
		Rotated: f.Rotated,
		Region: Rect{
			X: f.Frame.X, Y: f.Frame.Y,
			Width: f.Frame.W, Height: f.Frame.H,
		},
	}
	// TexturePacker reports w/h in logical orientation; the stored footprint
	// of a rotated sprite is transposed.
	if f.Rotated {
		rec.Region.Width, rec.Region.Height = f.Frame.H, f.Frame.W
	}
	if f.Trimmed {
		rec.Frame = &Rect{
			X: -f.SpriteSourceSize.X, Y: -f.SpriteSourceSize.Y,
			Width: f.SourceSize.W, Height: f.SourceSize.H,
		}
	}
	return rec
}

// --- Starling / Sparrow XML ---

type xmlSubTexture struct {
	Name        string  `xml:"name,attr"`
	X           float64 `xml:"x,attr"`
	Y           float64 `xml:"y,attr"`
	Width       float64 `xml:"width,attr"`
	Height      float64 `xml:"height,attr"`
	FrameX      float64 `xml:"frameX,attr"`
	FrameY      float64 `xml:"frameY,attr"`
	FrameWidth  float64 `xml:"frameWidth,attr"`
	FrameHeight float64 `xml:"frameHeight,attr"`
	Rotated     bool    `xml:"rotated,attr"`
}

type xmlTextureAtlas struct {
	XMLName     xml.Name        `xml:"TextureAtlas"`
	ImagePath   string          `xml:"imagePath,attr"`
	SubTextures []xmlSubTexture `xml:"SubTexture"`
}

// ParseStarlingXML parses a Starling/Sparrow TextureAtlas XML manifest into
// region records. A SubTexture element carries a trim frame when both
// frameWidth and frameHeight are positive; frameX/frameY follow the Starling
// convention of being negative when content was cropped from that edge, and
// are taken as-is. width/height describe the stored footprint on the page.
func ParseStarlingXML(data []byte) ([]RegionRecord, error) {
	var atlas xmlTextureAtlas
	if err := xml.Unmarshal(data, &atlas); err != nil {
		return nil, fmt.Errorf("quilt: failed to parse atlas XML: %w", err)
	}
	if len(atlas.SubTextures) == 0 {
		return nil, fmt.Errorf("quilt: atlas XML has no SubTexture elements")
	}

	records := make([]RegionRecord, 0, len(atlas.SubTextures))
	for _, s := range atlas.SubTextures {
		rec := RegionRecord{
			Name:    s.Name,
			Rotated: s.Rotated,
			Region: Rect{
				X: s.X, Y: s.Y,
				Width: s.Width, Height: s.Height,
			},
		}
		if s.FrameWidth > 0 && s.FrameHeight > 0 {
			rec.Frame = &Rect{
				X: s.FrameX, Y: s.FrameY,
				Width: s.FrameWidth, Height: s.FrameHeight,
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Package quilt manages named sub-regions of texture-atlas pages for
// [Ebitengine].
//
// A texture atlas is one large image containing many packed smaller images.
// Packing sprites into a shared page avoids per-sprite texture switches and
// sidesteps power-of-two size constraints on older GPUs. Quilt owns the
// lookup side of that arrangement: it maps string names to sub-regions of a
// single page, tracks the trim frame and rotation metadata tools like
// TexturePacker emit, and answers exact-name and prefix queries against a
// cached, case-insensitively sorted name index.
//
// Quilt does not pack, tile, or render. Page images arrive as *ebiten.Image,
// already decoded; the draw helpers submit one image at a time.
//
// # Quick start
//
//	records, err := quilt.ParseTexturePackerJSON(manifestData)
//	if err != nil {
//		log.Fatal(err)
//	}
//	atlas := quilt.NewAtlas(page, records)
//
//	if r, ok := atlas.Region("hero_idle_0"); ok {
//		fmt.Println(r.Width, r.Height)
//	}
//	quilt.Draw(screen, atlas.Texture("hero_idle_0"), 100, 50)
//
// # Prefix queries and flipbooks
//
// [Atlas.Names] and [Atlas.Textures] return entries in case-insensitive
// sorted order, filtered by a literal prefix. Frame sequences named
// "walk_0", "walk_1", ... therefore come back in playback order, which is
// what [NewClip] builds on:
//
//	clip, err := quilt.NewClip(atlas, "walk_", 0.6, ease.Linear)
//	// each frame: clip.Update(dt); clip.Draw(screen, x, y)
//
// # Trim frames and rotation
//
// A trimmed region stores only the opaque pixels; its frame rectangle
// records the untrimmed logical bounds (negative frame X/Y means content
// was cropped from that edge). A rotated region is stored 90 degrees
// clockwise on the page and counter-rotated by the draw helpers. Both are
// handled transparently by [Draw] and [DrawColored].
//
// [Ebitengine]: https://ebitengine.org
package quilt

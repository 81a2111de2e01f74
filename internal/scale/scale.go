// Package scale enlarges cursor images by an integer factor using
// nearest-neighbor block replication: every source pixel becomes a solid
// factor×factor block in the output. Replication introduces no new colors
// and keeps the hard edges cursor glyphs rely on.
package scale

import (
	"errors"
	"fmt"

	"xcurscale/pkg/xcursor"
)

// ErrInvalidFactor means the scale factor is zero or would produce an image
// larger than the format allows.
var ErrInvalidFactor = errors.New("scale: invalid scale factor")

// Image returns a copy of img enlarged by factor.
//
// Dimensions and the hotspot are multiplied by factor, which keeps the
// hotspot on the same logical pixel; the frame delay is carried through
// untouched. A factor of 1 is the identity transform (still returning a
// fresh copy), a factor of 0 is rejected. The result is deterministic and
// img is never modified.
func Image(img *xcursor.Image, factor uint32) (*xcursor.Image, error) {
	if factor == 0 {
		return nil, fmt.Errorf("%w: 0", ErrInvalidFactor)
	}
	if uint64(len(img.Pixels)) != uint64(img.Width)*uint64(img.Height) {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d",
			xcursor.ErrPixelCount, len(img.Pixels), img.Width, img.Height)
	}
	if uint64(img.Width)*uint64(factor) > uint64(xcursor.MaxDimension) ||
		uint64(img.Height)*uint64(factor) > uint64(xcursor.MaxDimension) {
		return nil, fmt.Errorf("%w: %d scales %dx%d past the maximum dimension",
			ErrInvalidFactor, factor, img.Width, img.Height)
	}

	w := int(img.Width)
	h := int(img.Height)
	n := int(factor)
	nw := w * n
	nh := h * n

	dst := make([]uint32, nw*nh)
	for y := 0; y < h; y++ {
		srcRow := img.Pixels[y*w : y*w+w]
		dstRow := dst[y*n*nw : y*n*nw+nw]
		for x, px := range srcRow {
			block := dstRow[x*n : x*n+n]
			for i := range block {
				block[i] = px
			}
		}
		// Replicate the expanded row for the rest of the block.
		for r := 1; r < n; r++ {
			copy(dst[(y*n+r)*nw:(y*n+r)*nw+nw], dstRow)
		}
	}

	return &xcursor.Image{
		Width:  img.Width * factor,
		Height: img.Height * factor,
		XHot:   img.XHot * factor,
		YHot:   img.YHot * factor,
		Delay:  img.Delay,
		Pixels: dst,
	}, nil
}

// File scales every image chunk of the document in place. Opaque chunks pass
// through untouched, and image subtypes keep their original values: they are
// nominal size selectors, not pixel counts.
func File(f *xcursor.File, factor uint32) error {
	for i := range f.Entries {
		e := &f.Entries[i]
		if !e.IsImage() {
			continue
		}
		scaled, err := Image(e.Image, factor)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		e.Image = scaled
	}
	return nil
}

package xcursor

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode serializes the document into the Xcursor container layout.
//
// Chunk positions are always recomputed in a single forward pass: bodies are
// laid out back to back immediately after the table of contents, in entry
// order. Positions recorded by a reader describe the input layout and are
// never reused. The returned buffer is freshly allocated and shares no
// storage with the document.
func Encode(f *File) ([]byte, error) {
	version := f.Version
	if version == 0 {
		version = FileVersion
	}
	if version>>16 != fileMajor {
		return nil, fmt.Errorf("%w: 0x%08x", ErrUnsupportedVersion, version)
	}

	total := uint64(fileHeaderSize) + tocEntrySize*uint64(len(f.Entries))
	for i := range f.Entries {
		e := &f.Entries[i]
		if e.IsImage() {
			if err := validateImage(i, e.Image); err != nil {
				return nil, err
			}
		}
		total += uint64(e.bodySize())
	}
	if total > math.MaxUint32 {
		return nil, fmt.Errorf("%w: encoded file exceeds 32-bit offsets", ErrChunkMismatch)
	}

	buf := make([]byte, 0, total)
	buf = append(buf, Magic...)
	buf = binary.LittleEndian.AppendUint32(buf, fileHeaderSize)
	buf = binary.LittleEndian.AppendUint32(buf, version)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(f.Entries)))

	position := uint32(fileHeaderSize + tocEntrySize*len(f.Entries))
	for i := range f.Entries {
		e := &f.Entries[i]
		buf = binary.LittleEndian.AppendUint32(buf, e.Type)
		buf = binary.LittleEndian.AppendUint32(buf, e.Subtype)
		buf = binary.LittleEndian.AppendUint32(buf, position)
		position += uint32(e.bodySize())
	}

	for i := range f.Entries {
		e := &f.Entries[i]
		if e.IsImage() {
			buf = appendImage(buf, e.Type, e.Subtype, e.Image)
		} else {
			buf = append(buf, e.Opaque...)
		}
	}
	return buf, nil
}

func validateImage(idx int, img *Image) error {
	if img == nil {
		return fmt.Errorf("%w: entry %d has no image payload", ErrChunkMismatch, idx)
	}
	if img.Width == 0 || img.Height == 0 || img.Width > MaxDimension || img.Height > MaxDimension {
		return fmt.Errorf("%w: entry %d dimensions %dx%d", ErrChunkMismatch, idx, img.Width, img.Height)
	}
	if img.XHot >= img.Width || img.YHot >= img.Height {
		return fmt.Errorf("%w: entry %d hotspot (%d,%d) outside %dx%d",
			ErrChunkMismatch, idx, img.XHot, img.YHot, img.Width, img.Height)
	}
	if uint64(len(img.Pixels)) != uint64(img.Width)*uint64(img.Height) {
		return fmt.Errorf("%w: entry %d has %d pixels for %dx%d",
			ErrPixelCount, idx, len(img.Pixels), img.Width, img.Height)
	}
	return nil
}

func appendImage(buf []byte, typ, subtype uint32, img *Image) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, imageHeaderSize)
	buf = binary.LittleEndian.AppendUint32(buf, typ)
	buf = binary.LittleEndian.AppendUint32(buf, subtype)
	buf = binary.LittleEndian.AppendUint32(buf, imageChunkVersion)
	buf = binary.LittleEndian.AppendUint32(buf, img.Width)
	buf = binary.LittleEndian.AppendUint32(buf, img.Height)
	buf = binary.LittleEndian.AppendUint32(buf, img.XHot)
	buf = binary.LittleEndian.AppendUint32(buf, img.YHot)
	buf = binary.LittleEndian.AppendUint32(buf, img.Delay)
	for _, px := range img.Pixels {
		buf = binary.LittleEndian.AppendUint32(buf, px)
	}
	return buf
}

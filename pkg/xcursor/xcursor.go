// Package xcursor implements the Xcursor cursor container format.
//
// An Xcursor file is a table-of-contents driven container holding one or
// more cursor images (optionally at several nominal sizes and animation
// frames) plus arbitrary auxiliary chunks. This package parses the container
// into a document model and serializes the model back out, recomputing all
// chunk offsets. It never interprets chunk types other than images.
package xcursor

// Xcursor on-disk constants. All multi-byte fields are little-endian.
const (
	// Magic is the file signature, the ASCII bytes "Xcur".
	Magic = "Xcur"

	// FileVersion is the container version this package writes. The high
	// 16 bits are the major version; readers accept any minor revision.
	FileVersion uint32 = 0x0001_0000

	fileMajor = FileVersion >> 16

	// fileHeaderSize covers magic, header size, version and TOC length.
	fileHeaderSize = 16

	// tocEntrySize covers type, subtype and position.
	tocEntrySize = 12
)

// Chunk types the format defines. Anything not listed here (and anything
// listed here other than ChunkImage) is carried through as opaque bytes.
const (
	ChunkComment uint32 = 0xFFFE0001
	ChunkImage   uint32 = 0xFFFD0002
)

// Image chunk constants.
const (
	imageHeaderSize          = 36
	imageChunkVersion uint32 = 1
	bytesPerPixel            = 4

	// MaxDimension bounds image width and height, matching libXcursor.
	MaxDimension uint32 = 0x7FFF
)

// File is the parsed document: the container version plus its chunks in
// table-of-contents order. The on-disk TOC order is significant and is
// preserved verbatim on write.
type File struct {
	// Version is the container version read from the header. Encode
	// substitutes FileVersion when it is zero.
	Version uint32

	Entries []Entry
}

// Entry is one table-of-contents slot together with its chunk payload.
// Exactly one of Image and Opaque is set, keyed on Type.
type Entry struct {
	// Type is the chunk type tag.
	Type uint32

	// Subtype selects among chunks of the same type. For image chunks it
	// is the nominal cursor size, which is a lookup key distinct from the
	// image's actual pixel dimensions.
	Subtype uint32

	// Image holds the decoded payload when Type == ChunkImage.
	Image *Image

	// Opaque holds the raw chunk bytes for every other type.
	Opaque []byte
}

// IsImage reports whether the entry carries a decoded image payload.
func (e *Entry) IsImage() bool { return e.Type == ChunkImage }

// Image is the payload of an image chunk. Pixels are 32-bit ARGB samples in
// row-major order with premultiplied alpha, exactly len == Width*Height.
type Image struct {
	Width  uint32
	Height uint32

	// XHot, YHot locate the pointer tip; always within the image.
	XHot uint32
	YHot uint32

	// Delay is the animation frame delay in milliseconds. It is carried
	// through untouched; this package attaches no meaning to it.
	Delay uint32

	Pixels []uint32
}

// bodySize returns the encoded chunk body length in bytes.
func (e *Entry) bodySize() int {
	if e.IsImage() && e.Image != nil {
		return imageHeaderSize + bytesPerPixel*len(e.Image.Pixels)
	}
	return len(e.Opaque)
}

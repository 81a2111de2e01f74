package xcursor

import "errors"

var (
	// ErrNotXcursor means the buffer does not begin with the Xcursor
	// magic or its fixed header is malformed.
	ErrNotXcursor = errors.New("xcursor: not an Xcursor file")

	// ErrUnsupportedVersion means the container's major version is one
	// this package does not understand.
	ErrUnsupportedVersion = errors.New("xcursor: unsupported file version")

	// ErrTruncated means a declared length or offset runs past the end of
	// the buffer.
	ErrTruncated = errors.New("xcursor: truncated file")

	// ErrChunkMismatch means a chunk header disagrees with its
	// table-of-contents entry or with the format's fixed chunk layout.
	ErrChunkMismatch = errors.New("xcursor: inconsistent chunk header")

	// ErrPixelCount means an image's pixel buffer length does not equal
	// Width*Height.
	ErrPixelCount = errors.New("xcursor: pixel buffer does not match dimensions")
)

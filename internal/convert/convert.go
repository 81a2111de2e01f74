// Package convert drives one Xcursor buffer through decode, scale and
// encode, and provides the file and batch plumbing the CLI builds on.
package convert

import (
	"xcurscale/internal/scale"
	"xcurscale/pkg/xcursor"
)

// Convert decodes data as an Xcursor container, enlarges every image chunk
// by factor and re-encodes the result. Opaque chunks ride through
// byte-for-byte. Errors from decoding or scaling surface unchanged, so
// callers can test them with errors.Is against the xcursor and scale
// sentinels.
//
// Convert holds no state between calls; it is safe to run concurrently on
// independent buffers.
func Convert(data []byte, factor uint32) ([]byte, error) {
	doc, err := xcursor.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := scale.File(doc, factor); err != nil {
		return nil, err
	}
	return xcursor.Encode(doc)
}

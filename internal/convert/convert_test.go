package convert

import (
	"bytes"
	"errors"
	"testing"

	"xcurscale/internal/scale"
	"xcurscale/pkg/xcursor"
)

func encodeTestCursor(t *testing.T) []byte {
	t.Helper()

	doc := &xcursor.File{
		Entries: []xcursor.Entry{
			{
				Type:    xcursor.ChunkImage,
				Subtype: 24,
				Image: &xcursor.Image{
					Width:  2,
					Height: 2,
					XHot:   1,
					YHot:   1,
					Delay:  33,
					Pixels: []uint32{0xFF000001, 0xFF000002, 0xFF000003, 0xFF000004},
				},
			},
			{
				Type:    xcursor.ChunkComment,
				Subtype: 3,
				Opaque:  []byte{1, 2, 3, 4, 5, 6, 7, 8},
			},
		},
	}
	raw, err := xcursor.Encode(doc)
	if err != nil {
		t.Fatalf("encode test cursor: %v", err)
	}
	return raw
}

func TestConvertFactorOneIsByteIdentical(t *testing.T) {
	t.Parallel()

	raw := encodeTestCursor(t)
	out, err := Convert(raw, 1)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !bytes.Equal(raw, out) {
		t.Fatalf("factor 1 conversion altered the file")
	}
}

func TestConvertScalesImagesAndKeepsOpaque(t *testing.T) {
	t.Parallel()

	raw := encodeTestCursor(t)
	out, err := Convert(raw, 3)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	doc, err := xcursor.Decode(out)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}

	img := doc.Entries[0].Image
	if img.Width != 6 || img.Height != 6 || img.XHot != 3 || img.YHot != 3 {
		t.Fatalf("geometry: %dx%d hot=(%d,%d)", img.Width, img.Height, img.XHot, img.YHot)
	}
	if img.Delay != 33 {
		t.Fatalf("delay changed to %d", img.Delay)
	}
	if doc.Entries[0].Subtype != 24 {
		t.Fatalf("subtype changed to %d", doc.Entries[0].Subtype)
	}
	if !bytes.Equal(doc.Entries[1].Opaque, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("opaque chunk not carried through")
	}
}

func TestConvertPropagatesErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		data   []byte
		factor uint32
		want   error
	}{
		{"not a cursor", []byte("PNG\r\n"), 2, xcursor.ErrNotXcursor},
		{"zero factor", nil, 0, xcursor.ErrNotXcursor}, // decode fails first on bad input
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Convert(tc.data, tc.factor); !errors.Is(err, tc.want) {
				t.Fatalf("got error %v, want %v", err, tc.want)
			}
		})
	}

	// A valid container with a zero factor must surface the scaler's error.
	raw := encodeTestCursor(t)
	if _, err := Convert(raw, 0); !errors.Is(err, scale.ErrInvalidFactor) {
		t.Fatalf("got error %v, want %v", err, scale.ErrInvalidFactor)
	}
}

package xcursor

import (
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"golang.org/x/sys/unix"
)

// Decode parses a complete Xcursor file held in memory.
//
// Decode is a pure function over the buffer: everything it keeps is copied
// out, so the returned document never aliases data and the caller may reuse
// or unmap the buffer immediately.
func Decode(data []byte) (*File, error) {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return nil, ErrNotXcursor
	}
	if len(data) < fileHeaderSize {
		return nil, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}

	headerSize := binary.LittleEndian.Uint32(data[4:8])
	version := binary.LittleEndian.Uint32(data[8:12])
	ntoc := binary.LittleEndian.Uint32(data[12:16])

	if headerSize < fileHeaderSize {
		return nil, fmt.Errorf("%w: header size %d", ErrNotXcursor, headerSize)
	}
	if version>>16 != fileMajor {
		return nil, fmt.Errorf("%w: 0x%08x", ErrUnsupportedVersion, version)
	}

	tocStart := uint64(headerSize)
	tocEnd := tocStart + uint64(ntoc)*tocEntrySize
	if tocEnd > uint64(len(data)) {
		return nil, fmt.Errorf("%w: table of contents with %d entries", ErrTruncated, ntoc)
	}

	type tocEntry struct {
		typ      uint32
		subtype  uint32
		position uint32
	}
	toc := make([]tocEntry, ntoc)
	for i := range toc {
		off := int(tocStart) + i*tocEntrySize
		toc[i] = tocEntry{
			typ:      binary.LittleEndian.Uint32(data[off:]),
			subtype:  binary.LittleEndian.Uint32(data[off+4:]),
			position: binary.LittleEndian.Uint32(data[off+8:]),
		}
	}

	// Chunk extents are implied rather than declared: a chunk runs from its
	// own position to the smallest position declared after it, or to the end
	// of the file for the physically last chunk.
	starts := make([]uint32, len(toc))
	for i := range toc {
		starts[i] = toc[i].position
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i] < starts[j] })

	f := &File{Version: version, Entries: make([]Entry, len(toc))}
	for i := range toc {
		e := toc[i]
		if uint64(e.position) < tocEnd {
			return nil, fmt.Errorf("%w: entry %d position %d overlaps header", ErrChunkMismatch, i, e.position)
		}
		if uint64(e.position) > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d position %d out of range", ErrTruncated, i, e.position)
		}

		ent := Entry{Type: e.typ, Subtype: e.subtype}
		if e.typ == ChunkImage {
			img, err := decodeImage(data, i, e.typ, e.subtype, e.position)
			if err != nil {
				return nil, err
			}
			ent.Image = img
		} else {
			end := uint32(len(data))
			next := sort.Search(len(starts), func(k int) bool { return starts[k] > e.position })
			if next < len(starts) {
				end = starts[next]
			}
			ent.Opaque = append([]byte(nil), data[e.position:end]...)
		}
		f.Entries[i] = ent
	}
	return f, nil
}

func decodeImage(data []byte, idx int, typ, subtype, pos uint32) (*Image, error) {
	if uint64(pos)+imageHeaderSize > uint64(len(data)) {
		return nil, fmt.Errorf("%w: image chunk header at %d", ErrTruncated, pos)
	}
	h := data[pos:]
	chunkHeader := binary.LittleEndian.Uint32(h[0:4])
	chunkType := binary.LittleEndian.Uint32(h[4:8])
	chunkSubtype := binary.LittleEndian.Uint32(h[8:12])
	chunkVersion := binary.LittleEndian.Uint32(h[12:16])
	width := binary.LittleEndian.Uint32(h[16:20])
	height := binary.LittleEndian.Uint32(h[20:24])
	xhot := binary.LittleEndian.Uint32(h[24:28])
	yhot := binary.LittleEndian.Uint32(h[28:32])
	delay := binary.LittleEndian.Uint32(h[32:36])

	switch {
	case chunkHeader != imageHeaderSize:
		return nil, fmt.Errorf("%w: entry %d declares header size %d", ErrChunkMismatch, idx, chunkHeader)
	case chunkType != typ:
		return nil, fmt.Errorf("%w: entry %d type 0x%08x vs chunk type 0x%08x", ErrChunkMismatch, idx, typ, chunkType)
	case chunkSubtype != subtype:
		return nil, fmt.Errorf("%w: entry %d subtype %d vs chunk subtype %d", ErrChunkMismatch, idx, subtype, chunkSubtype)
	case chunkVersion != imageChunkVersion:
		return nil, fmt.Errorf("%w: entry %d image chunk version %d", ErrChunkMismatch, idx, chunkVersion)
	case width == 0 || height == 0 || width > MaxDimension || height > MaxDimension:
		return nil, fmt.Errorf("%w: entry %d dimensions %dx%d", ErrChunkMismatch, idx, width, height)
	case xhot >= width || yhot >= height:
		return nil, fmt.Errorf("%w: entry %d hotspot (%d,%d) outside %dx%d", ErrChunkMismatch, idx, xhot, yhot, width, height)
	}

	count := uint64(width) * uint64(height)
	pixStart := uint64(pos) + imageHeaderSize
	if pixStart+count*bytesPerPixel > uint64(len(data)) {
		return nil, fmt.Errorf("%w: entry %d pixel data (%dx%d)", ErrTruncated, idx, width, height)
	}

	pixels := make([]uint32, count)
	for i := range pixels {
		off := int(pixStart) + i*bytesPerPixel
		pixels[i] = binary.LittleEndian.Uint32(data[off : off+bytesPerPixel])
	}

	return &Image{
		Width:  width,
		Height: height,
		XHot:   xhot,
		YHot:   yhot,
		Delay:  delay,
		Pixels: pixels,
	}, nil
}

// Open reads and decodes the Xcursor file at path.
// Where available the file is mapped read-only for the duration of the
// parse; the mapping is released before Open returns, so the document is
// always self-contained. If mmap is unavailable Open falls back to a plain
// read.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := stat.Size()
	if size > int64(int(^uint(0)>>1)) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, size)
	}
	if size == 0 {
		return nil, ErrNotXcursor
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		doc, derr := Decode(data)
		_ = unix.Munmap(data)
		return doc, derr
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(buf)
}

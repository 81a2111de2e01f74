// xcurinspect dumps the structure of an Xcursor container: header fields,
// table of contents and per-image geometry, optionally as JSON or with every
// frame exported to PNG.
package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"xcurscale/pkg/xcursor"
)

var (
	asJSON bool
	pngDir string
)

func main() {
	app := &cli.Command{
		Name:      "xcurinspect",
		Usage:     "Inspect the contents of an Xcursor container",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "dump the parsed document as JSON",
				Destination: &asJSON,
			},
			&cli.StringFlag{
				Name:        "png-dir",
				Usage:       "export every image chunk as a PNG into this directory",
				Destination: &pngDir,
			},
		},
		Action: runInspect,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runInspect(ctx context.Context, c *cli.Command) error {
	_ = ctx

	if c.Args().Len() != 1 {
		return cli.Exit("usage: xcurinspect [--json] [--png-dir DIR] FILE", 2)
	}
	path := c.Args().First()

	doc, err := xcursor.Open(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("error: open cursor: %v", err), 1)
	}

	if asJSON {
		if err := printJSON(path, doc); err != nil {
			return cli.Exit(fmt.Sprintf("error: %v", err), 1)
		}
	} else {
		printSummary(path, doc)
	}

	if pngDir != "" {
		if err := exportPNGs(pngDir, path, doc); err != nil {
			return cli.Exit(fmt.Sprintf("error: export png: %v", err), 1)
		}
	}
	return nil
}

type imageJSON struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	XHot   uint32 `json:"xhot"`
	YHot   uint32 `json:"yhot"`
	Delay  uint32 `json:"delay"`
}

type entryJSON struct {
	Kind        string     `json:"kind"`
	Type        uint32     `json:"type"`
	Subtype     uint32     `json:"subtype"`
	Image       *imageJSON `json:"image,omitempty"`
	OpaqueBytes int        `json:"opaque_bytes,omitempty"`
}

type docJSON struct {
	File    string      `json:"file"`
	Version uint32      `json:"version"`
	Entries []entryJSON `json:"entries"`
}

func printJSON(path string, doc *xcursor.File) error {
	out := docJSON{
		File:    path,
		Version: doc.Version,
		Entries: make([]entryJSON, len(doc.Entries)),
	}
	for i := range doc.Entries {
		e := &doc.Entries[i]
		ej := entryJSON{
			Kind:    kindName(e.Type),
			Type:    e.Type,
			Subtype: e.Subtype,
		}
		if e.IsImage() {
			ej.Image = &imageJSON{
				Width:  e.Image.Width,
				Height: e.Image.Height,
				XHot:   e.Image.XHot,
				YHot:   e.Image.YHot,
				Delay:  e.Image.Delay,
			}
		} else {
			ej.OpaqueBytes = len(e.Opaque)
		}
		out.Entries[i] = ej
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSummary(path string, doc *xcursor.File) {
	fmt.Printf("File: %s\n", path)
	fmt.Printf("Xcursor v%d.%d | entries=%d\n", doc.Version>>16, doc.Version&0xFFFF, len(doc.Entries))
	fmt.Println()

	for i := range doc.Entries {
		e := &doc.Entries[i]
		if e.IsImage() {
			fmt.Printf("  [%3d] %-7s size=%-4d %4dx%-4d hot=(%d,%d) delay=%dms\n",
				i, kindName(e.Type), e.Subtype,
				e.Image.Width, e.Image.Height, e.Image.XHot, e.Image.YHot, e.Image.Delay)
		} else {
			fmt.Printf("  [%3d] %-7s subtype=%-4d %d bytes (type 0x%08x)\n",
				i, kindName(e.Type), e.Subtype, len(e.Opaque), e.Type)
		}
	}
}

func kindName(typ uint32) string {
	switch typ {
	case xcursor.ChunkImage:
		return "image"
	case xcursor.ChunkComment:
		return "comment"
	default:
		return "unknown"
	}
}

// exportPNGs writes each image chunk to dir. Xcursor pixels are
// alpha-premultiplied ARGB, which maps directly onto image.RGBA samples.
func exportPNGs(dir, path string, doc *xcursor.File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := filepath.Base(path)

	for i := range doc.Entries {
		e := &doc.Entries[i]
		if !e.IsImage() {
			continue
		}
		img := image.NewRGBA(image.Rect(0, 0, int(e.Image.Width), int(e.Image.Height)))
		for p, px := range e.Image.Pixels {
			img.Pix[p*4+0] = uint8(px >> 16)
			img.Pix[p*4+1] = uint8(px >> 8)
			img.Pix[p*4+2] = uint8(px)
			img.Pix[p*4+3] = uint8(px >> 24)
		}

		name := fmt.Sprintf("%s-%03d-%d.png", base, i, e.Subtype)
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", filepath.Join(dir, name))
	}
	return nil
}

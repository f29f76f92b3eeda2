package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/sync/errgroup"

	"github.com/kraitsura/lelscale/pkg/logging"
	"github.com/kraitsura/lelscale/pkg/reading"
)

// SnapshotOptions configures a snapshot file.
type SnapshotOptions struct {
	Path    string
	Format  string // "svg" or "png"; inferred from Path when empty
	Reading reading.Reading
}

// SaveScaleSnapshot writes the reading to opts.Path in the requested format.
func SaveScaleSnapshot(opts SnapshotOptions) error {
	format := strings.ToLower(opts.Format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.Path)), ".")
	}

	var write func(io.Writer, reading.Reading) error
	switch format {
	case "svg":
		write = WriteSVG
	case "png":
		write = WritePNG
	default:
		return fmt.Errorf("unsupported snapshot format %q (want svg or png)", format)
	}

	f, err := os.Create(opts.Path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := write(bw, opts.Reading); err != nil {
		f.Close()
		return fmt.Errorf("failed to render %s snapshot: %w", format, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	logging.Infow("snapshot written", "path", opts.Path, "format", format, "gas", opts.Reading.Gas.ID)
	return nil
}

// ExportFiles writes an SVG and/or PNG snapshot concurrently. Empty paths are skipped.
func ExportFiles(ctx context.Context, r reading.Reading, svgPath, pngPath string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range []struct{ path, format string }{{svgPath, "svg"}, {pngPath, "png"}} {
		if p.path == "" {
			continue
		}
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return SaveScaleSnapshot(SnapshotOptions{Path: p.path, Format: p.format, Reading: r})
		})
	}
	return g.Wait()
}

// WriteSVG renders the reading as an SVG document.
func WriteSVG(w io.Writer, r reading.Reading) error {
	l := buildLayout(r)
	canvas := svg.New(w)
	canvas.Start(canvasWidth, canvasHeight)
	canvas.Title(l.Title)

	for _, rc := range l.Rects {
		canvas.Rect(px(rc.X), px(rc.Y), px(rc.W), px(rc.H), "fill:"+rc.Fill)
	}
	for _, ln := range l.Lines {
		canvas.Line(px(ln.X1), px(ln.Y1), px(ln.X2), px(ln.Y2),
			fmt.Sprintf("stroke:%s;stroke-width:%g", ln.Stroke, ln.Width))
	}
	for _, lb := range l.Labels {
		style := fmt.Sprintf("fill:%s;font-size:%dpx;font-family:monospace", lb.Fill, lb.Size)
		if lb.Center {
			style += ";text-anchor:middle"
		}
		canvas.Text(px(lb.X), px(lb.Y), lb.Text, style)
	}

	canvas.End()
	return nil
}

// WritePNG rasterizes the reading. The basic bitmap font has no glyphs for
// emoji or subscripts; those render as boxes.
func WritePNG(w io.Writer, r reading.Reading) error {
	l := buildLayout(r)
	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetFontFace(basicfont.Face7x13)

	for _, rc := range l.Rects {
		dc.SetColor(hexColor(rc.Fill))
		dc.DrawRectangle(rc.X, rc.Y, rc.W, rc.H)
		dc.Fill()
	}
	for _, ln := range l.Lines {
		dc.SetColor(hexColor(ln.Stroke))
		dc.SetLineWidth(ln.Width)
		dc.DrawLine(ln.X1, ln.Y1, ln.X2, ln.Y2)
		dc.Stroke()
	}
	for _, lb := range l.Labels {
		dc.SetColor(hexColor(lb.Fill))
		ax := 0.0
		if lb.Center {
			ax = 0.5
		}
		dc.DrawStringAnchored(lb.Text, lb.X, lb.Y, ax, 0)
	}

	return dc.EncodePNG(w)
}

func px(v float64) int {
	return int(math.Round(v))
}

// Package svg provides the SVG 1.1 document backend for the recording
// system. It is registered as "svg".
//
// The document has a root element sized twice the body radius with a
// matching viewBox, a title, a defs block holding every gradient in
// user-space coordinates, and one path element per filled shape:
//
//	<svg width="64" height="64" viewBox="0 0 64 64" version="1.1" ...>
//	<title>Robot</title>
//	<defs>
//	<linearGradient id="grad0" x1="32" y1="..." x2="32" y2="..." gradientUnits="userSpaceOnUse">
//	...
//	</defs>
//	<path d="M ... l ..." fill="url(#grad0)" fill-opacity="1" id="thruster0" />
//	...
//	</svg>
package svg

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"os"

	svgo "github.com/ajstarks/svgo"

	"github.com/fedorabots/emblem"
	"github.com/fedorabots/emblem/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend serializes recordings as SVG documents.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	width, height float64
	title         string
	gradients     []emblem.Gradient
	defined       map[string]bool
	shapes        []emblem.Shape

	buf   bytes.Buffer
	begun bool
	ended bool
}

// Ensure Backend implements all required interfaces.
var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin implements recording.Backend.
func (b *Backend) Begin(width, height float64) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("svg: invalid document size %vx%v", width, height)
	}
	*b = Backend{
		width:   width,
		height:  height,
		defined: make(map[string]bool),
		begun:   true,
	}
	return nil
}

// SetTitle implements recording.Backend.
func (b *Backend) SetTitle(title string) {
	b.title = title
}

// DefineGradient implements recording.Backend.
func (b *Backend) DefineGradient(g emblem.Gradient) error {
	if !b.begun {
		return recording.ErrNotBegun
	}
	switch g.(type) {
	case emblem.LinearGradient, emblem.RadialGradient:
	default:
		return fmt.Errorf("svg: unsupported gradient %T", g)
	}
	b.gradients = append(b.gradients, g)
	b.defined[g.GradientID()] = true
	return nil
}

// FillShape implements recording.Backend.
func (b *Backend) FillShape(s emblem.Shape) error {
	if !b.begun {
		return recording.ErrNotBegun
	}
	if gf, ok := s.Fill.(emblem.GradientFill); ok && !b.defined[gf.ID] {
		return fmt.Errorf("svg: %w %q", recording.ErrUnknownGradient, gf.ID)
	}
	b.shapes = append(b.shapes, s)
	return nil
}

// End implements recording.Backend. It writes the whole document.
func (b *Backend) End() error {
	if !b.begun {
		return recording.ErrNotBegun
	}
	b.buf.Reset()
	canvas := svgo.New(&b.buf)

	w, h := emblem.FormatNumber(b.width), emblem.FormatNumber(b.height)
	canvas.Startraw(
		" "+attr("width", w),
		attr("height", h),
		attr("viewBox", "0 0 "+w+" "+h),
		attr("version", "1.1"),
	)
	if b.title != "" {
		canvas.Title(b.title)
	}

	canvas.Def()
	for _, g := range b.gradients {
		writeGradient(canvas.Writer, g)
	}
	canvas.DefEnd()

	for _, s := range b.shapes {
		params := []string{
			attr("fill", s.Fill.Paint()),
			attr("fill-opacity", emblem.FormatNumber(s.Opacity)),
		}
		if s.ID != "" {
			params = append(params, attr("id", s.ID))
		}
		canvas.Path(s.Path.Data(), params...)
	}
	canvas.End()

	b.ended = true
	emblem.Logger().Debug("svg: document written",
		"bytes", b.buf.Len(), "gradients", len(b.gradients), "paths", len(b.shapes))
	return nil
}

// Bytes returns the document. Only valid after End.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo implements recording.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.ended {
		return 0, recording.ErrNotBegun
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile implements recording.FileBackend.
func (b *Backend) SaveToFile(path string) error {
	if !b.ended {
		return recording.ErrNotBegun
	}
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func writeGradient(w io.Writer, g emblem.Gradient) {
	switch g := g.(type) {
	case emblem.LinearGradient:
		fmt.Fprintf(w, "<linearGradient %s %s %s %s %s %s>\n",
			attr("id", g.ID),
			attr("x1", emblem.FormatNumber(g.Start.X)),
			attr("y1", emblem.FormatNumber(g.Start.Y)),
			attr("x2", emblem.FormatNumber(g.End.X)),
			attr("y2", emblem.FormatNumber(g.End.Y)),
			attr("gradientUnits", "userSpaceOnUse"))
		writeStops(w, g.Stops)
		fmt.Fprintln(w, "</linearGradient>")
	case emblem.RadialGradient:
		fmt.Fprintf(w, "<radialGradient %s %s %s %s %s>\n",
			attr("id", g.ID),
			attr("cx", emblem.FormatNumber(g.Center.X)),
			attr("cy", emblem.FormatNumber(g.Center.Y)),
			attr("r", emblem.FormatNumber(g.Radius)),
			attr("gradientUnits", "userSpaceOnUse"))
		writeStops(w, g.Stops)
		fmt.Fprintln(w, "</radialGradient>")
	}
}

func writeStops(w io.Writer, stops []emblem.ColorStop) {
	for _, s := range stops {
		opacity := ""
		if s.Opacity != 1 {
			opacity = " " + attr("stop-opacity", emblem.FormatNumber(s.Opacity))
		}
		fmt.Fprintf(w, "<stop %s %s%s/>\n",
			attr("offset", emblem.FormatNumber(s.Offset*100)+"%"),
			attr("stop-color", s.Color),
			opacity)
	}
}

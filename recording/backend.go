package recording

import (
	"errors"
	"io"

	"github.com/fedorabots/emblem"
)

// Errors shared by backends.
var (
	// ErrNotBegun is returned when a backend is used before Begin or
	// written before End.
	ErrNotBegun = errors.New("recording: backend not begun")

	// ErrUnknownGradient is returned when a fill references a gradient that
	// was never defined.
	ErrUnknownGradient = errors.New("recording: unknown gradient")
)

// Backend is the interface that all output backends must implement.
// Backends receive the emblem's commands in order and translate them to
// their output format.
//
// # Implementation Contract
//
// Each backend must:
//  1. Register in init() using recording.Register()
//  2. Accept DefineGradient for every gradient before any fill uses it
//  3. Paint fills in call order, later fills on top
type Backend interface {
	// Begin initializes the backend for a document of the given size in
	// user units.
	Begin(width, height float64) error

	// SetTitle sets the document title. Backends without a title may ignore it.
	SetTitle(title string)

	// DefineGradient makes a gradient available to later fills.
	DefineGradient(g emblem.Gradient) error

	// FillShape fills a shape's path with its paint and opacity.
	FillShape(s emblem.Shape) error

	// End finalizes rendering. After End, output methods can be used.
	End() error
}

// WriterBackend extends Backend with the ability to write output to an io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content. Only valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output directly to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content. Only valid after End.
	SaveToFile(path string) error
}

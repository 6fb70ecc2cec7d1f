package recording

import (
	"fmt"
	"log/slog"

	"github.com/fedorabots/emblem"
)

// Recording is an emblem captured as commands: every gradient definition
// first, then every fill in paint order.
type Recording struct {
	width    float64
	height   float64
	title    string
	commands []Command
}

// FromEmblem records a generated emblem.
func FromEmblem(e *emblem.Emblem) *Recording {
	r := &Recording{
		width:    e.Width,
		height:   e.Height,
		title:    e.Title,
		commands: make([]Command, 0, 2*len(e.Gradients)+len(e.Shapes)),
	}
	for _, spec := range e.Gradients {
		for _, g := range spec.Gradients() {
			r.commands = append(r.commands, DefineGradientCommand{Gradient: g})
		}
	}
	for _, s := range e.Shapes {
		r.commands = append(r.commands, FillShapeCommand{Shape: s})
	}
	return r
}

// Size returns the document size in user units.
func (r *Recording) Size() (width, height float64) {
	return r.width, r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording to a backend, from Begin through End.
// The first error stops playback and is returned.
func (r *Recording) Playback(b Backend) error {
	log := emblem.Logger()
	if err := b.Begin(r.width, r.height); err != nil {
		return fmt.Errorf("recording: begin: %w", err)
	}
	b.SetTitle(r.title)

	for i, cmd := range r.commands {
		var err error
		switch c := cmd.(type) {
		case DefineGradientCommand:
			err = b.DefineGradient(c.Gradient)
		case FillShapeCommand:
			err = b.FillShape(c.Shape)
		default:
			err = fmt.Errorf("unsupported command %v", cmd.Type())
		}
		if err != nil {
			return fmt.Errorf("recording: command %d (%v): %w", i, cmd.Type(), err)
		}
	}

	if err := b.End(); err != nil {
		return fmt.Errorf("recording: end: %w", err)
	}
	log.Debug("recording: playback done",
		slog.Int("commands", len(r.commands)),
		slog.String("backend", fmt.Sprintf("%T", b)),
	)
	return nil
}

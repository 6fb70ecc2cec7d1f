package emblem

import (
	"log/slog"
	"strconv"
)

// Emblem is the generated image: gradient definitions and shapes in paint
// order (later shapes are drawn on top). It is not modified after Generate
// returns it.
type Emblem struct {
	Width     float64
	Height    float64
	Title     string
	Gradients []GradientSpec
	Shapes    []Shape
}

// Generate validates cfg and builds the emblem. Shapes are ordered thrusters
// first, then the engine silhouette, then the body.
func Generate(cfg Config) (*Emblem, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := Logger()
	w, h := cfg.Size()
	e := &Emblem{
		Width:     w,
		Height:    h,
		Title:     cfg.Title,
		Gradients: make([]GradientSpec, cfg.Engines()),
		Shapes:    make([]Shape, 0, 2*cfg.Engines()+2),
	}

	for i, quad := range ThrusterQuads(cfg) {
		e.Gradients[i] = GradientAnchors(cfg, i)
		id := "thruster" + strconv.Itoa(i)
		e.Shapes = append(e.Shapes,
			Shape{
				Path:    quad,
				Fill:    GradientFill{ID: LinearGradientID(i)},
				Opacity: cfg.Palette.ExhaustOpacity,
				ID:      id,
			},
			Shape{
				Path:    quad,
				Fill:    GradientFill{ID: RadialGradientID(i)},
				Opacity: cfg.Palette.ExhaustOpacity,
				ID:      id + "-radial",
			},
		)
	}

	engines := EngineSilhouette(cfg)
	body := BodyOutline(cfg)
	e.Shapes = append(e.Shapes,
		Shape{
			Path:    engines,
			Fill:    SolidFill{Color: cfg.Palette.Engine},
			Opacity: cfg.Palette.EngineOpacity,
		},
		Shape{
			Path:    body,
			Fill:    SolidFill{Color: cfg.Palette.Body},
			Opacity: cfg.Palette.BodyOpacity,
			ID:      "body",
		},
	)

	log.Debug("emblem: generated",
		slog.Int("engines", cfg.Engines()),
		slog.Int("shapes", len(e.Shapes)),
		slog.Int("engine_segments", engines.Len()),
		slog.Int("body_segments", body.Len()),
		slog.Float64("width", w),
		slog.Float64("height", h),
	)
	return e, nil
}

// Shape returns the shape with the given ID, or false if there is none.
func (e *Emblem) Shape(id string) (Shape, bool) {
	for _, s := range e.Shapes {
		if s.ID != "" && s.ID == id {
			return s, true
		}
	}
	return Shape{}, false
}

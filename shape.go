package emblem

// Fill is the paint of a shape. This is a sealed interface: only SolidFill
// and GradientFill implement it.
type Fill interface {
	// Paint returns the SVG fill attribute value.
	Paint() string

	fillMarker()
}

// SolidFill paints with a single colour.
type SolidFill struct {
	Color string
}

func (SolidFill) fillMarker() {}

// Paint implements Fill.
func (f SolidFill) Paint() string { return f.Color }

// GradientFill paints with a gradient defined elsewhere in the document.
type GradientFill struct {
	ID string
}

func (GradientFill) fillMarker() {}

// Paint implements Fill.
func (f GradientFill) Paint() string { return "url(#" + f.ID + ")" }

// Shape is a filled path. ID is optional and used as a hook for external
// styling.
type Shape struct {
	Path    *Path
	Fill    Fill
	Opacity float64
	ID      string
}

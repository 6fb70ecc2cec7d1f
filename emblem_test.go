package emblem

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGeneratePaintOrder(t *testing.T) {
	e, err := Generate(DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if e.Width != 64 || e.Height != 64 || e.Title != "Robot" {
		t.Errorf("document = %vx%v %q", e.Width, e.Height, e.Title)
	}

	var ids, paints []string
	for _, s := range e.Shapes {
		ids = append(ids, s.ID)
		paints = append(paints, s.Fill.Paint())
	}
	wantIDs := []string{
		"thruster0", "thruster0-radial",
		"thruster1", "thruster1-radial",
		"thruster2", "thruster2-radial",
		"", "body",
	}
	if diff := cmp.Diff(wantIDs, ids); diff != "" {
		t.Errorf("shape ids (-want +got):\n%s", diff)
	}
	wantPaints := []string{
		"url(#grad0)", "url(#gradr0)",
		"url(#grad1)", "url(#gradr1)",
		"url(#grad2)", "url(#gradr2)",
		"#333", "#CCC",
	}
	if diff := cmp.Diff(wantPaints, paints); diff != "" {
		t.Errorf("shape paints (-want +got):\n%s", diff)
	}

	engines := e.Shapes[6]
	if engines.Opacity != 0.7 {
		t.Errorf("engine opacity = %v, want 0.7", engines.Opacity)
	}
	if len(e.Gradients) != 3 {
		t.Fatalf("got %d gradient specs, want 3", len(e.Gradients))
	}
	for i, g := range e.Gradients {
		if g.Engine != i || len(g.Gradients()) != 2 {
			t.Errorf("gradient spec %d = %+v", i, g)
		}
	}
}

func TestGenerateSharesQuadBetweenFills(t *testing.T) {
	e, err := Generate(DefaultConfig())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lin, ok1 := e.Shape("thruster1")
	rad, ok2 := e.Shape("thruster1-radial")
	if !ok1 || !ok2 {
		t.Fatal("thruster1 shapes missing")
	}
	if lin.Path.Data() != rad.Path.Data() {
		t.Error("linear and radial thruster fills should use the same quad")
	}
	if _, ok := e.Shape(""); ok {
		t.Error("Shape(\"\") should not match the unnamed silhouette")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, _ := Generate(DefaultConfig())
	b, _ := Generate(DefaultConfig())
	for i := range a.Shapes {
		if a.Shapes[i].Path.Data() != b.Shapes[i].Path.Data() {
			t.Errorf("shape %d differs between runs", i)
		}
	}
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Widths = append(cfg.Widths, 10)
	e, err := Generate(cfg)
	if !errors.Is(err, ErrMismatchedEngines) {
		t.Errorf("Generate error = %v, want ErrMismatchedEngines", err)
	}
	if e != nil {
		t.Error("Generate should not return an emblem on error")
	}
}

func TestFillPaint(t *testing.T) {
	if got := (GradientFill{ID: "gradr2"}).Paint(); got != "url(#gradr2)" {
		t.Errorf("GradientFill.Paint() = %q", got)
	}
	if got := (SolidFill{Color: "#333"}).Paint(); got != "#333" {
		t.Errorf("SolidFill.Paint() = %q", got)
	}
}

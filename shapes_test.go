package emblem

import (
	"math"
	"testing"
)

// variantConfigs are valid layouts exercised by the shape tests.
func variantConfigs() map[string]Config {
	ref := DefaultConfig()

	single := DefaultConfig()
	single.Rotations, single.Widths = []float64{270}, []float64{60}

	four := DefaultConfig()
	four.Rotations, four.Widths = []float64{45, 135, 225, 315}, []float64{30, 30, 30, 30}

	wide := DefaultConfig()
	wide.Rotations, wide.Widths = []float64{0, 120}, []float64{20, 20}

	return map[string]Config{"reference": ref, "single": single, "four": four, "wide gap": wide}
}

func TestBodyOutlineReference(t *testing.T) {
	body := BodyOutline(DefaultConfig())

	segs := body.Segments()
	if len(segs) != 1+3*4 {
		t.Fatalf("got %d segments, want 13", len(segs))
	}
	if segs[0].Cmd != CmdMove || !segs[0].Absolute {
		t.Fatalf("body must open with an absolute move, got %+v", segs[0])
	}
	if got := body.Count(CmdArc); got != 3 {
		t.Errorf("got %d arcs, want 3", got)
	}
	notches := 0
	for i := 1; i < len(segs); i += 4 {
		if segs[i].Cmd != CmdArc || segs[i+1].Cmd != CmdLine || segs[i+2].Cmd != CmdLine || segs[i+3].Cmd != CmdLine {
			t.Errorf("engine stretch at %d is not arc, in, notch, out", i)
		}
		notches++
	}
	if notches != 3 {
		t.Errorf("got %d notches, want 3", notches)
	}

	// First rim arc runs from 327.5 through 0 to 70: small, counter-clockwise on screen.
	first := segs[1]
	if first.LargeArc || first.Sweep {
		t.Errorf("first arc flags = large %v sweep %v, want false false", first.LargeArc, first.Sweep)
	}
	start := Pt(32, 32).Add(Polar(32, 327.5))
	if !pointsEqual(body.StartPoint(), start, eps) {
		t.Errorf("start = %v, want %v", body.StartPoint(), start)
	}
}

func TestBodyOutlineCloses(t *testing.T) {
	for name, cfg := range variantConfigs() {
		t.Run(name, func(t *testing.T) {
			body := BodyOutline(cfg)
			if !pointsEqual(body.CurrentPoint(), body.StartPoint(), 1e-9) {
				t.Errorf("outline ends at %v, started at %v", body.CurrentPoint(), body.StartPoint())
			}

			// Re-trace the serialized (rounded) displacements.
			segs := body.Segments()
			cur := segs[0].Point.Round()
			for _, s := range segs[1:] {
				cur = cur.Add(s.Point.Round())
			}
			if !pointsEqual(cur, segs[0].Point.Round(), 1e-9) {
				t.Errorf("rounded trace ends at %v, started at %v", cur, segs[0].Point)
			}

			n := cfg.Engines()
			final, _ := foldBody(cfg, bodyStep{boundary: cfg.bayEnd(n - 1)})
			if Span(final.boundary, cfg.bayEnd(n-1)) != 0 {
				t.Errorf("final boundary %v != start %v mod 360", final.boundary, cfg.bayEnd(n-1))
			}
		})
	}
}

func TestBodyOutlineLargeArc(t *testing.T) {
	cfg := variantConfigs()["wide gap"]
	// Bays [-14, 14] and [106, 134]: rim gaps of 212 and 92 degrees.
	body := BodyOutline(cfg)
	var flags []bool
	for _, s := range body.Segments() {
		if s.Cmd == CmdArc {
			flags = append(flags, s.LargeArc)
		}
	}
	if len(flags) != 2 || !flags[0] || flags[1] {
		t.Errorf("large-arc flags = %v, want [true false]", flags)
	}
}

func TestBodyArcsStayOnRim(t *testing.T) {
	cfg := DefaultConfig()
	c := cfg.Center()
	BodyOutline(cfg).Walk(func(s Segment, from, to Point) {
		if s.Cmd != CmdArc {
			return
		}
		for _, p := range []Point{from, to} {
			if d := p.Distance(c); !almostEqual(d, cfg.Radius, 1e-9) {
				t.Errorf("arc end %v is %v from centre, want %v", p, d, cfg.Radius)
			}
		}
	})
}

func TestEngineSilhouette(t *testing.T) {
	for name, cfg := range variantConfigs() {
		t.Run(name, func(t *testing.T) {
			p := EngineSilhouette(cfg)
			n := cfg.Engines()
			if p.Count(CmdMove) != 1 || p.Count(CmdLine) != 3*n {
				t.Fatalf("got %d moves and %d lines, want 1 and %d",
					p.Count(CmdMove), p.Count(CmdLine), 3*n)
			}
			if !pointsEqual(p.CurrentPoint(), cfg.Center(), 1e-9) {
				t.Errorf("silhouette ends at %v, want centre", p.CurrentPoint())
			}

			// Every wedge tip sits on the outer radius at the engine edges.
			segs := p.Segments()
			for i := range n {
				tip := segs[1+3*i].Point
				want := Polar(cfg.OuterRadius, cfg.Rotations[i]-cfg.Widths[i]/2)
				if !pointsEqual(tip, want, 1e-9) {
					t.Errorf("wedge %d tip %v, want %v", i, tip, want)
				}
			}
		})
	}
}

func TestThrustRadiusLawOfSines(t *testing.T) {
	// Engine of width 32, inset 4: base angle 74, opposite angle 102.
	got := thrustRadius(38.4, 32, 4)
	want := 38.4 / math.Sin(102*math.Pi/180) * math.Sin(74*math.Pi/180)
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("thrustRadius = %v, want %v", got, want)
	}
	if got >= 38.4 {
		t.Errorf("inset edges should meet inside the outer radius, got %v", got)
	}
	if a := thrustEngineAngle(32, 4); a != 102 {
		t.Errorf("thrustEngineAngle = %v, want 102", a)
	}
}

func TestThrusterQuads(t *testing.T) {
	for name, cfg := range variantConfigs() {
		t.Run(name, func(t *testing.T) {
			quads := ThrusterQuads(cfg)
			if len(quads) != cfg.Engines() {
				t.Fatalf("got %d quads, want %d", len(quads), cfg.Engines())
			}
			c := cfg.Center()
			for i, q := range quads {
				if q.Count(CmdMove) != 1 || q.Count(CmdLine) != 4 {
					t.Errorf("quad %d: %d moves, %d lines", i, q.Count(CmdMove), q.Count(CmdLine))
				}
				if q.CurrentPoint() != q.StartPoint() {
					t.Errorf("quad %d is not closed", i)
				}

				segs := q.Segments()
				rot, w := cfg.Rotations[i], cfg.Widths[i]
				r := thrustRadius(cfg.OuterRadius, w, cfg.ThrustPad)
				near1, near2 := segs[0].Point, segs[1].Point
				if !pointsEqual(near1, c.Add(Polar(r, rot+w/2-cfg.ThrustPad)), 1e-9) ||
					!pointsEqual(near2, c.Add(Polar(r, rot-w/2+cfg.ThrustPad)), 1e-9) {
					t.Errorf("quad %d near vertices off the thrust radius", i)
				}
				far2, far1 := segs[2].Point, segs[3].Point
				push := Polar(cfg.EngineHeight, rot)
				if !pointsEqual(far2.Sub(near2), push, 1e-9) || !pointsEqual(far1.Sub(near1), push, 1e-9) {
					t.Errorf("quad %d far vertices not pushed along the engine axis", i)
				}
			}
		})
	}
}

func TestGradientAnchorsInsideThrusterSector(t *testing.T) {
	for name, cfg := range variantConfigs() {
		t.Run(name, func(t *testing.T) {
			c := cfg.Center()
			for i := range cfg.Engines() {
				g := GradientAnchors(cfg, i)
				lo := cfg.Rotations[i] - cfg.Widths[i]/2 + cfg.ThrustPad
				hi := cfg.Rotations[i] + cfg.Widths[i]/2 - cfg.ThrustPad
				for _, p := range []Point{g.Linear.Start, g.Linear.End, g.Radial.Center} {
					a := p.Sub(c).Angle()
					if Span(lo, a) >= Span(lo, hi) {
						t.Errorf("engine %d anchor %v at %v outside (%v, %v)", i, p, a, lo, hi)
					}
				}
				if g.Linear.End.Distance(c) <= g.Linear.Start.Distance(c) {
					t.Errorf("engine %d linear gradient should run outward", i)
				}
				if g.Radial.Radius != Round(cfg.EngineHeight/1.5) {
					t.Errorf("engine %d radial radius %v", i, g.Radial.Radius)
				}
				if g.Linear.ID != LinearGradientID(i) || g.Radial.ID != RadialGradientID(i) {
					t.Errorf("engine %d ids %q %q", i, g.Linear.ID, g.Radial.ID)
				}
				if g.Linear.Start != g.Linear.Start.Round() {
					t.Errorf("engine %d anchor not rounded", i)
				}
			}
		})
	}
}

func TestGradientAnchorsReference(t *testing.T) {
	cfg := DefaultConfig()
	g := GradientAnchors(cfg, 0)
	// Front engine points straight up from the centre.
	near := 32 - 38.4*math.Cos(16*math.Pi/180)
	if !almostEqual(g.Linear.Start.X, 32, 1e-9) || !almostEqual(g.Linear.Start.Y, near, 1e-9) {
		t.Errorf("Start = %v, want (32, %v)", g.Linear.Start, near)
	}
	if !almostEqual(g.Linear.End.Y, near-25.6/1.2, 1e-9) {
		t.Errorf("End = %v", g.Linear.End)
	}
	stops := g.Linear.Stops
	if len(stops) != 2 || stops[0].Opacity != 1 || stops[1].Opacity != 0 || stops[0].Color != "lightskyblue" {
		t.Errorf("unexpected ramp %+v", stops)
	}
}

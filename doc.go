// Package emblem procedurally builds the robot/tank emblem: a circular body
// with angular engine bays, sector-shaped engine nacelles and trapezoidal
// thruster exhaust quads with matching glow gradients.
//
// # Overview
//
// Everything is derived from a small [Config] in a single forward pass:
//
//	cfg := emblem.DefaultConfig()
//	e, err := emblem.Generate(cfg)
//	if err != nil {
//	    // invalid configuration
//	}
//
//	rec := recording.FromEmblem(e)
//	b, _ := recording.NewBackend("svg")
//	_ = rec.Playback(b)
//	_ = b.(recording.FileBackend).SaveToFile("robot.svg")
//
// # Coordinate System
//
// Output uses SVG document coordinates:
//   - Origin (0,0) at top-left, the emblem centre at (Radius, Radius)
//   - X increases right
//   - Y increases down
//   - Angles in degrees, 0 is right, increasing angles turn towards the top
//     of the image (the y component of [Polar] is negated)
//
// # Paths
//
// Paths are sequences of move, line and arc [Segment] values. Apart from the
// opening move, most segments are relative displacements, so a [Path] tracks
// its current point explicitly as segments are appended.
package emblem

// Package recording captures a generated emblem as an ordered list of
// drawing commands and plays it back to output backends.
//
// # Architecture
//
// The system follows a Command Pattern with three parts:
//
//   - Recording: the commands (gradient definitions, then fills in paint order)
//   - Backend: renders commands to a specific output format
//   - Registry: creates backends by name
//
// # Basic Usage
//
//	e, err := emblem.Generate(emblem.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	rec := recording.FromEmblem(e)
//
//	import _ "github.com/fedorabots/emblem/recording/backends/svg"
//
//	b, _ := recording.NewBackend("svg")
//	if err := rec.Playback(b); err != nil {
//	    return err
//	}
//	b.(recording.FileBackend).SaveToFile("robot.svg")
//
// # Backend Registration
//
// Backends register themselves in init(), following the database/sql
// driver pattern:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
package recording

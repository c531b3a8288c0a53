// Package recording captures helix surface calls as a command log that can
// be inspected, dumped, or played back to different backends.
//
// The system follows a Command Pattern with three main components:
//
//   - Recorder: a helix.TextSurface that captures every call as a command
//   - Recording: the immutable command log produced by a Recorder
//   - Backend: a helix.Surface with a Begin/End lifecycle that a Recording
//     is played back onto
//
// # Basic Usage
//
//	rec := recording.NewRecorder(1440, 900)
//	if err := helix.Render(rec, helix.DefaultConfig()); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	fmt.Println(r.Count(recording.CmdLineTo)) // 398
//
// # Playback to Backends
//
//	import _ "github.com/gogpu/helix/raster" // Registers "raster"
//	import _ "github.com/gogpu/helix/svg"    // Registers "svg"
//
//	backend, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := r.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("helix.svg")
//
// Backends are registered using the database/sql driver pattern. Each
// registration also names the file extensions the backend writes, so a
// host can pick a backend from an output path with [BackendFor].
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is never modified
// after FinishRecording and can be played back from multiple goroutines,
// each onto its own Backend.
package recording

package recording

import (
	"fmt"

	"github.com/gogpu/helix"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one helix.Surface call.
type CommandType uint8

const (
	// State commands
	CmdSave    CommandType = iota // Save current state
	CmdRestore                    // Restore previous state

	// Style commands
	CmdSetFillColor   // Set fill color
	CmdSetStrokeColor // Set stroke color
	CmdSetLineWidth   // Set stroke line width
	CmdSetAlpha       // Set global alpha

	// Path commands
	CmdBeginPath // Discard the current path
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Extend the current subpath with a line
	CmdArc       // Extend the current path with a circular arc

	// Drawing commands
	CmdFillRect // Fill a rectangle
	CmdStroke   // Stroke the current path
	CmdFill     // Fill the current path
	CmdFillText // Draw text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:           "Save",
	CmdRestore:        "Restore",
	CmdSetFillColor:   "SetFillColor",
	CmdSetStrokeColor: "SetStrokeColor",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetAlpha:       "SetAlpha",
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdArc:            "Arc",
	CmdFillRect:       "FillRect",
	CmdStroke:         "Stroke",
	CmdFill:           "Fill",
	CmdFillText:       "FillText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands are plain values: two recordings of the same composition
// compare equal command by command.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// Replay issues the command against s.
	Replay(s helix.Surface) error
}

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SaveCommand saves the current style state.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// Replay implements Command.
func (SaveCommand) Replay(s helix.Surface) error { s.Save(); return nil }

func (SaveCommand) String() string { return "Save" }

// RestoreCommand restores the previously saved style state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// Replay implements Command.
func (RestoreCommand) Replay(s helix.Surface) error { s.Restore(); return nil }

func (RestoreCommand) String() string { return "Restore" }

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetFillColorCommand sets the fill color.
type SetFillColorCommand struct {
	Color helix.RGBA
}

// Type implements Command.
func (SetFillColorCommand) Type() CommandType { return CmdSetFillColor }

// Replay implements Command.
func (c SetFillColorCommand) Replay(s helix.Surface) error { s.SetFillColor(c.Color); return nil }

func (c SetFillColorCommand) String() string { return "SetFillColor " + c.Color.Hex() }

// SetStrokeColorCommand sets the stroke color.
type SetStrokeColorCommand struct {
	Color helix.RGBA
}

// Type implements Command.
func (SetStrokeColorCommand) Type() CommandType { return CmdSetStrokeColor }

// Replay implements Command.
func (c SetStrokeColorCommand) Replay(s helix.Surface) error { s.SetStrokeColor(c.Color); return nil }

func (c SetStrokeColorCommand) String() string { return "SetStrokeColor " + c.Color.Hex() }

// SetLineWidthCommand sets the stroke line width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

// Replay implements Command.
func (c SetLineWidthCommand) Replay(s helix.Surface) error { s.SetLineWidth(c.Width); return nil }

func (c SetLineWidthCommand) String() string { return fmt.Sprintf("SetLineWidth %g", c.Width) }

// SetAlphaCommand sets the global alpha.
type SetAlphaCommand struct {
	Alpha float64
}

// Type implements Command.
func (SetAlphaCommand) Type() CommandType { return CmdSetAlpha }

// Replay implements Command.
func (c SetAlphaCommand) Replay(s helix.Surface) error { s.SetAlpha(c.Alpha); return nil }

func (c SetAlphaCommand) String() string { return fmt.Sprintf("SetAlpha %g", c.Alpha) }

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// Replay implements Command.
func (BeginPathCommand) Replay(s helix.Surface) error { s.BeginPath(); return nil }

func (BeginPathCommand) String() string { return "BeginPath" }

// MoveToCommand starts a new subpath.
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// Replay implements Command.
func (c MoveToCommand) Replay(s helix.Surface) error { s.MoveTo(c.X, c.Y); return nil }

func (c MoveToCommand) String() string { return fmt.Sprintf("MoveTo %g %g", c.X, c.Y) }

// LineToCommand extends the current subpath with a straight line.
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// Replay implements Command.
func (c LineToCommand) Replay(s helix.Surface) error { s.LineTo(c.X, c.Y); return nil }

func (c LineToCommand) String() string { return fmt.Sprintf("LineTo %g %g", c.X, c.Y) }

// ArcCommand adds a circular arc to the current path.
type ArcCommand struct {
	X, Y, Radius float64
	Start, End   float64 // radians
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// Replay implements Command.
func (c ArcCommand) Replay(s helix.Surface) error {
	s.Arc(c.X, c.Y, c.Radius, c.Start, c.End)
	return nil
}

func (c ArcCommand) String() string {
	return fmt.Sprintf("Arc %g %g %g %g %g", c.X, c.Y, c.Radius, c.Start, c.End)
}

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillRectCommand fills an axis-aligned rectangle with the fill color.
type FillRectCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// Replay implements Command.
func (c FillRectCommand) Replay(s helix.Surface) error {
	return s.FillRect(c.X, c.Y, c.Width, c.Height)
}

func (c FillRectCommand) String() string {
	return fmt.Sprintf("FillRect %g %g %g %g", c.X, c.Y, c.Width, c.Height)
}

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// Replay implements Command.
func (StrokeCommand) Replay(s helix.Surface) error { return s.Stroke() }

func (StrokeCommand) String() string { return "Stroke" }

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// Replay implements Command.
func (FillCommand) Replay(s helix.Surface) error { return s.Fill() }

func (FillCommand) String() string { return "Fill" }

// FillTextCommand draws a line of text.
// Surfaces without text support skip it on replay.
type FillTextCommand struct {
	Text string
	X, Y float64
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

// Replay implements Command.
func (c FillTextCommand) Replay(s helix.Surface) error {
	ts, ok := s.(helix.TextSurface)
	if !ok {
		return nil
	}
	return ts.FillText(c.Text, c.X, c.Y)
}

func (c FillTextCommand) String() string { return fmt.Sprintf("FillText %q %g %g", c.Text, c.X, c.Y) }

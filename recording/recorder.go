package recording

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gogpu/helix"
)

// Recorder captures surface calls as commands.
// It implements helix.TextSurface, so the compositor can render into it
// directly. Use FinishRecording to obtain an immutable Recording that can be
// inspected or replayed to different backends.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	_ = helix.Render(rec, cfg)
//	r := rec.FinishRecording()
//	fmt.Println(r.Count(recording.CmdLineTo))
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height float64
	commands      []Command

	// Current state
	state recorderState

	// State stack
	stateStack []recorderState
}

// recorderState stores the style state for Save/Restore.
type recorderState struct {
	fillColor   helix.RGBA
	strokeColor helix.RGBA
	lineWidth   float64
	alpha       float64
}

var _ helix.TextSurface = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
// The Recorder starts with default state: black fill/stroke, 1px line width
// and full alpha.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:      width,
		height:     height,
		commands:   make([]Command, 0, 1024),
		state:      defaultState(),
		stateStack: make([]recorderState, 0, 8),
	}
}

func defaultState() recorderState {
	return recorderState{
		fillColor:   helix.Black,
		strokeColor: helix.Black,
		lineWidth:   1.0,
		alpha:       1.0,
	}
}

// FinishRecording returns an immutable Recording containing all recorded commands.
// After calling FinishRecording, the Recorder should not be used again.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() float64 {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() float64 {
	return r.height
}

// Depth returns the number of saved states on the stack.
func (r *Recorder) Depth() int {
	return len(r.stateStack)
}

// FillColor returns the current fill color.
func (r *Recorder) FillColor() helix.RGBA { return r.state.fillColor }

// StrokeColor returns the current stroke color.
func (r *Recorder) StrokeColor() helix.RGBA { return r.state.strokeColor }

// LineWidth returns the current line width.
func (r *Recorder) LineWidth() float64 { return r.state.lineWidth }

// Alpha returns the current global alpha.
func (r *Recorder) Alpha() float64 { return r.state.alpha }

// --------------------------------------------------------------------------
// State Management
// --------------------------------------------------------------------------

// Save saves the current style state to the stack.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.state)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the previously saved style state.
// The command is always recorded; with an empty stack the state is unchanged.
func (r *Recorder) Restore() {
	if n := len(r.stateStack); n > 0 {
		r.state = r.stateStack[n-1]
		r.stateStack = r.stateStack[:n-1]
	}
	r.commands = append(r.commands, RestoreCommand{})
}

// --------------------------------------------------------------------------
// Style
// --------------------------------------------------------------------------

// SetFillColor sets the fill color.
func (r *Recorder) SetFillColor(c helix.RGBA) {
	r.state.fillColor = c
	r.commands = append(r.commands, SetFillColorCommand{Color: c})
}

// SetStrokeColor sets the stroke color.
func (r *Recorder) SetStrokeColor(c helix.RGBA) {
	r.state.strokeColor = c
	r.commands = append(r.commands, SetStrokeColorCommand{Color: c})
}

// SetLineWidth sets the line width for stroking.
func (r *Recorder) SetLineWidth(width float64) {
	r.state.lineWidth = width
	r.commands = append(r.commands, SetLineWidthCommand{Width: width})
}

// SetAlpha sets the global alpha.
func (r *Recorder) SetAlpha(alpha float64) {
	r.state.alpha = alpha
	r.commands = append(r.commands, SetAlphaCommand{Alpha: alpha})
}

// --------------------------------------------------------------------------
// Path Building
// --------------------------------------------------------------------------

// BeginPath discards the current path.
func (r *Recorder) BeginPath() {
	r.commands = append(r.commands, BeginPathCommand{})
}

// MoveTo starts a new subpath at the given point.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveToCommand{X: x, Y: y})
}

// LineTo adds a line to the current path.
func (r *Recorder) LineTo(x, y float64) {
	r.commands = append(r.commands, LineToCommand{X: x, Y: y})
}

// Arc adds a circular arc to the current path.
func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.commands = append(r.commands, ArcCommand{X: x, Y: y, Radius: radius, Start: start, End: end})
}

// --------------------------------------------------------------------------
// Drawing
// --------------------------------------------------------------------------

// FillRect records a rectangle fill. It never fails.
func (r *Recorder) FillRect(x, y, w, h float64) error {
	r.commands = append(r.commands, FillRectCommand{X: x, Y: y, Width: w, Height: h})
	return nil
}

// Stroke records a stroke of the current path. It never fails.
func (r *Recorder) Stroke() error {
	r.commands = append(r.commands, StrokeCommand{})
	return nil
}

// Fill records a fill of the current path. It never fails.
func (r *Recorder) Fill() error {
	r.commands = append(r.commands, FillCommand{})
	return nil
}

// FillText records a line of text. It never fails.
func (r *Recorder) FillText(s string, x, y float64) error {
	r.commands = append(r.commands, FillTextCommand{Text: s, X: x, Y: y})
	return nil
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any Backend implementation, and safely shared
// between goroutines.
type Recording struct {
	width, height float64
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() float64 {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() float64 {
	return r.height
}

// Commands returns the recorded commands.
// The returned slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Filter returns the commands of type t in recording order.
func (r *Recording) Filter(t CommandType) []Command {
	var out []Command
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			out = append(out, cmd)
		}
	}
	return out
}

// Replay issues every command against s in order and stops at the first
// error. Unlike Playback it does not call Begin or End.
func (r *Recording) Replay(s helix.Surface) error {
	for i, cmd := range r.commands {
		if err := cmd.Replay(s); err != nil {
			return fmt.Errorf("recording: command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

// Playback replays the recording to the given backend.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	if err := r.Replay(backend); err != nil {
		return err
	}
	return backend.End()
}

// WriteTo writes a text listing of the recording, one command per line.
// It implements io.WriterTo.
func (r *Recording) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintf(bw, "# recording %gx%g, %d commands\n", r.width, r.height, len(r.commands))
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, cmd := range r.commands {
		n, err := fmt.Fprintln(bw, cmd)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}

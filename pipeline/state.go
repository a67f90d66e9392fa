package pipeline

import (
	"image/color"

	"github.com/gogpu/wordart/fontreg"
)

// State is a job's lifecycle stage.
type State string

const (
	StateCreated       State = "created"
	StateBuildingScene State = "building_scene"
	StateRendering     State = "rendering"
	StateFinalizing    State = "finalizing"
	StateDone          State = "done"
	StateFailed        State = "failed"
)

// Terminal reports whether no further transitions can follow s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// Options are the per-job appearance choices.
type Options struct {
	Foreground color.Color
	Background color.Color

	// FontFamily selects the typeface. Empty means Config.DefaultFamily,
	// or a random catalogued font when that is empty too.
	FontFamily string
	FontWeight int
	FontStyle  fontreg.Style
}

// Job is a snapshot of one render job.
type Job struct {
	ID         string
	Text       string
	Options    Options
	OutputPath string
	State      State
}

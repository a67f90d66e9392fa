package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/wordart/encode"
	"github.com/gogpu/wordart/fontreg"
	"github.com/gogpu/wordart/scene"
	"github.com/gogpu/wordart/surface"
)

// ErrDirectory is returned when the output directory cannot be created.
var ErrDirectory = errors.New("pipeline: output directory")

// JobError is the error of a failed job.
type JobError struct {
	ID    string
	State State // stage the job was in when it failed
	Err   error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("pipeline: job %s failed while %s: %v", e.ID, e.State, e.Err)
}

func (e *JobError) Unwrap() error { return e.Err }

// Kind classifies job failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindFontNotFound
	KindFontLoad
	KindSceneBuild
	KindSurface
	KindEncode
	KindDirectory
	KindDeadline
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindFontNotFound: "font_not_found",
	KindFontLoad:     "font_load",
	KindSceneBuild:   "scene_build",
	KindSurface:      "surface",
	KindEncode:       "encode",
	KindDirectory:    "directory",
	KindDeadline:     "deadline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf classifies err. A deadline wins over the error it caused, since
// an expired job usually surfaces as an encoder or font failure too.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, context.DeadlineExceeded):
		return KindDeadline
	case errors.Is(err, fontreg.ErrFontNotFound):
		return KindFontNotFound
	case errors.Is(err, fontreg.ErrFontLoad):
		return KindFontLoad
	case errors.Is(err, scene.ErrEmptyScene):
		return KindSceneBuild
	case errors.Is(err, surface.ErrSurface):
		return KindSurface
	case errors.Is(err, ErrDirectory):
		return KindDirectory
	case errors.Is(err, encode.ErrEncode):
		return KindEncode
	}
	return KindUnknown
}

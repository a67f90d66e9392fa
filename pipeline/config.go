package pipeline

import (
	"log/slog"
	"time"

	"github.com/gogpu/wordart/encode"
	"github.com/gogpu/wordart/render"
)

// Defaults for Config fields left zero.
const (
	DefaultOutputDir   = "output"
	DefaultExtension   = "mp4"
	DefaultWidth       = 500
	DefaultHeight      = 500
	DefaultFrames      = 200
	DefaultFrameRate   = 60
	DefaultFontSize    = 40
	DefaultWidthMargin = 0.9
	DefaultDeadline    = 2 * time.Minute
)

// Config configures a Pipeline. The zero value renders 200 frames of
// 500x500 at 60 fps into output/<id>.mp4 with a two minute deadline.
type Config struct {
	OutputDir string
	Extension string

	Width, Height int
	Frames        int
	FrameRate     int

	// FontSize is the line height in world units.
	FontSize float64

	// WidthMargin is the fraction of the visible width a line may use.
	WidthMargin float64

	// Depth is the extrusion depth; zero uses the scene default.
	Depth float64

	// HueDrift rotates the text color by this many turns per frame.
	HueDrift float64

	// Deadline bounds a whole job, from font lookup to encoder exit.
	Deadline time.Duration

	// DefaultFamily is used when a job names no font.
	DefaultFamily string

	// Backend selects a surface backend by name; empty picks the best
	// available one.
	Backend string

	// Device is an optional host GPU context for the surface.
	Device render.DeviceHandle

	// Encoder configures the encoder process. Its size and frame rate are
	// overridden by the fields above.
	Encoder encode.Config

	// OnStateChange, if set, is called on every state transition with a
	// snapshot of the job. It runs synchronously on the job's goroutines
	// and must not block.
	OnStateChange func(Job)

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Frames <= 0 {
		c.Frames = DefaultFrames
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.FontSize <= 0 {
		c.FontSize = DefaultFontSize
	}
	if c.WidthMargin <= 0 || c.WidthMargin > 1 {
		c.WidthMargin = DefaultWidthMargin
	}
	if c.Deadline <= 0 {
		c.Deadline = DefaultDeadline
	}

	c.Encoder.Width = c.Width
	c.Encoder.Height = c.Height
	c.Encoder.FrameRate = c.FrameRate
	if c.Encoder.Format == "" {
		c.Encoder.Format = c.Extension
	}
	if c.Encoder.Logger == nil {
		c.Encoder.Logger = c.Logger
	}
	return c
}

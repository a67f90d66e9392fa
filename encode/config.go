package encode

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Defaults for Config fields left zero.
const (
	DefaultBinary      = "ffmpeg"
	DefaultWidth       = 500
	DefaultHeight      = 500
	DefaultFrameRate   = 60
	DefaultCodec       = "libx264"
	DefaultPixelFormat = "yuv420p"
	DefaultCRF         = 23
	DefaultFormat      = "mp4"
	DefaultQueueDepth  = 8
)

// Config describes the encoder process. The zero value encodes 500x500
// RGBA at 60 fps into H.264 MP4 with ffmpeg from PATH.
type Config struct {
	// Binary is the encoder executable.
	Binary string

	// GlobalArgs are placed before every generated argument.
	GlobalArgs []string

	Width, Height int
	FrameRate     int

	Codec       string
	PixelFormat string

	// CRF is the constant rate factor.
	CRF int

	// Format is the output container.
	Format string

	// QueueDepth bounds the frames buffered ahead of the encoder.
	QueueDepth int

	// ExtraArgs are placed just before the output path.
	ExtraArgs []string

	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Binary == "" {
		c.Binary = DefaultBinary
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	if c.Codec == "" {
		c.Codec = DefaultCodec
	}
	if c.PixelFormat == "" {
		c.PixelFormat = DefaultPixelFormat
	}
	if c.CRF <= 0 {
		c.CRF = DefaultCRF
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.QueueDepth <= 0 {
		c.QueueDepth = DefaultQueueDepth
	}
	return c
}

// FrameSize returns the byte length of one frame.
func (c Config) FrameSize() int {
	c = c.withDefaults()
	return c.Width * c.Height * 4
}

// Args returns the encoder command line for outputPath, without the
// binary.
func (c Config) Args(outputPath string) []string {
	c = c.withDefaults()

	args := make([]string, 0, len(c.GlobalArgs)+len(c.ExtraArgs)+24)
	args = append(args, c.GlobalArgs...)
	args = append(args,
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", c.Width, c.Height),
		"-framerate", strconv.Itoa(c.FrameRate),
		"-i", "pipe:0",
		"-c:v", c.Codec,
		"-pix_fmt", c.PixelFormat,
		"-crf", strconv.Itoa(c.CRF),
		"-f", c.Format,
	)
	args = append(args, c.ExtraArgs...)
	return append(args, outputPath)
}

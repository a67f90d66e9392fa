// Command wordart renders text into a rotating 3-D word art clip.
//
//	wordart -fonts ./fonts "~color:gold ~font:Open_Sans Hello world"
//
// The clip is written to <out>/<job id>.mp4 and the job id is printed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/gogpu/wordart"
	"github.com/gogpu/wordart/encode"
	"github.com/gogpu/wordart/pipeline"
)

func main() {
	var (
		fontsDir    = flag.String("fonts", os.Getenv("WORDART_FONTS_DIR"), "directory of .ttf/.otf fonts (env WORDART_FONTS_DIR)")
		apiKey      = flag.String("api-key", os.Getenv("GOOGLE_FONTS_API_KEY"), "Google Fonts API key (env GOOGLE_FONTS_API_KEY)")
		systemFonts = flag.Bool("system-fonts", false, "also use fonts installed on this machine")
		family      = flag.String("font", "", "default font family; empty picks a random font")
		output      = flag.String("out", pipeline.DefaultOutputDir, "output directory")
		width       = flag.Int("width", pipeline.DefaultWidth, "frame width")
		height      = flag.Int("height", pipeline.DefaultHeight, "frame height")
		frames      = flag.Int("frames", pipeline.DefaultFrames, "number of frames")
		fps         = flag.Int("fps", pipeline.DefaultFrameRate, "frame rate")
		hueDrift    = flag.Float64("hue-drift", 0, "text hue rotation per frame, in turns")
		timeout     = flag.Duration("timeout", pipeline.DefaultDeadline, "deadline for the whole job")
		ffmpeg      = flag.String("ffmpeg", encode.DefaultBinary, "encoder binary")
		backend     = flag.String("backend", "", "surface backend; empty picks the best available")
		shaperName  = flag.String("shaper", wordart.ShaperBuiltin, "text shaper: builtin or harfbuzz")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] text...\n       %s [flags] - < text\n", os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	input, err := readInput(flag.Args(), os.Stdin)
	if err != nil {
		pterm.Error.Println(err)
		flag.Usage()
		os.Exit(2)
	}

	shaper, err := wordart.NewShaper(*shaperName)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(2)
	}

	if *verbose {
		wordart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(false).Start("loading fonts")
	if *verbose {
		// Log lines and the spinner would interleave.
		_ = spinner.Stop()
		spinner = nil
	}

	studio, err := wordart.NewStudio(ctx, wordart.StudioConfig{
		FontsDir:    *fontsDir,
		APIKey:      *apiKey,
		SystemFonts: *systemFonts,
		Shaper:      shaper,
		Pipeline: pipeline.Config{
			OutputDir:     *output,
			Width:         *width,
			Height:        *height,
			Frames:        *frames,
			FrameRate:     *fps,
			HueDrift:      *hueDrift,
			Deadline:      *timeout,
			DefaultFamily: *family,
			Backend:       *backend,
			Encoder:       encode.Config{Binary: *ffmpeg},
			OnStateChange: func(j pipeline.Job) {
				if spinner != nil && !j.State.Terminal() {
					spinner.UpdateText(strings.ReplaceAll(string(j.State), "_", " "))
				}
			},
		},
	})
	if err != nil {
		fail(spinner, err)
	}

	start := time.Now()
	id, err := studio.Render(ctx, input)
	if err != nil {
		fail(spinner, err)
	}

	if spinner != nil {
		spinner.Success(fmt.Sprintf("rendered %s in %s", studio.OutputPath(id), time.Since(start).Round(time.Millisecond)))
	}
	fmt.Println(id)
}

// readInput joins the arguments, or reads stdin when the only argument
// is "-".
func readInput(args []string, stdin io.Reader) (string, error) {
	switch {
	case len(args) == 0:
		return "", errors.New("no text given")
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}

func fail(spinner *pterm.SpinnerPrinter, err error) {
	msg := err.Error()
	if kind := pipeline.KindOf(err); kind != pipeline.KindUnknown {
		msg = fmt.Sprintf("%s: %v", kind, err)
	}
	if spinner != nil {
		spinner.Fail(msg)
	} else {
		pterm.Error.Println(msg)
	}
	os.Exit(1)
}

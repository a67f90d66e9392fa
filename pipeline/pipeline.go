package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/wordart/fontreg"
	"github.com/gogpu/wordart/internal/logging"
	"github.com/gogpu/wordart/render"
	"github.com/gogpu/wordart/scene"
	"github.com/gogpu/wordart/surface"
	"github.com/gogpu/wordart/text"
)

// FontResolver supplies fonts to jobs. *fontreg.Registry implements it.
type FontResolver interface {
	GetFont(ctx context.Context, family string, weight int, style fontreg.Style) (*text.FontSource, error)
	GetRandomFont(ctx context.Context) (*text.FontSource, error)
}

// Pipeline runs render jobs. Each job owns its surface and encoder
// process; jobs share only the font resolver. Pipeline is safe for
// concurrent use.
type Pipeline struct {
	cfg    Config
	fonts  FontResolver
	logger *slog.Logger
}

// New creates a Pipeline drawing fonts from fonts.
func New(fonts FontResolver, cfg Config) (*Pipeline, error) {
	if fonts == nil {
		return nil, errors.New("pipeline: nil font resolver")
	}
	cfg = cfg.withDefaults()
	return &Pipeline{
		cfg:    cfg,
		fonts:  fonts,
		logger: logging.OrNop(cfg.Logger),
	}, nil
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// job tracks one Render call.
type job struct {
	p *Pipeline

	mu  sync.Mutex
	Job Job
}

func (j *job) setState(s State) {
	j.mu.Lock()
	j.Job.State = s
	snap := j.Job
	j.mu.Unlock()

	j.p.logger.Debug("pipeline: state", "job", snap.ID, "state", s)
	if j.p.cfg.OnStateChange != nil {
		j.p.cfg.OnStateChange(snap)
	}
}

func (j *job) state() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.Job.State
}

func (j *job) fail(err error) error {
	jerr := &JobError{ID: j.Job.ID, State: j.state(), Err: err}
	j.setState(StateFailed)
	return jerr
}

// Render runs one job to completion and returns its id. The output is
// <OutputDir>/<id>.<Extension>. On failure no output file is left behind
// and the error is a *JobError.
func (p *Pipeline) Render(ctx context.Context, input string, opts Options) (string, error) {
	j := &job{p: p, Job: Job{
		ID:      uuid.NewString(),
		Text:    input,
		Options: opts,
	}}
	j.setState(StateCreated)

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Deadline)
	defer cancel()

	start := time.Now()
	p.logger.Info("pipeline: job started", "job", j.Job.ID)

	if err := p.run(ctx, j); err != nil {
		p.logger.Info("pipeline: job failed",
			"job", j.Job.ID, "kind", KindOf(err), "elapsed", time.Since(start), "err", err)
		return "", j.fail(err)
	}

	j.setState(StateDone)
	p.logger.Info("pipeline: job done",
		"job", j.Job.ID, "output", j.Job.OutputPath, "elapsed", time.Since(start))
	return j.Job.ID, nil
}

// OutputPath returns the file a job with the given id writes.
func (p *Pipeline) OutputPath(id string) string {
	return filepath.Join(p.cfg.OutputDir, id+"."+p.cfg.Extension)
}

func (p *Pipeline) run(ctx context.Context, j *job) error {
	j.setState(StateBuildingScene)

	sc, err := p.buildScene(ctx, j.Job.Text, j.Job.Options)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrDirectory, err)
	}
	out := p.OutputPath(j.Job.ID)
	j.mu.Lock()
	j.Job.OutputPath = out
	j.mu.Unlock()

	s, err := p.newSurface()
	if err != nil {
		return err
	}
	defer s.Close()

	fr, err := render.NewFrameRenderer(s, sc, p.cfg.Frames,
		render.WithHueDrift(p.cfg.HueDrift),
		render.WithLogger(p.cfg.Logger))
	if err != nil {
		return err
	}

	if err := p.encode(ctx, j, fr, out); err != nil {
		p.removePartial(out)
		return err
	}
	return nil
}

// buildScene resolves the font, lays out the text and composes the scene.
func (p *Pipeline) buildScene(ctx context.Context, input string, opts Options) (*scene.Scene, error) {
	src, err := p.resolveFont(ctx, opts)
	if err != nil {
		return nil, err
	}

	aspect := float64(p.cfg.Width) / float64(p.cfg.Height)
	maxWidth := text.ViewportWidth(scene.FieldOfView, aspect, scene.CameraDistance) * p.cfg.WidthMargin

	lines := text.WrapText(input, src, p.cfg.FontSize, maxWidth)
	shapes := text.LayoutLines(lines, src, p.cfg.FontSize)
	p.logger.Debug("pipeline: laid out text",
		"font", src.Name(), "lines", len(lines), "max_width", maxWidth)

	return scene.Compose(shapes, scene.Style{
		Foreground: opts.Foreground,
		Background: opts.Background,
		Depth:      p.cfg.Depth,
		Aspect:     aspect,
	})
}

func (p *Pipeline) resolveFont(ctx context.Context, opts Options) (*text.FontSource, error) {
	family := opts.FontFamily
	if family == "" {
		family = p.cfg.DefaultFamily
	}
	if family == "" {
		return p.fonts.GetRandomFont(ctx)
	}
	return p.fonts.GetFont(ctx, family, opts.FontWeight, opts.FontStyle)
}

func (p *Pipeline) newSurface() (surface.Surface, error) {
	opts := surface.Options{
		Width:  p.cfg.Width,
		Height: p.cfg.Height,
		Device: p.cfg.Device,
	}
	if p.cfg.Backend != "" {
		return surface.NewByName(p.cfg.Backend, opts)
	}
	return surface.New(opts)
}

// encode runs the render loop and the encoder concurrently. The encoder
// is bound to the group context, so a render failure kills it and an
// encoder failure stops the render loop.
func (p *Pipeline) encode(ctx context.Context, j *job, fr *render.FrameRenderer, out string) error {
	g, gctx := errgroup.WithContext(ctx)

	sess, err := p.cfg.Encoder.Start(gctx, out)
	if err != nil {
		return err
	}
	j.setState(StateRendering)

	g.Go(func() error {
		defer sess.Close()
		for i := range fr.Frames() {
			f, err := fr.RenderFrame(i)
			if err != nil {
				return err
			}
			if err := sess.WriteFrame(gctx, f); err != nil {
				return err
			}
		}
		j.setState(StateFinalizing)
		return nil
	})
	g.Go(func() error {
		// The process always exits once gctx is done, so waiting without a
		// context cannot hang.
		return sess.Wait(context.Background())
	})

	err = g.Wait()
	if err != nil && ctx.Err() != nil {
		// Report the expiry itself rather than whichever side noticed it.
		err = fmt.Errorf("%w: %w", ctx.Err(), err)
	}
	return err
}

func (p *Pipeline) removePartial(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		p.logger.Warn("pipeline: cannot remove partial output", "path", path, "err", err)
	}
}

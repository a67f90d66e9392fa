package wordart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/wordart/directive"
	"github.com/gogpu/wordart/fontreg"
	"github.com/gogpu/wordart/internal/logging"
	"github.com/gogpu/wordart/pipeline"
	"github.com/gogpu/wordart/text"
)

// ErrNoFonts is returned by NewStudio when no font source yielded a font.
var ErrNoFonts = errors.New("wordart: no fonts available")

// Shaper names accepted by NewShaper.
const (
	ShaperBuiltin  = "builtin"
	ShaperHarfBuzz = "harfbuzz"
)

// NewShaper returns the shaper for name: "builtin" (advances and pair
// kerning) or "harfbuzz" (full OpenType shaping via go-text). Empty means
// builtin.
func NewShaper(name string) (text.Shaper, error) {
	switch name {
	case "", ShaperBuiltin:
		return &text.BuiltinShaper{}, nil
	case ShaperHarfBuzz:
		return text.NewGoTextShaper(), nil
	}
	return nil, fmt.Errorf("wordart: unknown shaper %q", name)
}

// StudioConfig configures a Studio.
type StudioConfig struct {
	// FontsDir is scanned for .ttf and .otf files. Empty skips it.
	FontsDir string

	// APIKey enables the Google Fonts directory. Empty skips it.
	APIKey string

	// SystemFonts adds the fonts installed on this machine.
	SystemFonts bool

	// FontTTL is how long an unused font stays loaded. Zero means
	// fontreg.DefaultTTL; negative keeps fonts forever.
	FontTTL time.Duration

	// Shaper measures and positions glyphs for every catalogued font. Nil
	// uses the global text shaper. NewShaper builds one by name.
	Shaper text.Shaper

	// FontOptions are passed to the registry after the ones above.
	FontOptions []fontreg.Option

	// Defaults are the job options directives start from.
	Defaults pipeline.Options

	Pipeline pipeline.Config

	// Logger defaults to Logger() at construction.
	Logger *slog.Logger
}

// Studio renders directive-prefixed text into clips. It is safe for
// concurrent use.
type Studio struct {
	fonts    *fontreg.Registry
	pipe     *pipeline.Pipeline
	defaults pipeline.Options
	logger   *slog.Logger
}

// NewStudio builds the font catalog and the pipeline. A failing remote
// directory is logged and skipped as long as another source produced
// fonts.
func NewStudio(ctx context.Context, cfg StudioConfig) (*Studio, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = Logger()
	}
	logger = logging.OrNop(logger)

	ttl := cfg.FontTTL
	switch {
	case ttl == 0:
		ttl = fontreg.DefaultTTL
	case ttl < 0:
		ttl = 0
	}
	opts := []fontreg.Option{fontreg.WithTTL(ttl), fontreg.WithLogger(logger)}
	if cfg.Shaper != nil {
		opts = append(opts, fontreg.WithSourceOptions(text.WithShaper(cfg.Shaper)))
	}
	opts = append(opts, cfg.FontOptions...)
	fonts := fontreg.New(opts...)

	total := 0
	if cfg.FontsDir != "" {
		n, err := fonts.LoadLocalFonts(cfg.FontsDir)
		if err != nil {
			return nil, fmt.Errorf("wordart: %w", err)
		}
		total += n
	}
	if cfg.SystemFonts {
		total += fonts.LoadSystemFonts()
	}
	if cfg.APIKey != "" {
		n, err := fonts.LoadRemoteFonts(ctx, cfg.APIKey)
		if err != nil {
			logger.Warn("wordart: remote fonts unavailable", "err", err)
		}
		total += n
	}
	if total == 0 {
		return nil, ErrNoFonts
	}

	pcfg := cfg.Pipeline
	if pcfg.Logger == nil {
		pcfg.Logger = logger
	}
	pipe, err := pipeline.New(fonts, pcfg)
	if err != nil {
		return nil, err
	}

	logger.Info("wordart: studio ready", "fonts", total, "families", len(fonts.Families()))
	return &Studio{
		fonts:    fonts,
		pipe:     pipe,
		defaults: cfg.Defaults,
		logger:   logger,
	}, nil
}

// Fonts returns the studio's font catalog.
func (s *Studio) Fonts() *fontreg.Registry {
	return s.fonts
}

// Pipeline returns the studio's render pipeline.
func (s *Studio) Pipeline() *pipeline.Pipeline {
	return s.pipe
}

// Render parses input's directives and renders the remaining text. It
// returns the job id; the clip is written to the pipeline's output
// directory as <id>.<ext>. Directive errors are returned before a job is
// created.
func (s *Studio) Render(ctx context.Context, input string) (string, error) {
	res, err := directive.Parse(input)
	if err != nil {
		return "", err
	}
	opts, err := OptionsFromDirectives(res, s.defaults)
	if err != nil {
		return "", err
	}
	s.logger.Debug("wordart: directives applied", "count", len(res.Options), "font", opts.FontFamily)
	return s.pipe.Render(ctx, res.Text, opts)
}

// OutputPath returns where the clip for job id is written.
func (s *Studio) OutputPath(id string) string {
	return s.pipe.OutputPath(id)
}

package fontreg

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/flopp/go-findfont"

	"github.com/gogpu/wordart/internal/logging"
	"github.com/gogpu/wordart/text"
)

// DefaultTTL is how long a loaded font stays in memory without being used.
const DefaultTTL = time.Hour

// DefaultAPIEndpoint is the Google Fonts developer API listing endpoint.
const DefaultAPIEndpoint = "https://www.googleapis.com/webfonts/v1/webfonts"

// maxFontBytes caps a single font download.
const maxFontBytes = 64 << 20

// Timer is a pending eviction task.
type Timer interface {
	// Stop cancels the task; it reports false if the task already ran.
	Stop() bool
}

// Scheduler runs eviction tasks after a delay.
// The default uses time.AfterFunc; tests substitute a manual clock.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Registry.
type Option func(*config)

type config struct {
	ttl         time.Duration
	client      *http.Client
	scheduler   Scheduler
	logger      *slog.Logger
	endpoint    string
	rand        *rand.Rand
	sourceOpts  []text.SourceOption
	systemFonts func() []string
}

func defaultConfig() config {
	return config{
		ttl:         DefaultTTL,
		client:      &http.Client{Timeout: 30 * time.Second},
		scheduler:   timeScheduler{},
		logger:      logging.Nop(),
		endpoint:    DefaultAPIEndpoint,
		rand:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // font choice, not security
		systemFonts: findfont.List,
	}
}

// WithTTL sets the idle time after which loaded font data is dropped.
// A non-positive TTL keeps fonts loaded forever.
func WithTTL(d time.Duration) Option {
	return func(c *config) {
		c.ttl = d
	}
}

// WithHTTPClient sets the client used for the remote listing and font
// downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		if client != nil {
			c.client = client
		}
	}
}

// WithScheduler replaces the timer implementation behind eviction.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithLogger sets the logger. By default the registry is silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = logging.OrNop(l)
	}
}

// WithAPIEndpoint overrides the remote font directory URL.
func WithAPIEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithRand sets the random source used by GetRandomFont.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithSourceOptions passes options to every text.FontSource the registry
// parses, e.g. text.WithShaper.
func WithSourceOptions(opts ...text.SourceOption) Option {
	return func(c *config) {
		c.sourceOpts = append(c.sourceOpts, opts...)
	}
}

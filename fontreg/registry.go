package fontreg

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/sync/singleflight"

	"github.com/gogpu/wordart/text"
)

// DefaultWeight is the weight GetFont uses when the caller passes 0.
const DefaultWeight = 500

// Registry is a catalog of fonts keyed by family, weight and style.
//
// Local fonts are parsed when scanned and stay loaded until idle for the
// TTL. Remote and system fonts are placeholders fetched on first use.
// Concurrent requests for the same unloaded font share one fetch.
//
// Registry is safe for concurrent use.
type Registry struct {
	cfg config

	mu       sync.RWMutex
	families map[string]*family

	loads  singleflight.Group
	randMu sync.Mutex
}

// family groups a family's containers: weight (ordered) -> style.
type family struct {
	name    string
	weights *treemap.Map // int -> map[Style]*Container
}

func newFamily(name string) *family {
	return &family{name: name, weights: treemap.NewWithIntComparator()}
}

func (f *family) styles(weight int) map[Style]*Container {
	v, ok := f.weights.Get(weight)
	if !ok {
		return nil
	}
	return v.(map[Style]*Container)
}

// nearestWeight returns the catalogued weight closest to w. Ties go to the
// lower weight.
func (f *family) nearestWeight(w int) int {
	if _, ok := f.weights.Get(w); ok {
		return w
	}

	lo, _ := f.weights.Floor(w)
	hi, _ := f.weights.Ceiling(w)
	switch {
	case lo == nil:
		return hi.(int)
	case hi == nil:
		return lo.(int)
	}

	l, h := lo.(int), hi.(int)
	if w-l <= h-w {
		return l
	}
	return h
}

// resolve picks the container for a request: nearest weight, then the
// exact style, else Regular, else whatever style that weight has.
func (f *family) resolve(weight int, style Style) *Container {
	if f.weights.Empty() {
		return nil
	}
	byStyle := f.styles(f.nearestWeight(weight))
	if c, ok := byStyle[style]; ok {
		return c
	}
	for _, s := range styles {
		if c, ok := byStyle[s]; ok {
			return c
		}
	}
	return nil
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{
		cfg:      cfg,
		families: make(map[string]*family),
	}
}

// add inserts c into the catalog. An existing container for the same
// family, weight and style is kept unless replace is set and it is not a
// local font already.
func (r *Registry) add(c *Container, replace bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	fam, ok := r.families[c.Key]
	if !ok {
		fam = newFamily(c.Family)
		r.families[c.Key] = fam
	}

	byStyle := fam.styles(c.Weight)
	if byStyle == nil {
		byStyle = make(map[Style]*Container, len(styles))
		fam.weights.Put(c.Weight, byStyle)
	}

	if old, exists := byStyle[c.Style]; exists {
		if !replace || !old.Remote {
			return false
		}
		old.unload()
	}
	byStyle[c.Style] = c
	return true
}

// LoadLocalFonts scans dir recursively for .ttf and .otf files, parses
// each one and catalogs it as loaded. Files that fail to parse are logged
// and skipped. It returns the number of fonts added.
func (r *Registry) LoadLocalFonts(dir string) (int, error) {
	added := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isFontFile(path) {
			return nil
		}

		src, err := text.NewFontSourceFromFile(path, r.cfg.sourceOpts...)
		if err != nil {
			r.cfg.logger.Warn("fontreg: skipping unreadable font", "path", path, "err", err)
			return nil
		}

		c := containerFor(src.Description(), path, false)
		if !r.add(c, true) {
			r.cfg.logger.Debug("fontreg: duplicate font ignored", "path", path, "font", c.String())
			return nil
		}
		c.store(src, r)
		added++
		r.cfg.logger.Debug("fontreg: loaded local font", "font", c.String(), "path", path)
		return nil
	})
	if err != nil {
		return added, fmt.Errorf("fontreg: scan %s: %w", dir, err)
	}

	r.cfg.logger.Info("fontreg: local fonts loaded", "dir", dir, "count", added)
	return added, nil
}

// LoadSystemFonts catalogs the fonts installed on this machine as lazy
// placeholders. Each file is parsed once for its metadata and then
// released. It returns the number of fonts added.
func (r *Registry) LoadSystemFonts() int {
	added := 0
	for _, path := range r.cfg.systemFonts() {
		if !isFontFile(path) {
			continue
		}
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			r.cfg.logger.Debug("fontreg: skipping system font", "path", path, "err", err)
			continue
		}
		if r.add(containerFor(src.Description(), path, false), false) {
			added++
		}
	}

	r.cfg.logger.Info("fontreg: system fonts catalogued", "count", added)
	return added
}

func containerFor(d text.Description, source string, remote bool) *Container {
	return &Container{
		Family: d.Family,
		Key:    NormalizeFamily(d.Family),
		Weight: text.ClampWeight(d.Weight),
		Style:  styleOf(d.Italic),
		Source: source,
		Remote: remote,
	}
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// Lookup resolves a request to a catalogued container without loading it.
// A weight of 0 means DefaultWeight.
func (r *Registry) Lookup(familyName string, weight int, style Style) (*Container, error) {
	if weight == 0 {
		weight = DefaultWeight
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fam, ok := r.families[NormalizeFamily(familyName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, familyName)
	}
	c := fam.resolve(weight, style)
	if c == nil {
		return nil, fmt.Errorf("%w: %q weight %d %s", ErrFontNotFound, familyName, weight, style)
	}
	return c, nil
}

// GetFont returns the font that best matches the request, loading it if
// needed. A weight of 0 means DefaultWeight. Missing weights resolve to
// the nearest catalogued one (ties toward the lighter weight); a missing
// style falls back to Regular.
func (r *Registry) GetFont(ctx context.Context, familyName string, weight int, style Style) (*text.FontSource, error) {
	c, err := r.Lookup(familyName, weight, style)
	if err != nil {
		return nil, err
	}
	return r.Load(ctx, c)
}

// Load returns c's parsed font, fetching it if it is not loaded.
func (r *Registry) Load(ctx context.Context, c *Container) (*text.FontSource, error) {
	if f := c.acquire(r); f != nil {
		return f, nil
	}

	// The fetch outlives any single caller; each caller still honors its
	// own context while waiting.
	fetchCtx := context.WithoutCancel(ctx)
	ch := r.loads.DoChan(c.flightKey(), func() (any, error) {
		if f := c.acquire(r); f != nil {
			return f, nil
		}

		start := time.Now()
		data, err := r.fetch(fetchCtx, c)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, c, err)
		}
		f, err := text.NewFontSource(data, r.cfg.sourceOpts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFontLoad, c, err)
		}

		c.store(f, r)
		r.cfg.logger.Debug("fontreg: font loaded",
			"font", c.String(), "remote", c.Remote, "bytes", len(data), "elapsed", time.Since(start))
		return f, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*text.FontSource), nil
	}
}

func (r *Registry) fetch(ctx context.Context, c *Container) ([]byte, error) {
	if !c.Remote {
		// #nosec G304 -- paths come from the directory scan
		return os.ReadFile(c.Source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Source, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := r.cfg.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %s: %s", c.Source, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFontBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxFontBytes {
		return nil, errors.New("font file too large")
	}
	return data, nil
}

// arm schedules c's eviction after the idle TTL.
func (r *Registry) arm(c *Container, gen uint64) Timer {
	if r.cfg.ttl <= 0 {
		return nil
	}
	return r.cfg.scheduler.AfterFunc(r.cfg.ttl, func() {
		if c.expire(gen) {
			r.cfg.logger.Debug("fontreg: font evicted", "font", c.String())
		}
	})
}

// Unload drops c's parsed data and cancels its eviction task. The next
// request fetches it again.
func (r *Registry) Unload(c *Container) {
	c.unload()
	r.cfg.logger.Debug("fontreg: font unloaded", "font", c.String())
}

// GetRandomFont picks a family uniformly, then one of its weights, then
// one of that weight's styles, and loads the result. Families with many
// weights are therefore not favored over single-weight ones.
func (r *Registry) GetRandomFont(ctx context.Context) (*text.FontSource, error) {
	c, err := r.randomContainer()
	if err != nil {
		return nil, err
	}
	return r.Load(ctx, c)
}

func (r *Registry) randomContainer() (*Container, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.families))
	for k, f := range r.families {
		if !f.weights.Empty() {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrFontNotFound)
	}
	slices.Sort(keys)

	r.randMu.Lock()
	defer r.randMu.Unlock()

	fam := r.families[keys[r.cfg.rand.IntN(len(keys))]]
	weights := fam.weights.Keys()
	byStyle := fam.styles(weights[r.cfg.rand.IntN(len(weights))].(int))

	present := make([]Style, 0, len(byStyle))
	for _, s := range styles {
		if _, ok := byStyle[s]; ok {
			present = append(present, s)
		}
	}
	return byStyle[present[r.cfg.rand.IntN(len(present))]], nil
}

// Families returns the display names of all catalogued families, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.families))
	for _, f := range r.families {
		names = append(names, f.name)
	}
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Compare(NormalizeFamily(a), NormalizeFamily(b))
	})
	return names
}

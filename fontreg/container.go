package fontreg

import (
	"fmt"
	"sync"

	"github.com/gogpu/wordart/text"
)

// Container is one catalogued font: a family at a weight and style, where
// its bytes live, and the parsed data while it is loaded.
//
// Loaded data is present only between a load and the next eviction. At
// most one eviction task is pending per container; rescheduling bumps a
// generation counter so a stale task that already fired does nothing.
type Container struct {
	// Family is the display name, Key its normalized catalog key.
	Family string
	Key    string

	Weight int
	Style  Style

	// Source is a file path, or a download URL when Remote is set.
	Source string
	Remote bool

	mu         sync.Mutex
	font       *text.FontSource
	evict      Timer
	generation uint64
}

// Loaded reports whether parsed font data is currently held.
func (c *Container) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.font != nil
}

// String returns "family weight style".
func (c *Container) String() string {
	return fmt.Sprintf("%s %d %s", c.Family, c.Weight, c.Style)
}

// flightKey identifies the container for single-flight loading.
func (c *Container) flightKey() string {
	return fmt.Sprintf("%s/%d/%s", c.Key, c.Weight, c.Style)
}

// evictor arms eviction tasks for containers.
type evictor interface {
	arm(c *Container, gen uint64) Timer
}

// acquire returns the loaded font, re-arming its eviction, or nil.
func (c *Container) acquire(e evictor) *text.FontSource {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.font == nil {
		return nil
	}
	c.rearmLocked(e)
	return c.font
}

// store installs freshly parsed data and schedules its eviction.
func (c *Container) store(f *text.FontSource, e evictor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.font = f
	c.rearmLocked(e)
}

// expire unloads the container if gen is still the current generation.
func (c *Container) expire(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen || c.font == nil {
		return false
	}
	c.unloadLocked()
	return true
}

func (c *Container) unload() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unloadLocked()
}

func (c *Container) rearmLocked(e evictor) {
	if c.evict != nil {
		c.evict.Stop()
	}
	c.generation++
	c.evict = e.arm(c, c.generation)
}

func (c *Container) unloadLocked() {
	if c.evict != nil {
		c.evict.Stop()
	}
	c.evict = nil
	if c.font != nil {
		c.font.Release()
	}
	c.font = nil
	c.generation++
}

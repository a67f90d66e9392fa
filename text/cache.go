package text

import "sync"

// outlineCache keeps extracted glyph outlines per font. Past its limit it
// drops the least recently used glyph; a limit of 0 keeps everything.
//
// outlineCache is safe for concurrent use.
type outlineCache struct {
	mu    sync.Mutex
	limit int
	byGID map[GlyphID]*outlineNode

	// head is the most recently used glyph, tail the least.
	head, tail *outlineNode
}

type outlineNode struct {
	gid        GlyphID
	outline    *GlyphOutline
	prev, next *outlineNode
}

func newOutlineCache(limit int) *outlineCache {
	return &outlineCache{
		limit: max(limit, 0),
		byGID: make(map[GlyphID]*outlineNode),
	}
}

func (c *outlineCache) get(gid GlyphID) (*GlyphOutline, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.byGID[gid]
	if !ok {
		return nil, false
	}
	c.touch(n)
	return n.outline, true
}

func (c *outlineCache) put(gid GlyphID, o *GlyphOutline) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.byGID[gid]; ok {
		n.outline = o
		c.touch(n)
		return
	}

	n := &outlineNode{gid: gid, outline: o}
	c.byGID[gid] = n
	c.pushFront(n)

	if c.limit > 0 && len(c.byGID) > c.limit {
		old := c.tail
		c.unlink(old)
		delete(c.byGID, old.gid)
	}
}

func (c *outlineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byGID)
}

func (c *outlineCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byGID = make(map[GlyphID]*outlineNode)
	c.head, c.tail = nil, nil
}

// touch moves n to the front. Caller holds c.mu.
func (c *outlineCache) touch(n *outlineNode) {
	if c.head == n {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *outlineCache) pushFront(n *outlineNode) {
	n.prev, n.next = nil, c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *outlineCache) unlink(n *outlineNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}

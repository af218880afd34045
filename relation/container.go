package relation

import "sync"

// Container is the append-only store of spec section 3: smooth
// relations, rough (not-yet-smooth) relations, and accepted free
// (null-space) solution sets. Appends are mutually exclusive (spec
// section 5, "concurrent appenders require mutual exclusion on the
// append operation").
type Container struct {
	mu    sync.Mutex
	smooth []*Relation
	rough  []*Relation
	free   [][]*Relation
}

// NewContainer returns an empty relation container.
func NewContainer() *Container {
	return &Container{}
}

// AppendSmooth atomically appends a smooth relation.
func (c *Container) AppendSmooth(r *Relation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.smooth = append(c.smooth, r)
}

// AppendRough atomically appends a rough relation.
func (c *Container) AppendRough(r *Relation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rough = append(c.rough, r)
}

// AppendFree records an accepted free-relation (null-space) solution
// set.
func (c *Container) AppendFree(set []*Relation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.free = append(c.free, set)
}

// Smooth returns a snapshot of the currently stored smooth relations.
// The sieve exposes this as its read-only view for the matrix stage
// (spec section 9, "break with an interface").
func (c *Container) Smooth() []*Relation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Relation, len(c.smooth))
	copy(out, c.smooth)
	return out
}

// Rough returns a snapshot of the currently stored rough relations.
func (c *Container) Rough() []*Relation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Relation, len(c.rough))
	copy(out, c.rough)
	return out
}

// Free returns a snapshot of the accepted free-relation solution sets.
func (c *Container) Free() [][]*Relation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([][]*Relation, len(c.free))
	copy(out, c.free)
	return out
}

// SmoothCount returns the number of stored smooth relations.
func (c *Container) SmoothCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.smooth)
}

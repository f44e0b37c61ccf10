package stockroom

import (
	"iter"
)

var _ iCursor = &Cursor{}

// Cursor iterates the live entities matching a query, in entity id order.
// Iteration order is deterministic: ids are dense and never reused.
type Cursor struct {
	query QueryNode
	world *World

	// Current iteration state
	index   int
	current Entity
}

func newCursor(query QueryNode, world *World) *Cursor {
	return &Cursor{
		query: query,
		world: world,
	}
}

func (c *Cursor) Next() bool {
	for c.index < len(c.world.rows) {
		r := &c.world.rows[c.index]
		e := Entity(c.index)
		c.index++
		if !r.live() {
			continue
		}
		if c.query.Evaluate(r.mask) {
			c.current = e
			return true
		}
	}
	c.Reset()
	return false
}

// Entity returns the entity the cursor currently points at.
func (c *Cursor) Entity() Entity {
	return c.current
}

// Entities yields all matching live entities from the start, independent of
// the stateful Next position.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i := 0; i < len(c.world.rows); i++ {
			r := &c.world.rows[i]
			if !r.live() {
				continue
			}
			if !c.query.Evaluate(r.mask) {
				continue
			}
			if !yield(Entity(i)) {
				return
			}
		}
	}
}

func (c *Cursor) Reset() {
	c.index = 0
}

// TotalMatched counts the live entities matching the query.
func (c *Cursor) TotalMatched() int {
	total := 0
	for range c.Entities() {
		total++
	}
	return total
}

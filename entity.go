package stockroom

import (
	"github.com/TheBitDrifter/mask"
)

// Entity is an opaque handle for a game object: a dense, zero-based integer
// scoped to a single World. Identifiers are issued in strictly increasing
// order and are never reused, even after the entity is removed.
type Entity uint32

// row is one entity's component table: which component id it owns inside
// each type's collection, plus a mask of the type bits for fast membership
// tests. A nil slots map marks a removed (or never created) entity.
type row struct {
	mask  mask.Mask
	slots map[uint32]int
}

func (r *row) live() bool {
	return r.slots != nil
}

package stockroom

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// Collection is the untyped view over a TypedCollection. Storage holds its
// collections through this interface and recovers the concrete type with a
// type assertion. The lifecycle methods are unexported so only storage-driven
// passes can invoke them.
type Collection interface {
	ElementType() table.ElementType
	RowIndex() uint32
	Length() int
	setupAll(w *World)
	updateAll(w *World)
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(entityMask mask.Mask) bool
}

type iCursor interface {
	Entities() iter.Seq[Entity]
	Next() bool
}

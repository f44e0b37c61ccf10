package stockroom

import (
	"github.com/TheBitDrifter/table"
)

var _ Collection = &TypedCollection[Component]{}

// TypedCollection is the append-only store of all instances of one component
// type. An instance's index (its component id) is stable for the lifetime of
// the collection: there is no compaction and no interior removal, because
// entity rows reference these indices directly.
type TypedCollection[T Component] struct {
	iden  table.ElementType
	row   uint32
	cells []*cell[T]
}

func newTypedCollection[T Component](schema table.Schema) *TypedCollection[T] {
	iden := table.FactoryNewElementType[T]()
	schema.Register(iden)
	return &TypedCollection[T]{
		iden: iden,
		row:  schema.RowIndexFor(iden),
	}
}

// ElementType returns the identity token registered for T in the storage schema.
func (c *TypedCollection[T]) ElementType() table.ElementType {
	return c.iden
}

// RowIndex returns the stable schema row index for T, used as the component
// type's bit in entity masks.
func (c *TypedCollection[T]) RowIndex() uint32 {
	return c.row
}

func (c *TypedCollection[T]) Length() int {
	return len(c.cells)
}

// Append stores a new instance and returns its component id.
func (c *TypedCollection[T]) Append(value T) int {
	c.cells = append(c.cells, &cell[T]{value: value})
	return len(c.cells) - 1
}

// Borrow acquires a shared borrow on the instance at id. The bool reports
// whether the id exists; a borrow conflict panics with BorrowConflictError.
func (c *TypedCollection[T]) Borrow(id int) (*Ref[T], bool) {
	if id < 0 || id >= len(c.cells) {
		return nil, false
	}
	return c.cells[id].borrow(id), true
}

// BorrowMut acquires an exclusive borrow on the instance at id.
func (c *TypedCollection[T]) BorrowMut(id int) (*MutRef[T], bool) {
	if id < 0 || id >= len(c.cells) {
		return nil, false
	}
	return c.cells[id].borrowMut(id), true
}

// setupAll runs Setup on every instance in insertion order, holding an
// exclusive borrow on the instance for the duration of its hook. The storage
// does not track whether setup already ran; the lifecycle driver owns that.
func (c *TypedCollection[T]) setupAll(w *World) {
	length := len(c.cells)
	for id := 0; id < length; id++ {
		c.setupOne(id, w)
	}
}

// updateAll runs Update on every instance in insertion order. Instances
// appended during the pass are not visited until the next tick.
func (c *TypedCollection[T]) updateAll(w *World) {
	length := len(c.cells)
	for id := 0; id < length; id++ {
		c.updateOne(id, w)
	}
}

// The deferred Release keeps the slot usable when a hook panics and the
// lifecycle driver recovers the conflict into an error.
func (c *TypedCollection[T]) setupOne(id int, w *World) {
	ref := c.cells[id].borrowMut(id)
	defer ref.Release()
	ref.Value().Setup(w)
}

func (c *TypedCollection[T]) updateOne(id int, w *World) {
	ref := c.cells[id].borrowMut(id)
	defer ref.Release()
	ref.Value().Update(w)
}

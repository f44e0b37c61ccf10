package stockroom

import (
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
	iter_util "github.com/TheBitDrifter/util/iter"
)

// World is the single owner of one Storage and the entity rows that map each
// entity to its component ids. All entity and component operations route
// through it; there is no ambient global state, so identifiers from one World
// mean nothing to another.
type World struct {
	storage *Storage
	rows    []row
}

func newWorld(schema table.Schema) *World {
	return &World{storage: newStorage(schema)}
}

// Storage exposes the component storage for direct collection access.
func (w *World) Storage() *Storage {
	return w.storage
}

// CreateEntity allocates the next identifier and an empty component row.
func (w *World) CreateEntity() Entity {
	e := Entity(len(w.rows))
	w.rows = append(w.rows, row{slots: make(map[uint32]int)})
	return e
}

// Alive reports whether e was created by this world and not yet removed.
func (w *World) Alive(e Entity) bool {
	return int(e) < len(w.rows) && w.rows[e].live()
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	count := 0
	for i := range w.rows {
		if w.rows[i].live() {
			count++
		}
	}
	return count
}

// RemoveEntity drops the entity's component row so every later lookup
// returns absent rather than stale data. Component payloads stay in their
// collections, orphaned: compacting them would shift the ids other entities
// still hold.
func (w *World) RemoveEntity(e Entity) error {
	if !w.Alive(e) {
		return UnknownEntityError{Entity: e}
	}
	w.rows[e] = row{}
	Config.log().Debug("entity removed", "entity", uint32(e))
	return nil
}

// RegisterComponent appends value to T's collection and records the new
// component id on the entity's row. Registering a second component of the
// same type overwrites the mapping; the previous instance stays in the
// collection but is reachable only by its direct id.
func RegisterComponent[T Component](w *World, e Entity, value T) (int, error) {
	if !w.Alive(e) {
		return 0, UnknownEntityError{Entity: e}
	}
	col := ensureCollection[T](w.storage)
	id := col.Append(value)
	r := &w.rows[e]
	r.slots[col.RowIndex()] = id
	r.mask.Mark(col.RowIndex())
	return id, nil
}

// GetEntityComponent acquires a shared borrow on e's component of type T.
// Absence of the type, the entity, or the mapping all report false.
func GetEntityComponent[T Component](w *World, e Entity) (*Ref[T], bool) {
	col, id, ok := lookup[T](w, e)
	if !ok {
		return nil, false
	}
	return col.Borrow(id)
}

// GetEntityComponentMut acquires an exclusive borrow on e's component of type T.
func GetEntityComponentMut[T Component](w *World, e Entity) (*MutRef[T], bool) {
	col, id, ok := lookup[T](w, e)
	if !ok {
		return nil, false
	}
	return col.BorrowMut(id)
}

// HasComponent reports whether e currently has a component of type T,
// without borrowing it.
func HasComponent[T Component](w *World, e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	col, ok := GetCollection[T](w.storage)
	if !ok {
		return false
	}
	var typeMask mask.Mask
	typeMask.Mark(col.RowIndex())
	return w.rows[e].mask.ContainsAll(typeMask)
}

func lookup[T Component](w *World, e Entity) (*TypedCollection[T], int, bool) {
	if !w.Alive(e) {
		return nil, 0, false
	}
	col, ok := GetCollection[T](w.storage)
	if !ok {
		return nil, 0, false
	}
	var typeMask mask.Mask
	typeMask.Mark(col.RowIndex())
	if !w.rows[e].mask.ContainsAll(typeMask) {
		return nil, 0, false
	}
	id, ok := w.rows[e].slots[col.RowIndex()]
	if !ok {
		return nil, 0, false
	}
	return col, id, true
}

// SetupComponents drives the one-time setup pass. A borrow conflict inside a
// component hook aborts the pass and is returned as the error; the world
// should be treated as unrecoverable for that tick.
func (w *World) SetupComponents() (err error) {
	defer recoverBorrowConflict(&err)
	w.storage.SetupComponents(w)
	return nil
}

// UpdateComponents drives one update pass over all collections in
// registration order.
func (w *World) UpdateComponents() (err error) {
	defer recoverBorrowConflict(&err)
	w.storage.UpdateComponents(w)
	return nil
}

func recoverBorrowConflict(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if conflict, ok := r.(BorrowConflictError); ok {
		*err = conflict
		return
	}
	panic(r)
}

// ComponentTypes returns the identity tokens of every component type
// registered so far, in registration order.
func (w *World) ComponentTypes() []table.ElementType {
	return iter_util.Collect(w.storage.ElementTypes())
}

package stockroom

import (
	"iter"

	"github.com/TheBitDrifter/table"
)

// Storage owns one collection per distinct component type ever registered,
// in registration order. Collections are reached by static type identity via
// a linear scan, so lookups cost O(number of distinct component types).
type Storage struct {
	schema      table.Schema
	collections []Collection
}

func newStorage(schema table.Schema) *Storage {
	return &Storage{schema: schema}
}

// GetCollection finds the collection for T, if one was ever registered.
// Absence is not an error: it means no component of type T exists yet.
func GetCollection[T Component](s *Storage) (*TypedCollection[T], bool) {
	for _, col := range s.collections {
		if typed, ok := col.(*TypedCollection[T]); ok {
			return typed, true
		}
	}
	return nil, false
}

// AddCollection registers a new collection for T, optionally seeded with
// initial instances. Registering a second collection for the same type fails
// with DuplicateCollectionError.
func AddCollection[T Component](s *Storage, seed ...T) (*TypedCollection[T], error) {
	if existing, ok := GetCollection[T](s); ok {
		return nil, DuplicateCollectionError{ElementType: existing.ElementType()}
	}
	col := newTypedCollection[T](s.schema)
	for _, value := range seed {
		col.Append(value)
	}
	s.collections = append(s.collections, col)
	Config.log().Debug("collection registered", "rowIndex", col.RowIndex(), "seeded", len(seed))
	return col, nil
}

// AddComponent appends value to T's collection, creating the collection first
// if T was never registered. Returns the new instance's component id. The
// lazy creation is what lets arbitrary component types show up without a
// registration phase.
func AddComponent[T Component](s *Storage, value T) int {
	return ensureCollection[T](s).Append(value)
}

func ensureCollection[T Component](s *Storage) *TypedCollection[T] {
	if col, ok := GetCollection[T](s); ok {
		return col
	}
	col, _ := AddCollection[T](s)
	return col
}

// SetupComponents runs the setup pass over every collection in registration
// order. The caller is responsible for running it only once.
func (s *Storage) SetupComponents(w *World) {
	for i := 0; i < len(s.collections); i++ {
		s.collections[i].setupAll(w)
	}
}

// UpdateComponents runs one update pass over every collection in
// registration order: all instances of the same type are processed together.
func (s *Storage) UpdateComponents(w *World) {
	for i := 0; i < len(s.collections); i++ {
		s.collections[i].updateAll(w)
	}
}

// CollectionCount returns the number of distinct component types registered.
func (s *Storage) CollectionCount() int {
	return len(s.collections)
}

// ElementTypes yields the identity tokens of all registered collections in
// registration order.
func (s *Storage) ElementTypes() iter.Seq[table.ElementType] {
	return func(yield func(table.ElementType) bool) {
		for _, col := range s.collections {
			if !yield(col.ElementType()) {
				return
			}
		}
	}
}

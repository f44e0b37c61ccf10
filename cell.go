package stockroom

const exclusiveBorrow int32 = -1

// cell wraps one stored component instance with a borrow guard: at any
// instant a cell is either unborrowed (0), shared-borrowed (n > 0), or
// exclusively borrowed (-1). Conflicts panic with BorrowConflictError rather
// than block; the model is cooperative and single-threaded, so an outstanding
// conflicting borrow is always a logic bug in a component hook.
type cell[T Component] struct {
	value   T
	borrows int32
}

func (c *cell[T]) borrow(id int) *Ref[T] {
	if c.borrows == exclusiveBorrow {
		panic(BorrowConflictError{ComponentID: id, Exclusive: false})
	}
	c.borrows++
	return &Ref[T]{cell: c}
}

func (c *cell[T]) borrowMut(id int) *MutRef[T] {
	if c.borrows != 0 {
		panic(BorrowConflictError{ComponentID: id, Exclusive: true})
	}
	c.borrows = exclusiveBorrow
	return &MutRef[T]{cell: c}
}

// Ref is a shared borrow of one component instance. Any number of shared
// borrows may be outstanding at once. Callers must Release the borrow when
// done; Release is idempotent.
type Ref[T Component] struct {
	cell     *cell[T]
	released bool
}

func (r *Ref[T]) Value() T {
	return r.cell.value
}

func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.borrows--
}

// MutRef is an exclusive borrow of one component instance. It excludes every
// other borrow, shared or exclusive, until released.
type MutRef[T Component] struct {
	cell     *cell[T]
	released bool
}

func (r *MutRef[T]) Value() T {
	return r.cell.value
}

func (r *MutRef[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.borrows = 0
}

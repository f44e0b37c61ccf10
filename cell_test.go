package stockroom

import (
	"testing"

	"github.com/TheBitDrifter/table"
)

func expectBorrowConflict(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a borrow conflict, got none")
		}
		if _, ok := r.(BorrowConflictError); !ok {
			t.Fatalf("panic value = %v (%T), want BorrowConflictError", r, r)
		}
	}()
	fn()
}

func newTestCollection(t *testing.T) *TypedCollection[*Position] {
	t.Helper()
	schema := table.Factory.NewSchema()
	storage := Factory.NewStorage(schema)
	col, err := AddCollection(storage, &Position{X: 1})
	if err != nil {
		t.Fatalf("AddCollection() error = %v", err)
	}
	return col
}

func TestConcurrentSharedBorrows(t *testing.T) {
	col := newTestCollection(t)

	ref1, ok := col.Borrow(0)
	if !ok {
		t.Fatal("Borrow(0) missed")
	}
	ref2, ok := col.Borrow(0)
	if !ok {
		t.Fatal("second Borrow(0) missed")
	}
	if ref1.Value() != ref2.Value() {
		t.Error("shared borrows disagree on the stored value")
	}

	ref1.Release()
	ref2.Release()

	// Fully released, exclusive is available again
	mut, ok := col.BorrowMut(0)
	if !ok {
		t.Fatal("BorrowMut(0) missed after release")
	}
	mut.Release()
}

func TestBorrowConflicts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *TypedCollection[*Position]) func()
		probe func(c *TypedCollection[*Position])
	}{
		{
			name: "Exclusive while shared held",
			setup: func(c *TypedCollection[*Position]) func() {
				ref, _ := c.Borrow(0)
				return ref.Release
			},
			probe: func(c *TypedCollection[*Position]) { c.BorrowMut(0) },
		},
		{
			name: "Exclusive while exclusive held",
			setup: func(c *TypedCollection[*Position]) func() {
				mut, _ := c.BorrowMut(0)
				return mut.Release
			},
			probe: func(c *TypedCollection[*Position]) { c.BorrowMut(0) },
		},
		{
			name: "Shared while exclusive held",
			setup: func(c *TypedCollection[*Position]) func() {
				mut, _ := c.BorrowMut(0)
				return mut.Release
			},
			probe: func(c *TypedCollection[*Position]) { c.Borrow(0) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := newTestCollection(t)
			release := tt.setup(col)
			expectBorrowConflict(t, func() { tt.probe(col) })

			// Releasing the outstanding borrow clears the conflict
			release()
			mut, ok := col.BorrowMut(0)
			if !ok {
				t.Fatal("BorrowMut(0) missed after release")
			}
			mut.Release()
		})
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	col := newTestCollection(t)

	ref, _ := col.Borrow(0)
	ref.Release()
	ref.Release()

	mut, ok := col.BorrowMut(0)
	if !ok {
		t.Fatal("BorrowMut(0) missed after double release")
	}
	mut.Release()
	mut.Release()

	ref2, ok := col.Borrow(0)
	if !ok {
		t.Fatal("Borrow(0) missed after exclusive double release")
	}
	ref2.Release()
}

func TestBorrowOutOfRange(t *testing.T) {
	col := newTestCollection(t)

	if _, ok := col.Borrow(5); ok {
		t.Error("Borrow(5) found a nonexistent instance")
	}
	if _, ok := col.BorrowMut(-1); ok {
		t.Error("BorrowMut(-1) found a nonexistent instance")
	}
}

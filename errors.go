package stockroom

import (
	"fmt"

	"github.com/TheBitDrifter/table"
)

type UnknownEntityError struct {
	Entity Entity
}

func (e UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity: %d", uint32(e.Entity))
}

type BorrowConflictError struct {
	ComponentID int
	Exclusive   bool
}

func (e BorrowConflictError) Error() string {
	if e.Exclusive {
		return fmt.Sprintf("borrow conflict: component %d is already borrowed", e.ComponentID)
	}
	return fmt.Sprintf("borrow conflict: component %d is exclusively borrowed", e.ComponentID)
}

type DuplicateCollectionError struct {
	ElementType table.ElementType
}

func (e DuplicateCollectionError) Error() string {
	return fmt.Sprintf("collection already exists for element type: %v", e.ElementType)
}

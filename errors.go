package depot

import (
	"fmt"
	"reflect"
)

// LockedStorageError reports a mutation attempted while a cursor holds the storage
type LockedStorageError struct {
	Component reflect.Type
}

func (e LockedStorageError) Error() string {
	return fmt.Sprintf("storage is currently locked by an iteration: %v", e.Component)
}

// BorrowedStorageError reports any access attempted while a mutable lease is live
type BorrowedStorageError struct {
	Component reflect.Type
}

func (e BorrowedStorageError) Error() string {
	return fmt.Sprintf("storage is mutably borrowed: %v", e.Component)
}

type ReleasedLeaseError struct {
	Component reflect.Type
	Entity    Entity
}

func (e ReleasedLeaseError) Error() string {
	return fmt.Sprintf("lease on %v for %v was already released", e.Component, e.Entity)
}

// CursorPositionError reports a read from a cursor that is not on a component
type CursorPositionError struct {
	Component reflect.Type
}

func (e CursorPositionError) Error() string {
	return fmt.Sprintf("cursor over %v is not positioned on a component", e.Component)
}

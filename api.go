package depot

import (
	"iter"
	"reflect"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// World allocates entities and owns one storage per component type
type World interface {
	mask.Maskable
	CreateEntity() Entity
	EntityCount() int
	Entities() iter.Seq[Entity]
	Storages() iter.Seq[ErasedStorage]
	Schema() table.Schema
	lookup(reflect.Type) (ErasedStorage, bool)
	nextRow() uint32
	adopt(ErasedStorage)
}

// ErasedStorage is the opaque form every Storage[C] is kept in by a World.
// It can only be implemented by Storage[C], so the concrete type behind an
// ErasedStorage always matches the component type it reports.
type ErasedStorage interface {
	ComponentType() reflect.Type
	ElementType() Component
	Row() uint32
	Len() int
	Count() int
	Has(Entity) bool
	erased()
}

// View is read-only access to a Storage[C]
type View[C any] interface {
	Get(Entity) (C, bool)
	Has(Entity) bool
	Len() int
	Count() int
	All() iter.Seq2[Entity, C]
}

// iCursor is the iteration contract Cursor satisfies
type iCursor[C any] interface {
	Next() bool
	Entity() Entity
	Value() C
	Reset()
}

// Warning: holds a read lock on its storage between the first Next and Reset!
type Cursor[C any] struct {
	storage *Storage[C]

	// Current iteration state
	slotIndex int

	initialized bool
}

// Lease is exclusive mutable access to one component value.
// The storage refuses every other access until Release is called.
type Lease[C any] struct {
	storage  *Storage[C]
	entity   Entity
	value    *C
	released bool
}

// AccessibleComponent is a typed handle for one component type.
// It holds no state, every call goes through the world's storage for T.
type AccessibleComponent[T any] struct{}

package depot

import (
	"iter"
	"reflect"
)

var _ ErasedStorage = &Storage[struct{}]{}
var _ View[struct{}] = &Storage[struct{}]{}

// Storage holds at most one C per entity in a dense slice addressed by entity index.
// Slots are tombstoned on removal and the slice never shrinks.
type Storage[C any] struct {
	typ         reflect.Type
	elementType Component
	row         uint32
	slots       []slot[C]
	count       int

	readers int
	leased  bool
	opQueue opQueue[C]
}

type slot[C any] struct {
	value    C
	occupied bool
}

func newStorage[C any](elementType Component, row uint32) *Storage[C] {
	return &Storage[C]{
		typ:         reflect.TypeFor[C](),
		elementType: elementType,
		row:         row,
		slots:       make([]slot[C], 0, Config.initialCapacity),
		opQueue:     newOpQueue[C](),
	}
}

func (s *Storage[C]) erased() {}

func (s *Storage[C]) ComponentType() reflect.Type {
	return s.typ
}

func (s *Storage[C]) ElementType() Component {
	return s.elementType
}

// Row returns the row the owning world assigned to C, counting its storages from 0
func (s *Storage[C]) Row() uint32 {
	return s.row
}

// Len returns the number of slots, occupied or not
func (s *Storage[C]) Len() int {
	return len(s.slots)
}

// Count returns the number of occupied slots
func (s *Storage[C]) Count() int {
	return s.count
}

// Insert places value in the entity's slot, growing the storage with empty slots
// when needed. The previous occupant, if any, is returned.
func (s *Storage[C]) Insert(entity Entity, value C) (C, bool) {
	s.checkWrite()
	return s.insert(entity, value)
}

func (s *Storage[C]) insert(entity Entity, value C) (C, bool) {
	index := entity.Index()
	if index >= len(s.slots) {
		s.grow(index + 1)
	}
	sl := &s.slots[index]
	previous, had := sl.value, sl.occupied
	sl.value = value
	sl.occupied = true
	if !had {
		s.count++
	}
	return previous, had
}

// Get returns a copy of the entity's component. Out of bounds and empty slots
// both report false.
func (s *Storage[C]) Get(entity Entity) (C, bool) {
	s.checkRead()
	if sl := s.slotFor(entity); sl != nil {
		return sl.value, true
	}
	var zero C
	return zero, false
}

func (s *Storage[C]) Has(entity Entity) bool {
	s.checkRead()
	return s.slotFor(entity) != nil
}

// GetMut leases the entity's component for mutation. No lease is taken when
// the slot is empty or out of bounds.
func (s *Storage[C]) GetMut(entity Entity) (*Lease[C], bool) {
	s.checkWrite()
	sl := s.slotFor(entity)
	if sl == nil {
		return nil, false
	}
	s.leased = true
	return &Lease[C]{
		storage: s,
		entity:  entity,
		value:   &sl.value,
	}, true
}

// Update calls fn with the entity's component under a lease that is released
// on every exit path. It reports whether the component was present.
func (s *Storage[C]) Update(entity Entity, fn func(*C)) bool {
	lease, ok := s.GetMut(entity)
	if !ok {
		return false
	}
	defer lease.Release()
	fn(lease.Value())
	return true
}

// Remove clears the entity's slot and returns what it held. It never grows the storage.
func (s *Storage[C]) Remove(entity Entity) (C, bool) {
	s.checkWrite()
	return s.remove(entity)
}

func (s *Storage[C]) remove(entity Entity) (C, bool) {
	var zero C
	sl := s.slotFor(entity)
	if sl == nil {
		return zero, false
	}
	previous := sl.value
	sl.value = zero
	sl.occupied = false
	s.count--
	return previous, true
}

// Locked reports whether a cursor or lease currently holds the storage
func (s *Storage[C]) Locked() bool {
	return s.readers > 0 || s.leased
}

func (s *Storage[C]) EnqueueInsert(entity Entity, value C) {
	if !s.Locked() {
		s.insert(entity, value)
		return
	}
	s.opQueue.EnqueueInsert(entity, value)
}

func (s *Storage[C]) EnqueueRemove(entity Entity) {
	if !s.Locked() {
		s.remove(entity)
		return
	}
	s.opQueue.EnqueueRemove(entity)
}

func (s *Storage[C]) Cursor() *Cursor[C] {
	return newCursor(s)
}

// All iterates occupied slots in entity order while holding a read lock
func (s *Storage[C]) All() iter.Seq2[Entity, C] {
	return func(yield func(Entity, C) bool) {
		cursor := s.Cursor()
		defer cursor.Reset()
		for cursor.Next() {
			if !yield(cursor.Entity(), cursor.Value()) {
				return
			}
		}
	}
}

func (s *Storage[C]) slotFor(entity Entity) *slot[C] {
	index := entity.Index()
	if index >= len(s.slots) || !s.slots[index].occupied {
		return nil
	}
	return &s.slots[index]
}

func (s *Storage[C]) grow(size int) {
	if cap(s.slots) < size {
		// Grow by doubling or to size, whichever is larger
		grown := make([]slot[C], len(s.slots), max(size, 2*cap(s.slots)))
		copy(grown, s.slots)
		s.slots = grown
	}
	s.slots = s.slots[:size]
}

func (s *Storage[C]) lockRead() {
	if s.leased {
		s.violation(BorrowedStorageError{Component: s.typ})
	}
	s.readers++
}

func (s *Storage[C]) unlockRead() {
	s.readers--
	s.flush()
}

func (s *Storage[C]) release() {
	s.leased = false
	s.flush()
}

func (s *Storage[C]) flush() {
	if s.Locked() {
		return
	}
	s.processOperationQueue()
}

func (s *Storage[C]) checkRead() {
	if s.leased {
		s.violation(BorrowedStorageError{Component: s.typ})
	}
}

func (s *Storage[C]) checkWrite() {
	s.checkRead()
	if s.readers > 0 {
		s.violation(LockedStorageError{Component: s.typ})
	}
}

func (s *Storage[C]) violation(err error) {
	Config.logger.Error().
		Err(err).
		Str("component", s.typ.String()).
		Msg("storage access violation")
	panic(err)
}

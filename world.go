package depot

import (
	"iter"
	"reflect"
	"sync"

	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

var _ World = &world{}

// One element type token per component type, shared by every world
var elementTypes = struct {
	sync.Mutex
	byType map[reflect.Type]Component
}{byType: make(map[reflect.Type]Component)}

func elementTypeFor[C any]() Component {
	elementTypes.Lock()
	defer elementTypes.Unlock()
	typ := reflect.TypeFor[C]()
	if et, found := elementTypes.byType[typ]; found {
		return et
	}
	et := table.FactoryNewElementType[C]()
	elementTypes.byType[typ] = et
	return et
}

type world struct {
	schema   table.Schema
	entities []Entity
	storages map[reflect.Type]ErasedStorage
	order    []reflect.Type
	present  mask.Mask
}

func newWorld(schema table.Schema) World {
	return &world{
		schema:   schema,
		storages: make(map[reflect.Type]ErasedStorage),
	}
}

// CreateEntity allocates the next entity index, starting at 0
func (w *world) CreateEntity() Entity {
	en := Entity{index: uint32(len(w.entities))}
	w.entities = append(w.entities, en)
	Config.logger.Trace().Int("entity", en.Index()).Msg("entity created")
	return en
}

func (w *world) EntityCount() int {
	return len(w.entities)
}

func (w *world) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, en := range w.entities {
			if !yield(en) {
				return
			}
		}
	}
}

// Storages yields every storage in creation order
func (w *world) Storages() iter.Seq[ErasedStorage] {
	return func(yield func(ErasedStorage) bool) {
		for _, typ := range w.order {
			if !yield(w.storages[typ]) {
				return
			}
		}
	}
}

func (w *world) Schema() table.Schema {
	return w.schema
}

// Mask has one bit marked per existing storage, at the storage's row.
// Storages whose row lies past mask.MaxBits exist but are not marked.
func (w *world) Mask() mask.Mask {
	return w.present
}

func (w *world) lookup(typ reflect.Type) (ErasedStorage, bool) {
	sto, found := w.storages[typ]
	return sto, found
}

// Rows are local to the world and count storages in creation order
func (w *world) nextRow() uint32 {
	return uint32(len(w.order))
}

func (w *world) adopt(sto ErasedStorage) {
	typ := sto.ComponentType()
	w.storages[typ] = sto
	w.order = append(w.order, typ)
	if sto.Row() < uint32(mask.MaxBits) {
		w.present.Mark(sto.Row())
	}
	Config.logger.Debug().
		Str("component", typ.String()).
		Uint32("row", sto.Row()).
		Msg("storage created")
}

// HasStorage reports whether w holds a storage for C
func HasStorage[C any](w World) bool {
	_, found := w.lookup(reflect.TypeFor[C]())
	return found
}

// EnsureStorage returns the storage for C, creating an empty one first if w has none
func EnsureStorage[C any](w World) *Storage[C] {
	if !HasStorage[C](w) {
		elementType := elementTypeFor[C]()
		w.Schema().Register(elementType)
		w.adopt(newStorage[C](elementType, w.nextRow()))
	}
	sto, _ := StorageMutFor[C](w)
	return sto
}

// StorageFor returns read-only access to the storage for C, if one was created
func StorageFor[C any](w World) (View[C], bool) {
	sto, found := w.lookup(reflect.TypeFor[C]())
	if !found {
		return nil, false
	}
	return Downcast[C](sto)
}

func StorageMutFor[C any](w World) (*Storage[C], bool) {
	sto, found := w.lookup(reflect.TypeFor[C]())
	if !found {
		return nil, false
	}
	return DowncastMut[C](sto)
}

package depot

import "fmt"

// Entity is a lightweight handle identifying one row across every component storage
// of a World. Entities are only handed out by World.CreateEntity and are never reused.
type Entity struct {
	index uint32
}

// Index returns the row the entity addresses in each storage
func (e Entity) Index() int {
	return int(e.index)
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d)", e.index)
}

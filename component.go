package depot

import (
	"github.com/TheBitDrifter/table"
)

// Component is the identity token a World registers in its schema for each
// component type it stores. Any Go type may be used as a component.
type Component interface {
	table.ElementType
}

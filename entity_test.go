package depot

import (
	"errors"
	"testing"

	"github.com/TheBitDrifter/table"
)

// Test component types
type Position struct {
	X, Y, Z float64
}

type Velocity struct {
	X, Y float64
}

type Health struct {
	Current, Max int
}

func newTestWorld() World {
	return Factory.NewWorld(table.Factory.NewSchema())
}

// expectPanic runs fn and returns the error it panicked with, failing the test
// when fn returns normally or panics with something other than E
func expectPanic[E error](t *testing.T, fn func()) E {
	t.Helper()
	var got E
	func() {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected panic with %T, got none", got)
			}
			err, ok := r.(error)
			if !ok || !errors.As(err, &got) {
				t.Fatalf("expected panic with %T, got %v", got, r)
			}
		}()
		fn()
	}()
	return got
}

func TestEntityCreation(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"Single entity", 1},
		{"Small batch", 10},
		{"Large batch", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := newTestWorld()

			seen := make(map[int]bool, tt.count)
			for i := 0; i < tt.count; i++ {
				en := world.CreateEntity()
				if en.Index() != i {
					t.Fatalf("Entity %d has index %d", i, en.Index())
				}
				if seen[en.Index()] {
					t.Fatalf("Index %d handed out twice", en.Index())
				}
				seen[en.Index()] = true
			}

			if world.EntityCount() != tt.count {
				t.Errorf("EntityCount() = %d, want %d", world.EntityCount(), tt.count)
			}
		})
	}
}

func TestEntitiesRecordAllocationOrder(t *testing.T) {
	world := newTestWorld()
	created := []Entity{world.CreateEntity(), world.CreateEntity(), world.CreateEntity()}

	i := 0
	for en := range world.Entities() {
		if en != created[i] {
			t.Errorf("Entities()[%d] = %v, want %v", i, en, created[i])
		}
		i++
	}
	if i != len(created) {
		t.Errorf("Entities() yielded %d entities, want %d", i, len(created))
	}
}

func TestEntitiesAreIndependentPerWorld(t *testing.T) {
	first := newTestWorld()
	second := newTestWorld()

	first.CreateEntity()
	first.CreateEntity()

	if en := second.CreateEntity(); en.Index() != 0 {
		t.Errorf("First entity of a fresh world has index %d, want 0", en.Index())
	}
}

func TestEntityString(t *testing.T) {
	world := newTestWorld()
	world.CreateEntity()
	en := world.CreateEntity()

	if got := en.String(); got != "Entity(1)" {
		t.Errorf("String() = %q, want %q", got, "Entity(1)")
	}
}

package depot

import (
	"testing"
)

func TestLeaseMutatesInPlace(t *testing.T) {
	world := newTestWorld()
	en := world.CreateEntity()
	positions := EnsureStorage[Position](world)
	positions.Insert(en, Position{X: 1})

	lease, ok := positions.GetMut(en)
	if !ok {
		t.Fatalf("GetMut() reported no component")
	}
	lease.Value().X = 10
	lease.Value().Y = 20
	lease.Release()

	if got, _ := positions.Get(en); got != (Position{X: 10, Y: 20}) {
		t.Errorf("Get() after lease = %+v, want %+v", got, Position{X: 10, Y: 20})
	}
	if lease.Entity() != en {
		t.Errorf("Lease.Entity() = %v, want %v", lease.Entity(), en)
	}
}

func TestLeaseExcludesOtherAccess(t *testing.T) {
	world := newTestWorld()
	en := world.CreateEntity()
	other := world.CreateEntity()
	positions := EnsureStorage[Position](world)
	positions.Insert(en, Position{})
	positions.Insert(other, Position{})

	tests := []struct {
		name string
		call func()
	}{
		{"Get", func() { positions.Get(other) }},
		{"Has", func() { positions.Has(en) }},
		{"Insert", func() { positions.Insert(other, Position{}) }},
		{"Remove", func() { positions.Remove(en) }},
		{"GetMut", func() { positions.GetMut(other) }},
		{"Update", func() { positions.Update(en, func(*Position) {}) }},
		{"Cursor", func() { positions.Cursor().Next() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lease, _ := positions.GetMut(en)
			defer lease.Release()

			err := expectPanic[BorrowedStorageError](t, tt.call)
			if err.Component != positions.ComponentType() {
				t.Errorf("BorrowedStorageError.Component = %v, want %v", err.Component, positions.ComponentType())
			}
		})
	}

	if positions.Locked() {
		t.Errorf("Storage still locked after every lease was released")
	}
}

func TestLeaseDoesNotBlockOtherStorages(t *testing.T) {
	world := newTestWorld()
	en := world.CreateEntity()
	positions := EnsureStorage[Position](world)
	velocities := EnsureStorage[Velocity](world)
	positions.Insert(en, Position{})

	lease, _ := positions.GetMut(en)
	defer lease.Release()

	velocities.Insert(en, Velocity{X: 1})
	if got, ok := velocities.Get(en); !ok || got.X != 1 {
		t.Errorf("Velocity Get() during Position lease = %+v, %v", got, ok)
	}
}

func TestReleasedLease(t *testing.T) {
	world := newTestWorld()
	en := world.CreateEntity()
	positions := EnsureStorage[Position](world)
	positions.Insert(en, Position{})

	lease, _ := positions.GetMut(en)
	lease.Release()
	lease.Release()

	if positions.Locked() {
		t.Fatalf("Storage locked after release")
	}

	err := expectPanic[ReleasedLeaseError](t, func() { lease.Value() })
	if err.Entity != en {
		t.Errorf("ReleasedLeaseError.Entity = %v, want %v", err.Entity, en)
	}

	// A fresh lease is available again
	again, ok := positions.GetMut(en)
	if !ok {
		t.Fatalf("GetMut() after release reported no component")
	}
	again.Release()
}

func TestUpdate(t *testing.T) {
	world := newTestWorld()
	en := world.CreateEntity()
	health := EnsureStorage[Health](world)
	health.Insert(en, Health{Current: 10, Max: 10})

	ok := health.Update(en, func(h *Health) {
		h.Current -= 3
	})
	if !ok {
		t.Fatalf("Update() reported no component")
	}
	if got, _ := health.Get(en); got.Current != 7 {
		t.Errorf("Current = %d after Update, want 7", got.Current)
	}
}

func TestUpdateReleasesOnPanic(t *testing.T) {
	world := newTestWorld()
	en := world.CreateEntity()
	health := EnsureStorage[Health](world)
	health.Insert(en, Health{Current: 10, Max: 10})

	func() {
		defer func() { recover() }()
		health.Update(en, func(h *Health) {
			h.Current = 1
			panic("boom")
		})
	}()

	if health.Locked() {
		t.Fatalf("Storage left locked after Update panicked")
	}
	if got, _ := health.Get(en); got.Current != 1 {
		t.Errorf("Current = %d, want 1", got.Current)
	}
}

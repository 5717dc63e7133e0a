/*
Package depot provides a minimal entity/component storage core.

Depot keeps one dense storage per component type. Entities are plain indices, and a
component of type C for entity e lives in slot e of the storage for C. Storages of
unrelated types are held together by a World in type-erased form and recovered to
their concrete type on access.

Core Concepts:

  - Entity: An index handle, allocated densely from 0 and never reused.
  - Storage: A dense slice of optional values of one component type.
  - World: The entity allocator plus one storage per component type.
  - Lease: Exclusive mutable access to one component value.
  - Cursor: Iteration over the occupied slots of one storage.

Basic Usage:

	schema := table.Factory.NewSchema()
	world := depot.Factory.NewWorld(schema)

	player := world.CreateEntity()
	enemy := world.CreateEntity()

	positions := depot.EnsureStorage[Position](world)
	positions.Insert(player, Position{X: 0})
	positions.Insert(enemy, Position{X: 1})

	positions.Update(enemy, func(pos *Position) {
		pos.X += 1
	})

	for en, pos := range positions.All() {
		fmt.Println(en, pos)
	}

Access Rules:

A storage panics rather than allow aliased access. While a Lease is live every other
access to that storage panics with BorrowedStorageError. While a Cursor is iterating,
Insert, Remove and GetMut panic with LockedStorageError; EnqueueInsert and EnqueueRemove
defer the change until the storage is released.
*/
package depot

package depot

// Storage returns the world's storage for T, creating it if needed
func (c AccessibleComponent[T]) Storage(w World) *Storage[T] {
	return EnsureStorage[T](w)
}

// Check determines if the world holds a storage for T
func (c AccessibleComponent[T]) Check(w World) bool {
	return HasStorage[T](w)
}

// GetFromEntity retrieves a copy of the entity's T, if the world has one
func (c AccessibleComponent[T]) GetFromEntity(w World, entity Entity) (T, bool) {
	view, ok := StorageFor[T](w)
	if !ok {
		var zero T
		return zero, false
	}
	return view.Get(entity)
}

// SetForEntity stores value as the entity's T and returns the replaced value
func (c AccessibleComponent[T]) SetForEntity(w World, entity Entity, value T) (T, bool) {
	return c.Storage(w).Insert(entity, value)
}

// UpdateForEntity mutates the entity's T in place under a lease
func (c AccessibleComponent[T]) UpdateForEntity(w World, entity Entity, fn func(*T)) bool {
	sto, ok := StorageMutFor[T](w)
	if !ok {
		return false
	}
	return sto.Update(entity, fn)
}

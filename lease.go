package depot

// Value returns the leased component for in-place mutation
func (l *Lease[C]) Value() *C {
	if l.released {
		l.storage.violation(ReleasedLeaseError{
			Component: l.storage.typ,
			Entity:    l.entity,
		})
	}
	return l.value
}

// Entity returns the entity whose component is leased
func (l *Lease[C]) Entity() Entity {
	return l.entity
}

// Release ends the lease and applies any operations queued while it was live.
// Releasing twice is a no-op.
func (l *Lease[C]) Release() {
	if l.released {
		return
	}
	l.released = true
	l.value = nil
	l.storage.release()
}

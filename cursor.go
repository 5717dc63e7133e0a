package depot

var _ iCursor[struct{}] = &Cursor[struct{}]{}

func newCursor[C any](storage *Storage[C]) *Cursor[C] {
	return &Cursor[C]{
		storage:   storage,
		slotIndex: -1,
	}
}

// Next advances to the next occupied slot. The first call locks the storage
// against mutation and exhausting the cursor unlocks it.
func (c *Cursor[C]) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.slotIndex++; c.slotIndex < len(c.storage.slots); c.slotIndex++ {
		if c.storage.slots[c.slotIndex].occupied {
			return true
		}
	}
	c.Reset()
	return false
}

func (c *Cursor[C]) initialize() {
	c.storage.lockRead()
	c.slotIndex = -1
	c.initialized = true
}

// Entity panics with CursorPositionError unless Next last returned true
func (c *Cursor[C]) Entity() Entity {
	c.checkPosition()
	return Entity{index: uint32(c.slotIndex)}
}

// Value returns a copy of the component at the cursor position
func (c *Cursor[C]) Value() C {
	c.checkPosition()
	return c.storage.slots[c.slotIndex].value
}

func (c *Cursor[C]) checkPosition() {
	if !c.initialized || c.slotIndex < 0 || c.slotIndex >= len(c.storage.slots) {
		c.storage.violation(CursorPositionError{Component: c.storage.typ})
	}
}

// Reset unlocks the storage and rewinds the cursor. It is safe to call on a
// cursor that never started or already finished.
func (c *Cursor[C]) Reset() {
	c.slotIndex = -1
	if !c.initialized {
		return
	}
	c.initialized = false
	c.storage.unlockRead()
}

func (c *Cursor[C]) Remaining() int {
	remaining := 0
	for i := max(c.slotIndex+1, 0); i < len(c.storage.slots); i++ {
		if c.storage.slots[i].occupied {
			remaining++
		}
	}
	return remaining
}

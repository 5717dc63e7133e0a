package depot

type operation[C any] struct {
	typ    operationType
	entity Entity
	value  C
}

type operationType int

const (
	opInsert operationType = iota
	opRemove
)

type opQueue[C any] struct {
	ops         []operation[C]
	pendingMods map[Entity]int
}

func newOpQueue[C any]() opQueue[C] {
	return opQueue[C]{
		pendingMods: make(map[Entity]int),
	}
}

func (q *opQueue[C]) EnqueueInsert(entity Entity, value C) {
	q.enqueueOp(operation[C]{typ: opInsert, entity: entity, value: value})
}

func (q *opQueue[C]) EnqueueRemove(entity Entity) {
	q.enqueueOp(operation[C]{typ: opRemove, entity: entity})
}

// If the entity already has a pending operation, the newer one replaces it
func (q *opQueue[C]) enqueueOp(op operation[C]) {
	if existingIdx, exists := q.pendingMods[op.entity]; exists {
		q.ops[existingIdx] = op
		return
	}
	q.pendingMods[op.entity] = len(q.ops)
	q.ops = append(q.ops, op)
}

func (q *opQueue[C]) Len() int {
	return len(q.ops)
}

func (s *Storage[C]) processOperationQueue() {
	if len(s.opQueue.ops) == 0 {
		return
	}
	for _, op := range s.opQueue.ops {
		switch op.typ {
		case opInsert:
			s.insert(op.entity, op.value)
		case opRemove:
			s.remove(op.entity)
		}
	}
	Config.logger.Trace().
		Str("component", s.typ.String()).
		Int("operations", len(s.opQueue.ops)).
		Msg("processed queued operations")

	// Clear the queue, dropping references held by queued values
	clear(s.opQueue.ops)
	s.opQueue.ops = s.opQueue.ops[:0]
	clear(s.opQueue.pendingMods)
}

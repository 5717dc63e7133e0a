package depot

import (
	"github.com/TheBitDrifter/table"
	"github.com/rs/zerolog"
)

type factory struct{}

var Factory factory

func (f factory) NewWorld(schema table.Schema) World {
	return newWorld(schema)
}

// NewLogger wraps logger, falling back to a no-op logger when it is nil
func (f factory) NewLogger(logger *zerolog.Logger) Logger {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return Logger{Logger: logger}
}

func FactoryNewComponent[T any]() AccessibleComponent[T] {
	return AccessibleComponent[T]{}
}

func FactoryNewCursor[C any](storage *Storage[C]) *Cursor[C] {
	return newCursor(storage)
}

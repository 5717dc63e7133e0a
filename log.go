package depot

import (
	"github.com/rs/zerolog"
)

// Logger writes structured snapshots of a world's storages
type Logger struct {
	*zerolog.Logger
}

func (_ *Logger) loadStorageIntoArrayLogger(sto ErasedStorage, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Str("component", sto.ComponentType().String())
	dictLogger = dictLogger.Uint32("row", sto.Row())
	dictLogger = dictLogger.Int("slots", sto.Len())
	dictLogger = dictLogger.Int("occupied", sto.Count())
	return arrayLogger.Dict(dictLogger)
}

// LogStorages logs every storage of the world with its size and occupancy
func (l *Logger) LogStorages(w World, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	total := 0
	arrayLogger := zerolog.Arr()
	for sto := range w.Storages() {
		arrayLogger = l.loadStorageIntoArrayLogger(sto, arrayLogger)
		total++
	}
	zeroLoggerEvent.Int("total_entities", w.EntityCount())
	zeroLoggerEvent.Int("total_storages", total)
	zeroLoggerEvent.Array("storages", arrayLogger)
	zeroLoggerEvent.Send()
}

// LogEntity logs which component types the entity currently has
func (l *Logger) LogEntity(w World, level zerolog.Level, entity Entity) {
	zeroLoggerEvent := l.WithLevel(level)
	arrayLogger := zerolog.Arr()
	for sto := range w.Storages() {
		if sto.Has(entity) {
			arrayLogger = arrayLogger.Str(sto.ComponentType().String())
		}
	}
	zeroLoggerEvent.Int("entity", entity.Index())
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Send()
}

// CreateComponentLogger creates a sub logger with the entry {"component": name}
func (l *Logger) CreateComponentLogger(sto ErasedStorage) Logger {
	zeroLogger := l.Logger.With().
		Str("component", sto.ComponentType().String()).
		Logger()
	return Logger{
		&zeroLogger,
	}
}

package depot

import "reflect"

// DowncastMut recovers the concrete storage behind s when it stores C.
// A storage of any other component type reports false.
func DowncastMut[C any](s ErasedStorage) (*Storage[C], bool) {
	if s == nil || s.ComponentType() != reflect.TypeFor[C]() {
		return nil, false
	}
	typed, ok := s.(*Storage[C])
	return typed, ok
}

// Downcast is DowncastMut narrowed to read-only access
func Downcast[C any](s ErasedStorage) (View[C], bool) {
	typed, ok := DowncastMut[C](s)
	if !ok {
		return nil, false
	}
	return typed, true
}

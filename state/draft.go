package state

import (
	"reflect"

	clone "github.com/huandu/go-clone"
)

// Cloner lets a value type control how Update copies it into a draft.
type Cloner[T any] interface {
	Clone() T
}

// Draft returns a deep copy of value that a recipe may mutate freely.
// Values implementing Cloner are copied with their own Clone method.
// Nil values are returned as is.
func Draft[T any](value T) T {
	if isNil(value) {
		return value
	}
	if c, ok := any(value).(Cloner[T]); ok {
		return c.Clone()
	}
	copied, ok := clone.Clone(value).(T)
	if !ok {
		// nil interface values come back untyped.
		var zero T
		return zero
	}
	return copied
}

func isNil[T any](value T) bool {
	v := reflect.ValueOf(&value).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

package state

import "reflect"

// Same reports whether a and b are the same value for change detection.
//
// Reference kinds (pointers, maps, channels, slices) compare by address, so
// a freshly allocated copy is never the same as the original even when the
// contents match. Slices with zero capacity share one base address, so a
// copy of an empty or nil slice is the same as the original. Plain comparable
// values compare with ==. Funcs and
// non-comparable structs or arrays are never the same unless both are nil funcs.
func Same[T any](a, b T) bool {
	return same(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

func same(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return same(a.Elem(), b.Elem())
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.Cap() == b.Cap()
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	}
	if !a.Comparable() || !b.Comparable() {
		return false
	}
	return a.Equal(b)
}

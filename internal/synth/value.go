package synth

import "reflect"

// Copier is a value exposing a structural copy operation. Defaults that
// implement it (or are plain maps/slices) are copied into each new
// instance instead of being shared.
type Copier interface {
	Copy() any
}

// copyable reports whether a default value exposes a copy operation.
func copyable(v any) bool {
	if _, ok := v.(Copier); ok {
		return true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

// copyValue makes a shallow structural copy of v.
func copyValue(v any) any {
	if c, ok := v.(Copier); ok {
		return c.Copy()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), iter.Value())
		}
		return out.Interface()

	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(out, rv)
		return out.Interface()

	default:
		return v
	}
}

// sameValue reports value identity, not equality: an argument that merely
// equals a default but is a distinct object must not be treated as the
// default. Reference kinds compare by address; comparable kinds compare
// directly (identity and equality coincide for them).
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Len() == rb.Len() && ra.UnsafePointer() == rb.UnsafePointer()
	default:
		return ra.Comparable() && a == b
	}
}

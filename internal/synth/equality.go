package synth

import (
	"reflect"

	"record-forge/schema"
)

// NewEquality synthesizes equality for a schema. Two instances are equal
// iff they are of the exact same type (same schema identity, never a
// compatible subtype) and every non-internal field compares equal, in
// merged order, against live values.
func NewEquality(m *schema.Merged) func(a, b Object) bool {
	return func(a, b Object) bool {
		if a == nil || b == nil {
			return a == b
		}
		return equalObjects(a, b)
	}
}

func equalObjects(a, b Object) bool {
	if a.Schema() != b.Schema() {
		return false
	}

	for _, f := range a.Schema().Visible() {
		va, oka := fieldValue(a, f)
		vb, okb := fieldValue(b, f)
		if oka != okb {
			return false
		}
		if oka && !equalValues(va, vb) {
			return false
		}
	}
	return true
}

// equalValues compares two field values, descending through containers so
// nested record instances compare by their own synthesized equality.
func equalValues(x, y any) bool {
	if xo, ok := x.(Object); ok {
		yo, ok := y.(Object)
		return ok && equalObjects(xo, yo)
	}
	if _, ok := y.(Object); ok {
		return false
	}

	rx, ry := reflect.ValueOf(x), reflect.ValueOf(y)
	if rx.IsValid() != ry.IsValid() {
		return false
	}
	if !rx.IsValid() {
		return true // both nil
	}
	if rx.Type() != ry.Type() {
		return false
	}

	switch rx.Kind() {
	case reflect.Slice, reflect.Array:
		if rx.Len() != ry.Len() {
			return false
		}
		for i := 0; i < rx.Len(); i++ {
			if !equalValues(rx.Index(i).Interface(), ry.Index(i).Interface()) {
				return false
			}
		}
		return true

	case reflect.Map:
		if rx.Len() != ry.Len() {
			return false
		}
		iter := rx.MapRange()
		for iter.Next() {
			yv := ry.MapIndex(iter.Key())
			if !yv.IsValid() || !equalValues(iter.Value().Interface(), yv.Interface()) {
				return false
			}
		}
		return true

	default:
		return reflect.DeepEqual(x, y)
	}
}

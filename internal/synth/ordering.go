package synth

import (
	"fmt"
	"reflect"
	"strings"

	"record-forge/schema"
)

// NewOrdering synthesizes less-than for a schema: lexicographic
// comparison over the non-internal field sequence. Comparison is defined
// between a type and its descendants; unrelated types report an
// unsupported comparison instead of a field-by-field crash.
func NewOrdering(m *schema.Merged) func(a, b Object) (bool, error) {
	return func(a, b Object) (bool, error) {
		c, err := compareObjects(a, b)
		return c < 0, err
	}
}

func compareObjects(a, b Object) (int, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: nil instance", ErrUnsupportedComparison)
	}
	if !schema.Related(a.Schema(), b.Schema()) {
		return 0, fmt.Errorf("%w: %s and %s are unrelated",
			ErrUnsupportedComparison, a.Schema().TypeName, b.Schema().TypeName)
	}

	fa, fb := a.Schema().Visible(), b.Schema().Visible()
	n := min(len(fa), len(fb))
	for i := 0; i < n; i++ {
		va, _ := fieldValue(a, fa[i])
		vb, _ := fieldValue(b, fb[i])
		c, err := compareValues(va, vb)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", fa[i].Name, err)
		}
		if c != 0 {
			return c, nil
		}
	}
	// A descendant with extra fields sorts after its ancestor's prefix.
	return len(fa) - len(fb), nil
}

// compareValues orders two field values: numerics (exact within a kind
// family, via float64 across families), strings, bools, and sequences
// lexicographically. Everything else is not orderable.
func compareValues(x, y any) (int, error) {
	if x == nil || y == nil {
		if x == nil && y == nil {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: nil value", ErrUnsupportedComparison)
	}

	if xo, ok := x.(Object); ok {
		if yo, ok := y.(Object); ok {
			return compareObjects(xo, yo)
		}
		return 0, fmt.Errorf("%w: record vs %T", ErrUnsupportedComparison, y)
	}

	rx, ry := reflect.ValueOf(x), reflect.ValueOf(y)

	if isNumeric(rx.Kind()) && isNumeric(ry.Kind()) {
		return compareNumeric(rx, ry), nil
	}

	switch {
	case rx.Kind() == reflect.String && ry.Kind() == reflect.String:
		return strings.Compare(rx.String(), ry.String()), nil

	case rx.Kind() == reflect.Bool && ry.Kind() == reflect.Bool:
		return boolInt(rx.Bool()) - boolInt(ry.Bool()), nil

	case isSequence(rx.Kind()) && isSequence(ry.Kind()):
		n := min(rx.Len(), ry.Len())
		for i := 0; i < n; i++ {
			c, err := compareValues(rx.Index(i).Interface(), ry.Index(i).Interface())
			if err != nil || c != 0 {
				return c, err
			}
		}
		return rx.Len() - ry.Len(), nil

	default:
		return 0, fmt.Errorf("%w: %T vs %T", ErrUnsupportedComparison, x, y)
	}
}

func compareNumeric(x, y reflect.Value) int {
	if isInt(x.Kind()) && isInt(y.Kind()) {
		return cmpOrdered(x.Int(), y.Int())
	}
	if isUint(x.Kind()) && isUint(y.Kind()) {
		return cmpOrdered(x.Uint(), y.Uint())
	}
	return cmpOrdered(toFloat(x), toFloat(y))
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v.Kind()):
		return float64(v.Int())
	case isUint(v.Kind()):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func cmpOrdered[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isSequence(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

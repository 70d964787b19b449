package structural

import (
	"reflect"

	"record-forge/record"
)

// AsMap recursively converts an instance into a plain map of field names
// to values, internal fields included. Nested instances, maps, slices
// and arrays are converted in depth.
func AsMap(inst *record.Instance) map[string]any {
	return instanceMap(inst)
}

// AsTuple recursively converts an instance into a slice of its field
// values in definition order, internal fields included.
func AsTuple(inst *record.Instance) []any {
	fields := inst.Type().Fields(true)
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		v, err := inst.Get(f.Name)
		if err != nil {
			continue
		}
		out = append(out, tupleValue(v))
	}
	return out
}

// Replace constructs a new instance of the same type with the named
// fields overridden; the original instance is left untouched.
func Replace(inst *record.Instance, changes map[string]any) (*record.Instance, error) {
	kwargs := inst.Values(true)
	for name, v := range changes {
		kwargs[name] = v
	}
	return inst.Type().NewWith(nil, kwargs)
}

func instanceMap(inst *record.Instance) map[string]any {
	out := make(map[string]any)
	for name, v := range inst.Values(true) {
		out[name] = mapValue(v)
	}
	return out
}

func mapValue(v any) any {
	return recurse(v, mapValue, instanceMap)
}

func tupleValue(v any) any {
	return recurse(v, tupleValue, func(inst *record.Instance) any {
		return AsTuple(inst)
	})
}

// recurse walks one value, converting nested instances with conv and
// copying any containers encountered on the way.
func recurse[T any](v any, each func(any) any, conv func(*record.Instance) T) any {
	if inst, ok := v.(*record.Instance); ok {
		return conv(inst)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = each(rv.Index(i).Interface())
		}
		return out

	case reflect.Map:
		out := make(map[any]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[each(iter.Key().Interface())] = each(iter.Value().Interface())
		}
		return out

	default:
		return v
	}
}

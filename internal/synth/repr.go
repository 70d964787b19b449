package synth

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"record-forge/schema"
)

// ellipsisMark replaces a value that is already being rendered higher up
// the call, so direct self-references and longer cycles both terminate.
const ellipsisMark = "..."

// unsetMark renders a declared field that holds no value (possible after
// a slot delete or when construction was disabled).
const unsetMark = "<unset>"

// visiting is the per-call set of instances currently being rendered,
// keyed by instance identity.
type visiting map[Object]struct{}

// NewRepr synthesizes the textual representation for a schema:
// "TypeName(field=value, ...)" over the non-internal fields, or over all
// fields when internals are not hidden.
func NewRepr(m *schema.Merged) func(o Object) string {
	return func(o Object) string {
		return reprObject(o, make(visiting))
	}
}

func reprObject(o Object, seen visiting) string {
	if _, active := seen[o]; active {
		return ellipsisMark
	}
	seen[o] = struct{}{}
	defer delete(seen, o)

	m := o.Schema()
	specs := m.Visible()
	if !m.Options.HideInternals {
		specs = make([]*schema.FieldSpec, len(m.Fields))
		for i := range m.Fields {
			specs[i] = &m.Fields[i]
		}
	}

	var b strings.Builder
	b.WriteString(m.TypeName)
	b.WriteByte('(')
	for i, f := range specs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		if v, ok := fieldValue(o, f); ok {
			b.WriteString(formatValue(v, seen))
		} else {
			b.WriteString(unsetMark)
		}
	}
	b.WriteByte(')')
	return b.String()
}

// formatValue renders one field value, descending through containers so
// nested record instances render through the same cycle guard.
func formatValue(v any, seen visiting) string {
	switch vv := v.(type) {
	case nil:
		return "nil"
	case Object:
		return reprObject(vv, seen)
	case string:
		return strconv.Quote(vv)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			parts[i] = formatValue(rv.Index(i).Interface(), seen)
		}
		return "[" + strings.Join(parts, ", ") + "]"

	case reflect.Map:
		parts := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			parts = append(parts,
				formatValue(iter.Key().Interface(), seen)+":"+formatValue(iter.Value().Interface(), seen))
		}
		sort.Strings(parts)
		return "map[" + strings.Join(parts, " ") + "]"

	default:
		return fmt.Sprintf("%v", v)
	}
}

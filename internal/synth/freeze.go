package synth

import (
	"fmt"

	"record-forge/schema"
)

// NewWriteGate synthesizes the attribute write and delete entry points.
// For a frozen type both reject every mutation unconditionally, whatever
// the field name; the constructor bypasses the gate through the raw
// path. For all other types the gate forwards to storage, which still
// rejects unknown fields on fixed layouts.
func NewWriteGate(m *schema.Merged) (
	set func(o Object, name string, v any) error,
	del func(o Object, name string) error,
) {
	if m.Options.Frozen {
		set = func(_ Object, name string, _ any) error {
			return fmt.Errorf("%w: cannot set %s.%s", ErrImmutable, m.TypeName, name)
		}
		del = func(_ Object, name string) error {
			return fmt.Errorf("%w: cannot delete %s.%s", ErrImmutable, m.TypeName, name)
		}
		return set, del
	}

	set = func(o Object, name string, v any) error {
		return o.SetRaw(name, v)
	}
	del = func(o Object, name string) error {
		return o.DeleteRaw(name)
	}
	return set, del
}

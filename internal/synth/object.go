package synth

import "record-forge/schema"

// Object is the minimal view of a record instance the synthesized
// behaviors operate on. Raw, SetRaw and DeleteRaw are the privileged
// storage paths: they bypass the immutability gate.
type Object interface {
	// Schema returns the instance's merged schema. Schema identity is
	// type identity: two instances are of the same type iff their
	// schemas are the same pointer.
	Schema() *schema.Merged
	// Raw reads a field's stored value. It reports false for a field
	// that was never assigned or whose slot was cleared; it never falls
	// back to class-level defaults.
	Raw(name string) (any, bool)
	// SetRaw writes a field value directly into storage.
	SetRaw(name string, v any) error
	// DeleteRaw removes a field value from storage.
	DeleteRaw(name string) error
}

// fieldValue resolves a field's live value. Flexible fields fall back to
// the class-level default when unset; slot-backed fields never do, since
// a fixed-layout field is per-instance by construction.
func fieldValue(o Object, f *schema.FieldSpec) (any, bool) {
	if v, ok := o.Raw(f.Name); ok {
		return v, true
	}
	if f.Layout == schema.LayoutFlexible && f.HasDefault {
		if def, ok := f.Default.(schema.Deferred); ok {
			return def.Make(), true
		}
		return f.Default, true
	}
	return nil, false
}

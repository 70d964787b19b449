package record

import (
	"fmt"

	"record-forge/schema"
)

// unsetSlot marks a slot that holds no value.
type unsetMarker struct{}

var unsetSlot any = unsetMarker{}

// Instance is one value of a synthesized record type. Field values live
// either in fixed slots or in a flexible attribute map, per the type's
// storage layout.
type Instance struct {
	typ   *Type
	slots []any
	attrs map[string]any
}

// Type returns the instance's record type.
func (i *Instance) Type() *Type {
	return i.typ
}

// Schema returns the instance's merged schema. Schema identity is type
// identity.
func (i *Instance) Schema() *schema.Merged {
	return i.typ.merged
}

// Raw reads a field's stored value, bypassing default fallback. Part of
// the privileged storage path used by the synthesized behaviors.
func (i *Instance) Raw(name string) (any, bool) {
	if idx, ok := i.typ.merged.SlotIndex[name]; ok {
		v := i.slots[idx]
		if v == unsetSlot {
			return nil, false
		}
		return v, true
	}
	if i.attrs == nil {
		return nil, false
	}
	v, ok := i.attrs[name]
	return v, ok
}

// SetRaw writes a field value directly into storage, bypassing the
// immutability gate. This is the low-level path the constructor uses;
// ordinary code should call Set.
func (i *Instance) SetRaw(name string, v any) error {
	if idx, ok := i.typ.merged.SlotIndex[name]; ok {
		i.slots[idx] = v
		return nil
	}
	if i.attrs == nil {
		return fmt.Errorf("%w: %s has no field %q (fixed layout)",
			ErrArgument, i.typ.Name(), name)
	}
	i.attrs[name] = v
	return nil
}

// DeleteRaw removes a field value from storage, bypassing the
// immutability gate.
func (i *Instance) DeleteRaw(name string) error {
	if idx, ok := i.typ.merged.SlotIndex[name]; ok {
		if i.slots[idx] == unsetSlot {
			return fmt.Errorf("%w: %s.%s is not set", ErrArgument, i.typ.Name(), name)
		}
		i.slots[idx] = unsetSlot
		return nil
	}
	if i.attrs != nil {
		if _, ok := i.attrs[name]; ok {
			delete(i.attrs, name)
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no field %q", ErrArgument, i.typ.Name(), name)
}

// Get reads a field's live value. Flexible fields fall back to the
// class-level default when unset; slot-backed fields do not, since their
// values are per-instance by construction.
func (i *Instance) Get(name string) (any, error) {
	if v, ok := i.Raw(name); ok {
		return v, nil
	}

	if f, ok := i.typ.merged.Field(name); ok {
		if f.Layout == schema.LayoutFlexible && f.HasDefault {
			if def, isDeferred := f.Default.(schema.Deferred); isDeferred {
				return def.Make(), nil
			}
			return f.Default, nil
		}
		return nil, fmt.Errorf("%w: %s.%s is not set", ErrArgument, i.typ.Name(), name)
	}
	return nil, fmt.Errorf("%w: %s has no field %q", ErrArgument, i.typ.Name(), name)
}

// Set writes a field through the attribute gate: frozen types reject it,
// fixed layouts reject unknown names, flexible instances accept new
// attributes.
func (i *Instance) Set(name string, v any) error {
	return i.typ.setFn(i, name, v)
}

// Delete removes a field through the attribute gate.
func (i *Instance) Delete(name string) error {
	return i.typ.delFn(i, name)
}

// Equal reports whether both instances are of the exact same type with
// all non-internal fields equal. Without generated equality it degrades
// to identity, matching the host's default.
func (i *Instance) Equal(other *Instance) bool {
	if i.typ.equal == nil || other == nil {
		return i == other
	}
	return i.typ.equal(i, other)
}

// Less reports lexicographic order against other. Ordering across
// unrelated types, or on a type without generated ordering, reports
// ErrUnsupportedComparison rather than crashing field by field.
func (i *Instance) Less(other *Instance) (bool, error) {
	if i.typ.less == nil {
		return false, fmt.Errorf("%w: %s does not generate ordering",
			ErrUnsupportedComparison, i.typ.Name())
	}
	if other == nil {
		return false, fmt.Errorf("%w: nil instance", ErrUnsupportedComparison)
	}
	return i.typ.less(i, other)
}

// Hash returns the instance's stable hash.
func (i *Instance) Hash() (uint64, error) {
	if i.typ.hashFn == nil {
		return 0, fmt.Errorf("%w: type %s", ErrUnhashable, i.typ.Name())
	}
	return i.typ.hashFn(i)
}

// String renders the generated representation, or a plain placeholder
// when representation is not generated.
func (i *Instance) String() string {
	if i.typ.reprFn == nil {
		return fmt.Sprintf("<%s instance>", i.typ.Name())
	}
	return i.typ.reprFn(i)
}

// Iter returns the live non-internal field values in merged order.
func (i *Instance) Iter() ([]any, error) {
	if i.typ.iterFn == nil {
		return nil, configProblem(i.typ.Name(), "iteration not generated")
	}
	return i.typ.iterFn(i), nil
}

// Values returns the instance's fields and their live values. internals
// selects whether internal fields are included. Unset fields are
// omitted.
func (i *Instance) Values(internals bool) map[string]any {
	out := make(map[string]any)
	for _, f := range i.typ.Fields(internals) {
		if v, err := i.Get(f.Name); err == nil {
			out[f.Name] = v
		}
	}
	return out
}

// Call invokes a user member attached to the type.
func (i *Instance) Call(name string, args []any, kwargs map[string]any) (any, error) {
	m, ok := i.typ.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no member %q", ErrArgument, i.typ.Name(), name)
	}
	return m(i, args, nonNilKwargs(kwargs))
}

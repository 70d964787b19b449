package schema

// Layout describes where a field's per-instance value is stored.
type Layout int

const (
	// LayoutFlexible stores the field in the instance's attribute map.
	LayoutFlexible Layout = iota
	// LayoutFixed stores the field in a preallocated slot.
	LayoutFixed
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case LayoutFlexible:
		return "flexible"
	case LayoutFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Decl is a single field declaration as supplied by the type author.
// Type is a textual type expression; it may be wrapped in hint markers
// such as Internal[...] or Hashed[...].
type Decl struct {
	Name       string
	Type       string
	HasDefault bool
	Default    any
}

// FieldSpec describes one fully resolved field of a merged schema.
type FieldSpec struct {
	// Name is the field name. Names beginning with '_' are internal.
	Name string
	// Type is the declared type expression with hint wrappers stripped.
	Type string
	// HasDefault reports whether the field carries a default value.
	HasDefault bool
	// Default is the class-level default value (or a Deferred marker).
	Default any
	// Layout selects fixed-slot or flexible-map storage for the field.
	Layout Layout
	// Internal excludes the field from representation, equality, hashing,
	// ordering and iteration under the default visibility rules.
	Internal bool
	// Hashed opts the field into the generated hash explicitly.
	Hashed bool
	// Position is the field's index in the merged list: its position at
	// first introduction, scanning oldest ancestor first, then self.
	Position int
}

// Deferred marks a default value that is produced anew for every
// construction instead of being shared at the class level.
type Deferred struct {
	Make func() any
}

// Merged is the resolved schema for exactly one record type.
// It is built once at definition time and never mutated afterwards.
type Merged struct {
	// TypeName is the record type's name.
	TypeName string
	// Fields is the ordered merged field list.
	Fields []FieldSpec
	// Options is the resolved behavioral option set.
	Options Options
	// Parents lists the schemas of the direct ancestors in composition
	// order (the order their fields and options were merged in).
	Parents []*Merged
	// SlotIndex maps each fixed-layout field name to its slot index.
	// Empty for fully flexible types.
	SlotIndex map[string]int
	// NewSlots lists the slot names introduced by this type, i.e. the
	// fixed fields not already fixed by an ancestor.
	NewSlots []string

	byName  map[string]int
	visible []int
	hashed  []int
}

// Seal finalizes the merged schema's derived lookup structures.
// It must be called exactly once, after the field list is complete.
func (m *Merged) Seal() {
	m.byName = make(map[string]int, len(m.Fields))
	for i := range m.Fields {
		f := &m.Fields[i]
		m.byName[f.Name] = i
		if !f.Internal {
			m.visible = append(m.visible, i)
		}
		if f.Hashed {
			m.hashed = append(m.hashed, i)
		}
	}
}

// Field returns the spec for the named field.
func (m *Merged) Field(name string) (*FieldSpec, bool) {
	i, ok := m.byName[name]
	if !ok {
		return nil, false
	}
	return &m.Fields[i], true
}

// Visible returns the non-internal fields in merged order. The returned
// slice aliases the schema and must not be modified.
func (m *Merged) Visible() []*FieldSpec {
	specs := make([]*FieldSpec, len(m.visible))
	for i, idx := range m.visible {
		specs[i] = &m.Fields[idx]
	}
	return specs
}

// HashFields returns the fields contributing to the generated hash:
// the explicitly Hashed fields when any exist, otherwise all non-internal
// fields.
func (m *Merged) HashFields() []*FieldSpec {
	if len(m.hashed) > 0 {
		specs := make([]*FieldSpec, len(m.hashed))
		for i, idx := range m.hashed {
			specs[i] = &m.Fields[idx]
		}
		return specs
	}
	return m.Visible()
}

// Fixed reports whether the type is fully slot-backed, either by its own
// Slots option or because every inherited field already was.
func (m *Merged) Fixed() bool {
	return m.Options.Slots ||
		(len(m.Fields) > 0 && len(m.SlotIndex) == len(m.Fields))
}

// DescendsFrom reports whether m is other or a (transitive) descendant
// of other.
func (m *Merged) DescendsFrom(other *Merged) bool {
	if m == other {
		return true
	}
	for _, p := range m.Parents {
		if p.DescendsFrom(other) {
			return true
		}
	}
	return false
}

// Related reports whether one of the two schemas descends from the other.
// Ordering comparisons are only defined between related types.
func Related(a, b *Merged) bool {
	return a.DescendsFrom(b) || b.DescendsFrom(a)
}

package schema

// Options is the fixed table of behavioral flags recognized for a record
// type. Flags are merged by override: defaults, then each ancestor's
// resolved table in composition order, then the explicit flags passed at
// the point of definition.
type Options struct {
	// Init generates the constructor.
	Init bool
	// Repr generates the textual representation.
	Repr bool
	// Eq generates equality.
	Eq bool
	// Iter generates iteration over field values.
	Iter bool
	// Frozen rejects every attribute write and delete after construction.
	Frozen bool
	// Kwargs makes the constructor accept and ignore unknown keywords.
	Kwargs bool
	// Slots stores every field in a fixed slot instead of a map.
	Slots bool
	// Order generates lexicographic ordering (requires Eq).
	Order bool
	// UnsafeHash generates the hash even for mutable types.
	UnsafeHash bool
	// HideInternals excludes internal fields from the representation.
	HideInternals bool
	// KwOnly makes every constructor parameter keyword-only.
	KwOnly bool
}

// DefaultOptions returns the default option table applied before any
// ancestor or point-of-use overrides.
func DefaultOptions() Options {
	return Options{
		Init:          true,
		Repr:          true,
		Eq:            true,
		UnsafeHash:    true,
		HideInternals: true,
	}
}

// Flag identifies a single option for point-of-use overrides.
type Flag int

const (
	FlagInit Flag = iota
	FlagRepr
	FlagEq
	FlagIter
	FlagFrozen
	FlagKwargs
	FlagSlots
	FlagOrder
	FlagUnsafeHash
	FlagHideInternals
	FlagKwOnly
)

// String returns the flag's option name.
func (f Flag) String() string {
	switch f {
	case FlagInit:
		return "init"
	case FlagRepr:
		return "repr"
	case FlagEq:
		return "eq"
	case FlagIter:
		return "iter"
	case FlagFrozen:
		return "frozen"
	case FlagKwargs:
		return "kwargs"
	case FlagSlots:
		return "slots"
	case FlagOrder:
		return "order"
	case FlagUnsafeHash:
		return "unsafe_hash"
	case FlagHideInternals:
		return "hide_internals"
	case FlagKwOnly:
		return "kw_only"
	default:
		return "unknown"
	}
}

// Set returns a copy of o with the given flag set to v.
func (o Options) Set(f Flag, v bool) Options {
	switch f {
	case FlagInit:
		o.Init = v
	case FlagRepr:
		o.Repr = v
	case FlagEq:
		o.Eq = v
	case FlagIter:
		o.Iter = v
	case FlagFrozen:
		o.Frozen = v
	case FlagKwargs:
		o.Kwargs = v
	case FlagSlots:
		o.Slots = v
	case FlagOrder:
		o.Order = v
	case FlagUnsafeHash:
		o.UnsafeHash = v
	case FlagHideInternals:
		o.HideInternals = v
	case FlagKwOnly:
		o.KwOnly = v
	}
	return o
}

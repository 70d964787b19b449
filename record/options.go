package record

import "record-forge/schema"

// Option configures a type definition. Flag options set at the point of
// use override every ancestor; unset flags inherit from the nearest
// ancestor or fall back to the default table.
type Option func(*config)

type config struct {
	decls     []schema.Decl
	parents   []*Type
	overrides map[schema.Flag]bool
	hook      any
	methods   map[string]Method
}

// Fields appends field declarations, in definition order.
func Fields(decls ...FieldDecl) Option {
	return func(c *config) {
		c.decls = append(c.decls, decls...)
	}
}

// Parents appends ancestor types in composition order. Later parents
// override earlier ones on field values and options; the first
// introduction of a field fixes its position.
func Parents(parents ...*Type) Option {
	return func(c *config) {
		c.parents = append(c.parents, parents...)
	}
}

// PostInit declares the post-construction hook. Accepted shapes:
//
//	func(*Instance)
//	func(*Instance) error
//	func(*Instance, extras ...any) error
//	func(*Instance, a, b any) error          // fixed extra arity
//	func(*Instance, []any, map[string]any) error
//
// The hook runs after every field is assigned; its extra parameters are
// appended to the constructor's tail.
func PostInit(fn any) Option {
	return func(c *config) {
		c.hook = fn
	}
}

// Methods attaches named user members, invocable via Instance.Call.
// A member named "init" or "post_init" is recognized as the designated
// post-construction hook; any other name colliding with a generated
// function fails the definition.
func Methods(methods map[string]Method) Option {
	return func(c *config) {
		if c.methods == nil {
			c.methods = make(map[string]Method, len(methods))
		}
		for name, m := range methods {
			c.methods[name] = m
		}
	}
}

func setFlag(f schema.Flag, v bool) Option {
	return func(c *config) {
		c.overrides[f] = v
	}
}

// Init toggles constructor generation.
func Init(v bool) Option { return setFlag(schema.FlagInit, v) }

// Repr toggles representation generation.
func Repr(v bool) Option { return setFlag(schema.FlagRepr, v) }

// Eq toggles equality generation.
func Eq(v bool) Option { return setFlag(schema.FlagEq, v) }

// Iter toggles iteration generation.
func Iter(v bool) Option { return setFlag(schema.FlagIter, v) }

// Frozen makes instances reject every write and delete after
// construction.
func Frozen(v bool) Option { return setFlag(schema.FlagFrozen, v) }

// Kwargs makes the constructor accept and ignore unknown keywords.
func Kwargs(v bool) Option { return setFlag(schema.FlagKwargs, v) }

// Slots stores every field in a fixed slot instead of a flexible map.
// Setting it to false explicitly reverts inherited slots.
func Slots(v bool) Option { return setFlag(schema.FlagSlots, v) }

// Order generates lexicographic ordering; requires equality.
func Order(v bool) Option { return setFlag(schema.FlagOrder, v) }

// UnsafeHash generates the hash even for mutable, unfrozen types.
func UnsafeHash(v bool) Option { return setFlag(schema.FlagUnsafeHash, v) }

// HideInternals excludes internal fields from the representation.
func HideInternals(v bool) Option { return setFlag(schema.FlagHideInternals, v) }

// KwOnly makes every constructor parameter keyword-only; positional
// construction then fails with ErrArgument.
func KwOnly(v bool) Option { return setFlag(schema.FlagKwOnly, v) }

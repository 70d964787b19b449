package record

import (
	"fmt"

	"record-forge/internal/common"
	"record-forge/internal/diagnostic"
	"record-forge/internal/merge"
	"record-forge/internal/synth"
	"record-forge/schema"
)

// Method is a user-supplied member attached to a record type and invoked
// through Instance.Call.
type Method func(inst *Instance, args []any, kwargs map[string]any) (any, error)

// generatedNames are the member names the engine synthesizes. A user
// member may not take one of these, except init/post_init, which are
// recognized as the designated post-construction hook.
var generatedNames = map[string]struct{}{
	"init": {}, "post_init": {}, "repr": {}, "eq": {}, "lt": {},
	"hash": {}, "iter": {}, "setattr": {}, "delattr": {},
}

// Type is one synthesized record type: a merged schema plus the function
// set generated for it. Types are immutable once defined and safe for
// concurrent use.
type Type struct {
	merged  *schema.Merged
	parents []*Type
	hook    *synth.Hook
	methods map[string]Method

	ctor   *synth.Ctor
	equal  func(a, b synth.Object) bool
	less   func(a, b synth.Object) (bool, error)
	hashFn func(o synth.Object) (uint64, error)
	reprFn func(o synth.Object) string
	iterFn func(o synth.Object) []any
	setFn  func(o synth.Object, name string, v any) error
	delFn  func(o synth.Object, name string) error
}

// Define merges the declaration against its ancestors and synthesizes
// the type's behavior set. It either returns a fully consistent type or
// a *ConfigurationError; there is no partial success. Re-defining a type
// yields a fresh, independent function set.
func Define(name string, opts ...Option) (*Type, error) {
	cfg := config{overrides: make(map[schema.Flag]bool)}
	for _, opt := range opts {
		opt(&cfg)
	}

	var diags diagnostic.Diagnostics

	hook := resolveHook(name, &cfg, &diags)
	methods := resolveMethods(&cfg)

	input := merge.Input{
		TypeName:  name,
		Decls:     cfg.decls,
		Overrides: cfg.overrides,
	}
	for _, p := range cfg.parents {
		input.Parents = append(input.Parents, p.merged)
	}

	merged := merge.Merge(input, &diags)

	// Keyword-only construction has no positional route at all, so a hook
	// demanding positional extras could never be satisfied.
	if merged.Options.KwOnly && hook != nil && hook.NumExtra > 0 {
		diags.AddError("kw_only_hook",
			"post-construction hook requires positional arguments, but construction is keyword-only",
			name, hook.Name)
	}

	if diags.HasErrors() {
		return nil, newConfigurationError(name, &diags)
	}

	t := &Type{
		merged:  merged,
		parents: cfg.parents,
		hook:    hook,
		methods: methods,
	}
	t.synthesize()
	return t, nil
}

// MustDefine is Define, panicking on configuration errors. Intended for
// type definitions at program load.
func MustDefine(name string, opts ...Option) *Type {
	t, err := Define(name, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Extend defines a descendant with the receiver as sole leading parent.
func (t *Type) Extend(name string, opts ...Option) (*Type, error) {
	return Define(name, append([]Option{Parents(t)}, opts...)...)
}

// synthesize installs the behavior set requested by the resolved options.
func (t *Type) synthesize() {
	opts := t.merged.Options

	if opts.Init && (!common.IsEmpty(t.merged.Fields) || t.hook != nil) {
		t.ctor = synth.NewConstructor(t.merged, t.hook)
	}
	if opts.Eq {
		t.equal = synth.NewEquality(t.merged)
	}
	if opts.Order && opts.Eq {
		t.less = synth.NewOrdering(t.merged)
	}
	if (opts.Eq && opts.Frozen) || opts.UnsafeHash {
		t.hashFn = synth.NewHash(t.merged)
	}
	if opts.Repr {
		t.reprFn = synth.NewRepr(t.merged)
	}
	if opts.Iter {
		t.iterFn = synth.NewIterator(t.merged)
	}
	t.setFn, t.delFn = synth.NewWriteGate(t.merged)
}

// resolveHook picks the effective post-construction hook: the type's own
// (given via PostInit or a member named init/post_init), otherwise the
// nearest ancestor's. Hooks are attached, never chained.
func resolveHook(typeName string, cfg *config, diags *diagnostic.Diagnostics) *synth.Hook {
	var hook *synth.Hook
	for _, p := range cfg.parents {
		if p.hook != nil {
			hook = p.hook
		}
	}

	own := cfg.hook
	for _, alias := range []string{"init", "post_init"} {
		m, ok := cfg.methods[alias]
		if !ok {
			continue
		}
		delete(cfg.methods, alias)
		if own != nil {
			diags.AddError("duplicate_hook",
				"multiple post-construction hooks declared", typeName, alias)
			continue
		}
		own = methodHook(alias, m)
	}

	for name := range cfg.methods {
		if _, reserved := generatedNames[name]; reserved {
			diags.AddError("name_collision",
				fmt.Sprintf("member %q collides with a generated function", name),
				typeName, name)
		}
	}

	if own == nil {
		return hook
	}

	if parsed, ok := own.(*synth.Hook); ok {
		return parsed
	}
	parsed, err := parseHook(own)
	if err != nil {
		diags.AddError("invalid_hook", err.Error(), typeName, "")
		return nil
	}
	return parsed
}

// methodHook adapts a Method declared under the designated hook name.
func methodHook(name string, m Method) *synth.Hook {
	return &synth.Hook{
		Name:     name,
		Variadic: true,
		WantsKW:  true,
		Invoke: func(o synth.Object, args []any, kwargs map[string]any) error {
			_, err := m(o.(*Instance), args, nonNilKwargs(kwargs))
			return err
		},
	}
}

// resolveMethods merges ancestor member tables (later parents win) under
// the type's own.
func resolveMethods(cfg *config) map[string]Method {
	methods := make(map[string]Method)
	for _, p := range cfg.parents {
		for name, m := range p.methods {
			methods[name] = m
		}
	}
	for name, m := range cfg.methods {
		methods[name] = m
	}
	return methods
}

// Name returns the record type's name.
func (t *Type) Name() string {
	return t.merged.TypeName
}

// Options returns the resolved option table.
func (t *Type) Options() schema.Options {
	return t.merged.Options
}

// Fields returns the merged field specs in order. internals selects
// whether internal fields are included.
func (t *Type) Fields(internals bool) []schema.FieldSpec {
	out := make([]schema.FieldSpec, 0, len(t.merged.Fields))
	for _, f := range t.merged.Fields {
		if f.Internal && !internals {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Fixed reports whether every field of the type is slot-backed.
func (t *Type) Fixed() bool {
	return t.merged.Fixed()
}

// Signature renders the synthesized constructor's parameter list.
func (t *Type) Signature() string {
	if t.ctor == nil {
		return "()"
	}
	return t.ctor.Signature()
}

// New constructs an instance from positional arguments.
func (t *Type) New(pos ...any) (*Instance, error) {
	return t.NewWith(pos, nil)
}

// NewWith constructs an instance from positional and keyword arguments.
func (t *Type) NewWith(pos []any, kw map[string]any) (*Instance, error) {
	inst := t.blank()

	switch {
	case t.ctor != nil:
		if err := t.ctor.Call(inst, pos, kw); err != nil {
			return nil, err
		}

	case t.hook != nil:
		// Construction disabled; the user hook is the whole initializer.
		if len(kw) > 0 && !t.hook.WantsKW {
			return nil, fmt.Errorf("%w: %s takes no keyword arguments", ErrArgument, t.Name())
		}
		if err := t.hook.Invoke(inst, pos, kw); err != nil {
			return nil, err
		}

	default:
		if len(pos) > 0 || len(kw) > 0 {
			return nil, fmt.Errorf("%w: %s takes no arguments", ErrArgument, t.Name())
		}
	}
	return inst, nil
}

// blank allocates storage per the planned layout: a slot array for fixed
// fields, a flexible map otherwise. Fully fixed types never allocate the
// map, so no instance of theirs exposes one.
func (t *Type) blank() *Instance {
	inst := &Instance{typ: t}
	if len(t.merged.SlotIndex) > 0 {
		inst.slots = make([]any, len(t.merged.Fields))
		for i := range inst.slots {
			inst.slots[i] = unsetSlot
		}
	}
	if !t.merged.Fixed() {
		inst.attrs = make(map[string]any)
	}
	return inst
}

package synth

import (
	"fmt"
	"strings"

	"record-forge/schema"
	"record-forge/utils"
)

// Hook is a parsed post-construction hook. The constructor invokes it
// after every field is assigned, forwarding only the positional and
// keyword arguments that field assignment did not consume. Hooks are
// never chained automatically; an override that wants its ancestor's
// hook must call it itself.
type Hook struct {
	// Name identifies the hook in error messages.
	Name string
	// Invoke runs the hook against a constructed object.
	Invoke func(o Object, args []any, kwargs map[string]any) error
	// NumExtra is the number of extra positional parameters the hook
	// requires beyond the instance itself.
	NumExtra int
	// Variadic marks NumExtra as a minimum rather than an exact count.
	Variadic bool
	// WantsKW reports whether the hook accepts leftover keywords.
	WantsKW bool
}

// Ctor is the synthesized constructor for one record type. Parameters
// are a stable partition of the merged field list: default-less fields
// first, default-bearing fields after, each group keeping merged order.
type Ctor struct {
	merged    *schema.Merged
	params    []*schema.FieldSpec
	required  int
	positions map[string]struct{}
	hook      *Hook
}

// NewConstructor builds the constructor for a sealed schema.
func NewConstructor(m *schema.Merged, hook *Hook) *Ctor {
	c := &Ctor{
		merged:    m,
		positions: make(map[string]struct{}, len(m.Fields)),
		hook:      hook,
	}

	for i := range m.Fields {
		if !m.Fields[i].HasDefault {
			c.params = append(c.params, &m.Fields[i])
		}
	}
	c.required = len(c.params)
	for i := range m.Fields {
		if m.Fields[i].HasDefault {
			c.params = append(c.params, &m.Fields[i])
		}
	}
	for _, p := range c.params {
		c.positions[p.Name] = struct{}{}
	}

	return c
}

// Call assigns every field of obj exactly once, in merged order, then
// invokes the post-construction hook if one exists. Writes go through
// the privileged raw path, so frozen types construct normally.
func (c *Ctor) Call(obj Object, pos []any, kw map[string]any) error {
	opts := c.merged.Options

	// Keyword-only construction covers the hook's parameters too; a hook
	// needing positional extras is rejected at definition time.
	if opts.KwOnly && len(pos) > 0 {
		return fmt.Errorf("%w: %s takes keyword arguments only", ErrArgument, c.merged.TypeName)
	}

	var extras []any
	if len(pos) > len(c.params) {
		if c.hook == nil {
			return fmt.Errorf("%w: %s takes at most %d positional arguments, got %d",
				ErrArgument, c.merged.TypeName, len(c.params), len(pos))
		}
		extras = pos[len(c.params):]
		pos = pos[:len(c.params)]
	}

	bound := make(map[string]any, len(pos)+len(kw))
	for i, v := range pos {
		bound[c.params[i].Name] = v
	}

	var extraKW map[string]any
	for name, v := range kw {
		if _, isParam := c.positions[name]; !isParam {
			if extraKW == nil {
				extraKW = make(map[string]any)
			}
			extraKW[name] = v
			continue
		}
		if _, dup := bound[name]; dup {
			return fmt.Errorf("%w: %s got multiple values for field %q",
				ErrArgument, c.merged.TypeName, name)
		}
		bound[name] = v
	}

	if len(extraKW) > 0 && !(c.hook != nil && c.hook.WantsKW) {
		if !opts.Kwargs {
			for name := range extraKW {
				return fmt.Errorf("%w: %s got an unexpected keyword %q",
					ErrArgument, c.merged.TypeName, name)
			}
		}
		extraKW = nil // accepted and ignored
	}

	for i := range c.merged.Fields {
		f := &c.merged.Fields[i]
		v, provided := bound[f.Name]
		if !provided {
			if !f.HasDefault {
				return fmt.Errorf("%w: %s missing required field %q",
					ErrArgument, c.merged.TypeName, f.Name)
			}
			v = f.Default
		}
		if err := obj.SetRaw(f.Name, c.resolve(f, v, provided)); err != nil {
			return err
		}
	}

	if c.hook == nil {
		return nil
	}
	if err := c.checkHookArity(len(extras)); err != nil {
		return err
	}
	return c.hook.Invoke(obj, extras, extraKW)
}

// resolve applies the default-copy policy to one incoming value.
// A deferred default is produced fresh per construction; a copy-capable
// default is copied only when the incoming value is that exact default
// (value identity, never equality).
func (c *Ctor) resolve(f *schema.FieldSpec, v any, provided bool) any {
	if def, ok := f.Default.(schema.Deferred); ok && f.HasDefault {
		if provided {
			return v
		}
		return def.Make()
	}
	if f.HasDefault && copyable(f.Default) && sameValue(v, f.Default) {
		return copyValue(v)
	}
	return v
}

func (c *Ctor) checkHookArity(got int) error {
	want := c.hook.NumExtra
	max := want
	if c.hook.Variadic {
		max = int(^uint(0) >> 1)
	}
	if utils.IsInRange(want, got, max) {
		return nil
	}
	return fmt.Errorf("%w: hook %s expects %d extra positional arguments, got %d",
		ErrArgument, c.hook.Name, want, got)
}

// Signature renders the constructor's parameter list, mirroring the
// partition Call binds against. Useful in tests and error messages.
func (c *Ctor) Signature() string {
	var parts []string

	fields := func() {
		for i, p := range c.params {
			if i < c.required {
				parts = append(parts, p.Name)
				continue
			}
			parts = append(parts, fmt.Sprintf("%s=%s", p.Name, renderDefault(p.Default)))
		}
	}
	hookExtras := func() {
		for i := 0; i < c.hook.NumExtra; i++ {
			parts = append(parts, fmt.Sprintf("arg%d", i+1))
		}
	}

	if c.merged.Options.KwOnly {
		// No positional route exists, so hook extras are not rendered.
		if len(c.params) > 0 {
			parts = append(parts, "*")
		}
		fields()
	} else {
		fields()
		if c.hook != nil {
			hookExtras()
			if c.hook.Variadic {
				parts = append(parts, "*args")
			}
		}
	}

	if c.merged.Options.Kwargs || (c.hook != nil && c.hook.WantsKW) {
		parts = append(parts, "**kwargs")
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func renderDefault(v any) string {
	if _, ok := v.(schema.Deferred); ok {
		return "factory()"
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

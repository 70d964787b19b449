package merge

import (
	"record-forge/internal/diagnostic"
	"record-forge/internal/hint"
	"record-forge/schema"
)

// Input is one record type declaration to be resolved.
type Input struct {
	// TypeName is the name of the type being defined.
	TypeName string
	// Decls are the type's own field declarations, in definition order.
	Decls []schema.Decl
	// Parents are the merged schemas of the ancestors, in composition
	// order. Later parents override earlier ones.
	Parents []*schema.Merged
	// Overrides are the option flags set explicitly at the point of use.
	// They take priority over every ancestor.
	Overrides map[schema.Flag]bool
}

// layer is one field contribution during the merge scan.
type layer struct {
	name       string
	typeExpr   string // hint wrappers already stripped
	hasDefault bool
	def        any
	internal   bool
	hashed     bool
}

// Merge resolves the input into a merged schema, accumulating problems
// in diags. The returned schema is only usable when diags carries no
// errors.
func Merge(in Input, diags *diagnostic.Diagnostics) *schema.Merged {
	m := &schema.Merged{
		TypeName: in.TypeName,
		Options:  resolveOptions(in),
		Parents:  in.Parents,
	}

	if in.TypeName == "" {
		diags.AddError("missing_name", "record type needs a name", "", "")
	}

	index := make(map[string]int)

	// Ancestors first, oldest first, then the type's own declarations.
	for _, p := range in.Parents {
		for i := range p.Fields {
			f := &p.Fields[i]
			mergeLayer(m, index, layer{
				name:       f.Name,
				typeExpr:   f.Type,
				hasDefault: f.HasDefault,
				def:        f.Default,
				internal:   f.Internal,
				hashed:     f.Hashed,
			})
		}
	}

	for _, d := range in.Decls {
		if d.Name == "" {
			diags.AddError("invalid_field", "field declared without a name", in.TypeName, "")
			continue
		}

		inner, cls := hint.Parse(d.Type)
		mergeLayer(m, index, layer{
			name:       d.Name,
			typeExpr:   inner,
			hasDefault: d.HasDefault,
			def:        d.Default,
			internal:   cls.Internal,
			hashed:     cls.Hashed,
		})
	}

	if m.Options.Order && !m.Options.Eq {
		diags.AddWarning("order_without_eq",
			"ordering requires equality; no ordering will be generated", in.TypeName, "")
	}

	planLayout(m, explicitlyOff(in.Overrides, schema.FlagSlots))
	m.Seal()

	return m
}

// mergeLayer applies update semantics: the latest layer wins on type,
// hints and default value, the first occurrence wins on position, and a
// layer without a default keeps any default a previous layer declared.
func mergeLayer(m *schema.Merged, index map[string]int, l layer) {
	internal := l.internal || hint.InternalName(l.name)

	if i, ok := index[l.name]; ok {
		f := &m.Fields[i]
		f.Type = l.typeExpr
		f.Internal = internal
		f.Hashed = l.hashed
		if l.hasDefault {
			f.HasDefault = true
			f.Default = l.def
		}
		return
	}

	index[l.name] = len(m.Fields)
	m.Fields = append(m.Fields, schema.FieldSpec{
		Name:       l.name,
		Type:       l.typeExpr,
		HasDefault: l.hasDefault,
		Default:    l.def,
		Internal:   internal,
		Hashed:     l.hashed,
		Position:   len(m.Fields),
	})
}

// resolveOptions overlays option tables: defaults, then each ancestor's
// fully resolved table in order, then the explicit overrides.
func resolveOptions(in Input) schema.Options {
	opts := schema.DefaultOptions()
	for _, p := range in.Parents {
		opts = p.Options
	}
	for flag, v := range in.Overrides {
		opts = opts.Set(flag, v)
	}
	return opts
}

func explicitlyOff(overrides map[schema.Flag]bool, flag schema.Flag) bool {
	v, ok := overrides[flag]
	return ok && !v
}

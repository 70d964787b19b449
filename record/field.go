package record

import (
	"record-forge/internal/hint"
	"record-forge/schema"
)

// FieldDecl is a single field declaration: a name, a textual type
// expression (optionally wrapped in hint markers), and an optional
// default value.
type FieldDecl = schema.Decl

// F declares a field without a default value.
func F(name, typeExpr string) FieldDecl {
	return FieldDecl{Name: name, Type: typeExpr}
}

// D declares a field with a default value. A map, slice or Copier
// default is copied into each new instance; everything else is shared
// by reference with the class-level default.
func D(name, typeExpr string, def any) FieldDecl {
	return FieldDecl{Name: name, Type: typeExpr, HasDefault: true, Default: def}
}

// Internal marks a type expression as internal: the field is excluded
// from representation, equality, hashing, ordering and iteration under
// the default visibility rules, but still takes part in construction.
// Field names beginning with '_' are internal without any marker.
func Internal(typeExpr string) string {
	return hint.WrapInternal(typeExpr)
}

// Hashed marks a type expression as explicitly hashed. When any field of
// a schema carries this marker, only the marked fields contribute to the
// generated hash.
func Hashed(typeExpr string) string {
	return hint.WrapHashed(typeExpr)
}

// Factory wraps a default value in a deferred marker: make is called for
// every construction, so the produced value is never shared between
// instances even when it exposes no copy operation.
func Factory(make func() any) any {
	return schema.Deferred{Make: make}
}

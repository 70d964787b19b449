// Package schema defines the data model for synthesized record types.
//
// Key types:
//   - Decl: a single field declaration as written by the type author
//   - FieldSpec: a fully resolved field in a merged schema
//   - Options: the behavioral flag table for one record type
//   - Merged: the resolved field list + option set for one record type
//
// A Merged schema is built once when a record type is defined and is
// immutable thereafter. Descendant types re-merge; they never mutate an
// ancestor's schema.
package schema

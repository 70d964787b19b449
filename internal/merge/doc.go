// Package merge resolves a record type declaration against its ancestors
// and produces one merged schema.
//
// Merge pipeline:
//  1. Resolve the option table: defaults, then each ancestor's resolved
//     table in composition order, then explicit point-of-use overrides
//  2. Merge field layers with update semantics: later layers win on
//     type/default, the first introduction wins on position; a layer
//     without a default never erases an earlier one
//  3. Classify hints (Internal/Hashed) on the final type expressions
//  4. Plan storage layout: fixed slots, flexible map, or the inherited
//     mix, honoring the no-silent-downgrade rule for ancestor slots
//  5. Emit diagnostics; the caller folds errors into one configuration
//     error, so a type either gets a fully consistent schema or none
package merge

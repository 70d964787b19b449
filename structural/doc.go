// Package structural provides recursive structural conversion for record
// instances.
//
// Key capabilities:
//   - AsMap: an instance and everything nested in it as plain maps
//   - AsTuple: field values in definition order, recursively
//   - Replace: a new instance with named fields overridden
//
// Conversion is implemented purely in terms of the enumerated merged
// fields and the public constructor; it needs no engine internals.
package structural

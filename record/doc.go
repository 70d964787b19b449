// Package record synthesizes record types from declarative field schemas.
//
// A record type is defined once, at load time, from its own ordered field
// declarations plus zero or more ancestor types given in an explicit
// composition order. The engine merges fields, defaults and options
// across the ancestors, plans the storage layout, and synthesizes the
// requested behaviors: construction, equality, ordering, hashing,
// representation, iteration, and optional immutability.
//
// Key entry points:
//   - Define / MustDefine: build a *Type from declarations and options
//   - F / D / Internal / Hashed / Factory: field declaration sugar
//   - Type.New / Type.NewWith: construct instances
//
// Defining a type performs no I/O and installs an immutable schema plus
// a fresh function set; instances may then be constructed and used from
// any goroutine.
package record

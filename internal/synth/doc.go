// Package synth builds the behavior set for a merged record schema.
//
// Each synthesizer takes a sealed schema and returns a function bound to
// it: constructor, equality, ordering, hash, representation, iteration,
// and the attribute write/delete gate. Behaviors operate on the Object
// interface so the engine never depends on a concrete instance type.
//
// Synthesis runs once, at type definition time, and performs no I/O.
package synth

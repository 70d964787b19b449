// Package diagnostic provides structured problem reports collected while
// a record schema is merged and its behaviors are synthesized.
//
// Key capabilities:
//   - Name collision reports between user members and generated functions
//   - Invalid option combination reports
//   - Layout reconciliation warnings
//
// Errors accumulated here are folded into a single configuration error at
// the end of type definition; there is no partial success.
package diagnostic

// Package hint classifies field-type annotations.
//
// Two annotation classes carry side information:
//   - Internal[...]: the field is excluded from representation, equality,
//     hashing, ordering and iteration under default visibility rules
//   - Hashed[...]: the field is explicitly included in the generated hash
//
// Classification operates purely on annotation strings and is stateless.
// Field names beginning with '_' are internal regardless of annotation.
package hint

import "strings"

const (
	internalPrefix = "Internal["
	hashedPrefix   = "Hashed["
)

// Class is the side information carried by a type annotation.
type Class struct {
	Internal bool
	Hashed   bool
}

// Parse strips recognized hint wrappers from a type expression and
// returns the inner expression together with the classified hints.
// Wrappers may nest, e.g. "Internal[Hashed[map[string]int]]".
func Parse(expr string) (string, Class) {
	var cls Class
	for {
		switch {
		case wrapped(expr, internalPrefix):
			cls.Internal = true
			expr = unwrap(expr, internalPrefix)
		case wrapped(expr, hashedPrefix):
			cls.Hashed = true
			expr = unwrap(expr, hashedPrefix)
		default:
			return expr, cls
		}
	}
}

// InternalName reports whether a field name marks the field internal.
func InternalName(name string) bool {
	return strings.HasPrefix(name, "_")
}

// WrapInternal marks a type expression as internal.
func WrapInternal(expr string) string {
	return internalPrefix + expr + "]"
}

// WrapHashed marks a type expression as explicitly hashed.
func WrapHashed(expr string) string {
	return hashedPrefix + expr + "]"
}

func wrapped(expr, prefix string) bool {
	return strings.HasPrefix(expr, prefix) && strings.HasSuffix(expr, "]")
}

func unwrap(expr, prefix string) string {
	return expr[len(prefix) : len(expr)-1]
}

// Package zoo holds annotated struct types used as derive fixtures and
// in examples.
package zoo

// Pet is a record schema maintained as an ordinary Go struct.
type Pet struct {
	Name    string
	Age     int
	Species string
	Rations float64 `default:"2.5"`
	Chipped bool    `record:"hashed" default:"true"`
	notes   string  // unexported fields derive as internal
}

// Enclosure demonstrates skipped and explicitly internal fields.
type Enclosure struct {
	ID        string `record:"hashed"`
	Area      float64
	Keeper    string `record:"internal"`
	occupancy int    `record:"-"`
}

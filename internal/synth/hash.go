package synth

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"

	"record-forge/schema"
)

// Hasher is a value that supplies its own stable hash. Record instances
// with a generated hash satisfy it, as can user-provided field values.
type Hasher interface {
	Hash() (uint64, error)
}

// NewHash synthesizes hashing for a schema. By default all non-internal
// fields contribute; when any field anywhere in the schema carries an
// explicit Hashed annotation, exactly those fields contribute instead.
func NewHash(m *schema.Merged) func(o Object) (uint64, error) {
	return func(o Object) (uint64, error) {
		return hashObject(o)
	}
}

func hashObject(o Object) (uint64, error) {
	m := o.Schema()
	d := xxhash.New()
	_, _ = d.WriteString(m.TypeName)

	for _, f := range m.HashFields() {
		v, _ := fieldValue(o, f)
		if err := hashValue(d, v); err != nil {
			return 0, fmt.Errorf("%s.%s: %w", m.TypeName, f.Name, err)
		}
	}
	return d.Sum64(), nil
}

// kind tags keep values of different kinds from colliding byte-wise.
const (
	tagNil byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagString
	tagSeq
	tagObject
)

func hashValue(d *xxhash.Digest, v any) error {
	if v == nil {
		writeByte(d, tagNil)
		return nil
	}

	if o, ok := v.(Object); ok {
		sub, err := hashObject(o)
		if err != nil {
			return err
		}
		writeByte(d, tagObject)
		writeUint64(d, sub)
		return nil
	}

	if h, ok := v.(Hasher); ok {
		sub, err := h.Hash()
		if err != nil {
			return err
		}
		writeByte(d, tagObject)
		writeUint64(d, sub)
		return nil
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Bool:
		writeByte(d, tagBool)
		writeByte(d, byte(boolInt(rv.Bool())))

	case isInt(rv.Kind()):
		writeByte(d, tagInt)
		writeUint64(d, uint64(rv.Int()))

	case isUint(rv.Kind()):
		writeByte(d, tagUint)
		writeUint64(d, rv.Uint())

	case isFloat(rv.Kind()):
		writeByte(d, tagFloat)
		writeUint64(d, math.Float64bits(rv.Float()))

	case rv.Kind() == reflect.String:
		writeByte(d, tagString)
		_, _ = d.WriteString(rv.String())

	case rv.Kind() == reflect.Array:
		writeByte(d, tagSeq)
		for i := 0; i < rv.Len(); i++ {
			if err := hashValue(d, rv.Index(i).Interface()); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("%w: %T", ErrUnhashable, v)
	}
	return nil
}

// writeByte feeds a single byte to the digest; xxhash exposes only the
// io.Writer surface.
func writeByte(d *xxhash.Digest, b byte) {
	_, _ = d.Write([]byte{b})
}

func writeUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = d.Write(buf[:])
}

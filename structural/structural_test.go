package structural_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-forge/record"
	"record-forge/structural"
)

func fixtures(t *testing.T) (*record.Instance, *record.Instance) {
	t.Helper()

	pet := record.MustDefine("Pet", record.Fields(
		record.F("name", "string"),
		record.D("age", "int", 0),
		record.D("_rev", "int", 1),
	))
	owner := record.MustDefine("Owner", record.Fields(
		record.F("name", "string"),
		record.F("pet", "Pet"),
	))

	beans, err := pet.New("Beans", 4)
	require.NoError(t, err)
	ada, err := owner.New("ada", beans)
	require.NoError(t, err)
	return ada, beans
}

func TestAsMap(t *testing.T) {
	ada, _ := fixtures(t)

	got := structural.AsMap(ada)
	assert.Equal(t, map[string]any{
		"name": "ada",
		"pet": map[string]any{
			"name": "Beans",
			"age":  4,
			"_rev": 1,
		},
	}, got, "nested instances convert in depth, internals included")
}

func TestAsMapConvertsContainers(t *testing.T) {
	doc := record.MustDefine("Doc", record.Fields(
		record.F("tags", "[]string"),
		record.F("meta", "map[string]int"),
	))
	inst, err := doc.New([]string{"a", "b"}, map[string]int{"k": 1})
	require.NoError(t, err)

	got := structural.AsMap(inst)
	assert.Equal(t, []any{"a", "b"}, got["tags"])
	assert.Equal(t, map[any]any{"k": 1}, got["meta"])
}

func TestAsTuple(t *testing.T) {
	ada, _ := fixtures(t)

	got := structural.AsTuple(ada)
	assert.Equal(t, []any{"ada", []any{"Beans", 4, 1}}, got,
		"values come in definition order")
}

func TestReplace(t *testing.T) {
	_, beans := fixtures(t)

	older, err := structural.Replace(beans, map[string]any{"age": 5})
	require.NoError(t, err)

	age, err := older.Get("age")
	require.NoError(t, err)
	assert.Equal(t, 5, age)

	name, err := older.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "Beans", name)

	// The original instance is untouched.
	age, err = beans.Get("age")
	require.NoError(t, err)
	assert.Equal(t, 4, age)

	assert.True(t, older.Type() == beans.Type(), "the replacement is of the same type")
}

func TestReplaceUnknownField(t *testing.T) {
	_, beans := fixtures(t)

	// Flexible layouts accept new attributes through construction only if
	// the constructor knows them; an unknown keyword is rejected.
	_, err := structural.Replace(beans, map[string]any{"color": "grey"})
	assert.ErrorIs(t, err, record.ErrArgument)
}

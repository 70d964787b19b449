package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-forge/schema"
)

func TestLayoutSlotsOn(t *testing.T) {
	m := mustMerge(t, Input{
		TypeName: "Point",
		Decls: []schema.Decl{
			{Name: "x", Type: "float64"},
			{Name: "y", Type: "float64"},
		},
		Overrides: map[schema.Flag]bool{schema.FlagSlots: true},
	})

	require.True(t, m.Fixed())
	assert.Equal(t, map[string]int{"x": 0, "y": 1}, m.SlotIndex)
	assert.Equal(t, []string{"x", "y"}, m.NewSlots)
	for _, f := range m.Fields {
		assert.Equal(t, schema.LayoutFixed, f.Layout)
	}
}

func TestLayoutNewSlotsExcludeAncestors(t *testing.T) {
	parent := mustMerge(t, Input{
		TypeName: "Point",
		Decls: []schema.Decl{
			{Name: "x", Type: "float64"},
			{Name: "y", Type: "float64"},
		},
		Overrides: map[schema.Flag]bool{schema.FlagSlots: true},
	})

	child := mustMerge(t, Input{
		TypeName: "Point3",
		Parents:  []*schema.Merged{parent},
		Decls: []schema.Decl{
			{Name: "y", Type: "float64"}, // redeclared, already a slot
			{Name: "z", Type: "float64"},
		},
	})

	require.True(t, child.Options.Slots, "slots inherit with the option table")
	require.True(t, child.Fixed())
	assert.Equal(t, []string{"z"}, child.NewSlots,
		"a slot an ancestor already defined is never introduced again")
	assert.Equal(t, map[string]int{"x": 0, "y": 1, "z": 2}, child.SlotIndex)
}

func TestLayoutExplicitOffReverts(t *testing.T) {
	parent := mustMerge(t, Input{
		TypeName:  "Point",
		Decls:     []schema.Decl{{Name: "x", Type: "float64"}},
		Overrides: map[schema.Flag]bool{schema.FlagSlots: true},
	})

	child := mustMerge(t, Input{
		TypeName:  "Loose",
		Parents:   []*schema.Merged{parent},
		Decls:     []schema.Decl{{Name: "tag", Type: "string"}},
		Overrides: map[schema.Flag]bool{schema.FlagSlots: false},
	})

	assert.False(t, child.Fixed())
	assert.Empty(t, child.SlotIndex)
	for _, f := range child.Fields {
		assert.Equal(t, schema.LayoutFlexible, f.Layout)
	}
}

func TestLayoutMixedFromMultipleParents(t *testing.T) {
	slotted := mustMerge(t, Input{
		TypeName:  "Slotted",
		Decls:     []schema.Decl{{Name: "a", Type: "int"}},
		Overrides: map[schema.Flag]bool{schema.FlagSlots: true},
	})
	plain := mustMerge(t, Input{
		TypeName: "Plain",
		Decls:    []schema.Decl{{Name: "b", Type: "int"}},
	})

	// The later parent's option table wins, so slots are off; fields an
	// ancestor made slot-backed stay slot-backed anyway.
	child := mustMerge(t, Input{
		TypeName: "Mixed",
		Parents:  []*schema.Merged{slotted, plain},
		Decls:    []schema.Decl{{Name: "c", Type: "int"}},
	})

	require.False(t, child.Options.Slots)
	assert.False(t, child.Fixed())
	assert.Equal(t, map[string]int{"a": 0}, child.SlotIndex)
	assert.Empty(t, child.NewSlots)

	a, _ := child.Field("a")
	b, _ := child.Field("b")
	c, _ := child.Field("c")
	assert.Equal(t, schema.LayoutFixed, a.Layout)
	assert.Equal(t, schema.LayoutFlexible, b.Layout)
	assert.Equal(t, schema.LayoutFlexible, c.Layout)
}

func TestFixedWithoutFields(t *testing.T) {
	m := mustMerge(t, Input{
		TypeName:  "Marker",
		Overrides: map[schema.Flag]bool{schema.FlagSlots: true},
	})
	assert.True(t, m.Fixed())

	flexible := mustMerge(t, Input{TypeName: "Empty"})
	assert.False(t, flexible.Fixed())
}

package record_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-forge/record"
)

func TestPostInitRunsAfterAssignment(t *testing.T) {
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.PostInit(func(i *record.Instance) {
			name, _ := i.Get("name")
			_ = i.Set("greeting", "hello "+name.(string))
		}),
	)

	inst, err := pet.New("Beans")
	require.NoError(t, err)

	greeting, err := inst.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello Beans", greeting)
}

func TestPostInitErrorFailsConstruction(t *testing.T) {
	boom := errors.New("no anonymous pets")
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.PostInit(func(i *record.Instance) error {
			name, _ := i.Get("name")
			if name == "" {
				return boom
			}
			return nil
		}),
	)

	_, err := pet.New("Beans")
	require.NoError(t, err)

	_, err = pet.New("")
	assert.ErrorIs(t, err, boom)
}

func TestPostInitFixedExtras(t *testing.T) {
	var got any
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.PostInit(func(i *record.Instance, tag any) error {
			got = tag
			return nil
		}),
	)

	assert.Equal(t, "(name, arg1)", pet.Signature())

	_, err := pet.New("Beans", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = pet.New("Beans")
	assert.ErrorIs(t, err, record.ErrArgument, "the extra is required")
}

func TestPostInitVariadicExtras(t *testing.T) {
	var got []any
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.PostInit(func(i *record.Instance, extras ...any) {
			got = extras
		}),
	)

	assert.Equal(t, "(name, *args)", pet.Signature())

	_, err := pet.New("Beans", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	_, err = pet.New("Beans")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKwOnlyRejectsPositionalHook(t *testing.T) {
	// A hook that needs positional extras can never be called when
	// construction is keyword-only, so the definition itself fails.
	_, err := record.Define("Pet",
		record.Fields(record.F("name", "string")),
		record.KwOnly(true),
		record.PostInit(func(i *record.Instance, tag any) error { return nil }),
	)
	require.Error(t, err)

	var cfgErr *record.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, strings.Contains(cfgErr.Error(), "kw_only_hook"))
}

func TestKwOnlyWithKeywordCapableHook(t *testing.T) {
	var gotKW map[string]any
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.KwOnly(true),
		record.PostInit(func(i *record.Instance, args []any, kwargs map[string]any) error {
			gotKW = kwargs
			return nil
		}),
	)

	assert.Equal(t, "(*, name, **kwargs)", pet.Signature())

	// Positional invocation fails even though a hook exists.
	_, err := pet.New("Beans")
	assert.ErrorIs(t, err, record.ErrArgument)

	_, err = pet.NewWith(nil, map[string]any{"name": "Beans", "note": "kw"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"note": "kw"}, gotKW)
}

func TestPostInitFullForm(t *testing.T) {
	var gotArgs []any
	var gotKW map[string]any
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.PostInit(func(i *record.Instance, args []any, kwargs map[string]any) error {
			gotArgs, gotKW = args, kwargs
			return nil
		}),
	)

	assert.Equal(t, "(name, *args, **kwargs)", pet.Signature())

	// The hook receives only what field assignment did not consume.
	_, err := pet.NewWith([]any{"Beans", "spare"}, map[string]any{"note": "kw"})
	require.NoError(t, err)
	assert.Equal(t, []any{"spare"}, gotArgs)
	assert.Equal(t, map[string]any{"note": "kw"}, gotKW)
}

func TestInitDisabledHookTakesEverything(t *testing.T) {
	typ := record.MustDefine("Manual",
		record.Init(false),
		record.PostInit(func(i *record.Instance, args []any, kwargs map[string]any) error {
			for n, v := range kwargs {
				if err := i.Set(n, v); err != nil {
					return err
				}
			}
			return nil
		}),
	)

	inst, err := typ.NewWith([]any{"ignored"}, map[string]any{"x": 1})
	require.NoError(t, err)

	x, err := inst.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, x)
}

func TestInitDisabledWithoutHookRejectsArguments(t *testing.T) {
	typ := record.MustDefine("Inert",
		record.Fields(record.F("x", "int")),
		record.Init(false),
	)

	_, err := typ.New(1)
	assert.ErrorIs(t, err, record.ErrArgument)

	inst, err := typ.New()
	require.NoError(t, err)
	_, err = inst.Get("x")
	assert.ErrorIs(t, err, record.ErrArgument, "nothing assigned the field")
}

func TestMethodAliasedAsHook(t *testing.T) {
	ran := false
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.Methods(map[string]record.Method{
			"init": func(i *record.Instance, args []any, kwargs map[string]any) (any, error) {
				ran = true
				return nil, nil
			},
		}),
	)

	inst, err := pet.New("Beans")
	require.NoError(t, err)
	assert.True(t, ran)

	// The alias is consumed by the hook; it is not a callable member.
	_, err = inst.Call("init", nil, nil)
	assert.ErrorIs(t, err, record.ErrArgument)
}

func TestDuplicateHookFailsDefinition(t *testing.T) {
	_, err := record.Define("Pet",
		record.Fields(record.F("name", "string")),
		record.PostInit(func(i *record.Instance) {}),
		record.Methods(map[string]record.Method{
			"post_init": func(i *record.Instance, args []any, kwargs map[string]any) (any, error) {
				return nil, nil
			},
		}),
	)
	require.Error(t, err)

	var cfgErr *record.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, strings.Contains(cfgErr.Error(), "duplicate_hook"))
}

func TestMethodNameCollisionFailsDefinition(t *testing.T) {
	_, err := record.Define("Pet",
		record.Fields(record.F("name", "string")),
		record.Methods(map[string]record.Method{
			"repr": func(i *record.Instance, args []any, kwargs map[string]any) (any, error) {
				return nil, nil
			},
		}),
	)
	require.Error(t, err)

	var cfgErr *record.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.True(t, strings.Contains(cfgErr.Error(), "name_collision"))
}

func TestInvalidHookFailsDefinition(t *testing.T) {
	_, err := record.Define("Pet", record.PostInit(42))
	require.Error(t, err)
	var cfgErr *record.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))

	_, err = record.Define("Pet", record.PostInit(func(x int) {}))
	require.Error(t, err)
	assert.True(t, errors.As(err, &cfgErr))
}

func TestHookInheritance(t *testing.T) {
	var calls []string
	animal := record.MustDefine("Animal",
		record.Fields(record.F("name", "string")),
		record.PostInit(func(i *record.Instance) {
			calls = append(calls, "animal")
		}),
	)

	dog, err := animal.Extend("Dog")
	require.NoError(t, err)
	_, err = dog.New("Rex")
	require.NoError(t, err)
	assert.Equal(t, []string{"animal"}, calls, "the nearest ancestor hook applies")

	// An own hook replaces the inherited one; it is never chained.
	calls = nil
	loud, err := animal.Extend("LoudDog", record.PostInit(func(i *record.Instance) {
		calls = append(calls, "loud")
	}))
	require.NoError(t, err)
	_, err = loud.New("Rex")
	require.NoError(t, err)
	assert.Equal(t, []string{"loud"}, calls)
}

func TestHookResolutionInDiamond(t *testing.T) {
	var calls []string
	entity := record.MustDefine("Entity",
		record.Fields(record.F("id", "string")),
		record.PostInit(func(i *record.Instance) {
			calls = append(calls, "entity")
		}),
	)

	tagged, err := entity.Extend("Tagged", record.Fields(record.D("tag", "string", "")))
	require.NoError(t, err)
	ranked, err := entity.Extend("Ranked",
		record.Fields(record.D("rank", "int", 0)),
		record.PostInit(func(i *record.Instance) {
			calls = append(calls, "ranked")
		}),
	)
	require.NoError(t, err)

	both, err := record.Define("Both", record.Parents(tagged, ranked))
	require.NoError(t, err)

	// The shared grandparent contributes its field once; the nearest
	// (later) parent's hook applies alone.
	assert.Equal(t, `(id, tag="", rank=0)`, both.Signature())

	inst, err := both.New("e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ranked"}, calls)

	id, err := inst.Get("id")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
}

func TestUserMethods(t *testing.T) {
	pet := record.MustDefine("Pet",
		record.Fields(record.F("name", "string")),
		record.Methods(map[string]record.Method{
			"describe": func(i *record.Instance, args []any, kwargs map[string]any) (any, error) {
				name, _ := i.Get("name")
				return fmt.Sprintf("a pet called %s", name), nil
			},
		}),
	)

	inst, err := pet.New("Beans")
	require.NoError(t, err)

	out, err := inst.Call("describe", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "a pet called Beans", out)

	_, err = inst.Call("missing", nil, nil)
	assert.ErrorIs(t, err, record.ErrArgument)
}

func TestMethodsInherit(t *testing.T) {
	animal := record.MustDefine("Animal",
		record.Fields(record.F("name", "string")),
		record.Methods(map[string]record.Method{
			"kind": func(i *record.Instance, args []any, kwargs map[string]any) (any, error) {
				return "animal", nil
			},
		}),
	)
	dog, err := animal.Extend("Dog", record.Methods(map[string]record.Method{
		"kind": func(i *record.Instance, args []any, kwargs map[string]any) (any, error) {
			return "dog", nil
		},
	}))
	require.NoError(t, err)

	inst, err := dog.New("Rex")
	require.NoError(t, err)
	out, err := inst.Call("kind", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "dog", out)
}

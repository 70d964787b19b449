package record

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"

	"record-forge/internal/synth"
	"record-forge/utils"
)

var (
	ErrHookIsNotAFunction = errors.New("provided post-construction hook is not a function")
	ErrIsNotAHook         = errors.New("provided function is not a recognizable post-construction hook")
)

var (
	instanceType = reflect.TypeOf((*Instance)(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	anyType      = reflect.TypeOf((*any)(nil)).Elem()
	anySliceType = reflect.TypeOf([]any(nil))
	kwargsType   = reflect.TypeOf(map[string]any(nil))
)

// parseHook inspects the provided function and returns a Hook if it has
// a recognizable post-construction shape.
//
// Supported shapes:
//   - func(*Instance)
//   - func(*Instance) error
//   - func(*Instance, extras ...any) / the same returning error
//   - func(*Instance, a, b any) error (fixed extra arity, any widths)
//   - func(*Instance, []any, map[string]any) error (full form)
func parseHook(fn any) (*synth.Hook, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return nil, ErrHookIsNotAFunction
	}
	fnType := fnVal.Type()

	if fnType.NumIn() == 0 || fnType.In(0) != instanceType {
		return nil, ErrIsNotAHook
	}

	hasErr := false
	switch fnType.NumOut() {
	case 0:
	case 1:
		if !fnType.Out(0).Implements(errorType) {
			return nil, ErrIsNotAHook
		}
		hasErr = true
	default:
		return nil, ErrIsNotAHook
	}

	hook := &synth.Hook{Name: hookName(fnVal)}

	switch {
	case fnType.NumIn() == 3 && !fnType.IsVariadic() &&
		fnType.In(1) == anySliceType && fnType.In(2) == kwargsType:
		// Full form: takes whatever field assignment did not consume.
		hook.Variadic = true
		hook.WantsKW = true
		hook.Invoke = func(o synth.Object, args []any, kwargs map[string]any) error {
			out := fnVal.Call([]reflect.Value{
				reflect.ValueOf(o.(*Instance)),
				reflect.ValueOf(append([]any(nil), args...)),
				reflect.ValueOf(nonNilKwargs(kwargs)),
			})
			return hookError(out, hasErr)
		}
		return hook, nil

	case fnType.IsVariadic():
		if fnType.In(fnType.NumIn()-1) != anySliceType {
			return nil, ErrIsNotAHook
		}
		if !plainAnyParams(fnType, 1, fnType.NumIn()-1) {
			return nil, ErrIsNotAHook
		}
		hook.NumExtra = fnType.NumIn() - 2
		hook.Variadic = true

	default:
		if !plainAnyParams(fnType, 1, fnType.NumIn()) {
			return nil, ErrIsNotAHook
		}
		hook.NumExtra = fnType.NumIn() - 1
	}

	hook.Invoke = func(o synth.Object, args []any, _ map[string]any) error {
		in := make([]reflect.Value, 0, len(args)+1)
		in = append(in, reflect.ValueOf(o.(*Instance)))
		for _, a := range args {
			if a == nil {
				in = append(in, reflect.Zero(anyType))
				continue
			}
			in = append(in, reflect.ValueOf(a))
		}
		return hookError(fnVal.Call(in), hasErr)
	}
	return hook, nil
}

func plainAnyParams(fnType reflect.Type, from, to int) bool {
	for i := from; i < to; i++ {
		if fnType.In(i) != anyType {
			return false
		}
	}
	return true
}

func hookError(out []reflect.Value, hasErr bool) error {
	if !hasErr || out[0].IsNil() {
		return nil
	}
	return out[0].Interface().(error)
}

func nonNilKwargs(kwargs map[string]any) map[string]any {
	if kwargs == nil {
		return map[string]any{}
	}
	return kwargs
}

// hookName derives a readable name for error messages from the function
// object itself.
func hookName(fnVal reflect.Value) string {
	fnPC := runtime.FuncForPC(fnVal.Pointer())
	if fnPC == nil {
		return "post_init"
	}

	alias, name := utils.Unpack2(strings.SplitN(fnPC.Name(), ".", 2))
	if name == "" {
		return utils.Second(path.Split(alias))
	}
	return name
}

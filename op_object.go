package computo

import (
	"strconv"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("get", handleGet)
	register("merge", handleMerge)
	register("keys", handleKeys)
	register("values", handleValues)
}

func handleGet(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "get requires exactly 2 arguments (object, pointer), got %d", len(args))
	}
	obj, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	ptrVal, err := Evaluate(args[1], ctx.WithPath("1"))
	if err != nil {
		return nil, err
	}
	ptr, ok := ptrVal.(value.String)
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "get pointer must be a string")
	}
	v, resolveErr := value.ResolvePointer(obj, string(ptr))
	if resolveErr != nil {
		return nil, errInvalidArgument(ctx.Path, "%s", resolveErr.Error())
	}
	return v, nil
}

func handleMerge(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) < 1 {
		return nil, errInvalidArgument(ctx.Path, "merge requires at least 1 argument, got %d", len(args))
	}
	result, err := evalObjectArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	for i, a := range args[1:] {
		next, err := evalObjectArg(a, ctx, i+1)
		if err != nil {
			return nil, err
		}
		result = result.Merge(next)
	}
	return result, nil
}

func evalObjectArg(expr value.Value, ctx *Context, idx int) (value.Object, error) {
	v, err := Evaluate(expr, ctx.WithPath(strconv.Itoa(idx)))
	if err != nil {
		return value.EmptyObject(), err
	}
	obj, ok := v.(value.Object)
	if !ok {
		return value.EmptyObject(), errInvalidArgument(ctx.Path, "merge operand %d is not a mapping (%s)", idx, value.Describe(v))
	}
	return obj, nil
}

func handleKeys(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "keys requires exactly 1 argument, got %d", len(args))
	}
	obj, err := evalObjectArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	ks := obj.Keys()
	out := make([]value.Value, len(ks))
	for i, k := range ks {
		out[i] = value.String(k)
	}
	return value.NewArray(out), nil
}

func handleValues(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "values requires exactly 1 argument, got %d", len(args))
	}
	obj, err := evalObjectArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	ks := obj.Keys()
	out := make([]value.Value, len(ks))
	for i, k := range ks {
		v, _ := obj.Get(k)
		out[i] = v
	}
	return value.NewArray(out), nil
}

package computo

import (
	"github.com/HarryPehkonen/Computo-sub001/jsonpatch"
	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("diff", handleDiff)
	register("patch", handlePatch)
}

func handleDiff(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "diff requires exactly 2 arguments (a, b), got %d", len(args))
	}
	a, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	b, err := Evaluate(args[1], ctx.WithPath("1"))
	if err != nil {
		return nil, err
	}
	result, err := jsonpatch.Diff(a, b)
	if err != nil {
		return nil, errPatchFailed(ctx.Path, "diff: %s", err)
	}
	return result, nil
}

func handlePatch(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "patch requires exactly 2 arguments (doc, patchArray), got %d", len(args))
	}
	doc, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	patchArr, err := evalArrayArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	result, err := jsonpatch.Apply(doc, patchArr)
	if err != nil {
		return nil, errPatchFailed(ctx.Path, "patch: %s", err)
	}
	return result, nil
}

package computo

import (
	"github.com/HarryPehkonen/Computo-sub001/permuto"
	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("permuto.apply", handlePermutoApply)
}

// handlePermutoApply delegates to the permuto adapter using the template
// options carried on the Context (§4.4 "Template adapter").
func handlePermutoApply(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "permuto.apply requires exactly 2 arguments (template, context), got %d", len(args))
	}
	tmpl, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	context, err := Evaluate(args[1], ctx.WithPath("1"))
	if err != nil {
		return nil, err
	}
	result, err := permuto.Apply(tmpl, context, permuto.Options{EnableInterpolation: ctx.Template.EnableInterpolation})
	if err != nil {
		return nil, errTemplate(ctx.Path, "permuto.apply: %s", err)
	}
	return result, nil
}

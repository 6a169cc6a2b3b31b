package computo

import (
	"strconv"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("&&", handleAnd, "and")
	register("||", handleOr, "or")
	register("not", handleNot)
}

// handleAnd short-circuits: operands are evaluated left to right and
// evaluation stops at the first falsy one (§4.4). original_source/ allows
// a single operand (degenerate and), so the minimum arity here is 1, not 2.
func handleAnd(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) < 1 {
		return nil, errInvalidArgument(ctx.Path, "&& requires at least 1 argument, got %d", len(args))
	}
	for i, a := range args {
		v, err := Evaluate(a, ctx.WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if !v.Truthy() {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func handleOr(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) < 1 {
		return nil, errInvalidArgument(ctx.Path, "|| requires at least 1 argument, got %d", len(args))
	}
	for i, a := range args {
		v, err := Evaluate(a, ctx.WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if v.Truthy() {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}

func handleNot(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "not requires exactly 1 argument, got %d", len(args))
	}
	v, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	return value.Bool(!v.Truthy()), nil
}

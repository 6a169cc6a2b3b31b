package computo

import (
	"strconv"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("<", handleLess)
	register(">", handleGreater)
	register("<=", handleLessEq)
	register(">=", handleGreaterEq)
	register("==", handleEq)
	register("!=", handleNotEq)
	register("approx", handleApprox)
}

// chainedCompare evaluates every argument and requires `a op b op c ...`
// to hold pairwise across the whole chain (§4.4 n-ary chained comparison).
func chainedCompare(args []value.Value, ctx *Context, op string, cmp func(a, b float64) bool) (value.Value, error) {
	if len(args) < 2 {
		return nil, errInvalidArgument(ctx.Path, "%s requires at least 2 arguments, got %d", op, len(args))
	}
	vals := make([]float64, len(args))
	for i, a := range args {
		v, err := Evaluate(a, ctx.WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		f, ok := value.AsFloat64(v)
		if !ok {
			return nil, errInvalidArgument(ctx.Path, "%s operand %d is not numeric (%s)", op, i, value.Describe(v))
		}
		vals[i] = f
	}
	for i := 0; i < len(vals)-1; i++ {
		if !cmp(vals[i], vals[i+1]) {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func handleLess(args []value.Value, ctx *Context) (value.Value, error) {
	return chainedCompare(args, ctx, "<", func(a, b float64) bool { return a < b })
}

func handleGreater(args []value.Value, ctx *Context) (value.Value, error) {
	return chainedCompare(args, ctx, ">", func(a, b float64) bool { return a > b })
}

func handleLessEq(args []value.Value, ctx *Context) (value.Value, error) {
	return chainedCompare(args, ctx, "<=", func(a, b float64) bool { return a <= b })
}

func handleGreaterEq(args []value.Value, ctx *Context) (value.Value, error) {
	return chainedCompare(args, ctx, ">=", func(a, b float64) bool { return a >= b })
}

func handleEq(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) < 2 {
		return nil, errInvalidArgument(ctx.Path, "== requires at least 2 arguments, got %d", len(args))
	}
	vals := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Evaluate(a, ctx.WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	for i := 0; i < len(vals)-1; i++ {
		if !vals[i].Equal(vals[i+1]) {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func handleNotEq(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "!= is strictly binary, got %d arguments", len(args))
	}
	a, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	b, err := Evaluate(args[1], ctx.WithPath("1"))
	if err != nil {
		return nil, err
	}
	return value.Bool(!a.Equal(b)), nil
}

func handleApprox(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 3 {
		return nil, errInvalidArgument(ctx.Path, "approx requires exactly 3 arguments (a, b, eps), got %d", len(args))
	}
	a, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	b, err := Evaluate(args[1], ctx.WithPath("1"))
	if err != nil {
		return nil, err
	}
	epsVal, err := Evaluate(args[2], ctx.WithPath("2"))
	if err != nil {
		return nil, err
	}
	af, aOK := value.AsFloat64(a)
	bf, bOK := value.AsFloat64(b)
	eps, epsOK := value.AsFloat64(epsVal)
	if !aOK || !bOK || !epsOK {
		return nil, errInvalidArgument(ctx.Path, "approx requires numeric operands")
	}
	if eps < 0 {
		return nil, errInvalidArgument(ctx.Path, "approx epsilon must be non-negative, got %v", eps)
	}
	diff := af - bf
	if diff < 0 {
		diff = -diff
	}
	return value.Bool(diff <= eps), nil
}

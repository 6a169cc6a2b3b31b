package computo

import (
	"strconv"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("+", handleAdd)
	register("-", handleSub)
	register("*", handleMul)
	register("/", handleDiv)
	register("%", handleMod)
}

// evalOperands evaluates every argument and requires at least min of them,
// all numeric (§4.4 arithmetic is n-ary and numeric only).
func evalOperands(args []value.Value, ctx *Context, op string, min int) ([]value.Value, error) {
	if len(args) < min {
		return nil, errInvalidArgument(ctx.Path, "%s requires at least %d argument(s), got %d", op, min, len(args))
	}
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := Evaluate(a, ctx.WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if !value.IsNumeric(v) {
			return nil, errInvalidArgument(ctx.Path, "%s operand %d is not numeric (%s)", op, i, value.Describe(v))
		}
		out[i] = v
	}
	return out, nil
}

// allInt reports whether every operand is an Int; arithmetic stays integer
// only when every operand is (the integer/float preservation policy
// decided in SPEC_FULL.md, resolving spec.md's open question).
func allInt(vals []value.Value) bool {
	for _, v := range vals {
		if _, ok := v.(value.Int); !ok {
			return false
		}
	}
	return true
}

func asFloats(vals []value.Value) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, _ := value.AsFloat64(v)
		out[i] = f
	}
	return out
}

func handleAdd(args []value.Value, ctx *Context) (value.Value, error) {
	vals, err := evalOperands(args, ctx, "+", 1)
	if err != nil {
		return nil, err
	}
	if allInt(vals) {
		var sum int64
		for _, v := range vals {
			sum += int64(v.(value.Int))
		}
		return value.Int(sum), nil
	}
	var sum float64
	for _, f := range asFloats(vals) {
		sum += f
	}
	return value.Float(sum), nil
}

func handleMul(args []value.Value, ctx *Context) (value.Value, error) {
	vals, err := evalOperands(args, ctx, "*", 1)
	if err != nil {
		return nil, err
	}
	if allInt(vals) {
		product := int64(1)
		for _, v := range vals {
			product *= int64(v.(value.Int))
		}
		return value.Int(product), nil
	}
	product := 1.0
	for _, f := range asFloats(vals) {
		product *= f
	}
	return value.Float(product), nil
}

func handleSub(args []value.Value, ctx *Context) (value.Value, error) {
	vals, err := evalOperands(args, ctx, "-", 1)
	if err != nil {
		return nil, err
	}
	if len(vals) == 1 {
		if allInt(vals) {
			return value.Int(-int64(vals[0].(value.Int))), nil
		}
		f, _ := value.AsFloat64(vals[0])
		return value.Float(-f), nil
	}
	if allInt(vals) {
		result := int64(vals[0].(value.Int))
		for _, v := range vals[1:] {
			result -= int64(v.(value.Int))
		}
		return value.Int(result), nil
	}
	floats := asFloats(vals)
	result := floats[0]
	for _, f := range floats[1:] {
		result -= f
	}
	return value.Float(result), nil
}

func handleDiv(args []value.Value, ctx *Context) (value.Value, error) {
	vals, err := evalOperands(args, ctx, "/", 1)
	if err != nil {
		return nil, err
	}
	floats := asFloats(vals)
	if len(floats) == 1 {
		if floats[0] == 0 {
			return nil, errInvalidArgument(ctx.Path, "division by zero")
		}
		return value.Float(1.0 / floats[0]), nil
	}
	result := floats[0]
	for i, f := range floats[1:] {
		if f == 0 {
			return nil, errInvalidArgument(ctx.Path, "division by zero (operand %d)", i+1)
		}
		result /= f
	}
	return value.Float(result), nil
}

func handleMod(args []value.Value, ctx *Context) (value.Value, error) {
	vals, err := evalOperands(args, ctx, "%", 2)
	if err != nil {
		return nil, err
	}
	if len(vals) != 2 {
		return nil, errInvalidArgument(ctx.Path, "%% is binary, got %d operands", len(vals))
	}
	a, aOK := vals[0].(value.Int)
	b, bOK := vals[1].(value.Int)
	if !aOK || !bOK {
		return nil, errInvalidArgument(ctx.Path, "%% requires integer operands")
	}
	if b == 0 {
		return nil, errInvalidArgument(ctx.Path, "modulo by zero")
	}
	return value.Int(int64(a) % int64(b)), nil
}

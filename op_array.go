package computo

import (
	"strconv"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("car", handleCar)
	register("cdr", handleCdr)
	register("cons", handleCons)
	register("append", handleAppend)
	register("count", handleCount)
	register("map", handleMap)
	register("filter", handleFilter)
	register("reduce", handleReduce)
	register("find", handleFind)
	register("some", handleSome)
	register("every", handleEvery)
	register("flatMap", handleFlatMap)
	register("partition", handlePartition)
	register("zip", handleZip)
	register("zipWith", handleZipWith)
	register("reverse", handleReverse)
	register("unique", handleUnique)
	register("chunk", handleChunk)
	register("flatten", handleFlatten)
}

// evalArrayArg evaluates expr and accepts either a bare sequence result or
// the {<arrayKey>: [...]} wrapper form (§4.5): any operator that consumes
// an array must accept both.
func evalArrayArg(expr value.Value, ctx *Context, idx int) (value.Array, error) {
	v, err := Evaluate(expr, ctx.WithPath(strconv.Itoa(idx)))
	if err != nil {
		return value.EmptyArray(), err
	}
	arr, ok := value.UnwrapArray(v, ctx.ArrayKey)
	if !ok {
		return value.EmptyArray(), errInvalidArgument(ctx.Path, "operand %d is not an array (%s)", idx, value.Describe(v))
	}
	return arr, nil
}

// evalLambdaArg evaluates expr and requires the result to be a lambda
// value (either an inline `lambda` form or any expression — e.g. a
// variable lookup — that produces one, §4.3).
func evalLambdaArg(expr value.Value, ctx *Context, idx int) (value.Value, error) {
	v, err := Evaluate(expr, ctx.WithPath(strconv.Itoa(idx)))
	if err != nil {
		return nil, err
	}
	if _, _, ok := value.AsLambda(v); !ok {
		return nil, errInvalidArgument(ctx.Path, "operand %d is not a lambda", idx)
	}
	return v, nil
}

func handleCar(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "car requires exactly 1 argument, got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	v, ok := arr.At(0)
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "car of empty array")
	}
	return v, nil
}

func handleCdr(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "cdr requires exactly 1 argument, got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	if arr.Len() == 0 {
		return nil, errInvalidArgument(ctx.Path, "cdr of empty array")
	}
	return arr.Slice(1, arr.Len()), nil
}

func handleCons(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "cons requires exactly 2 arguments (item, array), got %d", len(args))
	}
	item, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	arr, err := evalArrayArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	return value.NewArray(append([]value.Value{item}, arr.Elements()...)), nil
}

func handleAppend(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) < 1 {
		return nil, errInvalidArgument(ctx.Path, "append requires at least 1 argument, got %d", len(args))
	}
	result, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	for i, a := range args[1:] {
		next, err := evalArrayArg(a, ctx, i+1)
		if err != nil {
			return nil, err
		}
		result = result.Concat(next)
	}
	return result, nil
}

func handleCount(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "count requires exactly 1 argument, got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	return value.Int(arr.Len()), nil
}

func handleMap(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "map requires exactly 2 arguments (array, lambda), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, arr.Len())
	for i, el := range arr.Elements() {
		v, err := ApplyLambda(lambda, []value.Value{el}, ctx.WithPath("map").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.NewArray(out), nil
}

func handleFilter(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "filter requires exactly 2 arguments (array, lambda), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for i, el := range arr.Elements() {
		keep, err := ApplyLambda(lambda, []value.Value{el}, ctx.WithPath("filter").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if keep.Truthy() {
			out = append(out, el)
		}
	}
	return value.NewArray(out), nil
}

func handleReduce(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 3 {
		return nil, errInvalidArgument(ctx.Path, "reduce requires exactly 3 arguments (array, lambda, initial), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	acc, err := Evaluate(args[2], ctx.WithPath("2"))
	if err != nil {
		return nil, err
	}
	for i, el := range arr.Elements() {
		acc, err = ApplyLambda2(lambda, acc, el, ctx.WithPath("reduce").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}

func handleFind(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "find requires exactly 2 arguments (array, lambda), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	for i, el := range arr.Elements() {
		match, err := ApplyLambda(lambda, []value.Value{el}, ctx.WithPath("find").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if match.Truthy() {
			return el, nil
		}
	}
	return value.Null{}, nil
}

func handleSome(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "some requires exactly 2 arguments (array, lambda), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	for i, el := range arr.Elements() {
		match, err := ApplyLambda(lambda, []value.Value{el}, ctx.WithPath("some").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if match.Truthy() {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}

func handleEvery(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "every requires exactly 2 arguments (array, lambda), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	for i, el := range arr.Elements() {
		match, err := ApplyLambda(lambda, []value.Value{el}, ctx.WithPath("every").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if !match.Truthy() {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func handleFlatMap(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "flatMap requires exactly 2 arguments (array, lambda), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for i, el := range arr.Elements() {
		v, err := ApplyLambda(lambda, []value.Value{el}, ctx.WithPath("flatMap").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		sub, ok := value.UnwrapArray(v, ctx.ArrayKey)
		if !ok {
			return nil, errInvalidArgument(ctx.Path, "flatMap lambda must return an array at index %d", i)
		}
		out = append(out, sub.Elements()...)
	}
	return value.NewArray(out), nil
}

func handlePartition(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "partition requires exactly 2 arguments (array, lambda), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	var truthy, falsy []value.Value
	for i, el := range arr.Elements() {
		match, err := ApplyLambda(lambda, []value.Value{el}, ctx.WithPath("partition").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		if match.Truthy() {
			truthy = append(truthy, el)
		} else {
			falsy = append(falsy, el)
		}
	}
	return value.NewArray([]value.Value{value.NewArray(truthy), value.NewArray(falsy)}), nil
}

func handleZip(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) < 1 {
		return nil, errInvalidArgument(ctx.Path, "zip requires at least 1 argument, got %d", len(args))
	}
	arrs := make([]value.Array, len(args))
	minLen := -1
	for i, a := range args {
		arr, err := evalArrayArg(a, ctx, i)
		if err != nil {
			return nil, err
		}
		arrs[i] = arr
		if minLen == -1 || arr.Len() < minLen {
			minLen = arr.Len()
		}
	}
	out := make([]value.Value, minLen)
	for i := 0; i < minLen; i++ {
		tuple := make([]value.Value, len(arrs))
		for j, arr := range arrs {
			v, _ := arr.At(i)
			tuple[j] = v
		}
		out[i] = value.NewArray(tuple)
	}
	return value.NewArray(out), nil
}

func handleZipWith(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 3 {
		return nil, errInvalidArgument(ctx.Path, "zipWith requires exactly 3 arguments (array, array, lambda), got %d", len(args))
	}
	a, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	b, err := evalArrayArg(args[1], ctx, 1)
	if err != nil {
		return nil, err
	}
	lambda, err := evalLambdaArg(args[2], ctx, 2)
	if err != nil {
		return nil, err
	}
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		av, _ := a.At(i)
		bv, _ := b.At(i)
		v, err := ApplyLambda2(lambda, av, bv, ctx.WithPath("zipWith").WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.NewArray(out), nil
}

func handleReverse(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "reverse requires exactly 1 argument, got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	return arr.Reversed(), nil
}

func handleUnique(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "unique requires exactly 1 argument, got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for _, el := range arr.Elements() {
		dup := false
		for _, seen := range out {
			if seen.Equal(el) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, el)
		}
	}
	return value.NewArray(out), nil
}

func handleChunk(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "chunk requires exactly 2 arguments (array, size), got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	nVal, err := Evaluate(args[1], ctx.WithPath("1"))
	if err != nil {
		return nil, err
	}
	n, ok := nVal.(value.Int)
	if !ok || n <= 0 {
		return nil, errInvalidArgument(ctx.Path, "chunk size must be a positive integer")
	}
	size := int(n)
	var out []value.Value
	elems := arr.Elements()
	for i := 0; i < len(elems); i += size {
		end := i + size
		if end > len(elems) {
			end = len(elems)
		}
		out = append(out, value.NewArray(append([]value.Value(nil), elems[i:end]...)))
	}
	return value.NewArray(out), nil
}

func handleFlatten(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "flatten requires exactly 1 argument, got %d", len(args))
	}
	arr, err := evalArrayArg(args[0], ctx, 0)
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for _, el := range arr.Elements() {
		if sub, ok := value.UnwrapArray(el, ctx.ArrayKey); ok {
			out = append(out, sub.Elements()...)
		} else {
			out = append(out, el)
		}
	}
	return value.NewArray(out), nil
}

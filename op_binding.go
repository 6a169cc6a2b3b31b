package computo

import (
	"strconv"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("lambda", handleLambda)
	register("$", handleVarRef)
	register("$input", handleInput)
	register("$inputs", handleInputs)
	register("obj", handleObj)
}

// stepLet evaluates a `let` form's bindings against ctx (non-tail) and
// returns the body expression plus the extended context, for the
// trampoline loop in Evaluate to continue in tail position (§4.6).
func stepLet(args []value.Value, ctx *Context) (value.Value, *Context, error) {
	if len(args) != 2 {
		return nil, nil, errInvalidArgument(ctx.Path, "let requires exactly 2 arguments (bindings, body), got %d", len(args))
	}
	letCtx := ctx.WithPath("let")
	bindings, err := parseBindings(args[0])
	if err != nil {
		return nil, nil, err
	}
	evaluated := make(map[string]value.Value, len(bindings))
	for _, b := range bindings {
		v, err := Evaluate(b.expr, letCtx.WithPath(b.name))
		if err != nil {
			return nil, nil, err
		}
		evaluated[b.name] = v
	}
	return args[1], ctx.WithVars(evaluated), nil
}

type binding struct {
	name string
	expr value.Value
}

// parseBindings accepts both forms `let` allows (§4.2): an ordered sequence
// of [name, valueExpr] pairs, or a mapping from name to valueExpr.
func parseBindings(expr value.Value) ([]binding, error) {
	switch b := expr.(type) {
	case value.Object:
		out := make([]binding, 0, b.Len())
		for _, k := range b.Keys() {
			v, _ := b.Get(k)
			out = append(out, binding{name: k, expr: v})
		}
		return out, nil
	case value.Array:
		out := make([]binding, 0, b.Len())
		for i, el := range b.Elements() {
			pair, ok := el.(value.Array)
			if !ok || pair.Len() != 2 {
				return nil, errInvalidArgument(nil, "let binding %d must be a [name, valueExpr] pair", i)
			}
			nameVal, _ := pair.At(0)
			name, ok := nameVal.(value.String)
			if !ok {
				return nil, errInvalidArgument(nil, "let binding %d name must be a string", i)
			}
			valExpr, _ := pair.At(1)
			out = append(out, binding{name: string(name), expr: valExpr})
		}
		return out, nil
	default:
		return nil, errInvalidArgument(nil, "let bindings must be a sequence of pairs or a mapping")
	}
}

// stepCall resolves the lambda named by a `call` form's first argument,
// evaluates the remaining arguments (non-tail), binds them per the
// invocation protocol, and returns the lambda body plus the bound context
// for the trampoline loop to continue in tail position — this is how a
// self-recursive lambda runs in constant native stack (§4.6).
func stepCall(args []value.Value, ctx *Context) (value.Value, *Context, error) {
	if len(args) < 1 {
		return nil, nil, errInvalidArgument(ctx.Path, "call requires a lambda argument")
	}
	callCtx := ctx.WithPath("call")
	target, err := Evaluate(args[0], callCtx.WithPath("0"))
	if err != nil {
		return nil, nil, err
	}
	params, body, ok := value.AsLambda(target)
	if !ok {
		return nil, nil, errInvalidArgument(callCtx.Path, "call target must evaluate to a lambda")
	}
	callArgs := make([]value.Value, len(args)-1)
	for i, a := range args[1:] {
		v, err := Evaluate(a, callCtx.WithPath(strconv.Itoa(i+1)))
		if err != nil {
			return nil, nil, err
		}
		callArgs[i] = v
	}
	bindings, err := bindLambdaParams(params, callArgs, callCtx.Path)
	if err != nil {
		return nil, nil, err
	}
	return body, ctx.WithVars(bindings), nil
}

// bindLambdaParams implements the single-param/multi-param invocation
// protocol of §4.3, for the plain positional case (one value per
// parameter). reduce's acc/item convention is handled separately by
// ApplyLambda2 since it needs the paired-vs-two-param fork.
func bindLambdaParams(params []string, args []value.Value, path []string) (map[string]value.Value, error) {
	if len(params) != len(args) {
		return nil, errInvalidArgument(path, "lambda expects %d argument(s), got %d", len(params), len(args))
	}
	bindings := make(map[string]value.Value, len(params))
	for i, p := range params {
		bindings[p] = args[i]
	}
	return bindings, nil
}

// ApplyLambda invokes a (possibly multi-parameter) lambda value with one
// value per parameter — used by map, filter, find, some, every, flatMap.
// This is an ordinary (non-tail) call into Evaluate: the collections these
// operators walk are bounded by the data, not by user-expressed recursion,
// so no trampoline is needed here.
func ApplyLambda(lambdaVal value.Value, args []value.Value, ctx *Context) (value.Value, error) {
	params, body, ok := value.AsLambda(lambdaVal)
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "expected a lambda value")
	}
	bindings, err := bindLambdaParams(params, args, ctx.Path)
	if err != nil {
		return nil, err
	}
	return Evaluate(body, ctx.WithVars(bindings))
}

// ApplyLambda2 invokes a lambda with an accumulator/item pair, honoring
// both conventions §4.3 allows: a single parameter receives [acc, item] as
// a two-element sequence, while a two-parameter lambda binds acc and item
// directly. Used by reduce and zipWith.
func ApplyLambda2(lambdaVal value.Value, acc, item value.Value, ctx *Context) (value.Value, error) {
	params, body, ok := value.AsLambda(lambdaVal)
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "expected a lambda value")
	}
	var bindings map[string]value.Value
	switch len(params) {
	case 1:
		bindings = map[string]value.Value{params[0]: value.NewArray([]value.Value{acc, item})}
	case 2:
		bindings = map[string]value.Value{params[0]: acc, params[1]: item}
	default:
		return nil, errInvalidArgument(ctx.Path, "lambda must take 1 or 2 parameters, got %d", len(params))
	}
	return Evaluate(body, ctx.WithVars(bindings))
}

func handleLambda(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 {
		return nil, errInvalidArgument(ctx.Path, "lambda requires exactly 2 arguments (params, body), got %d", len(args))
	}
	paramsArr, ok := args[0].(value.Array)
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "lambda parameter list must be an array")
	}
	params := make([]string, paramsArr.Len())
	for i, p := range paramsArr.Elements() {
		s, ok := p.(value.String)
		if !ok {
			return nil, errInvalidArgument(ctx.Path, "lambda parameter %d must be a string", i)
		}
		params[i] = string(s)
	}
	return value.NewLambda(params, args[1]), nil
}

// handleVarRef implements `$`: a single string argument beginning with
// "/", the first segment naming a variable and the rest descending via
// JSON-pointer semantics into its value (§4.2, §4.7).
func handleVarRef(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "$ requires exactly 1 argument, got %d", len(args))
	}
	pathArg, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	pathStr, ok := pathArg.(value.String)
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "$ argument must be a string")
	}
	segs, splitErr := value.SplitPointer(string(pathStr))
	if splitErr != nil || len(segs) == 0 {
		return nil, errInvalidArgument(ctx.Path, "$ path %q must begin with '/' and name a variable", string(pathStr))
	}
	root, ok := ctx.Vars.Get(segs[0])
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "undefined variable %q", segs[0])
	}
	if len(segs) == 1 {
		return root, nil
	}
	v, resolveErr := value.ResolveSegments(root, segs[1:], string(pathStr))
	if resolveErr != nil {
		return nil, errInvalidArgument(ctx.Path, "%s", resolveErr.Error())
	}
	return v, nil
}

func handleInput(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) == 0 {
		v, ok := ctx.Input(0)
		if !ok {
			return value.Null{}, nil
		}
		return v, nil
	}
	if len(args) != 1 {
		return nil, errInvalidArgument(ctx.Path, "$input accepts at most 1 argument, got %d", len(args))
	}
	idxVal, err := Evaluate(args[0], ctx.WithPath("0"))
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(value.Int)
	if !ok || int64(idx) < 0 {
		return nil, errInvalidArgument(ctx.Path, "$input index must be a non-negative integer")
	}
	v, ok := ctx.Input(int(idx))
	if !ok {
		return nil, errInvalidArgument(ctx.Path, "$input index %d out of range", int64(idx))
	}
	return v, nil
}

func handleInputs(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 0 {
		return nil, errInvalidArgument(ctx.Path, "$inputs takes no arguments, got %d", len(args))
	}
	return value.NewArray(append([]value.Value(nil), ctx.Inputs...)), nil
}

// handleObj implements `obj`: either [keyExpr, valueExpr] pairs, or
// alternating positional key, value arguments (§4.4).
func handleObj(args []value.Value, ctx *Context) (value.Value, error) {
	var keys []string
	vals := make(map[string]value.Value)

	addPair := func(keyExpr, valExpr value.Value, idx int) error {
		kv, err := Evaluate(keyExpr, ctx.WithPath(strconv.Itoa(idx)).WithPath("key"))
		if err != nil {
			return err
		}
		k, ok := kv.(value.String)
		if !ok {
			return errInvalidArgument(ctx.Path, "obj key %d must evaluate to a string", idx)
		}
		v, err := Evaluate(valExpr, ctx.WithPath(strconv.Itoa(idx)).WithPath("value"))
		if err != nil {
			return err
		}
		if _, exists := vals[string(k)]; !exists {
			keys = append(keys, string(k))
		}
		vals[string(k)] = v
		return nil
	}

	if allPairs(args) {
		for i, el := range args {
			pair := el.(value.Array)
			keyExpr, _ := pair.At(0)
			valExpr, _ := pair.At(1)
			if err := addPair(keyExpr, valExpr, i); err != nil {
				return nil, err
			}
		}
		return value.NewObject(keys, vals), nil
	}

	if len(args)%2 != 0 {
		return nil, errInvalidArgument(ctx.Path, "obj requires [key,value] pairs or an even number of positional arguments, got %d", len(args))
	}
	for i := 0; i < len(args); i += 2 {
		if err := addPair(args[i], args[i+1], i/2); err != nil {
			return nil, err
		}
	}
	return value.NewObject(keys, vals), nil
}

func allPairs(args []value.Value) bool {
	if len(args) == 0 {
		return false
	}
	for _, a := range args {
		arr, ok := a.(value.Array)
		if !ok || arr.Len() != 2 {
			return false
		}
	}
	return true
}

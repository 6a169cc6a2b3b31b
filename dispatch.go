package computo

import (
	"strconv"

	"github.com/HarryPehkonen/Computo-sub001/trace"
	"github.com/HarryPehkonen/Computo-sub001/value"
)

// tailForms names the three operators that occupy tail position (§4.6):
// their "recursive" case is rewritten into loop iteration here rather than
// dispatched through the registry like an ordinary operator, so that deep
// recursion expressed through them runs in constant native stack. They are
// still real operators for introspection purposes — see AvailableOperators.
var tailForms = map[string]bool{"if": true, "let": true, "call": true}

// Evaluate is the recursive evaluation step (§4.8), exposed for advanced
// hosts (debuggers, steppers). It implements the dispatcher's seven
// classification rules (§4.1) and the trampoline of §4.6: `if`'s chosen
// branch, `let`'s body, and `call`'s target all rewrite the loop's local
// expr/ctx instead of recursing, so evaluator native stack depth tracks
// expression nesting, not the interpreted program's recursion depth.
func Evaluate(expr value.Value, ctx *Context) (value.Value, error) {
	for {
		switch e := expr.(type) {
		case value.Object:
			if value.IsArrayWrapper(e, ctx.ArrayKey) {
				arr, _ := value.UnwrapArray(e, ctx.ArrayKey)
				return evaluateElements(arr, ctx)
			}
			return evaluateObjectLiteral(e, ctx)

		case value.Array:
			if e.Len() == 0 {
				return value.EmptyArray(), nil // rule 7
			}
			first, _ := e.At(0)
			opName, isOperatorForm := first.(value.String)
			if !isOperatorForm {
				return evaluateSequenceLiteral(e, ctx) // rule 6
			}

			name := string(opName)
			args := e.Elements()[1:]

			switch name {
			case "if":
				nextExpr, err := stepIf(args, ctx)
				if err != nil {
					return nil, err
				}
				trace.Tail(pathString(ctx.Path), "if", "")
				expr = nextExpr
				continue
			case "let":
				nextExpr, nextCtx, err := stepLet(args, ctx)
				if err != nil {
					return nil, err
				}
				trace.Tail(pathString(ctx.Path), "let", "")
				expr, ctx = nextExpr, nextCtx
				continue
			case "call":
				nextExpr, nextCtx, err := stepCall(args, ctx)
				if err != nil {
					return nil, err
				}
				trace.Tail(pathString(ctx.Path), "call", "")
				expr, ctx = nextExpr, nextCtx
				continue
			}

			handler, ok := lookup(name)
			if !ok {
				return nil, errUnknownOperator(ctx.Path, name) // rule 5
			}
			callCtx := ctx.WithPath(name)
			if callCtx.Debug != nil {
				switch callCtx.Debug(e, callCtx.Path, callCtx.Vars) {
				case DebugAbort:
					return nil, errInvalidArgument(callCtx.Path, "evaluation aborted by debug hook")
				}
			}
			trace.Call(pathString(ctx.Path), name, len(args))
			result, err := handler(args, callCtx) // rule 4
			if err != nil {
				trace.Error(pathString(ctx.Path), name, err.Error())
				return nil, err
			}
			trace.Return(pathString(ctx.Path), name, result.String())
			return result, nil

		default:
			return expr, nil // rule 1: scalar literal
		}
	}
}

func evaluateElements(arr value.Array, ctx *Context) (value.Value, error) {
	out := make([]value.Value, arr.Len())
	for i, el := range arr.Elements() {
		v, err := Evaluate(el, ctx.WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return value.NewArray(out), nil
}

func evaluateSequenceLiteral(arr value.Array, ctx *Context) (value.Value, error) {
	return evaluateElements(arr, ctx)
}

func evaluateObjectLiteral(obj value.Object, ctx *Context) (value.Value, error) {
	keys := obj.Keys()
	vals := make(map[string]value.Value, len(keys))
	for _, k := range keys {
		v, _ := obj.Get(k)
		rv, err := Evaluate(v, ctx.WithPath(k))
		if err != nil {
			return nil, err
		}
		vals[k] = rv
	}
	return value.NewObject(keys, vals), nil
}

// stepIf evaluates the condition (a non-tail sub-evaluation) and returns
// the chosen branch expression, left for the trampoline loop to continue
// evaluating in tail position.
func stepIf(args []value.Value, ctx *Context) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, errInvalidArgument(ctx.Path, "if requires 2 or 3 arguments, got %d", len(args))
	}
	cond, err := Evaluate(args[0], ctx.WithPath("if").WithPath("0"))
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return args[1], nil
	}
	if len(args) == 3 {
		return args[2], nil
	}
	return value.Null{}, nil
}

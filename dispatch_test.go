package computo

import (
	"testing"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func mustExec(t *testing.T, script value.Value, inputs ...value.Value) value.Value {
	t.Helper()
	result, err := Execute(script, inputs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func seq(elems ...value.Value) value.Array {
	return value.NewArray(elems)
}

func TestDispatchLiteralScalar(t *testing.T) {
	got := mustExec(t, value.Int(42))
	if !got.Equal(value.Int(42)) {
		t.Errorf("got %s", got.String())
	}
}

func TestDispatchArrayWrapperUnwraps(t *testing.T) {
	wrapped := value.WrapArray(value.NewArray([]value.Value{value.Int(1), value.Int(2)}), "array")
	got := mustExec(t, wrapped)
	want := value.NewArray([]value.Value{value.Int(1), value.Int(2)})
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestDispatchLiteralSequence(t *testing.T) {
	got := mustExec(t, seq(value.Int(1), value.Int(2)))
	want := seq(value.Int(1), value.Int(2))
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestDispatchEmptySequence(t *testing.T) {
	got := mustExec(t, value.EmptyArray())
	if !got.Equal(value.EmptyArray()) {
		t.Errorf("got %s", got.String())
	}
}

func TestDispatchMappingEvaluatesValues(t *testing.T) {
	script := value.NewObject([]string{"sum"}, map[string]value.Value{
		"sum": seq(value.String("+"), value.Int(1), value.Int(2)),
	})
	got := mustExec(t, script)
	want := value.NewObject([]string{"sum"}, map[string]value.Value{"sum": value.Int(3)})
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestDispatchUnknownOperator(t *testing.T) {
	_, err := Execute(seq(value.String("nope"), value.Int(1)), nil)
	if !IsKind(err, UnknownOperator) {
		t.Fatalf("expected UnknownOperator, got %v", err)
	}
}

// TestTrampolineIfChainDoesNotOverflow builds a chain of nested `if` forms,
// each one's true-branch another `if`, 50000 levels deep. If Evaluate
// recursed natively for `if`'s chosen branch instead of trampolining, this
// would overflow the goroutine stack.
func TestTrampolineIfChainDoesNotOverflow(t *testing.T) {
	const depth = 50000
	var expr value.Value = value.Int(0)
	for i := 0; i < depth; i++ {
		expr = seq(value.String("if"), value.Bool(true), expr)
	}
	got := mustExec(t, expr)
	if !got.Equal(value.Int(0)) {
		t.Errorf("got %s, want 0", got.String())
	}
}

// TestTrampolineSelfRecursiveCallDoesNotOverflow defines a self-recursive
// lambda (bound to a name via `let`, referencing itself through `$` rather
// than closure capture) and invokes it through `call` tens of thousands of
// times. Each `call` rewrites the trampoline's expr/ctx in place, so this
// must complete without native stack growth (§4.6).
func TestTrampolineSelfRecursiveCallDoesNotOverflow(t *testing.T) {
	countdown := value.NewLambda([]string{"n"}, seq(
		value.String("if"),
		seq(value.String("<="), seq(value.String("$"), value.String("/n")), value.Int(0)),
		value.String("done"),
		seq(value.String("call"), seq(value.String("$"), value.String("/countdown")),
			seq(value.String("-"), seq(value.String("$"), value.String("/n")), value.Int(1))),
	))
	script := seq(
		value.String("let"),
		seq(seq(value.String("countdown"), countdown)),
		seq(value.String("call"), seq(value.String("$"), value.String("/countdown")), value.Int(50000)),
	)
	got := mustExec(t, script)
	if !got.Equal(value.String("done")) {
		t.Errorf("got %s, want \"done\"", got.String())
	}
}

func TestAvailableOperatorsIncludesTailForms(t *testing.T) {
	ops := AvailableOperators()
	want := map[string]bool{"if": false, "let": false, "call": false, "+": false}
	for _, op := range ops {
		if _, ok := want[op]; ok {
			want[op] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("AvailableOperators() missing %q", name)
		}
	}
}

func TestDebugHookAbort(t *testing.T) {
	script := seq(value.String("+"), value.Int(1), value.Int(2))
	_, err := ExecuteWithDebug(script, nil, DefaultOptions(), func(expr value.Value, path []string, vars *Scope) DebugAction {
		return DebugAbort
	})
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument from aborted debug hook, got %v", err)
	}
}

package computo

import (
	"testing"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func TestScopeLookupWalksAncestors(t *testing.T) {
	root := NewScope()
	child := root.Extend(map[string]value.Value{"x": value.Int(1)})
	grandchild := child.Extend(map[string]value.Value{"y": value.Int(2)})

	if v, ok := grandchild.Get("x"); !ok || !v.Equal(value.Int(1)) {
		t.Errorf("expected grandchild to see ancestor binding x, got %v, %v", v, ok)
	}
	if _, ok := root.Get("y"); ok {
		t.Error("root scope should not see a descendant's binding")
	}
}

func TestScopeExtendShadowsWithoutMutatingParent(t *testing.T) {
	root := NewScope().Extend(map[string]value.Value{"x": value.Int(1)})
	shadowed := root.Extend(map[string]value.Value{"x": value.Int(2)})

	if v, _ := shadowed.Get("x"); !v.Equal(value.Int(2)) {
		t.Errorf("expected shadowed binding, got %s", v.String())
	}
	if v, _ := root.Get("x"); !v.Equal(value.Int(1)) {
		t.Errorf("expected parent scope untouched, got %s", v.String())
	}
}

func TestContextWithVarsLeavesOriginalUntouched(t *testing.T) {
	ctx := NewContext(nil, DefaultOptions())
	child := ctx.WithVars(map[string]value.Value{"x": value.Int(5)})

	if _, ok := ctx.Vars.Get("x"); ok {
		t.Error("original context should not see the child's binding")
	}
	if v, ok := child.Vars.Get("x"); !ok || !v.Equal(value.Int(5)) {
		t.Error("child context should see its own binding")
	}
}

func TestContextInputBounds(t *testing.T) {
	ctx := NewContext([]value.Value{value.Int(1), value.Int(2)}, DefaultOptions())
	if v, ok := ctx.Input(1); !ok || !v.Equal(value.Int(2)) {
		t.Errorf("got %v, %v", v, ok)
	}
	if _, ok := ctx.Input(2); ok {
		t.Error("expected out-of-range input lookup to fail")
	}
}

func TestInputOperators(t *testing.T) {
	got := mustExec(t, seq(value.String("$input")), value.Int(10), value.Int(20))
	if !got.Equal(value.Int(10)) {
		t.Errorf("$input with no args: got %s", got.String())
	}
	got = mustExec(t, seq(value.String("$input"), value.Int(1)), value.Int(10), value.Int(20))
	if !got.Equal(value.Int(20)) {
		t.Errorf("$input 1: got %s", got.String())
	}
	got = mustExec(t, seq(value.String("$inputs")), value.Int(10), value.Int(20))
	if !got.Equal(arr(value.Int(10), value.Int(20))) {
		t.Errorf("$inputs: got %s", got.String())
	}
}

func TestVarRefDescendsIntoStoredValue(t *testing.T) {
	script := seq(
		value.String("let"),
		seq(seq(value.String("user"), value.NewObject([]string{"name"}, map[string]value.Value{"name": value.String("Alice")}))),
		seq(value.String("$"), value.String("/user/name")),
	)
	got := mustExec(t, script)
	if !got.Equal(value.String("Alice")) {
		t.Errorf("got %s", got.String())
	}
}

func TestVarRefUndefinedVariableFails(t *testing.T) {
	_, err := Execute(seq(value.String("$"), value.String("/nope")), nil)
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

package jsonpatch

import (
	"testing"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func TestApplyAddsAndReplaces(t *testing.T) {
	doc := value.NewObject([]string{"a"}, map[string]value.Value{"a": value.Int(1)})
	ops := value.NewArray([]value.Value{
		value.NewObject([]string{"op", "path", "value"}, map[string]value.Value{
			"op": value.String("add"), "path": value.String("/b"), "value": value.Int(2),
		}),
	})
	got, err := Apply(doc, ops)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := value.NewObject([]string{"a", "b"}, map[string]value.Value{"a": value.Int(1), "b": value.Int(2)})
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestApplyRejectsMalformedPatch(t *testing.T) {
	doc := value.NewObject(nil, nil)
	badOps := value.NewArray([]value.Value{value.String("not an operation object")})
	if _, err := Apply(doc, badOps); err == nil {
		t.Fatal("expected an error for a malformed patch")
	}
}

func TestDiffRoundTripsThroughApply(t *testing.T) {
	a := value.NewObject([]string{"x", "list"}, map[string]value.Value{
		"x":    value.Int(1),
		"list": value.NewArray([]value.Value{value.Int(1), value.Int(2)}),
	})
	b := value.NewObject([]string{"x", "list", "y"}, map[string]value.Value{
		"x":    value.Int(1),
		"list": value.NewArray([]value.Value{value.Int(1), value.Int(2), value.Int(3)}),
		"y":    value.String("new"),
	})

	patch, err := Diff(a, b)
	if err != nil {
		t.Fatalf("diff error: %v", err)
	}
	got, err := Apply(a, patch)
	if err != nil {
		t.Fatalf("apply error: %v", err)
	}
	if !got.Equal(b) {
		t.Errorf("round trip failed: got %s, want %s", got.String(), b.String())
	}
}

func TestDiffOfEqualValuesIsEmpty(t *testing.T) {
	a := value.NewObject([]string{"x"}, map[string]value.Value{"x": value.Int(1)})
	patch, err := Diff(a, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := patch.(value.Array)
	if !ok || arr.Len() != 0 {
		t.Errorf("expected empty patch, got %s", patch.String())
	}
}

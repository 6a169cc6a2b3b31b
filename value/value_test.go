package value

import "testing"

func TestIntFloatEqualityIsPointwise(t *testing.T) {
	if !Int(2).Equal(Float(2.0)) {
		t.Error("Int(2) should equal Float(2.0)")
	}
	if !Float(2.0).Equal(Int(2)) {
		t.Error("Float(2.0) should equal Int(2)")
	}
	if Int(2).Equal(Float(2.1)) {
		t.Error("Int(2) should not equal Float(2.1)")
	}
}

func TestTruthiness(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null{}, false},
		{Bool(false), false},
		{Bool(true), true},
		{Int(0), false},
		{Int(1), true},
		{Float(0), false},
		{String(""), false},
		{String("x"), true},
		{EmptyArray(), false},
		{NewArray([]Value{Int(1)}), true},
		{EmptyObject(), false},
	}
	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%s.Truthy() = %v, want %v", Describe(c.v), got, c.want)
		}
	}
}

func TestObjectPreservesInsertionOrderAndLastDuplicateValue(t *testing.T) {
	obj := NewObject([]string{"a", "b", "a"}, map[string]Value{"a": Int(2), "b": Int(3)})
	if got := obj.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected keys [a b], got %v", got)
	}
	v, _ := obj.Get("a")
	if !v.Equal(Int(2)) {
		t.Errorf("expected last-write-wins value, got %s", v.String())
	}
}

func TestObjectMergeIsRightBiasedAndKeepsOriginalPosition(t *testing.T) {
	a := NewObject([]string{"x", "y"}, map[string]Value{"x": Int(1), "y": Int(2)})
	b := NewObject([]string{"y", "z"}, map[string]Value{"y": Int(20), "z": Int(3)})
	merged := a.Merge(b)
	keys := merged.Keys()
	if len(keys) != 3 || keys[0] != "x" || keys[1] != "y" || keys[2] != "z" {
		t.Errorf("expected [x y z], got %v", keys)
	}
	y, _ := merged.Get("y")
	if !y.Equal(Int(20)) {
		t.Errorf("expected merge to take b's value for shared key, got %s", y.String())
	}
}

func TestArrayIsCopyOnWrite(t *testing.T) {
	base := NewArray([]Value{Int(1), Int(2)})
	appended := base.Append(Int(3))
	if base.Len() != 2 {
		t.Errorf("expected base array untouched, got len %d", base.Len())
	}
	if appended.Len() != 3 {
		t.Errorf("expected appended array of length 3, got %d", appended.Len())
	}
}

func TestResolvePointerWalksObjectsAndArrays(t *testing.T) {
	root := NewObject([]string{"list"}, map[string]Value{
		"list": NewArray([]Value{Int(10), Int(20)}),
	})
	got, err := ResolvePointer(root, "/list/1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(Int(20)) {
		t.Errorf("got %s, want 20", got.String())
	}
}

func TestResolvePointerMissingKeyErrors(t *testing.T) {
	root := EmptyObject()
	if _, err := ResolvePointer(root, "/missing"); err == nil {
		t.Fatal("expected an error for a missing key")
	}
}

func TestUnwrapArrayAcceptsBareAndWrapperForms(t *testing.T) {
	bare := NewArray([]Value{Int(1)})
	if arr, ok := UnwrapArray(bare, "array"); !ok || arr.Len() != 1 {
		t.Error("expected bare array to unwrap to itself")
	}
	wrapped := WrapArray(bare, "array")
	if arr, ok := UnwrapArray(wrapped, "array"); !ok || arr.Len() != 1 {
		t.Error("expected wrapper object to unwrap to its inner array")
	}
	notAnArray := NewObject([]string{"x"}, map[string]Value{"x": Int(1)})
	if _, ok := UnwrapArray(notAnArray, "array"); ok {
		t.Error("expected a non-wrapper object to fail to unwrap")
	}
}

func TestAsLambdaRoundTripsThroughNewLambda(t *testing.T) {
	body := String("body")
	lambda := NewLambda([]string{"x", "y"}, body)
	params, gotBody, ok := AsLambda(lambda)
	if !ok {
		t.Fatal("expected AsLambda to recognize a NewLambda value")
	}
	if len(params) != 2 || params[0] != "x" || params[1] != "y" {
		t.Errorf("got params %v", params)
	}
	if !gotBody.Equal(body) {
		t.Errorf("got body %s", gotBody.String())
	}
}

func TestMarshalUnmarshalPreservesIntFloatDistinction(t *testing.T) {
	original := NewObject([]string{"i", "f"}, map[string]Value{"i": Int(3), "f": Float(3.0)})
	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	gotObj := got.(Object)
	i, _ := gotObj.Get("i")
	f, _ := gotObj.Get("f")
	if i.Kind() != KindInt {
		t.Errorf("expected i to stay an integer, got %s", i.Kind())
	}
	if f.Kind() != KindFloat {
		t.Errorf("expected f to stay a float, got %s", f.Kind())
	}
}

func TestFromNativeHandlesPlainIntFromNonJSONDecoders(t *testing.T) {
	got, err := FromNative(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != KindInt || !got.Equal(Int(42)) {
		t.Errorf("got %s", Describe(got))
	}
}

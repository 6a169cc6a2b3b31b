package permuto

import (
	"testing"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func TestApplyExactPlaceholderResolvesRawValue(t *testing.T) {
	context := value.NewObject([]string{"user"}, map[string]value.Value{
		"user": value.NewObject([]string{"age"}, map[string]value.Value{"age": value.Int(30)}),
	})
	tmpl := value.String("${/user/age}")
	got, err := Apply(tmpl, context, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(value.Int(30)) {
		t.Errorf("got %s, want 30 (int, not stringified)", got.String())
	}
}

func TestApplyWithoutInterpolationLeavesEmbeddedTextVerbatim(t *testing.T) {
	context := value.NewObject([]string{"name"}, map[string]value.Value{"name": value.String("World")})
	tmpl := value.String("Hello, ${/name}!")
	got, err := Apply(tmpl, context, Options{EnableInterpolation: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(value.String("Hello, ${/name}!")) {
		t.Errorf("got %q", got.String())
	}
}

func TestApplyWithInterpolationSubstitutesEmbeddedText(t *testing.T) {
	context := value.NewObject([]string{"name"}, map[string]value.Value{"name": value.String("World")})
	tmpl := value.String("Hello, ${/name}!")
	got, err := Apply(tmpl, context, Options{EnableInterpolation: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(value.String("Hello, World!")) {
		t.Errorf("got %q", got.String())
	}
}

func TestApplyRecursesThroughObjectsAndArrays(t *testing.T) {
	context := value.NewObject([]string{"x"}, map[string]value.Value{"x": value.Int(1)})
	tmpl := value.NewObject([]string{"items"}, map[string]value.Value{
		"items": value.NewArray([]value.Value{value.String("${/x}"), value.String("literal")}),
	})
	got, err := Apply(tmpl, context, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := value.NewObject([]string{"items"}, map[string]value.Value{
		"items": value.NewArray([]value.Value{value.Int(1), value.String("literal")}),
	})
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestApplyUnresolvablePointerErrors(t *testing.T) {
	context := value.EmptyObject()
	tmpl := value.String("${/missing}")
	if _, err := Apply(tmpl, context, Options{}); err == nil {
		t.Fatal("expected an error for an unresolvable pointer")
	}
}

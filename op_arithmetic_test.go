package computo

import (
	"testing"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func TestArithmeticIntegerPreservation(t *testing.T) {
	got := mustExec(t, seq(value.String("+"), value.Int(1), value.Int(2), value.Int(3)))
	if got.Kind() != value.KindInt || !got.Equal(value.Int(6)) {
		t.Errorf("got %s (%s)", got.String(), got.Kind())
	}
}

func TestArithmeticFloatPromotion(t *testing.T) {
	got := mustExec(t, seq(value.String("+"), value.Int(1), value.Float(2.5)))
	if got.Kind() != value.KindFloat {
		t.Errorf("expected float promotion, got %s", got.Kind())
	}
	if !got.Equal(value.Float(3.5)) {
		t.Errorf("got %s", got.String())
	}
}

func TestArithmeticDivisionAlwaysFloat(t *testing.T) {
	got := mustExec(t, seq(value.String("/"), value.Int(4), value.Int(2)))
	if got.Kind() != value.KindFloat {
		t.Errorf("expected / to always promote to float, got %s", got.Kind())
	}
	if !got.Equal(value.Float(2.0)) {
		t.Errorf("got %s", got.String())
	}
}

func TestArithmeticDivisionByZero(t *testing.T) {
	_, err := Execute(seq(value.String("/"), value.Int(1), value.Int(0)), nil)
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestArithmeticModuloRequiresIntegers(t *testing.T) {
	_, err := Execute(seq(value.String("%"), value.Float(1.5), value.Int(2)), nil)
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument for non-integer %%, got %v", err)
	}
}

func TestArithmeticUnaryMinusNegates(t *testing.T) {
	got := mustExec(t, seq(value.String("-"), value.Int(5)))
	if !got.Equal(value.Int(-5)) {
		t.Errorf("got %s", got.String())
	}
}

func TestArithmeticUnaryDivideReciprocal(t *testing.T) {
	got := mustExec(t, seq(value.String("/"), value.Int(4)))
	if !got.Equal(value.Float(0.25)) {
		t.Errorf("got %s", got.String())
	}
}

func TestComparisonChainedLessThan(t *testing.T) {
	got := mustExec(t, seq(value.String("<"), value.Int(1), value.Int(2), value.Int(3)))
	if !got.Equal(value.Bool(true)) {
		t.Errorf("got %s", got.String())
	}
	got = mustExec(t, seq(value.String("<"), value.Int(1), value.Int(3), value.Int(2)))
	if !got.Equal(value.Bool(false)) {
		t.Errorf("got %s", got.String())
	}
}

func TestComparisonEqualityIsPointwise(t *testing.T) {
	got := mustExec(t, seq(value.String("=="), value.Int(2), value.Float(2.0)))
	if !got.Equal(value.Bool(true)) {
		t.Errorf("expected int/float equality to hold, got %s", got.String())
	}
}

func TestComparisonApproxRejectsNegativeEpsilon(t *testing.T) {
	_, err := Execute(seq(value.String("approx"), value.Int(1), value.Int(1), value.Int(-1)), nil)
	if !IsKind(err, InvalidArgument) {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestLogicalAndShortCircuits(t *testing.T) {
	// "nope" would fail with UnknownOperator if evaluated; && must not reach it.
	script := seq(value.String("&&"), value.Bool(false), seq(value.String("nope")))
	got := mustExec(t, script)
	if !got.Equal(value.Bool(false)) {
		t.Errorf("got %s", got.String())
	}
}

func TestLogicalOrShortCircuits(t *testing.T) {
	script := seq(value.String("||"), value.Bool(true), seq(value.String("nope")))
	got := mustExec(t, script)
	if !got.Equal(value.Bool(true)) {
		t.Errorf("got %s", got.String())
	}
}

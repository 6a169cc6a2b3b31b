// Package value implements the JSON value algebra that every computo
// expression evaluates to: null, bool, integer, float, string, array and
// object, with pointwise equality and truthiness and insertion-order
// preserving objects.
package value

import (
	"fmt"
	"strconv"
)

// Kind identifies which alternative of the value algebra a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is the interface every member of the JSON value algebra implements.
// Values are immutable once produced; operators that "modify" a value
// return a new one.
type Value interface {
	Kind() Kind
	// Truthy implements the language's total truthiness predicate.
	Truthy() bool
	// Equal implements pointwise structural equality.
	Equal(other Value) bool
	// String renders a debug/diagnostic form; it is not JSON text.
	String() string
}

// Null is the sole null value.
type Null struct{}

func (Null) Kind() Kind             { return KindNull }
func (Null) Truthy() bool           { return false }
func (Null) String() string         { return "null" }
func (Null) Equal(other Value) bool { _, ok := other.(Null); return ok }

// Bool wraps a JSON boolean.
type Bool bool

func (b Bool) Kind() Kind   { return KindBool }
func (b Bool) Truthy() bool { return bool(b) }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

// Int wraps a JSON integer, preserved distinctly from Float per the
// numeric-preservation convention documented in SPEC_FULL.md / DESIGN.md.
type Int int64

func (i Int) Kind() Kind     { return KindInt }
func (i Int) Truthy() bool   { return i != 0 }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (i Int) Equal(other Value) bool {
	switch o := other.(type) {
	case Int:
		return o == i
	case Float:
		return float64(o) == float64(i)
	default:
		return false
	}
}

// Float wraps a JSON floating-point number.
type Float float64

func (f Float) Kind() Kind   { return KindFloat }
func (f Float) Truthy() bool { return f != 0 }
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}
func (f Float) Equal(other Value) bool {
	switch o := other.(type) {
	case Float:
		return o == f
	case Int:
		return float64(o) == float64(f)
	default:
		return false
	}
}

// String wraps a JSON string.
type String string

func (s String) Kind() Kind     { return KindString }
func (s String) Truthy() bool   { return s != "" }
func (s String) String() string { return string(s) }
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o == s
}

// IsNumeric reports whether v is Int or Float.
func IsNumeric(v Value) bool {
	k := v.Kind()
	return k == KindInt || k == KindFloat
}

// AsFloat64 extracts the numeric value of v as a float64.
func AsFloat64(v Value) (float64, bool) {
	switch t := v.(type) {
	case Int:
		return float64(t), true
	case Float:
		return float64(t), true
	default:
		return 0, false
	}
}

// Describe returns a short human-readable description of v's kind and
// rendering, used in error messages (e.g. "string(x)", "array([1, 2])").
func Describe(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s(%s)", v.Kind(), v.String())
}

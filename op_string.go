package computo

import (
	"strconv"
	"strings"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

func init() {
	register("strConcat", handleStrConcat)
}

// handleStrConcat implements the coercion rules of §4.4 / SPEC_FULL.md:
// null becomes empty, scalars render as their JSON text, strings pass
// through verbatim, and arrays/objects render as their canonical JSON
// serialization.
func handleStrConcat(args []value.Value, ctx *Context) (value.Value, error) {
	var sb strings.Builder
	for i, a := range args {
		v, err := Evaluate(a, ctx.WithPath(strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		sb.WriteString(coerceToString(v))
	}
	return value.String(sb.String()), nil
}

func coerceToString(v value.Value) string {
	switch t := v.(type) {
	case value.Null:
		return ""
	case value.String:
		return string(t)
	case value.Bool, value.Int, value.Float:
		return v.String()
	default:
		b, err := value.Marshal(v)
		if err != nil {
			return v.String()
		}
		return string(b)
	}
}

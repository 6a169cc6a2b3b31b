// Package permuto is a minimal reimplementation of the external
// permuto.apply template engine that computo treats as a collaborator
// (SPEC_FULL.md "Template adapter"): expand "${/pointer}" placeholders in a
// JSON template against a context document, optionally interpolating them
// into surrounding text.
package permuto

import (
	"regexp"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

// Options mirrors the subset of upstream permuto's options this adapter
// honors: whether a placeholder embedded in surrounding text is
// substituted (string form) as opposed to only whole-string exact matches
// (which always resolve to the raw, possibly non-string, looked-up value).
type Options struct {
	EnableInterpolation bool
}

var placeholder = regexp.MustCompile(`\$\{([^}]*)\}`)
var exactPlaceholder = regexp.MustCompile(`^\$\{([^}]*)\}$`)

// Apply walks tmpl, resolving every "${/pointer}" placeholder against
// context. A template value that is itself exactly one placeholder
// resolves to the raw value found at that pointer (any JSON kind); a
// string containing a placeholder alongside other text is only
// substituted when opts.EnableInterpolation is set, with the resolved
// value coerced to its string rendering.
func Apply(tmpl value.Value, context value.Value, opts Options) (value.Value, error) {
	switch t := tmpl.(type) {
	case value.Object:
		keys := t.Keys()
		vals := make(map[string]value.Value, len(keys))
		for _, k := range keys {
			v, _ := t.Get(k)
			rv, err := Apply(v, context, opts)
			if err != nil {
				return nil, err
			}
			vals[k] = rv
		}
		return value.NewObject(keys, vals), nil
	case value.Array:
		out := make([]value.Value, t.Len())
		for i, el := range t.Elements() {
			rv, err := Apply(el, context, opts)
			if err != nil {
				return nil, err
			}
			out[i] = rv
		}
		return value.NewArray(out), nil
	case value.String:
		return applyString(string(t), context, opts)
	default:
		return tmpl, nil
	}
}

func applyString(s string, context value.Value, opts Options) (value.Value, error) {
	if m := exactPlaceholder.FindStringSubmatch(s); m != nil {
		return resolve(m[1], context)
	}
	if !opts.EnableInterpolation {
		return value.String(s), nil
	}
	var resolveErr error
	result := placeholder.ReplaceAllStringFunc(s, func(match string) string {
		if resolveErr != nil {
			return match
		}
		sub := placeholder.FindStringSubmatch(match)
		v, err := resolve(sub[1], context)
		if err != nil {
			resolveErr = err
			return match
		}
		return renderText(v)
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return value.String(result), nil
}

func resolve(pointer string, context value.Value) (value.Value, error) {
	return value.ResolvePointer(context, pointer)
}

func renderText(v value.Value) string {
	switch t := v.(type) {
	case value.Null:
		return ""
	case value.String:
		return string(t)
	default:
		return v.String()
	}
}

// Package computo implements a sandboxed evaluator for a small JSON-native
// expression language: scripts are themselves JSON values, operators are a
// process-wide registry of Go functions, and evaluation never performs I/O
// or blocks (§5). See SPEC_FULL.md for the full language specification.
package computo

import "github.com/HarryPehkonen/Computo-sub001/value"

// Execute is the top-level entry point (§4.8): it evaluates script against
// the given inputs and returns the resulting Value, or the first error
// encountered. opts is optional; DefaultOptions() is used when omitted.
func Execute(script value.Value, inputs []value.Value, opts ...Options) (value.Value, error) {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	ctx := NewContext(inputs, o)
	return Evaluate(script, ctx)
}

// ExecuteWithDebug behaves like Execute but installs hook as the Context's
// DebugHook, invoked between dispatch and handler entry for every operator
// call other than the tail forms if, let and call (DESIGN NOTES §9).
func ExecuteWithDebug(script value.Value, inputs []value.Value, opts Options, hook DebugHook) (value.Value, error) {
	ctx := NewContext(inputs, opts)
	ctx.Debug = hook
	return Evaluate(script, ctx)
}

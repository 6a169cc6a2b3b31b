package computo

import "github.com/HarryPehkonen/Computo-sub001/value"

// TemplateOptions configures the permuto.apply collaborator (§6).
type TemplateOptions struct {
	EnableInterpolation bool
}

// Options gathers the per-invocation configuration exhaustively listed in
// §6: the array-wrapper key and the template adapter's options.
type Options struct {
	ArrayKey        string
	TemplateOptions TemplateOptions
}

// DefaultOptions returns the engine defaults: arrayKey "array", template
// interpolation disabled.
func DefaultOptions() Options {
	return Options{ArrayKey: "array", TemplateOptions: TemplateOptions{EnableInterpolation: false}}
}

// DebugAction is returned by a DebugHook to steer evaluation, mirroring the
// optional pre-evaluation hook of DESIGN NOTES §9 ("debugger hook").
type DebugAction int

const (
	DebugContinue DebugAction = iota
	DebugPause
	DebugAbort
)

// DebugHook, if set on a Context, is invoked between dispatch and handler
// entry for every operator call except the tail forms if, let and call,
// which the trampoline handles before the hook is consulted. Absent a hook
// this costs nothing — it is
// simply never called.
type DebugHook func(expr value.Value, path []string, vars *Scope) DebugAction

// Scope holds variable bindings with strict lexical nesting: each `let` or
// lambda invocation creates one child Scope via Extend, which shares its
// parent's storage rather than copying it (the "shared persistent storage"
// of §3) — cloning a Context for a new scope is therefore an O(1)
// allocation of one small frame, never a copy of the whole environment.
type Scope struct {
	vars   map[string]value.Value
	parent *Scope
}

// NewScope returns an empty root scope.
func NewScope() *Scope {
	return &Scope{vars: nil, parent: nil}
}

// Get looks up name in this scope, then its ancestors.
func (s *Scope) Get(name string) (value.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Extend returns a new child Scope with bindings added all at once — no
// intra-binding visibility, matching `let`'s simultaneous-binding rule
// (§4.2): every value expression in bindings must already have been
// evaluated against the *parent* scope before calling Extend.
func (s *Scope) Extend(bindings map[string]value.Value) *Scope {
	if len(bindings) == 0 {
		return s
	}
	frame := make(map[string]value.Value, len(bindings))
	for k, v := range bindings {
		frame[k] = v
	}
	return &Scope{vars: frame, parent: s}
}

// Context is the immutable-by-convention evaluation record threaded
// through every dispatch step: the input list, the active bindings, the
// current evaluation path (for diagnostics), the array-wrapper key, the
// template options, and an optional debug hook.
type Context struct {
	Inputs   []value.Value
	Vars     *Scope
	Path     []string
	ArrayKey string
	Template TemplateOptions
	Debug    DebugHook
}

// NewContext builds the root Context for a top-level Execute call.
func NewContext(inputs []value.Value, opts Options) *Context {
	return &Context{
		Inputs:   inputs,
		Vars:     NewScope(),
		Path:     nil,
		ArrayKey: opts.ArrayKey,
		Template: opts.TemplateOptions,
	}
}

// WithVars returns a child Context whose Vars scope extends c.Vars with
// bindings, leaving c untouched. Everything else (inputs, path, options,
// debug hook) carries over unchanged.
func (c *Context) WithVars(bindings map[string]value.Value) *Context {
	child := *c
	child.Vars = c.Vars.Extend(bindings)
	return &child
}

// WithPath returns a child Context with segment appended to the path —
// append-only along a descent, discarded with the child when it returns.
func (c *Context) WithPath(segment string) *Context {
	child := *c
	child.Path = append(append([]string(nil), c.Path...), segment)
	return &child
}

// Input returns the i-th input (0-based), or (nil, false) if out of range.
func (c *Context) Input(i int) (value.Value, bool) {
	if i < 0 || i >= len(c.Inputs) {
		return nil, false
	}
	return c.Inputs[i], true
}

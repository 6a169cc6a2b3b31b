package computo

import (
	"sort"
	"sync"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

// Handler is the signature every operator implementation satisfies: it
// receives its argument list UNEVALUATED (dispatch rule 4 of §4.1) plus the
// current Context, and returns the resulting Value or an error. Handlers
// that need to evaluate an argument call Evaluate themselves, which is how
// short-circuiting forms (if, &&, ||) and binding forms (let, lambda)
// control evaluation order.
type Handler func(args []value.Value, ctx *Context) (value.Value, error)

// registry is the process-wide, read-only-after-init operator table (§2.4).
// It is built once by the package's init() functions (one per operator
// group file) and never mutated afterward; reads still go through
// registryMu's read lock, so concurrent Execute calls share it safely.
var (
	registryMu sync.RWMutex
	registry   = map[string]Handler{}
)

// register adds name (and any aliases) to the operator table. It is only
// ever called from package init(), before any Execute call can race it.
func register(name string, h Handler, aliases ...string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = h
	for _, a := range aliases {
		registry[a] = h
	}
}

// lookup returns the handler registered for name, if any.
func lookup(name string) (Handler, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	h, ok := registry[name]
	return h, ok
}

// AvailableOperators returns a stable, sorted list of every registered
// operator name, including aliases and the three tail-position forms
// (if, let, call) that dispatch.go intercepts ahead of the registry lookup
// and so never actually appear as registry entries.
func AvailableOperators() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry)+len(tailForms))
	for name := range registry {
		names = append(names, name)
	}
	for name := range tailForms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

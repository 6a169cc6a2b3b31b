package computo

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the error taxonomy of §7: every evaluation failure
// is exactly one of these four kinds, all sharing the Error supertype so
// hosts can catch the family uniformly.
type ErrorKind int

const (
	// UnknownOperator: a sequence's first element names no registered operator.
	UnknownOperator ErrorKind = iota
	// InvalidArgument: wrong arity, wrong type, out-of-range index/pointer,
	// undefined variable, non-numeric arithmetic operand, negative epsilon, etc.
	InvalidArgument
	// PatchFailed: the patch operator could not apply an RFC-6902 patch.
	PatchFailed
	// TemplateError: the permuto adapter rejected a template or context.
	TemplateError
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownOperator:
		return "UnknownOperator"
	case InvalidArgument:
		return "InvalidArgument"
	case PatchFailed:
		return "PatchFailed"
	case TemplateError:
		return "TemplateError"
	default:
		return "UnknownError"
	}
}

// Error is the common supertype every evaluation failure satisfies. It
// always carries the evaluation path accumulated up to the point of
// failure, formatted the same way ExecutionContext::get_path_string does in
// the original implementation.
type Error struct {
	Kind    ErrorKind
	Message string
	Path    []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Message, pathString(e.Path))
}

func pathString(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	return "/" + strings.Join(path, "/")
}

func newError(kind ErrorKind, path []string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Path: append([]string(nil), path...)}
}

func errUnknownOperator(path []string, name string) *Error {
	return newError(UnknownOperator, path, "operator %q is not registered", name)
}

func errInvalidArgument(path []string, format string, args ...interface{}) *Error {
	return newError(InvalidArgument, path, format, args...)
}

func errPatchFailed(path []string, format string, args ...interface{}) *Error {
	return newError(PatchFailed, path, format, args...)
}

func errTemplate(path []string, format string, args ...interface{}) *Error {
	return newError(TemplateError, path, format, args...)
}

// IsKind reports whether err is a *computo.Error of the given kind; it is
// the recommended way for a host to branch on error taxonomy.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

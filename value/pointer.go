package value

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrPointer is returned by ResolvePointer when a path segment cannot be
// resolved; callers translate it into the engine's InvalidArgument error.
type ErrPointer struct {
	Pointer string
	Reason  string
}

func (e *ErrPointer) Error() string {
	return fmt.Sprintf("json pointer %q: %s", e.Pointer, e.Reason)
}

// SplitPointer decodes an RFC-6901 JSON pointer into its unescaped segments.
// "" yields zero segments (the whole document); "/" yields a single
// empty-string segment (the key ""). Any other pointer must start with "/".
func SplitPointer(pointer string) ([]string, error) {
	if pointer == "" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, &ErrPointer{Pointer: pointer, Reason: "must begin with '/'"}
	}
	raw := strings.Split(pointer[1:], "/")
	segs := make([]string, len(raw))
	for i, s := range raw {
		s = strings.ReplaceAll(s, "~1", "/")
		s = strings.ReplaceAll(s, "~0", "~")
		segs[i] = s
	}
	return segs, nil
}

// ResolvePointer walks root following the RFC-6901 pointer and returns the
// value found there. Array segments must be decimal indices; object
// segments are looked up by key. An out-of-range index or missing key is
// reported via ErrPointer.
func ResolvePointer(root Value, pointer string) (Value, error) {
	segs, err := SplitPointer(pointer)
	if err != nil {
		return nil, err
	}
	return ResolveSegments(root, segs, pointer)
}

// ResolveSegments walks root through an already-split, already-unescaped
// list of pointer segments. originalPointer is used only for error messages
// (callers that synthesize segs from elsewhere, such as `$`'s variable path,
// may pass the whole original string for a clearer message).
func ResolveSegments(root Value, segs []string, originalPointer string) (Value, error) {
	cur := root
	for _, seg := range segs {
		switch c := cur.(type) {
		case Array:
			idx, convErr := strconv.Atoi(seg)
			if convErr != nil {
				return nil, &ErrPointer{Pointer: originalPointer, Reason: fmt.Sprintf("segment %q is not a valid array index", seg)}
			}
			v, ok := c.At(idx)
			if !ok {
				return nil, &ErrPointer{Pointer: originalPointer, Reason: fmt.Sprintf("index %d out of range", idx)}
			}
			cur = v
		case Object:
			v, ok := c.Get(seg)
			if !ok {
				return nil, &ErrPointer{Pointer: originalPointer, Reason: fmt.Sprintf("key %q not found", seg)}
			}
			cur = v
		default:
			return nil, &ErrPointer{Pointer: originalPointer, Reason: fmt.Sprintf("cannot descend into %s", c.Kind())}
		}
	}
	return cur, nil
}

package value

// UnwrapArray accepts either a bare Array or the configured array-wrapper
// Object ({ arrayKey: [...] }) and returns the underlying Array. It is used
// by every operator that conceptually consumes an array (§4.5): runtime
// values carry no wrapper/bare ambiguity, so operators must accept both
// shapes uniformly.
func UnwrapArray(v Value, arrayKey string) (Array, bool) {
	switch t := v.(type) {
	case Array:
		return t, true
	case Object:
		if t.Len() == 1 {
			if inner, ok := t.Get(arrayKey); ok {
				if arr, ok := inner.(Array); ok {
					return arr, true
				}
			}
		}
	}
	return Array{}, false
}

// IsArrayWrapper reports whether v is precisely the single-key wrapper
// object { arrayKey: [...] } (dispatcher rule 2's recognition test).
func IsArrayWrapper(v Value, arrayKey string) bool {
	obj, ok := v.(Object)
	if !ok || obj.Len() != 1 {
		return false
	}
	inner, ok := obj.Get(arrayKey)
	if !ok {
		return false
	}
	_, isArray := inner.(Array)
	return isArray
}

// WrapArray builds the literal-array wrapper object around a, using key as
// the configured array key.
func WrapArray(a Array, key string) Object {
	return NewObject([]string{key}, map[string]Value{key: a})
}

package value

import "strings"

// Object is an insertion-order preserving mapping from string keys to
// Values. Like Array it is copy-on-write. The ordering is significant: the
// dispatcher must reproduce it in rule 3 (recursive mapping evaluation) and
// `keys`/`values` must reproduce it in iteration order.
type Object struct {
	keys []string
	vals map[string]Value
}

// NewObject builds an Object from ordered key/value pairs. Duplicate keys
// keep their first position but take the last value supplied, matching
// ordinary JSON object construction semantics.
func NewObject(keys []string, vals map[string]Value) Object {
	ks := make([]string, 0, len(keys))
	vs := make(map[string]Value, len(vals))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if !seen[k] {
			ks = append(ks, k)
			seen[k] = true
		}
		vs[k] = vals[k]
	}
	return Object{keys: ks, vals: vs}
}

// EmptyObject returns an Object with no keys.
func EmptyObject() Object { return Object{} }

func (o Object) Kind() Kind   { return KindObject }
func (o Object) Truthy() bool { return len(o.keys) > 0 }

func (o Object) String() string {
	parts := make([]string, len(o.keys))
	for i, k := range o.keys {
		parts[i] = k + ": " + o.vals[k].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (o Object) Equal(other Value) bool {
	oo, ok := other.(Object)
	if !ok || len(oo.keys) != len(o.keys) {
		return false
	}
	for _, k := range o.keys {
		ov, present := oo.vals[k]
		if !present || !o.vals[k].Equal(ov) {
			return false
		}
	}
	return true
}

// Len returns the number of keys.
func (o Object) Len() int { return len(o.keys) }

// Get returns the value for key and whether it was present.
func (o Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order. Callers must not mutate it.
func (o Object) Keys() []string { return o.keys }

// Pairs returns (key, value) pairs in insertion order.
func (o Object) Pairs() [][2]interface{} {
	out := make([][2]interface{}, len(o.keys))
	for i, k := range o.keys {
		out[i] = [2]interface{}{k, o.vals[k]}
	}
	return out
}

// Set returns a new Object with key bound to v, appended at the end if new
// or updated in place if it already existed.
func (o Object) Set(key string, v Value) Object {
	if _, exists := o.vals[key]; exists {
		newVals := make(map[string]Value, len(o.vals))
		for k, val := range o.vals {
			newVals[k] = val
		}
		newVals[key] = v
		return Object{keys: o.keys, vals: newVals}
	}
	newKeys := make([]string, len(o.keys)+1)
	copy(newKeys, o.keys)
	newKeys[len(o.keys)] = key
	newVals := make(map[string]Value, len(o.vals)+1)
	for k, val := range o.vals {
		newVals[k] = val
	}
	newVals[key] = v
	return Object{keys: newKeys, vals: newVals}
}

// Merge returns a new Object holding a shallow, right-biased union of o and
// other: keys from o keep their position; keys only in other are appended
// in other's order; a key present in both takes other's value but o's
// position, matching the `merge` operator's documented semantics.
func (o Object) Merge(other Object) Object {
	result := o
	for _, k := range other.keys {
		v, _ := other.vals[k]
		result = result.Set(k, v)
	}
	return result
}

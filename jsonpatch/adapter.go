// Package jsonpatch adapts github.com/evanphx/json-patch/v5 to computo's
// Value algebra for the `patch` operator, and hand-writes an RFC-6902 diff
// generator for `diff` — the pack carries no library that produces patches,
// only one that applies them.
package jsonpatch

import (
	"sort"
	"strconv"

	evanphx "github.com/evanphx/json-patch/v5"

	"github.com/HarryPehkonen/Computo-sub001/value"
)

// Apply applies patchArr (an RFC-6902 patch, as a computo Array of
// operation objects) to doc, returning the patched document. Failures from
// the underlying library are reported verbatim; the caller (the `patch`
// operator) wraps them as PatchFailed.
func Apply(doc value.Value, patchArr value.Value) (value.Value, error) {
	docBytes, err := value.Marshal(doc)
	if err != nil {
		return nil, err
	}
	patchBytes, err := value.Marshal(patchArr)
	if err != nil {
		return nil, err
	}
	decoded, err := evanphx.DecodePatch(patchBytes)
	if err != nil {
		return nil, err
	}
	patchedBytes, err := decoded.Apply(docBytes)
	if err != nil {
		return nil, err
	}
	return value.Unmarshal(patchedBytes)
}

// Diff computes an RFC-6902 patch that transforms a into b. It walks both
// trees structurally (objects by key, arrays positionally) rather than
// searching for a minimal edit script — good enough for the round-trip law
// Apply(a, Diff(a, b)) == b, without the complexity of an LCS-based
// minimal diff.
func Diff(a, b value.Value) (value.Value, error) {
	var ops []value.Value
	walkDiff("", a, b, &ops)
	return value.NewArray(ops), nil
}

func walkDiff(path string, a, b value.Value, ops *[]value.Value) {
	if a.Equal(b) {
		return
	}
	aObj, aIsObj := a.(value.Object)
	bObj, bIsObj := b.(value.Object)
	if aIsObj && bIsObj {
		diffObjects(path, aObj, bObj, ops)
		return
	}
	aArr, aIsArr := a.(value.Array)
	bArr, bIsArr := b.(value.Array)
	if aIsArr && bIsArr {
		diffArrays(path, aArr, bArr, ops)
		return
	}
	*ops = append(*ops, patchOp("replace", path, b))
}

func diffObjects(path string, a, b value.Object, ops *[]value.Value) {
	bKeys := make(map[string]bool, b.Len())
	for _, k := range b.Keys() {
		bKeys[k] = true
	}
	var removedKeys []string
	for _, k := range a.Keys() {
		if !bKeys[k] {
			removedKeys = append(removedKeys, k)
			continue
		}
		av, _ := a.Get(k)
		bv, _ := b.Get(k)
		walkDiff(path+"/"+escapeSegment(k), av, bv, ops)
	}
	// Remove in sorted key order (keys, not indices, so order only matters
	// for determinism of the emitted patch).
	sort.Strings(removedKeys)
	for _, k := range removedKeys {
		*ops = append(*ops, patchOp("remove", path+"/"+escapeSegment(k), nil))
	}
	for _, k := range b.Keys() {
		if _, existed := a.Get(k); !existed {
			v, _ := b.Get(k)
			*ops = append(*ops, patchOp("add", path+"/"+escapeSegment(k), v))
		}
	}
}

func diffArrays(path string, a, b value.Array, ops *[]value.Value) {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		av, _ := a.At(i)
		bv, _ := b.At(i)
		walkDiff(path+"/"+strconv.Itoa(i), av, bv, ops)
	}
	switch {
	case b.Len() > a.Len():
		for i := a.Len(); i < b.Len(); i++ {
			v, _ := b.At(i)
			*ops = append(*ops, patchOp("add", path+"/-", v))
		}
	case a.Len() > b.Len():
		for i := a.Len() - 1; i >= b.Len(); i-- {
			*ops = append(*ops, patchOp("remove", path+"/"+strconv.Itoa(i), nil))
		}
	}
}

func patchOp(op, path string, v value.Value) value.Value {
	keys := []string{"op", "path"}
	vals := map[string]value.Value{"op": value.String(op), "path": value.String(path)}
	if v != nil {
		keys = append(keys, "value")
		vals["value"] = v
	}
	return value.NewObject(keys, vals)
}

func escapeSegment(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '~':
			out = append(out, '~', '0')
		case '/':
			out = append(out, '~', '1')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

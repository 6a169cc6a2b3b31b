package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// ToNative converts a Value into the plain interface{} shape
// encoding/json.Marshal expects, preserving int/float distinction by
// emitting json.Number for integers (so a round trip through
// encoding/json does not silently promote them to float64).
func ToNative(v Value) interface{} {
	switch t := v.(type) {
	case Null, nil:
		return nil
	case Bool:
		return bool(t)
	case Int:
		return json.Number(fmt.Sprintf("%d", int64(t)))
	case Float:
		s := new(big.Float).SetFloat64(float64(t)).Text('g', -1)
		if !strings.ContainsAny(s, ".eE") {
			// Keep a whole-valued float distinguishable from an Int on decode.
			s += ".0"
		}
		return json.Number(s)
	case String:
		return string(t)
	case Array:
		out := make([]interface{}, t.Len())
		for i, e := range t.Elements() {
			out[i] = ToNative(e)
		}
		return out
	case Object:
		return &orderedMap{obj: t}
	default:
		return nil
	}
}

// orderedMap adapts an Object to json.Marshaler so that marshaling a
// computo value through encoding/json preserves key insertion order, which
// Go's native map[string]interface{} marshaling does not.
type orderedMap struct {
	obj Object
}

func (om *orderedMap) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, k := range om.obj.Keys() {
		if i > 0 {
			buf = append(buf, ',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf = append(buf, keyJSON...)
		buf = append(buf, ':')
		v, _ := om.obj.Get(k)
		valJSON, err := json.Marshal(ToNative(v))
		if err != nil {
			return nil, err
		}
		buf = append(buf, valJSON...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// Marshal renders v as JSON text, preserving object key order and the
// integer/float distinction.
func Marshal(v Value) ([]byte, error) {
	return json.Marshal(ToNative(v))
}

// FromNative converts a decoded encoding/json value (as produced by a
// decoder configured with UseNumber) into a Value, preserving integers when
// the decoded json.Number has no fractional or exponent part.
func FromNative(n interface{}) (Value, error) {
	switch t := n.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number literal %q", t.String())
		}
		return Float(f), nil
	case int:
		// Reachable from decoders that don't preserve json.Number, such as
		// yaml.v3's interface{} decoding of conformance fixtures.
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case float64:
		// Only reachable when the caller didn't configure UseNumber.
		return Float(t), nil
	case map[interface{}]interface{}:
		// yaml.v3 decodes nested mappings with this key type in some
		// configurations; normalize to the map[string]interface{} path below.
		keys := make([]string, 0, len(t))
		vals := make(map[string]Value, len(t))
		for rawKey, raw := range t {
			k, ok := rawKey.(string)
			if !ok {
				return nil, fmt.Errorf("object key %v is not a string", rawKey)
			}
			v, err := FromNative(raw)
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			vals[k] = v
		}
		return NewObject(keys, vals), nil
	case []interface{}:
		elems := make([]Value, len(t))
		for i, e := range t {
			v, err := FromNative(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return NewArray(elems), nil
	case map[string]interface{}:
		// Plain decoded objects lose key order; used only for data arriving
		// from outside computo's own Marshal (e.g. a third-party library).
		keys := make([]string, 0, len(t))
		vals := make(map[string]Value, len(t))
		for k, raw := range t {
			v, err := FromNative(raw)
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
			vals[k] = v
		}
		return NewObject(keys, vals), nil
	default:
		return nil, fmt.Errorf("unsupported native type %T", n)
	}
}

// Unmarshal parses JSON text into a Value, preserving the integer/float
// distinction and the source object key order (encoding/json's default
// map[string]interface{} decoding loses order, so this walks tokens
// directly instead).
func Unmarshal(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			var elems []Value
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return NewArray(elems), nil
		case '{':
			var keys []string
			vals := make(map[string]Value)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key must be a string, got %v", keyTok)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				if _, exists := vals[key]; !exists {
					keys = append(keys, key)
				}
				vals[key] = v
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return NewObject(keys, vals), nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number literal %q", t.String())
		}
		return Float(f), nil
	default:
		return nil, fmt.Errorf("unsupported JSON token %v (%T)", tok, tok)
	}
}

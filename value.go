package textbundle

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// valueKind discriminates the three Value variants.
type valueKind int

const (
	kindString valueKind = iota
	kindArray
	kindObject
)

// Value is a single language text value: a string, an array of values, or an
// object mapping text keys to values. No other shapes are representable;
// parsing a source file that contains numbers, booleans, null or datetimes
// fails rather than coercing them to strings.
//
// A Value is an owned tree. Accessors return deep copies, so a Value obtained
// from a cache or another Value can never be used to mutate the original.
// The zero Value is the empty string.
type Value struct {
	kind valueKind
	str  string
	arr  []Value
	obj  map[string]Value
}

// StringValue returns the String variant holding the given text.
func StringValue(text string) Value {
	return Value{kind: kindString, str: text}
}

// ArrayValue returns the Array variant holding deep copies of the given elements.
func ArrayValue(elems ...Value) Value {
	arr := make([]Value, len(elems))
	for i, e := range elems {
		arr[i] = e.Clone()
	}
	return Value{kind: kindArray, arr: arr}
}

// ObjectValue returns the Object variant holding deep copies of the given entries.
func ObjectValue(entries map[string]Value) Value {
	obj := make(map[string]Value, len(entries))
	for key, e := range entries {
		obj[key] = e.Clone()
	}
	return Value{kind: kindObject, obj: obj}
}

// Parse decodes raw bundle text in the given format into a Value tree.
// It returns an error wrapping ErrParse when the text is malformed or when any
// node is outside the string/array/object model, and an error wrapping
// ErrUnknownFormat when the format is not supported.
//
// A JSON document may have any Value at its root; a TOML document is always a
// table and therefore always parses to an Object.
func Parse(raw []byte, format Format) (Value, error) {
	switch format {
	case FormatJSON:
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrParse, err)
		}
		return fromDecoded(data)
	case FormatTOML:
		var data map[string]any
		if err := toml.Unmarshal(raw, &data); err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrParse, err)
		}
		return fromDecoded(data)
	}
	return Value{}, fmt.Errorf("%w: %d", ErrUnknownFormat, int(format))
}

// fromDecoded converts a decoded JSON/TOML tree into a Value, rejecting every
// node outside the three-variant model.
func fromDecoded(data any) (Value, error) {
	switch v := data.(type) {
	case string:
		return StringValue(v), nil
	case []any:
		arr := make([]Value, 0, len(v))
		for _, e := range v {
			elem, err := fromDecoded(e)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, elem)
		}
		return Value{kind: kindArray, arr: arr}, nil
	case []map[string]any:
		// TOML arrays of tables decode with this concrete element type.
		arr := make([]Value, 0, len(v))
		for _, e := range v {
			elem, err := fromDecoded(e)
			if err != nil {
				return Value{}, err
			}
			arr = append(arr, elem)
		}
		return Value{kind: kindArray, arr: arr}, nil
	case map[string]any:
		obj := make(map[string]Value, len(v))
		for key, e := range v {
			val, err := fromDecoded(e)
			if err != nil {
				return Value{}, err
			}
			obj[key] = val
		}
		return Value{kind: kindObject, obj: obj}, nil
	default:
		return Value{}, fmt.Errorf("%w: cannot use %v (%T) as a text value", ErrParse, v, v)
	}
}

// IsString reports whether the value is the String variant.
func (v Value) IsString() bool {
	return v.kind == kindString
}

// IsArray reports whether the value is the Array variant.
func (v Value) IsArray() bool {
	return v.kind == kindArray
}

// IsObject reports whether the value is the Object variant.
func (v Value) IsObject() bool {
	return v.kind == kindObject
}

// AsString returns the string content and true when the value is the String
// variant. A mismatch is a normal probing outcome, not an error.
func (v Value) AsString() (string, bool) {
	if v.kind != kindString {
		return "", false
	}
	return v.str, true
}

// AsArray returns a deep copy of the elements and true when the value is the
// Array variant.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != kindArray {
		return nil, false
	}
	arr := make([]Value, len(v.arr))
	for i, e := range v.arr {
		arr[i] = e.Clone()
	}
	return arr, true
}

// AsObject returns a deep copy of the entries and true when the value is the
// Object variant.
func (v Value) AsObject() (map[string]Value, bool) {
	if v.kind != kindObject {
		return nil, false
	}
	obj := make(map[string]Value, len(v.obj))
	for key, e := range v.obj {
		obj[key] = e.Clone()
	}
	return obj, true
}

// Clone returns a deep copy of the value. The copy shares no substructure
// with the original.
func (v Value) Clone() Value {
	switch v.kind {
	case kindArray:
		arr := make([]Value, len(v.arr))
		for i, e := range v.arr {
			arr[i] = e.Clone()
		}
		return Value{kind: kindArray, arr: arr}
	case kindObject:
		obj := make(map[string]Value, len(v.obj))
		for key, e := range v.obj {
			obj[key] = e.Clone()
		}
		return Value{kind: kindObject, obj: obj}
	default:
		return v
	}
}

// Equal reports whether two values are structurally equal: same variant and
// same content, recursively. Object entry order is irrelevant.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case kindString:
		return v.str == other.str
	case kindArray:
		return slices.EqualFunc(v.arr, other.arr, Value.Equal)
	case kindObject:
		return maps.EqualFunc(v.obj, other.obj, Value.Equal)
	}
	return false
}

// String renders the value for display. Strings render as their content,
// arrays as a bracketed comma-joined list, objects as a brace-delimited
// comma-joined list of key: value pairs with keys in sorted order. The
// rendering is display-only and not guaranteed to round-trip through Parse.
func (v Value) String() string {
	switch v.kind {
	case kindArray:
		parts := make([]string, len(v.arr))
		for i, e := range v.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case kindObject:
		keys := slices.Sorted(maps.Keys(v.obj))
		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + ": " + v.obj[key].String()
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return v.str
	}
}

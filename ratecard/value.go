// Package ratecard reads quotes out of upstream rate card
// documents whose shape is undocumented and drifts across
// deployments. Everything here operates on a generic Value
// tree rather than a fixed schema, probing ordered lists of
// known field aliases and taking the first hit.
package ratecard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Kind tags the JSON type a Value carries.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Value is one node of a decoded JSON document. Object fields
// keep their insertion order so traversal is deterministic.
type Value struct {
	kind    Kind
	boolean bool
	text    string            // number literal or string content
	items   []*Value          // array elements, in index order
	keys    []string          // object keys, in insertion order
	fields  map[string]*Value // object fields by key
}

func NewNull() *Value          { return &Value{kind: Null} }
func NewBool(b bool) *Value    { return &Value{kind: Bool, boolean: b} }
func NewString(s string) *Value { return &Value{kind: String, text: s} }

// NewNumber wraps a numeric literal. The literal text is kept
// as-is so no precision is lost before coercion.
func NewNumber(literal string) *Value { return &Value{kind: Number, text: literal} }

func NewArray(items ...*Value) *Value { return &Value{kind: Array, items: items} }

func NewObject() *Value {
	return &Value{kind: Object, fields: make(map[string]*Value)}
}

// Set adds or replaces an object field. A replaced key keeps
// its original position in the insertion order.
func (v *Value) Set(key string, child *Value) *Value {
	if v.kind != Object {
		return v
	}

	if _, exists := v.fields[key]; !exists {
		v.keys = append(v.keys, key)
	}

	v.fields[key] = child
	return v
}

// Append adds an array element.
func (v *Value) Append(child *Value) *Value {
	if v.kind == Array {
		v.items = append(v.items, child)
	}

	return v
}

// Kind reports the JSON type; a nil Value reads as Null.
func (v *Value) Kind() Kind {
	if v == nil {
		return Null
	}

	return v.kind
}

// Field looks up an object field by exact key.
func (v *Value) Field(key string) (*Value, bool) {
	if v == nil || v.kind != Object {
		return nil, false
	}

	child, ok := v.fields[key]
	return child, ok
}

// Keys returns object keys in insertion order.
func (v *Value) Keys() []string {
	if v == nil {
		return nil
	}

	return v.keys
}

// Items returns array elements in index order.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}

	return v.items
}

// Text returns the string content of a String node or the raw
// literal of a Number node. Empty for every other kind.
func (v *Value) Text() string {
	if v == nil || (v.kind != String && v.kind != Number) {
		return ""
	}

	return v.text
}

// BoolValue returns the value of a Bool node.
func (v *Value) BoolValue() bool {
	return v != nil && v.kind == Bool && v.boolean
}

// Parse decodes a JSON document into a Value tree. Numbers keep
// their literal text and object keys keep their order of
// appearance in the document.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := nextValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document")
	}

	return v, nil
}

func nextValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	return valueFromToken(dec, tok)
}

func valueFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}

				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}

				child, err := nextValue(dec)
				if err != nil {
					return nil, err
				}

				obj.Set(key, child)
			}
			// consume the closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}

			return obj, nil

		case '[':
			arr := NewArray()
			for dec.More() {
				child, err := nextValue(dec)
				if err != nil {
					return nil, err
				}

				arr.Append(child)
			}

			if _, err := dec.Token(); err != nil {
				return nil, err
			}

			return arr, nil
		}

		return nil, fmt.Errorf("unexpected delimiter %v", t)

	case bool:
		return NewBool(t), nil

	case string:
		return NewString(t), nil

	case json.Number:
		return NewNumber(t.String()), nil

	case nil:
		return NewNull(), nil
	}

	return nil, fmt.Errorf("unexpected token %v", tok)
}

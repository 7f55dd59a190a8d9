package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind tags the shape a Value carries.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBoolean
	KindFloat
	KindInteger
	KindString
	KindBlob
	KindList
	KindReference
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBoolean:
		return "boolean"
	case KindFloat:
		return "float"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindBlob:
		return "blob"
	case KindList:
		return "list"
	case KindReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Value is a tagged union over the field shapes. The zero Value is Empty.
type Value struct {
	kind Kind
	b    bool
	f    float64
	i    int64
	s    string
	blob []byte
	list []Value
	ref  DocumentRef
}

// EmptyValue returns the empty value.
func EmptyValue() Value { return Value{} }

// BooleanValue wraps a bool.
func BooleanValue(b bool) Value { return Value{kind: KindBoolean, b: b} }

// FloatValue wraps a float64.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// IntegerValue wraps an int64.
func IntegerValue(i int64) Value { return Value{kind: KindInteger, i: i} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

// BlobValue wraps a byte slice. The slice is not copied.
func BlobValue(b []byte) Value { return Value{kind: KindBlob, blob: b} }

// ListValue wraps a list of values. The slice is not copied.
func ListValue(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// ReferenceValue wraps a document reference.
func ReferenceValue(r DocumentRef) Value { return Value{kind: KindReference, ref: r} }

// Kind returns the tag of the value.
func (v Value) Kind() Kind { return v.kind }

// Boolean returns the bool payload; ok is false for other kinds.
func (v Value) Boolean() (b bool, ok bool) { return v.b, v.kind == KindBoolean }

// Float returns the float payload; ok is false for other kinds.
func (v Value) Float() (f float64, ok bool) { return v.f, v.kind == KindFloat }

// Integer returns the integer payload; ok is false for other kinds.
func (v Value) Integer() (i int64, ok bool) { return v.i, v.kind == KindInteger }

// Str returns the string payload; ok is false for other kinds.
func (v Value) Str() (s string, ok bool) { return v.s, v.kind == KindString }

// Blob returns the blob payload; ok is false for other kinds.
func (v Value) Blob() (b []byte, ok bool) { return v.blob, v.kind == KindBlob }

// List returns the list payload; ok is false for other kinds.
func (v Value) List() (vs []Value, ok bool) { return v.list, v.kind == KindList }

// Reference returns the reference payload; ok is false for other kinds.
func (v Value) Reference() (r DocumentRef, ok bool) { return v.ref, v.kind == KindReference }

// Equal reports deep equality of two values, including kind.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindBoolean:
		return v.b == o.b
	case KindFloat:
		return v.f == o.f
	case KindInteger:
		return v.i == o.i
	case KindString:
		return v.s == o.s
	case KindBlob:
		return bytes.Equal(v.blob, o.blob)
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindReference:
		return v.ref == o.ref
	default:
		return false
	}
}

// valueEnvelope is the JSON shape: {"type": <kind>, "value": <payload>}.
// Empty omits the payload; blobs use base64 per encoding/json.
type valueEnvelope struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as a type/value envelope.
func (v Value) MarshalJSON() ([]byte, error) {
	env := valueEnvelope{Type: v.kind.String()}
	var payload any
	switch v.kind {
	case KindEmpty:
		return json.Marshal(env)
	case KindBoolean:
		payload = v.b
	case KindFloat:
		payload = v.f
	case KindInteger:
		payload = v.i
	case KindString:
		payload = v.s
	case KindBlob:
		payload = v.blob
	case KindList:
		if v.list == nil {
			payload = []Value{}
		} else {
			payload = v.list
		}
	case KindReference:
		payload = v.ref
	default:
		return nil, fmt.Errorf("document: unknown value kind %d", v.kind)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	env.Value = raw
	return json.Marshal(env)
}

// UnmarshalJSON decodes a type/value envelope.
func (v *Value) UnmarshalJSON(b []byte) error {
	var env valueEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	switch env.Type {
	case "empty":
		*v = Value{}
		return nil
	case "boolean":
		var b bool
		if err := json.Unmarshal(env.Value, &b); err != nil {
			return err
		}
		*v = BooleanValue(b)
	case "float":
		var f float64
		if err := json.Unmarshal(env.Value, &f); err != nil {
			return err
		}
		*v = FloatValue(f)
	case "integer":
		var i int64
		if err := json.Unmarshal(env.Value, &i); err != nil {
			return err
		}
		*v = IntegerValue(i)
	case "string":
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	case "blob":
		var blob []byte
		if err := json.Unmarshal(env.Value, &blob); err != nil {
			return err
		}
		*v = BlobValue(blob)
	case "list":
		var list []Value
		if err := json.Unmarshal(env.Value, &list); err != nil {
			return err
		}
		*v = ListValue(list...)
	case "reference":
		var ref DocumentRef
		if err := json.Unmarshal(env.Value, &ref); err != nil {
			return err
		}
		*v = ReferenceValue(ref)
	default:
		return fmt.Errorf("document: unknown value kind %q", env.Type)
	}
	return nil
}

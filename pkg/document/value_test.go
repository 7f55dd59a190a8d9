package document

import (
	"encoding/json"
	"testing"

	"github.com/joshradin/data-eater/pkg/snowflake"
)

func TestZeroValueIsEmpty(t *testing.T) {
	var v Value
	if v.Kind() != KindEmpty {
		t.Fatalf("zero value kind: %v", v.Kind())
	}
	if !v.Equal(EmptyValue()) {
		t.Fatalf("zero value must equal EmptyValue")
	}
}

func TestAccessorsRejectWrongKind(t *testing.T) {
	v := IntegerValue(7)
	if _, ok := v.Boolean(); ok {
		t.Fatalf("integer must not read as boolean")
	}
	if i, ok := v.Integer(); !ok || i != 7 {
		t.Fatalf("integer accessor: %d %v", i, ok)
	}
}

func TestValueJSONRoundTrip(t *testing.T) {
	id, err := snowflake.FromRaw(12345)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	cases := []Value{
		EmptyValue(),
		BooleanValue(true),
		FloatValue(3.5),
		IntegerValue(-42),
		StringValue("hello"),
		BlobValue([]byte{0x00, 0xFF, 0x10}),
		ListValue(IntegerValue(1), StringValue("two"), ListValue(BooleanValue(false))),
		ReferenceValue(Ref(id)),
	}
	for _, v := range cases {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %v: %v", v.Kind(), err)
		}
		var back Value
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal %v: %v (%s)", v.Kind(), err, b)
		}
		if !back.Equal(v) {
			t.Fatalf("round trip changed %v: %s", v.Kind(), b)
		}
	}
}

func TestValueJSONEnvelopeShape(t *testing.T) {
	b, err := json.Marshal(StringValue("x"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"type":"string","value":"x"}` {
		t.Fatalf("envelope: %s", b)
	}
	b, err = json.Marshal(EmptyValue())
	if err != nil {
		t.Fatalf("marshal empty: %v", err)
	}
	if string(b) != `{"type":"empty"}` {
		t.Fatalf("empty envelope: %s", b)
	}
}

func TestValueJSONUnknownKind(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"type":"tuple","value":1}`), &v); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestEqualDistinguishesKinds(t *testing.T) {
	if IntegerValue(1).Equal(FloatValue(1)) {
		t.Fatalf("integer 1 must not equal float 1")
	}
	if !BlobValue([]byte("ab")).Equal(BlobValue([]byte("ab"))) {
		t.Fatalf("equal blobs must compare equal")
	}
	if BlobValue([]byte("ab")).Equal(BlobValue([]byte("ac"))) {
		t.Fatalf("different blobs must not compare equal")
	}
}

package snowflake

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestPackDecomposeZero(t *testing.T) {
	id := pack(0, 0, 0)
	if id.TimestampMillis() != 0 || id.MachineID() != 0 || id.SequenceID() != 0 {
		t.Fatalf("expected all-zero fields, got %v", id)
	}
	if id.Raw() != 0 {
		t.Fatalf("expected raw 0, got %#x", id.Raw())
	}
}

func TestPackDecomposeRoundTrip(t *testing.T) {
	cases := []struct {
		ts      uint64
		machine uint16
		seq     uint16
	}{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1700000000000, 512, 7},
		{timestampMask, machineMask, sequenceMask},
	}
	for _, c := range cases {
		id := pack(c.ts, c.machine, c.seq)
		if id.TimestampMillis() != c.ts {
			t.Fatalf("timestamp: got %d want %d", id.TimestampMillis(), c.ts)
		}
		if id.MachineID() != c.machine {
			t.Fatalf("machine: got %d want %d", id.MachineID(), c.machine)
		}
		if id.SequenceID() != c.seq {
			t.Fatalf("sequence: got %d want %d", id.SequenceID(), c.seq)
		}
	}
}

func TestPackTruncatesWideFields(t *testing.T) {
	// Bits beyond each field's width must be discarded, not carried.
	id := pack(uint64(1)<<timestampBits|5, 0, 0)
	if id.TimestampMillis() != 5 {
		t.Fatalf("timestamp not truncated: got %d", id.TimestampMillis())
	}
	id = pack(0, 1<<machineBits|3, 1<<sequenceBits|9)
	if id.MachineID() != 3 || id.SequenceID() != 9 {
		t.Fatalf("machine/sequence not truncated: %d %d", id.MachineID(), id.SequenceID())
	}
	if id.Raw()&signMask != 0 {
		t.Fatalf("truncation leaked into the sign bit")
	}
}

func TestFromRawValidation(t *testing.T) {
	if _, err := FromRaw(0); err != nil {
		t.Fatalf("zero must be accepted: %v", err)
	}
	if _, err := FromRaw(0x7FFFFFFFFFFFFFFF); err != nil {
		t.Fatalf("max 63-bit pattern must be accepted: %v", err)
	}
	if _, err := FromRaw(0x8000000000000000); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for sign bit, got %v", err)
	}
	if _, err := FromRaw(^uint64(0)); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for all-ones, got %v", err)
	}
}

func TestRawRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x123456789ABCDEF, 0x7FFFFFFFFFFFFFFF} {
		id, err := FromRaw(v)
		if err != nil {
			t.Fatalf("FromRaw(%#x): %v", v, err)
		}
		if id.Raw() != v {
			t.Fatalf("round trip lost bits: %#x != %#x", id.Raw(), v)
		}
	}
}

func TestRepackIdentity(t *testing.T) {
	id := pack(1700000000000, 421, 900)
	again := pack(id.TimestampMillis(), id.MachineID(), id.SequenceID())
	if again != id {
		t.Fatalf("decompose+pack not identity: %#x != %#x", again.Raw(), id.Raw())
	}
}

func TestOrderingIsTimestampMajor(t *testing.T) {
	// Larger timestamp beats any machine/sequence combination below it.
	lo := pack(10, machineMask, sequenceMask)
	hi := pack(11, 0, 0)
	if !(lo < hi) {
		t.Fatalf("expected %v < %v", lo, hi)
	}
	a := pack(10, 1, sequenceMask)
	b := pack(10, 2, 0)
	if !(a < b) {
		t.Fatalf("expected machine-major below timestamp: %v < %v", a, b)
	}
}

func TestTimestampIsMilliseconds(t *testing.T) {
	ms := uint64(1700000000000)
	id := pack(ms, 0, 0)
	want := time.UnixMilli(int64(ms)).UTC()
	if !id.Timestamp().Equal(want) {
		t.Fatalf("timestamp decoded as %v, want %v", id.Timestamp(), want)
	}
}

func TestString(t *testing.T) {
	id := pack(0xABC, 0x2A, 0x3)
	if got := id.String(); got != "abc|2a|3" {
		t.Fatalf("display: got %q", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	id := pack(1700000000000, 77, 3)
	b, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Snowflake
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != id {
		t.Fatalf("json round trip: %v != %v", back, id)
	}

	var bad Snowflake
	if err := json.Unmarshal([]byte("9223372036854775808"), &bad); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for sign bit via json, got %v", err)
	}
}

func TestUsableAsMapKey(t *testing.T) {
	m := map[Snowflake]string{
		pack(1, 2, 3): "a",
		pack(4, 5, 6): "b",
	}
	if m[pack(1, 2, 3)] != "a" || m[pack(4, 5, 6)] != "b" {
		t.Fatalf("map lookup by snowflake failed")
	}
}

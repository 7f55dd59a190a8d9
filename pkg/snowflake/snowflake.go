package snowflake

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Field widths and offsets. The three fields plus the reserved sign bit cover
// the full 64 bits: 1 + 43 + 10 + 10.
const (
	timestampBits = 43
	machineBits   = 10
	sequenceBits  = 10

	machineShift   = sequenceBits
	timestampShift = sequenceBits + machineBits

	timestampMask = uint64(1)<<timestampBits - 1
	machineMask   = uint16(1)<<machineBits - 1
	sequenceMask  = uint16(1)<<sequenceBits - 1

	signMask = uint64(1) << 63
)

// ErrFormat is returned when a raw value has the reserved top bit set.
var ErrFormat = errors.New("snowflake: reserved top bit set")

// Snowflake is a 64-bit composite identifier. The zero value is a valid
// identifier (epoch, machine 0, sequence 0). Snowflakes are comparable and
// usable as map keys; unsigned comparison of raw values matches chronological
// order.
type Snowflake uint64

// pack assembles the three fields at their bit offsets. Inputs wider than
// their field are truncated to the low bits of that width.
func pack(tsMillis uint64, machineID, sequenceID uint16) Snowflake {
	v := (tsMillis & timestampMask) << timestampShift
	v |= uint64(machineID&machineMask) << machineShift
	v |= uint64(sequenceID & sequenceMask)
	return Snowflake(v)
}

// FromRaw validates a raw 64-bit value and returns it as a Snowflake. It
// fails with ErrFormat when bit 63 is set; every other bit pattern is a
// structurally valid identifier.
func FromRaw(v uint64) (Snowflake, error) {
	if v&signMask != 0 {
		return 0, ErrFormat
	}
	return Snowflake(v), nil
}

// Raw returns the underlying 64-bit value.
func (s Snowflake) Raw() uint64 { return uint64(s) }

// TimestampMillis returns the raw timestamp field, milliseconds since the
// Unix epoch truncated to 43 bits.
func (s Snowflake) TimestampMillis() uint64 {
	return (uint64(s) >> timestampShift) & timestampMask
}

// Timestamp returns the creation time recorded in the identifier, in UTC.
func (s Snowflake) Timestamp() time.Time {
	return time.UnixMilli(int64(s.TimestampMillis())).UTC()
}

// MachineID returns the 10-bit machine id field.
func (s Snowflake) MachineID() uint16 {
	return uint16(uint64(s)>>machineShift) & machineMask
}

// SequenceID returns the 10-bit per-millisecond sequence field.
func (s Snowflake) SequenceID() uint16 {
	return uint16(s) & sequenceMask
}

// Decompose splits the identifier into its creation time, machine id, and
// sequence counter.
func (s Snowflake) Decompose() (time.Time, uint16, uint16) {
	return s.Timestamp(), s.MachineID(), s.SequenceID()
}

// String renders the three raw fields as pipe-separated hex for debugging.
// The format is not parseable and does not round-trip.
func (s Snowflake) String() string {
	return fmt.Sprintf("%x|%x|%x", s.TimestampMillis(), s.MachineID(), s.SequenceID())
}

// MarshalJSON encodes the identifier as its raw integer value.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(s), 10), nil
}

// UnmarshalJSON decodes a raw integer and validates it through FromRaw.
func (s *Snowflake) UnmarshalJSON(b []byte) error {
	v, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("snowflake: %w", err)
	}
	id, err := FromRaw(v)
	if err != nil {
		return err
	}
	*s = id
	return nil
}

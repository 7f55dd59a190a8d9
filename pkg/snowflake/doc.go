// Package snowflake provides a 64-bit, numerically sortable identifier.
//
// # Format
//
// A Snowflake packs three fields into one uint64, most-significant bit first:
//
//	bit  63     reserved, always 0
//	bits 62..20 timestamp, milliseconds since the Unix epoch (43 bits)
//	bits 19..10 machine id, derived from the host identifier (10 bits)
//	bits  9..0  per-millisecond sequence counter (10 bits)
//
// Because the timestamp occupies the high bits, plain unsigned comparison of
// the raw values orders identifiers chronologically, then by machine, then by
// sequence.
//
// # Monotonicity and limits
//
// A Factory emits strictly increasing identifiers as long as the wall clock
// does not move backwards and fewer than 1024 identifiers are requested within
// one millisecond. Both limits are accepted rather than masked:
//   - more than 1024 calls in one millisecond wrap the sequence back to 0 and
//     repeat an identifier; the Factory never blocks waiting for the clock,
//   - a backward clock jump emits identifiers that sort before earlier ones.
//
// The Factory performs no internal locking. Share one instance between
// goroutines only behind a caller-owned mutex, or give each goroutine its own
// Factory.
//
// Usage
//
//	f, err := snowflake.NewFactory()
//	if err != nil {
//	    // host machine id unavailable; cannot generate
//	}
//	id := f.Next()
//	ts, machine, seq := id.Decompose()
package snowflake

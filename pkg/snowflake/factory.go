package snowflake

import (
	"errors"
	"fmt"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/joshradin/data-eater/pkg/hashing"
)

// ErrNoHostID is returned by NewFactory when the host machine identifier
// cannot be read. No identifiers can be generated without it.
var ErrNoHostID = errors.New("snowflake: host machine id unavailable")

// NowMs returns the current time in milliseconds since the Unix epoch.
var NowMs = func() int64 { return time.Now().UnixMilli() }

// ReadHostID reads the opaque, stable host machine identifier.
var ReadHostID = func() (string, error) { return machineid.ID() }

// Factory produces a stream of identifiers that is unique and non-decreasing
// per instance, without external coordination. It keeps no lock; see the
// package documentation for the sharing contract.
type Factory struct {
	machineID     uint16
	lastTimestamp uint64
	sequence      uint16
}

// NewFactory derives the machine id from the host identifier and returns a
// factory ready to generate. The host id is read once; construct a new
// Factory to pick up a changed identity.
func NewFactory() (*Factory, error) {
	hostID, err := ReadHostID()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoHostID, err)
	}
	return &Factory{
		machineID: uint16(hashing.ConsistentHash([]byte(hostID))),
	}, nil
}

// MachineID returns the 10-bit machine id every identifier from this factory
// will carry.
func (f *Factory) MachineID() uint16 { return f.machineID & machineMask }

// Next returns the next identifier. Within one millisecond the sequence
// counter increments, wrapping modulo 1024 with no carry; a new millisecond
// (including one smaller than the last, if the clock moved backwards) resets
// the sequence to 0. Next never blocks.
func (f *Factory) Next() Snowflake {
	ts := uint64(NowMs()) & timestampMask
	if ts == f.lastTimestamp {
		f.sequence = (f.sequence + 1) & sequenceMask
	} else {
		f.lastTimestamp = ts
		f.sequence = 0
	}
	return pack(f.lastTimestamp, f.machineID, f.sequence)
}

package snowcli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/joshradin/data-eater/internal/config"
	"github.com/joshradin/data-eater/pkg/snowflake"
)

// jsonID is the JSON shape emitted by --output json and by inspect.
type jsonID struct {
	Raw        uint64    `json:"raw"`
	Timestamp  time.Time `json:"timestamp"`
	MachineID  uint16    `json:"machineId"`
	SequenceID uint16    `json:"sequenceId"`
}

// render encodes an identifier for the requested output encoding.
func render(id snowflake.Snowflake, output string) (string, error) {
	switch output {
	case config.OutputDecimal:
		return strconv.FormatUint(id.Raw(), 10), nil
	case config.OutputHex:
		// 18 = "0x" plus 16 digits; %#016x counts the prefix inside the
		// width and loses two digits on small values.
		return fmt.Sprintf("%#018x", id.Raw()), nil
	case config.OutputFields:
		return id.String(), nil
	case config.OutputJSON:
		ts, machine, seq := id.Decompose()
		b, err := json.Marshal(jsonID{
			Raw:        id.Raw(),
			Timestamp:  ts,
			MachineID:  machine,
			SequenceID: seq,
		})
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown output encoding %q", output)
	}
}

// parseRaw accepts a decimal or 0x-prefixed hex raw value and validates it
// through the codec.
func parseRaw(s string) (snowflake.Snowflake, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return snowflake.FromRaw(v)
}

package cpu

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultSpeed is the default number of instructions executed per frame.
const DefaultSpeed = 10

// JumpMode selects the behaviour of the Bnnn instruction.
type JumpMode int

// Known jump modes.
const (
	// JumpAdditive adds nnn + V0 to the already advanced program counter.
	JumpAdditive JumpMode = iota

	// JumpAbsolute sets the program counter to nnn + V0.
	JumpAbsolute
)

func (j JumpMode) String() string {
	switch j {
	case JumpAdditive:
		return "additive"
	case JumpAbsolute:
		return "absolute"
	}
	return "unknown"
}

// Config defines machine configuration.
type Config struct {
	Speed    int      // Instructions executed per frame.
	Seed     int64    // Seed for the random number generator. 0 seeds from the clock.
	JumpMode JumpMode // Behaviour of Bnnn.
}

// DefaultConfig returns the default machine configuration.
func DefaultConfig() Config {
	return Config{
		Speed:    DefaultSpeed,
		JumpMode: JumpAdditive,
	}
}

// ParseJumpMode returns the jump mode with the given name.
func ParseJumpMode(name string) (JumpMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "additive", "":
		return JumpAdditive, nil
	case "absolute":
		return JumpAbsolute, nil
	}
	return JumpAdditive, errors.Errorf("unknown jump mode %q", name)
}

// ParseAddresses parses a comma separated list of addresses, as used
// for breakpoints. Addresses are hexadecimal with an optional 0x prefix.
func ParseAddresses(list string) ([]uint16, error) {
	var out []uint16

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		digits := strings.TrimPrefix(strings.ToLower(field), "0x")
		v, err := strconv.ParseUint(digits, 16, 16)
		if err != nil || v >= MemoryCapacity {
			return nil, errors.Errorf("invalid address %q", field)
		}

		out = append(out, uint16(v))
	}

	return out, nil
}

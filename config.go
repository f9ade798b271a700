package bincode

import (
	"encoding/binary"
	"math"
)

// IntEncoding selects how integers are laid out on the wire.
type IntEncoding uint8

const (
	// VarintEncoding stores integers in a variable, value-dependent width.
	// Values below 251 occupy a single byte.
	VarintEncoding IntEncoding = iota
	// FixedIntEncoding stores integers at their natural byte width.
	FixedIntEncoding
)

// NoLimit disables the decode byte budget.
const NoLimit = math.MaxUint64

// Config bundles the wire-format policies shared by every Encoder and Decoder:
// byte order, integer width, and the decode byte budget. A Config is an
// immutable value; the With* methods return a modified copy, so one Config can
// be shared freely across concurrent sessions.
type Config struct {
	Order binary.ByteOrder
	Ints  IntEncoding
	Limit uint64
}

// Standard returns the default configuration: little-endian, variable-width
// integers, no decode limit.
func Standard() Config {
	return Config{Order: LE, Ints: VarintEncoding, Limit: NoLimit}
}

// Legacy returns the fixed-width integer configuration: little-endian,
// natural-width integers, no decode limit.
func Legacy() Config {
	return Config{Order: LE, Ints: FixedIntEncoding, Limit: NoLimit}
}

// WithBigEndian returns a copy of the config using big-endian byte order.
func (c Config) WithBigEndian() Config {
	c.Order = BE
	return c
}

// WithLittleEndian returns a copy of the config using little-endian byte order.
func (c Config) WithLittleEndian() Config {
	c.Order = LE
	return c
}

// WithVarintEncoding returns a copy of the config using variable-width integers.
func (c Config) WithVarintEncoding() Config {
	c.Ints = VarintEncoding
	return c
}

// WithFixedIntEncoding returns a copy of the config using natural-width integers.
func (c Config) WithFixedIntEncoding() Config {
	c.Ints = FixedIntEncoding
	return c
}

// WithLimit returns a copy of the config that bounds each decode session to
// max bytes of claimed container memory. Decodes whose length prefixes would
// exceed the budget fail with ErrLimitExceeded before allocating.
func (c Config) WithLimit(max uint64) Config {
	c.Limit = max
	return c
}

// WithNoLimit returns a copy of the config with the decode budget disabled.
func (c Config) WithNoLimit() Config {
	c.Limit = NoLimit
	return c
}

// order returns the configured byte order, defaulting to little-endian for a
// zero-value Config.
func (c Config) order() binary.ByteOrder {
	if c.Order == nil {
		return LE
	}
	return c.Order
}

// limited reports whether a decode byte budget is in effect.
func (c Config) limited() bool { return c.Limit != NoLimit && c.Limit != 0 }

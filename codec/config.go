package codec

import (
	"github.com/arloliu/bincodec/endian"
	"github.com/arloliu/bincodec/internal/options"
)

// Config holds the settings a RecordCodec is built with.
type Config struct {
	engine       endian.EndianEngine
	strictLength bool
	logger       Logger
}

func defaultConfig() *Config {
	return &Config{
		engine: endian.GetBigEndianEngine(),
		logger: noopLogger{},
	}
}

// setByteOrder selects the engine used for multi-byte numeric fields.
func (c *Config) setByteOrder(bigEndian bool) {
	c.engine = endian.GetEngine(bigEndian)
}

// Option is a functional option for configuring a RecordCodec.
type Option = options.Option[*Config]

// WithBigEndian writes multi-byte numeric fields most significant byte first.
// This is the default.
func WithBigEndian() Option {
	return options.NoError(func(c *Config) {
		c.setByteOrder(true)
	})
}

// WithLittleEndian writes multi-byte numeric fields least significant byte first.
func WithLittleEndian() Option {
	return options.NoError(func(c *Config) {
		c.setByteOrder(false)
	})
}

// WithByteOrder selects big-endian when bigEndian is true and little-endian otherwise.
func WithByteOrder(bigEndian bool) Option {
	return options.NoError(func(c *Config) {
		c.setByteOrder(bigEndian)
	})
}

// WithStrictLength makes Decode fail with errs.ErrTrailingData when bytes
// remain after the last field. Default is false: trailing bytes are ignored.
func WithStrictLength(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.strictLength = enabled
	})
}

// WithLogger sets the logger used for codec diagnostics. A nil logger
// disables logging. *slog.Logger satisfies Logger.
func WithLogger(l Logger) Option {
	return options.NoError(func(c *Config) {
		if l == nil {
			c.logger = noopLogger{}
			return
		}
		c.logger = l
	})
}

package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	bigEndian bool
	strict    bool
	width     int
	lastCall  string
}

func (c *testConfig) setWidth(w int) error {
	if w%8 != 0 {
		return errors.New("width must be a multiple of 8")
	}
	c.width = w
	c.lastCall = "setWidth"

	return nil
}

func withWidth(w int) Option[*testConfig] {
	return New(func(c *testConfig) error { return c.setWidth(w) })
}

func withBigEndian(v bool) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.bigEndian = v
		c.lastCall = "withBigEndian"
	})
}

func withStrict() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.strict = true
		c.lastCall = "withStrict"
	})
}

func TestOption_New(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, withWidth(16).apply(cfg))
		require.Equal(t, 16, cfg.width)
		require.Equal(t, "setWidth", cfg.lastCall)
	})

	t.Run("propagates error", func(t *testing.T) {
		cfg := &testConfig{}
		err := withWidth(12).apply(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "multiple of 8")
		require.Equal(t, 0, cfg.width)
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, withBigEndian(true).apply(cfg))
	require.True(t, cfg.bigEndian)
}

func TestOption_Apply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(32), withBigEndian(true), withStrict())
		require.NoError(t, err)
		require.Equal(t, 32, cfg.width)
		require.True(t, cfg.bigEndian)
		require.True(t, cfg.strict)
		require.Equal(t, "withStrict", cfg.lastCall)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, withBigEndian(true), withBigEndian(false)))
		require.False(t, cfg.bigEndian)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(8), withWidth(3), withStrict())
		require.Error(t, err)
		require.Equal(t, 8, cfg.width)
		require.False(t, cfg.strict)
		require.Equal(t, "setWidth", cfg.lastCall)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withStrict()))
		require.True(t, cfg.strict)
	})

	t.Run("empty options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg))
		require.Equal(t, testConfig{}, *cfg)
	})
}

package minibank_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/minibank"
)

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults with file values", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		yml := `
server:
  addr: ":8080"
limits:
  timeout: 2s
  write: 8
breaker:
  consecutive_failures: 3
`
		cfg, err := minibank.LoadConfig(strings.NewReader(yml))
		reqrd.Nil(err)
		as.Equal(":8080", cfg.Server.Addr)
		as.Equal(int64(1), cfg.Server.Node)
		as.Equal(2*time.Second, cfg.Limits.Timeout)
		as.Equal(int64(8), cfg.Limits.Write)
		as.Equal(int64(128), cfg.Limits.Read)
		as.Equal(uint32(3), cfg.Breaker.ConsecutiveFailures)
		as.Equal("info", cfg.Log.Level)
	})

	t.Run("empty input yields defaults", func(tt *testing.T) {
		cfg, err := minibank.LoadConfig(strings.NewReader(""))
		require.Nil(tt, err)
		assert.Equal(tt, minibank.DefaultConfig(), *cfg)
	})

	t.Run("returns an error on malformed YAML", func(tt *testing.T) {
		_, err := minibank.LoadConfig(strings.NewReader("server: [unterminated"))
		assert.NotNil(tt, err)
	})
}

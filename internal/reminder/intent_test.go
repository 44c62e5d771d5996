package reminder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tushyr/thekabar/internal/domain"
)

func TestDecodeIntent(t *testing.T) {
	t.Run("before_close", func(t *testing.T) {
		intent, ok := DecodeIntent(json.RawMessage(`{"type":"before_close","minutes":45}`))
		require.True(t, ok)
		assert.Equal(t, domain.BeforeClose{Minutes: 45}, intent)
	})

	t.Run("at", func(t *testing.T) {
		intent, ok := DecodeIntent(json.RawMessage(`{"type":"at","time":"21:30"}`))
		require.True(t, ok)
		assert.Equal(t, domain.At{Time: "21:30"}, intent)
	})

	t.Run("in", func(t *testing.T) {
		intent, ok := DecodeIntent(json.RawMessage(`{"type":"in","minutes":120}`))
		require.True(t, ok)
		assert.Equal(t, domain.In{Minutes: 120}, intent)
	})

	t.Run("legacy bare number means before_close minutes", func(t *testing.T) {
		intent, ok := DecodeIntent(json.RawMessage(`30`))
		require.True(t, ok)
		assert.Equal(t, domain.BeforeClose{Minutes: 30}, intent)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, ok := DecodeIntent(json.RawMessage(`{"type":"sometime","minutes":10}`))
		assert.False(t, ok)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		for _, raw := range []string{``, `"soon"`, `[1,2]`, `{`} {
			_, ok := DecodeIntent(json.RawMessage(raw))
			assert.False(t, ok, "raw %q", raw)
		}
	})
}

func TestKind(t *testing.T) {
	assert.Equal(t, domain.KindBeforeClose, Kind(domain.BeforeClose{Minutes: 1}))
	assert.Equal(t, domain.KindAt, Kind(domain.At{Time: "12:00"}))
	assert.Equal(t, domain.KindIn, Kind(domain.In{Minutes: 1}))
}

package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Penlect/subpub/match"
)

func TestMQTT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter string
		want   string
	}{
		{
			name:   "single level wildcard",
			filter: "/+/",
			want:   "/([^/]*)/",
		},
		{
			name:   "multi level wildcard",
			filter: "#",
			want:   "(.*)$",
		},
		{
			name:   "mixed wildcards",
			filter: "room/3/sensor/+/temperature/#",
			want:   "room/3/sensor/([^/]*)/temperature/(.*)$",
		},
		{
			name:   "no wildcards",
			filter: "room/3/sensor",
			want:   "room/3/sensor",
		},
		{
			name:   "segments after hash are ignored",
			filter: "a/#/b",
			want:   "a/(.*)$",
		},
		{
			name:   "literal segments are quoted",
			filter: "v1.0/+",
			want:   `v1\.0/([^/]*)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, match.MQTT(tt.filter))
		})
	}
}

func TestCompileMQTT(t *testing.T) {
	t.Parallel()

	t.Run("wildcards capture topic segments", func(t *testing.T) {
		t.Parallel()

		p, err := match.CompileMQTT("Daniel/+/+/+/#")
		require.NoError(t, err)

		res, ok := p.Match("Daniel/2005/12/18/02:45:00")
		require.True(t, ok)
		assert.Equal(t, []string{"2005", "12", "18", "02:45:00"}, res.Groups)
	})

	t.Run("multi level wildcard spans segments", func(t *testing.T) {
		t.Parallel()

		p, err := match.CompileMQTT("room/+/sensor/#")
		require.NoError(t, err)

		res, ok := p.Match("room/3/sensor/outdoor/north")
		require.True(t, ok)
		assert.Equal(t, []string{"3", "outdoor/north"}, res.Groups)
	})

	t.Run("plus does not cross segment boundary", func(t *testing.T) {
		t.Parallel()

		p, err := match.CompileMQTT("room/+/sensor")
		require.NoError(t, err)

		_, ok := p.Match("room/3/4/sensor")
		assert.False(t, ok)
	})
}

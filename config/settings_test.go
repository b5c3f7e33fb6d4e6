package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ParsesFee(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("REGISTRATION_FEE", "3000.50")

	s, err := Load()

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("3000.50").Equal(s.Fee()))
	assert.Equal(t, "THE PRICELESS", s.Event().Title)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad fee", map[string]string{"REGISTRATION_FEE": "three"}, "REGISTRATION_FEE"},
		{"negative fee", map[string]string{"REGISTRATION_FEE": "-1"}, "must not be negative"},
		{"bad sweep", map[string]string{"BOARD_SWEEP_SPEC": "every day"}, "BOARD_SWEEP_SPEC"},
		{"digest hour", map[string]string{"DIGEST_HOUR": "24"}, "DIGEST_HOUR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()

			assert.ErrorContains(t, err, tt.want)
		})
	}
}

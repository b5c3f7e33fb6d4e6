package utils

import (
	"camp_registration/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketQRContentRoundTrip(t *testing.T) {
	ticket := model.Ticket{TicketId: "R63T-ABCDEF12", FullName: "Ada: Obi", Status: "approved"}

	content := TicketQRContent(ticket)

	assert.Equal(t, "RCCG_TICKET:R63T-ABCDEF12:Ada  Obi:approved", content)
	id, ok := ParseTicketQR(content)
	require.True(t, ok)
	assert.Equal(t, "R63T-ABCDEF12", id)
}

func TestParseTicketQR_Rejects(t *testing.T) {
	for _, in := range []string{"", "RCCG_TICKET", "RCCG_TICKET:", "OTHER:R63T-1"} {
		_, ok := ParseTicketQR(in)
		assert.False(t, ok, in)
	}
}

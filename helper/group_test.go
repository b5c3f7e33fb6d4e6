package helper

import (
	"camp_registration/constants"
	"camp_registration/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTickets(t *testing.T) {
	now := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
	in := model.GroupRegistrationInput{
		Parish:          "Glory Parish",
		CoordinatorName: "Pastor Tobi",
		Phone:           "08064254001",
		Email:           "coord@example.com",
		Teens:           2,
		PreTeens:        1,
		Teachers:        1,
	}
	coordinator := model.User{Username: "coord3", FirstName: "Tobi", LastName: "Joy", Province: "Province 3"}

	tickets := GroupTickets(in, coordinator, now)

	require.Len(t, tickets, 4)
	assert.Equal(t, "Glory Parish Teen Guest 1", tickets[0].FullName)
	assert.Equal(t, "Glory Parish Teen Guest 2", tickets[1].FullName)
	assert.Equal(t, "Glory Parish Pre-Teen Guest 1", tickets[2].FullName)
	assert.Equal(t, "Glory Parish Coordinator Guest 1", tickets[3].FullName)
	assert.Equal(t, []int{15, 15, 11, 30}, []int{tickets[0].Age, tickets[1].Age, tickets[2].Age, tickets[3].Age})
	for _, tk := range tickets {
		assert.Equal(t, constants.STATUS_PENDING, tk.Status)
		assert.Equal(t, constants.REGISTRATION_COORDINATOR, tk.RegistrationType)
		assert.Equal(t, "Pastor Tobi", tk.ParentName)
		assert.Equal(t, "Pastor Tobi", tk.EmergencyContact)
		assert.Equal(t, "Province 3", tk.Province)
		assert.Equal(t, "Tobi Joy", tk.RegisteredBy)
		assert.True(t, tk.ParentConsent && tk.MedicalConsent)
		assert.NotEmpty(t, tk.TicketId)
	}
	assert.NotEqual(t, tickets[0].TicketId, tickets[1].TicketId)
}

func TestExpectedAmount(t *testing.T) {
	fee := decimal.RequireFromString("3000")
	assert.True(t, ExpectedAmount(fee, 4).Equal(decimal.NewFromInt(12000)))
}

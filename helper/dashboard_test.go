package helper

import (
	"camp_registration/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ticketAt(id, name, status, province string, day int) model.Ticket {
	return model.Ticket{
		ID:           id,
		TicketId:     "R63T-0000000" + id,
		FullName:     name,
		Email:        name + "@example.com",
		Parish:       "Glory Parish",
		Province:     province,
		Status:       status,
		RegisteredAt: time.Date(2025, 11, day, 9, 0, 0, 0, time.UTC),
	}
}

func ids(tickets []model.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func sample() []model.Ticket {
	return []model.Ticket{
		ticketAt("1", "bola", "pending", "Province 3", 1),
		ticketAt("2", "Ada", "approved", "province_3", 3),
		ticketAt("3", "chidi", "rejected", "Province 10", 2),
	}
}

func TestFilterTickets(t *testing.T) {
	tests := []struct {
		name string
		in   model.FilterTicketInput
		want []string
	}{
		{"default newest first", model.FilterTicketInput{}, []string{"2", "3", "1"}},
		{"oldest", model.FilterTicketInput{Sort: "oldest"}, []string{"1", "3", "2"}},
		{"name ignores case", model.FilterTicketInput{Sort: "name"}, []string{"2", "1", "3"}},
		{"status", model.FilterTicketInput{Status: "pending"}, []string{"1"}},
		{"search ticket id", model.FilterTicketInput{Search: "r63t-00000003"}, []string{"3"}},
		{"search email", model.FilterTicketInput{Search: "ADA@"}, []string{"2"}},
		{"search parish", model.FilterTicketInput{Search: "glory", Status: "approved"}, []string{"2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterTickets(sample(), tt.in)))
		})
	}
}

func TestStats(t *testing.T) {
	assert.Equal(t, model.TicketStats{Total: 3, Pending: 1, Approved: 1, Rejected: 1}, Stats(sample()))
}

func TestForProvince(t *testing.T) {
	assert.Equal(t, []string{"1"}, ids(ForProvince(sample(), "province 3")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(ForProvince(sample(), "Province")))
	assert.Empty(t, ForProvince(sample(), ""))
	assert.Equal(t, "province_3", NormalizeProvince(" Province_ 3 "))
}

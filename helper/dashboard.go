package helper

import (
	"camp_registration/constants"
	"camp_registration/model"
	"slices"
	"strings"
	"unicode"
)

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), sub)
}

// FilterTickets applies the dashboard search, status filter and sort order.
// Search matches name, ticket id, email and parish; the default order is newest first.
func FilterTickets(tickets []model.Ticket, in model.FilterTicketInput) []model.Ticket {
	search := strings.ToLower(strings.TrimSpace(in.Search))
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if in.Status != "" && t.Status != in.Status {
			continue
		}
		if search != "" &&
			!containsFold(t.FullName, search) &&
			!containsFold(t.TicketId, search) &&
			!containsFold(t.Email, search) &&
			!containsFold(t.Parish, search) {
			continue
		}
		out = append(out, t)
	}

	switch in.Sort {
	case "name":
		slices.SortStableFunc(out, func(a, b model.Ticket) int {
			return strings.Compare(strings.ToLower(a.FullName), strings.ToLower(b.FullName))
		})
	case "oldest":
		slices.SortStableFunc(out, func(a, b model.Ticket) int {
			return a.RegisteredAt.Compare(b.RegisteredAt)
		})
	default:
		slices.SortStableFunc(out, func(a, b model.Ticket) int {
			return b.RegisteredAt.Compare(a.RegisteredAt)
		})
	}
	return out
}

func Stats(tickets []model.Ticket) model.TicketStats {
	stats := model.TicketStats{Total: len(tickets)}
	for _, t := range tickets {
		switch t.Status {
		case constants.STATUS_PENDING:
			stats.Pending++
		case constants.STATUS_APPROVED:
			stats.Approved++
		case constants.STATUS_REJECTED:
			stats.Rejected++
		}
	}
	return stats
}

// NormalizeProvince lowercases and strips whitespace.
func NormalizeProvince(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// ForProvince keeps tickets whose province contains the coordinator's or is contained in it.
// A coordinator without a province sees nothing.
func ForProvince(tickets []model.Ticket, province string) []model.Ticket {
	want := NormalizeProvince(province)
	out := []model.Ticket{}
	if want == "" {
		return out
	}
	for _, t := range tickets {
		got := NormalizeProvince(t.Province)
		if got == "" {
			continue
		}
		if strings.Contains(got, want) || strings.Contains(want, got) {
			out = append(out, t)
		}
	}
	return out
}

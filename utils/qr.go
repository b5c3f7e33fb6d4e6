package utils

import (
	"camp_registration/model"
	"fmt"
	"strings"
)

const qrPrefix = "RCCG_TICKET"

// TicketQRContent is what the gate scanner reads: RCCG_TICKET:{ticketId}:{fullName}:{status}.
func TicketQRContent(t model.Ticket) string {
	name := strings.ReplaceAll(t.FullName, ":", " ")
	return fmt.Sprintf("%s:%s:%s:%s", qrPrefix, t.TicketId, name, t.Status)
}

// ParseTicketQR returns the ticket reference encoded by TicketQRContent.
func ParseTicketQR(content string) (string, bool) {
	parts := strings.Split(content, ":")
	if len(parts) < 2 || parts[0] != qrPrefix || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

package helper

import (
	"camp_registration/model"
	"path"
	"strings"

	"github.com/gosimple/slug"
)

// ProofPublicID names an archived proof after the ticket and the uploaded file.
func ProofPublicID(ticket model.Ticket, filename string) string {
	base := strings.TrimSuffix(filename, path.Ext(filename))
	parts := []string{slug.Make(ticket.TicketId), slug.Make(ticket.FullName)}
	if s := slug.Make(base); s != "" {
		parts = append(parts, s)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "proof"
	}
	return strings.Join(out, "_")
}

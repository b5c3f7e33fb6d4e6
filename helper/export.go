package helper

import (
	"camp_registration/model"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"
)

var exportHeader = []string{"Ticket ID", "Name", "Age", "Gender", "Category", "Parish", "Status", "Registered At"}

// WriteTicketsCSV writes the coordinator's registration list.
func WriteTicketsCSV(w io.Writer, tickets []model.Ticket, loc *time.Location) error {
	out := csv.NewWriter(w)
	if err := out.Write(exportHeader); err != nil {
		return err
	}
	for _, t := range tickets {
		registered := ""
		if !t.RegisteredAt.IsZero() {
			registered = t.RegisteredAt.In(loc).Format("02/01/2006")
		}
		row := []string{
			t.TicketId,
			t.FullName,
			strconv.Itoa(t.Age),
			t.Gender,
			t.Category,
			t.Parish,
			t.Status,
			registered,
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// ExportFilename names the download after the province, e.g. Province_3_List.csv.
func ExportFilename(province string) string {
	name := strings.Join(strings.Fields(province), "_")
	if name == "" {
		name = "Registrations"
	}
	return name + "_List.csv"
}

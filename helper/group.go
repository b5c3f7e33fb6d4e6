package helper

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/wizard"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type groupCategory struct {
	category string
	label    string
	age      int
}

var (
	teensGroup    = groupCategory{category: "teens", label: "Teen", age: 15}
	preTeensGroup = groupCategory{category: "pre_teens", label: "Pre-Teen", age: 11}
	teachersGroup = groupCategory{category: "teachers", label: "Coordinator", age: 30}
)

// GroupTickets builds one placeholder ticket per attendee of a coordinator's group.
// The coordinator stands in as guardian and emergency contact.
func GroupTickets(in model.GroupRegistrationInput, coordinator model.User, now time.Time) []model.Ticket {
	province := coordinator.Province
	registeredBy := strings.TrimSpace(coordinator.FirstName + " " + coordinator.LastName)
	if registeredBy == "" {
		registeredBy = coordinator.Username
	}

	tickets := make([]model.Ticket, 0, in.Count())
	push := func(count int, g groupCategory) {
		for i := 1; i <= count; i++ {
			tickets = append(tickets, model.Ticket{
				TicketId:              wizard.NewTicketReference(),
				FullName:              fmt.Sprintf("%s %s Guest %d", in.Parish, g.label, i),
				Age:                   g.age,
				Gender:                "not_specified",
				Category:              g.category,
				Phone:                 in.Phone,
				Email:                 in.Email,
				Province:              province,
				Zone:                  "Coordinator Upload",
				Area:                  "Coordinator Upload",
				Parish:                in.Parish,
				Department:            "Bulk Registration",
				MedicalConditions:     "None",
				Medications:           "None",
				DietaryRestrictions:   "None",
				EmergencyContact:      in.CoordinatorName,
				EmergencyPhone:        in.Phone,
				EmergencyRelationship: "Coordinator",
				ParentName:            in.CoordinatorName,
				ParentEmail:           in.Email,
				ParentPhone:           in.Phone,
				ParentRelationship:    "Coordinator",
				ParentConsent:         true,
				MedicalConsent:        true,
				PhotoConsent:          true,
				Status:                constants.STATUS_PENDING,
				RegisteredAt:          now,
				RegisteredBy:          registeredBy,
				RegistrationType:      constants.REGISTRATION_COORDINATOR,
			})
		}
	}
	push(in.Teens, teensGroup)
	push(in.PreTeens, preTeensGroup)
	push(in.Teachers, teachersGroup)
	return tickets
}

func ExpectedAmount(fee decimal.Decimal, attendees int) decimal.Decimal {
	return fee.Mul(decimal.NewFromInt(int64(attendees)))
}

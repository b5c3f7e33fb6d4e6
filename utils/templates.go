package utils

import (
	"bytes"
	"camp_registration/model"
	"strings"
	"text/template"
)

type emailTemplate struct {
	subject *template.Template
	body    *template.Template
}

type templateData struct {
	Name     string
	TicketID string
	Reason   string
	Event    model.EventDetails
}

func mustTemplate(name, subject, body string) emailTemplate {
	return emailTemplate{
		subject: template.Must(template.New(name + "_subject").Parse(subject)),
		body:    template.Must(template.New(name + "_body").Parse(strings.TrimSpace(body))),
	}
}

var approvalTemplate = mustTemplate("approval", `🎉 Registration Approved - {{.Event.Title}}`, `
Dear {{.Name}},

We are excited to inform you that your registration for {{.Event.Title}} has been approved!

**Registration Details:**
- Ticket ID: {{.TicketID}}
- Event: {{.Event.Title}}
- Date: {{.Event.Date}}
- Location: {{.Event.Location}}

**Next Steps:**
1. Present this email and your ticket at the registration desk
2. Arrive 30 minutes before the event starts
3. Bring valid ID for verification

We look forward to seeing you at the event!

Blessings,
{{.Event.Team}}
`)

var rejectionTemplate = mustTemplate("rejection", `Registration Update - {{.Event.Title}}`, `
Dear {{.Name}},

Thank you for your interest in {{.Event.Title}}.

After reviewing your registration, we are unable to approve your application at this time.{{if .Reason}}

Reason: {{.Reason}}{{end}}

**Registration Details:**
- Ticket ID: {{.TicketID}}
- Event: {{.Event.Title}}

If you believe this is an error, please contact us at {{.Event.ContactEmail}}.

Thank you for your understanding.

Blessings,
{{.Event.Team}}
`)

var reminderTemplate = mustTemplate("reminder", `🔔 Reminder: {{.Event.Title}} is Coming Soon!`, `
Dear {{.Name}},

This is a friendly reminder about the upcoming {{.Event.Title}}!

**Event Details:**
- Date: {{.Event.Date}}
- Time: 9:00 AM
- Location: {{.Event.Location}}
- Address: {{.Event.Address}}

**Don't Forget:**
- Bring your ticket (ID: {{.TicketID}})
- Arrive 30 minutes early
- Wear comfortable clothing
- Bring your Bible and notebook

We're excited to have you join us for this life-changing experience!

See you there!
{{.Event.Team}}
`)

var confirmationTemplate = mustTemplate("confirmation", `Registration Received - {{.Event.Title}}`, `
Dear {{.Name}},

Thank you for registering for {{.Event.Title}}.

**Registration Details:**
- Ticket ID: {{.TicketID}}
- Date: {{.Event.Date}}
- Location: {{.Event.Location}}

Your registration is now awaiting review. You will receive another email once it has been approved.

Blessings,
{{.Event.Team}}
`)

func (t emailTemplate) render(data templateData) (string, string, error) {
	var subject, body bytes.Buffer
	if err := t.subject.Execute(&subject, data); err != nil {
		return "", "", err
	}
	if err := t.body.Execute(&body, data); err != nil {
		return "", "", err
	}
	return subject.String(), body.String(), nil
}

func ApprovalEmail(name, ticketID string, event model.EventDetails) (string, string, error) {
	return approvalTemplate.render(templateData{Name: name, TicketID: ticketID, Event: event})
}

func RejectionEmail(name, ticketID, reason string, event model.EventDetails) (string, string, error) {
	return rejectionTemplate.render(templateData{Name: name, TicketID: ticketID, Reason: reason, Event: event})
}

func ReminderEmail(name, ticketID string, event model.EventDetails) (string, string, error) {
	return reminderTemplate.render(templateData{Name: name, TicketID: ticketID, Event: event})
}

func ConfirmationEmail(name, ticketID string, event model.EventDetails) (string, string, error) {
	return confirmationTemplate.render(templateData{Name: name, TicketID: ticketID, Event: event})
}

package utils

import (
	"camp_registration/model"
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (c SMTPConfig) addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// SMTPNotifier delivers a batch over one SMTP connection, reopened after a rejected message.
type SMTPNotifier struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendBulk returns an error only when the connection cannot be opened.
// Per-recipient failures are reported in the result details.
func (n *SMTPNotifier) SendBulk(ctx context.Context, recipients []model.Recipient, subject, message string) (model.BulkSendResult, error) {
	result := model.BulkSendResult{Total: len(recipients)}
	if len(recipients) == 0 {
		return result, nil
	}

	sender, err := n.dialer.Dial()
	if err != nil {
		return model.BulkSendResult{}, fmt.Errorf("smtp dial %s: %w", n.cfg.addr(), err)
	}
	defer func() {
		if sender != nil {
			sender.Close()
		}
	}()

	for _, r := range recipients {
		detail := model.DeliveryDetail{Recipient: r.Email, Name: r.Name}
		if err := ctx.Err(); err != nil {
			detail.Error = err.Error()
			result.Failed++
			result.Details = append(result.Details, detail)
			continue
		}
		if sender == nil {
			// A failed send leaves the SMTP transaction open; start a new session.
			if sender, err = n.dialer.Dial(); err != nil {
				sender = nil
				log.Printf("Reconnect to %s failed: %v", n.cfg.addr(), err)
				detail.Error = err.Error()
				result.Failed++
				result.Details = append(result.Details, detail)
				continue
			}
		}

		messageID := uuid.New().String()
		m := gomail.NewMessage()
		m.SetHeader("From", n.cfg.From)
		m.SetHeader("To", r.Email)
		m.SetHeader("Subject", subject)
		m.SetHeader("Message-ID", "<"+messageID+"@"+n.cfg.Host+">")
		m.SetBody("text/plain", message)

		if err := gomail.Send(sender, m); err != nil {
			log.Printf("Send email to %s failed: %v", r.Email, err)
			detail.Error = err.Error()
			result.Failed++
			sender.Close()
			sender = nil
		} else {
			detail.Success = true
			detail.MessageId = messageID
			result.Successful++
		}
		result.Details = append(result.Details, detail)
	}
	return result, nil
}

// SendOne delivers a single message, used by the daily digest.
func (n *SMTPNotifier) SendOne(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	return n.dialer.DialAndSend(m)
}

// LogNotifier only logs messages. It is used when MAIL_MODE is log.
type LogNotifier struct{}

func (LogNotifier) SendBulk(_ context.Context, recipients []model.Recipient, subject, _ string) (model.BulkSendResult, error) {
	log.Printf("Mock bulk email %q to %d recipients", subject, len(recipients))
	stamp := time.Now().UnixMilli()
	result := model.BulkSendResult{Total: len(recipients)}
	for _, r := range recipients {
		result.Details = append(result.Details, model.DeliveryDetail{
			Success:   true,
			MessageId: fmt.Sprintf("mock-bulk-%d-%s", stamp, r.TicketID),
			Recipient: r.Email,
			Name:      r.Name,
		})
		result.Successful++
	}
	return result, nil
}

func (LogNotifier) SendOne(to, subject, _ string) error {
	log.Printf("Mock email %q to %s", subject, to)
	return nil
}

// ConfirmationMailer sends the registration receipt to a new registrant.
type ConfirmationMailer struct {
	cfg   SMTPConfig
	event model.EventDetails
	send  func(e *email.Email) error
}

func NewConfirmationMailer(cfg SMTPConfig, event model.EventDetails, enabled bool) *ConfirmationMailer {
	m := &ConfirmationMailer{cfg: cfg, event: event}
	if enabled {
		m.send = func(e *email.Email) error {
			return e.Send(cfg.addr(), smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host))
		}
	} else {
		m.send = func(e *email.Email) error {
			log.Printf("Mock confirmation email %q to %v", e.Subject, e.To)
			return nil
		}
	}
	return m
}

func (m *ConfirmationMailer) Send(ticket model.Ticket) error {
	subject, body, err := ConfirmationEmail(ticket.FullName, ticket.TicketId, m.event)
	if err != nil {
		return err
	}
	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{ticket.Email}
	if ticket.ParentEmail != "" && ticket.ParentEmail != ticket.Email {
		e.Cc = []string{ticket.ParentEmail}
	}
	e.Subject = subject
	e.Text = []byte(body)
	return m.send(e)
}

// SendAsync sends in the background and only logs a failure.
func (m *ConfirmationMailer) SendAsync(ticket model.Ticket) {
	go func() {
		if err := m.Send(ticket); err != nil {
			log.Printf("Send confirmation email for %s failed: %v", ticket.TicketId, err)
		}
	}()
}

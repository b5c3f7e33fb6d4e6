package wizard

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/monitoring"
	"camp_registration/utils"
	"camp_registration/validate"
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrNotOnFinalStep      = errors.New("draft is not on the final step")
	ErrUnknownField        = errors.New("unknown form field")
	ErrInvalidValue        = errors.New("invalid value for field")
	ErrPaymentNotConfirmed = errors.New("payment was not confirmed")
)

// Store persists drafts by draft key. Load returns nil when nothing is stored.
type Store interface {
	Load(ctx context.Context, key string) (*model.Draft, error)
	Save(ctx context.Context, key string, draft *model.Draft) error
	Delete(ctx context.Context, key string) error
}

type TicketCreator interface {
	CreateTicket(ctx context.Context, ticket model.Ticket) (model.Ticket, error)
}

type PaymentVerifier interface {
	VerifyPayment(ctx context.Context, reference string) (model.Payment, error)
}

type Machine struct {
	store    Store
	tickets  TicketCreator
	payments PaymentVerifier
	now      func() time.Time
}

func New(store Store, tickets TicketCreator, payments PaymentVerifier) *Machine {
	return &Machine{
		store:    store,
		tickets:  tickets,
		payments: payments,
		now:      time.Now,
	}
}

var registrationFields = func() map[string]int {
	t := reflect.TypeOf(model.Registration{})
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		out[name] = i
	}
	return out
}()

func (m *Machine) Load(ctx context.Context, key string) (*model.Draft, error) {
	draft, err := m.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	if draft == nil {
		return model.NewDraft(), nil
	}
	if draft.CurrentStep < model.FirstStep || draft.CurrentStep > model.LastStep {
		draft.CurrentStep = model.FirstStep
	}
	return draft, nil
}

func (m *Machine) save(ctx context.Context, key string, draft *model.Draft) error {
	draft.UpdatedAt = m.now()
	if err := m.store.Save(ctx, key, draft); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// GoNext validates the current step and advances on success.
// On failure the step is unchanged and the errors are recorded on the draft.
func (m *Machine) GoNext(ctx context.Context, key string) (*model.Draft, error) {
	draft, err := m.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	step := strconv.Itoa(draft.CurrentStep)

	if errs := validate.Step(draft.FormData, draft.CurrentStep); len(errs) > 0 {
		draft.Errors = errs
		if err := m.save(ctx, key, draft); err != nil {
			return nil, err
		}
		monitoring.RecordWizardTransition("next", step, "invalid")
		return draft, errs
	}

	draft.Errors = nil
	if draft.CurrentStep < model.LastStep {
		draft.CurrentStep++
	}
	if err := m.save(ctx, key, draft); err != nil {
		return nil, err
	}
	monitoring.RecordWizardTransition("next", step, "ok")
	return draft, nil
}

func (m *Machine) GoBack(ctx context.Context, key string) (*model.Draft, error) {
	draft, err := m.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	step := strconv.Itoa(draft.CurrentStep)
	if draft.CurrentStep > model.FirstStep {
		draft.CurrentStep--
	}
	if err := m.save(ctx, key, draft); err != nil {
		return nil, err
	}
	monitoring.RecordWizardTransition("back", step, "ok")
	return draft, nil
}

func (m *Machine) UpdateField(ctx context.Context, key, name string, value any) (*model.Draft, error) {
	return m.UpdateFields(ctx, key, map[string]any{name: value})
}

// UpdateFields merges the values into the draft. Nothing is written when any field is rejected.
func (m *Machine) UpdateFields(ctx context.Context, key string, values map[string]any) (*model.Draft, error) {
	draft, err := m.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	form := reflect.ValueOf(&draft.FormData).Elem()
	for name, raw := range values {
		field, ok := model.LookupField(name)
		idx, known := registrationFields[name]
		if !ok || !known {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
		value, err := coerce(field.Kind, raw)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrInvalidValue, name, err)
		}
		form.Field(idx).Set(reflect.ValueOf(value))
		draft.ClearError(name)
	}
	if err := m.save(ctx, key, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func coerce(kind model.FieldKind, raw any) (any, error) {
	switch kind {
	case model.KindNumber:
		return toInt(raw)
	case model.KindCheckbox:
		return toBool(raw)
	default:
		switch v := raw.(type) {
		case nil:
			return "", nil
		case string:
			return v, nil
		default:
			return nil, fmt.Errorf("expected text, got %T", raw)
		}
	}
}

func toInt(raw any) (int, error) {
	switch v := raw.(type) {
	case nil:
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		return strconv.Atoi(s)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected whole number, got %v", v)
		}
		return int(v), nil
	case int:
		return v, nil
	}
	if utils.IsNumber(raw) {
		return int(reflect.ValueOf(raw).Convert(reflect.TypeOf(0)).Int()), nil
	}
	return 0, fmt.Errorf("expected number, got %T", raw)
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "false", "off", "0":
			return false, nil
		case "true", "on", "1":
			return true, nil
		}
	}
	return false, fmt.Errorf("expected checkbox value, got %v", raw)
}

// Submit finalizes the draft into a ticket and hands it to the ticket service.
// A payment reference makes the ticket approved only once the payment service reports success.
func (m *Machine) Submit(ctx context.Context, key string, input model.SubmitDraftInput) (model.Ticket, error) {
	draft, err := m.Load(ctx, key)
	if err != nil {
		return model.Ticket{}, err
	}
	if draft.CurrentStep != model.LastStep {
		return model.Ticket{}, ErrNotOnFinalStep
	}
	if errs := validate.Registration(draft.FormData); len(errs) > 0 {
		draft.Errors = errs
		if err := m.save(ctx, key, draft); err != nil {
			return model.Ticket{}, err
		}
		monitoring.RecordWizardTransition("submit", strconv.Itoa(draft.CurrentStep), "invalid")
		return model.Ticket{}, errs
	}

	var ticket model.Ticket
	if err := copier.Copy(&ticket, &draft.FormData); err != nil {
		return model.Ticket{}, fmt.Errorf("build ticket: %w", err)
	}
	now := m.now()
	ticket.TicketId = NewTicketReference()
	ticket.RegisteredAt = now
	ticket.Status = constants.STATUS_PENDING
	ticket.RegistrationType = constants.REGISTRATION_INDIVIDUAL

	if ref := strings.TrimSpace(input.PaymentReference); ref != "" {
		payment, err := m.payments.VerifyPayment(ctx, ref)
		if err != nil {
			return model.Ticket{}, fmt.Errorf("verify payment: %w", err)
		}
		if !payment.Succeeded() {
			return model.Ticket{}, ErrPaymentNotConfirmed
		}
		ticket.Status = constants.STATUS_APPROVED
		ticket.PaymentRef = ref
		ticket.ApprovedAt = &now
	}

	created, err := m.tickets.CreateTicket(ctx, ticket)
	if err != nil {
		monitoring.RecordWizardTransition("submit", strconv.Itoa(draft.CurrentStep), "error")
		return model.Ticket{}, fmt.Errorf("create ticket: %w", err)
	}
	// The ticket exists remotely now, so a stale draft must not fail the submit.
	if err := m.store.Delete(ctx, key); err != nil {
		if err := m.store.Delete(ctx, key); err != nil {
			log.Printf("Clear draft %s after creating %s failed: %v", key, created.TicketId, err)
		}
	}
	monitoring.RecordWizardTransition("submit", strconv.Itoa(draft.CurrentStep), "ok")
	return created, nil
}

func (m *Machine) Reset(ctx context.Context, key string) error {
	if err := m.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("reset draft: %w", err)
	}
	return nil
}

// NewTicketReference returns a temporary reference of the form R63T-XXXXXXXX.
func NewTicketReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return constants.TICKET_REF_PREFIX + "-" + strings.ToUpper(id[:8])
}

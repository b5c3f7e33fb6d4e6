package bulk

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/monitoring"
	"camp_registration/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrNothingSelected       = errors.New("no tickets selected")
	ErrNoAction              = errors.New("no bulk action chosen")
	ErrUnknownAction         = errors.New("unknown bulk action")
	ErrBusy                  = errors.New("a bulk operation is already running")
	ErrUnknownTicket         = errors.New("ticket is not on this board")
	ErrUnknownRecipientGroup = errors.New("unknown recipient group")
)

type Notifier interface {
	SendBulk(ctx context.Context, recipients []model.Recipient, subject, message string) (model.BulkSendResult, error)
}

// Board is one dashboard's working copy of the ticket list with its selection.
type Board struct {
	mu          sync.Mutex
	tickets     []model.Ticket
	loaded      bool
	selected    map[string]struct{}
	action      string
	processing  bool
	result      *model.OperationResult
	lastTouched time.Time

	notifier Notifier
	event    model.EventDetails
	now      func() time.Time
}

func NewBoard(notifier Notifier, event model.EventDetails) *Board {
	b := &Board{
		selected: map[string]struct{}{},
		notifier: notifier,
		event:    event,
		now:      time.Now,
	}
	b.lastTouched = b.now()
	return b
}

// Load replaces the ticket list and drops selected ids that are no longer present.
func (b *Board) Load(tickets []model.Ticket) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tickets = append([]model.Ticket(nil), tickets...)
	b.loaded = true
	present := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		present[t.ID] = struct{}{}
	}
	for id := range b.selected {
		if _, ok := present[id]; !ok {
			delete(b.selected, id)
		}
	}
	b.lastTouched = b.now()
}

// Loaded reports whether a ticket list has been fetched into the board.
func (b *Board) Loaded() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loaded
}

// Update replaces the ticket with the same id and reports whether it was present.
func (b *Board) Update(ticket model.Ticket) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.tickets {
		if b.tickets[i].ID == ticket.ID {
			b.tickets[i] = ticket
			return true
		}
	}
	return false
}

func (b *Board) Tickets() []model.Ticket {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Ticket(nil), b.tickets...)
}

func (b *Board) Select(id string, checked bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastTouched = b.now()
	if !checked {
		delete(b.selected, id)
		return nil
	}
	for _, t := range b.tickets {
		if t.ID == id {
			b.selected[id] = struct{}{}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTicket, id)
}

func (b *Board) SelectAll(checked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastTouched = b.now()
	b.selected = make(map[string]struct{}, len(b.tickets))
	if !checked {
		return
	}
	for _, t := range b.tickets {
		b.selected[t.ID] = struct{}{}
	}
}

// Selected returns the selected ids in list order.
func (b *Board) Selected() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]string, 0, len(b.selected))
	for _, t := range b.tickets {
		if _, ok := b.selected[t.ID]; ok {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

func (b *Board) SetAction(action string) error {
	if action != "" && !utils.IsValidValueOfConstant(action, constants.BULK_ACTIONS) {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.action = action
	b.lastTouched = b.now()
	return nil
}

func (b *Board) Action() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.action
}

func (b *Board) Processing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.processing
}

// Result returns the outcome of the last completed operation, if any.
func (b *Board) Result() *model.OperationResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.result == nil {
		return nil
	}
	r := *b.result
	return &r
}

// Idle reports whether the board has not been used for longer than ttl.
func (b *Board) Idle(ttl time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.processing && b.now().Sub(b.lastTouched) > ttl
}

func recipientOf(t model.Ticket) model.Recipient {
	return model.Recipient{TicketID: t.ID, Email: t.Email, Name: t.FullName}
}

// Run applies the chosen action to the selection.
// The selection is cleared and the action reset whatever the outcome.
func (b *Board) Run(ctx context.Context) (model.OperationResult, error) {
	b.mu.Lock()
	if b.processing {
		b.mu.Unlock()
		return model.OperationResult{}, ErrBusy
	}
	if b.action == "" {
		b.mu.Unlock()
		return model.OperationResult{}, ErrNoAction
	}
	if len(b.selected) == 0 {
		b.mu.Unlock()
		return model.OperationResult{}, ErrNothingSelected
	}

	action := b.action
	result := model.OperationResult{Action: action, Total: len(b.selected), Details: []model.DeliveryDetail{}}
	var recipients []model.Recipient

	switch action {
	case constants.ACTION_APPROVE, constants.ACTION_REJECT:
		to := constants.STATUS_APPROVED
		if action == constants.ACTION_REJECT {
			to = constants.STATUS_REJECTED
		}
		now := b.now()
		for i := range b.tickets {
			t := &b.tickets[i]
			if _, ok := b.selected[t.ID]; !ok {
				continue
			}
			if err := t.Transition(to); err != nil {
				result.Details = append(result.Details, model.DeliveryDetail{
					Recipient: t.Email,
					Name:      t.FullName,
					Action:    action,
					Error:     fmt.Sprintf("%s: ticket is %s", err, t.Status),
				})
				continue
			}
			if to == constants.STATUS_APPROVED && t.ApprovedAt == nil {
				t.ApprovedAt = &now
			}
			recipients = append(recipients, recipientOf(*t))
		}
	case constants.ACTION_DELETE:
		kept := b.tickets[:0]
		for _, t := range b.tickets {
			if _, ok := b.selected[t.ID]; ok {
				result.Details = append(result.Details, model.DeliveryDetail{
					Success:   true,
					Recipient: t.Email,
					Name:      t.FullName,
					Action:    "deleted",
				})
				continue
			}
			kept = append(kept, t)
		}
		b.tickets = kept
		result.Successful = len(result.Details)
	case constants.ACTION_SEND_REMINDER:
		for _, t := range b.tickets {
			if _, ok := b.selected[t.ID]; ok {
				recipients = append(recipients, recipientOf(t))
			}
		}
	}

	b.processing = true
	b.result = nil
	b.mu.Unlock()

	if action != constants.ACTION_DELETE {
		result = b.notify(ctx, action, recipients, result)
	}

	b.finish(result)
	return result, nil
}

func (b *Board) notify(ctx context.Context, action string, recipients []model.Recipient, result model.OperationResult) model.OperationResult {
	refused := result.Details
	if len(recipients) == 0 {
		result.Failed = result.Total
		return result
	}

	subject, message, err := b.compose(action)
	if err == nil {
		var sent model.BulkSendResult
		sent, err = b.notifier.SendBulk(ctx, recipients, subject, message)
		if err == nil {
			monitoring.RecordNotifications(sent.Successful, sent.Failed)
			result.Successful = min(sent.Successful, len(recipients))
			result.Failed = result.Total - result.Successful
			result.Details = append(append([]model.DeliveryDetail{}, sent.Details...), refused...)
			return result
		}
	}

	result.Successful = 0
	result.Failed = result.Total
	result.Error = err.Error()
	result.Details = []model.DeliveryDetail{}
	return result
}

func (b *Board) compose(action string) (string, string, error) {
	switch action {
	case constants.ACTION_APPROVE:
		return utils.ApprovalEmail("Participant", "BULK", b.event)
	case constants.ACTION_REJECT:
		return utils.RejectionEmail("Participant", "BULK", "", b.event)
	case constants.ACTION_SEND_REMINDER:
		return utils.ReminderEmail("Participant", "BULK", b.event)
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func (b *Board) finish(result model.OperationResult) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.result = &result
	b.selected = map[string]struct{}{}
	b.action = ""
	b.processing = false
	b.lastTouched = b.now()
	monitoring.RecordBulkOperation(result.Action, result.Total, result.Failed, result.Error != "")
}

// SendCustomEmail sends a free-form message to the resolved recipient group.
func (b *Board) SendCustomEmail(ctx context.Context, subject, message, group string) (model.OperationResult, error) {
	if !utils.IsValidValueOfConstant(group, constants.RECIPIENT_GROUPS) {
		return model.OperationResult{}, fmt.Errorf("%w: %q", ErrUnknownRecipientGroup, group)
	}

	b.mu.Lock()
	if b.processing {
		b.mu.Unlock()
		return model.OperationResult{}, ErrBusy
	}
	var recipients []model.Recipient
	for _, t := range b.tickets {
		include := false
		switch group {
		case constants.RECIPIENTS_SELECTED:
			_, include = b.selected[t.ID]
		case constants.RECIPIENTS_PENDING:
			include = t.Status == constants.STATUS_PENDING
		case constants.RECIPIENTS_APPROVED:
			include = t.Status == constants.STATUS_APPROVED
		case constants.RECIPIENTS_ALL:
			include = true
		}
		if include {
			recipients = append(recipients, recipientOf(t))
		}
	}
	b.processing = true
	b.result = nil
	b.mu.Unlock()

	result := model.OperationResult{
		Action:  constants.ACTION_CUSTOM_EMAIL,
		Total:   len(recipients),
		Details: []model.DeliveryDetail{},
	}
	if len(recipients) > 0 {
		sent, err := b.notifier.SendBulk(ctx, recipients, subject, message)
		if err != nil {
			result.Failed = result.Total
			result.Error = err.Error()
		} else {
			monitoring.RecordNotifications(sent.Successful, sent.Failed)
			result.Successful = min(sent.Successful, result.Total)
			result.Failed = result.Total - result.Successful
			result.Details = append(result.Details, sent.Details...)
		}
	}

	b.finish(result)
	return result, nil
}

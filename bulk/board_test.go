package bulk

import (
	"camp_registration/constants"
	"camp_registration/model"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	failFor  map[string]bool
	err      error
	block    chan struct{}
	calls    int
	subjects []string
	sentTo   [][]model.Recipient
}

func (f *fakeNotifier) SendBulk(_ context.Context, recipients []model.Recipient, subject, _ string) (model.BulkSendResult, error) {
	f.calls++
	f.subjects = append(f.subjects, subject)
	f.sentTo = append(f.sentTo, recipients)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return model.BulkSendResult{}, f.err
	}
	res := model.BulkSendResult{Total: len(recipients)}
	for _, r := range recipients {
		d := model.DeliveryDetail{Recipient: r.Email, Name: r.Name}
		if f.failFor[r.Email] {
			d.Error = "mailbox unavailable"
			res.Failed++
		} else {
			d.Success = true
			d.MessageId = "msg-" + r.TicketID
			res.Successful++
		}
		res.Details = append(res.Details, d)
	}
	return res, nil
}

var event = model.EventDetails{
	Title:        "THE PRICELESS",
	Date:         "22nd - 25th December, 2025",
	Location:     "@GLORY ARENA, REDEMPTION CITY",
	ContactEmail: "camp@example.com",
	Team:         "RCCG Region 63 Junior Church Team",
}

func tickets(statuses ...string) []model.Ticket {
	out := make([]model.Ticket, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, model.Ticket{
			ID:       fmt.Sprint(i + 1),
			TicketId: fmt.Sprintf("R63T-%08d", i+1),
			FullName: fmt.Sprintf("Camper %d", i+1),
			Email:    fmt.Sprintf("camper%d@example.com", i+1),
			Status:   s,
		})
	}
	return out
}

func newBoard(n Notifier, list []model.Ticket) *Board {
	b := NewBoard(n, event)
	b.Load(list)
	return b
}

func statusOf(b *Board, id string) string {
	for _, t := range b.Tickets() {
		if t.ID == id {
			return t.Status
		}
	}
	return ""
}

func assertReset(t *testing.T, b *Board) {
	t.Helper()
	assert.Empty(t, b.Selected())
	assert.Empty(t, b.Action())
	assert.False(t, b.Processing())
}

func TestRun_ApproveWithOneNotificationFailure(t *testing.T) {
	n := &fakeNotifier{failFor: map[string]bool{"camper2@example.com": true}}
	b := newBoard(n, tickets("pending", "pending", "pending"))
	b.SelectAll(true)
	require.NoError(t, b.SetAction(constants.ACTION_APPROVE))

	res, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, 1, res.Failed)
	assert.Len(t, res.Details, 3)
	for _, id := range []string{"1", "2", "3"} {
		assert.Equal(t, constants.STATUS_APPROVED, statusOf(b, id))
	}
	assert.Contains(t, n.subjects[0], "Registration Approved")
	assertReset(t, b)
}

func TestRun_NotifierErrorFailsWholeAction(t *testing.T) {
	n := &fakeNotifier{err: errors.New("smtp unreachable")}
	b := newBoard(n, tickets("pending", "pending"))
	b.SelectAll(true)
	require.NoError(t, b.SetAction(constants.ACTION_REJECT))

	res, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.OperationResult{
		Action:  constants.ACTION_REJECT,
		Total:   2,
		Failed:  2,
		Error:   "smtp unreachable",
		Details: []model.DeliveryDetail{},
	}, res)
	assert.Equal(t, constants.STATUS_REJECTED, statusOf(b, "1"))
	assertReset(t, b)
	require.NotNil(t, b.Result())
	assert.Equal(t, "smtp unreachable", b.Result().Error)
}

func TestRun_RefusesTransitionOfReviewedTickets(t *testing.T) {
	n := &fakeNotifier{}
	b := newBoard(n, tickets("pending", "rejected", "approved"))
	b.SelectAll(true)
	require.NoError(t, b.SetAction(constants.ACTION_APPROVE))

	res, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, constants.STATUS_APPROVED, statusOf(b, "1"))
	assert.Equal(t, constants.STATUS_REJECTED, statusOf(b, "2"))
	require.Len(t, n.sentTo, 1)
	assert.Len(t, n.sentTo[0], 2)
}

func TestRun_Delete(t *testing.T) {
	n := &fakeNotifier{}
	b := newBoard(n, tickets("pending", "approved", "pending"))
	require.NoError(t, b.Select("1", true))
	require.NoError(t, b.Select("3", true))
	require.NoError(t, b.SetAction(constants.ACTION_DELETE))

	res, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, 0, res.Failed)
	assert.Equal(t, 0, n.calls)
	remaining := b.Tickets()
	require.Len(t, remaining, 1)
	assert.Equal(t, "2", remaining[0].ID)
	assertReset(t, b)
}

func TestRun_SendReminderLeavesStatuses(t *testing.T) {
	n := &fakeNotifier{}
	b := newBoard(n, tickets("pending", "approved"))
	b.SelectAll(true)
	require.NoError(t, b.SetAction(constants.ACTION_SEND_REMINDER))

	res, err := b.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, res.Successful)
	assert.Equal(t, "pending", statusOf(b, "1"))
	assert.Contains(t, n.subjects[0], "Reminder")
}

func TestRun_CountsAlwaysBalance(t *testing.T) {
	for _, action := range constants.BULK_ACTIONS {
		for _, fail := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/err=%v", action, fail), func(t *testing.T) {
				n := &fakeNotifier{failFor: map[string]bool{"camper1@example.com": true}}
				if fail {
					n.err = errors.New("down")
				}
				b := newBoard(n, tickets("pending", "approved", "pending", "rejected"))
				b.SelectAll(true)
				require.NoError(t, b.SetAction(action))

				res, err := b.Run(context.Background())

				require.NoError(t, err)
				assert.Equal(t, 4, res.Total)
				assert.Equal(t, res.Total, res.Successful+res.Failed)
				if action == constants.ACTION_DELETE {
					assert.Zero(t, res.Failed)
				}
				assertReset(t, b)
			})
		}
	}
}

func TestRun_Refusals(t *testing.T) {
	b := newBoard(&fakeNotifier{}, tickets("pending"))

	_, err := b.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoAction)

	require.NoError(t, b.SetAction(constants.ACTION_APPROVE))
	_, err = b.Run(context.Background())
	assert.ErrorIs(t, err, ErrNothingSelected)

	assert.ErrorIs(t, b.SetAction("archive"), ErrUnknownAction)
	assert.ErrorIs(t, b.Select("99", true), ErrUnknownTicket)
}

func TestRun_BusyWhileNotifying(t *testing.T) {
	n := &fakeNotifier{block: make(chan struct{})}
	b := newBoard(n, tickets("pending", "pending"))
	b.SelectAll(true)
	require.NoError(t, b.SetAction(constants.ACTION_SEND_REMINDER))

	done := make(chan model.OperationResult)
	go func() {
		res, _ := b.Run(context.Background())
		done <- res
	}()
	require.Eventually(t, b.Processing, time.Second, 5*time.Millisecond)

	_, err := b.Run(context.Background())
	assert.ErrorIs(t, err, ErrBusy)
	_, err = b.SendCustomEmail(context.Background(), "s", "m", constants.RECIPIENTS_ALL)
	assert.ErrorIs(t, err, ErrBusy)

	close(n.block)
	res := <-done
	assert.Equal(t, 2, res.Successful)
}

func TestSendCustomEmail_Groups(t *testing.T) {
	cases := map[string]int{
		constants.RECIPIENTS_SELECTED: 1,
		constants.RECIPIENTS_PENDING:  2,
		constants.RECIPIENTS_APPROVED: 1,
		constants.RECIPIENTS_ALL:      4,
	}
	for group, want := range cases {
		t.Run(group, func(t *testing.T) {
			n := &fakeNotifier{}
			b := newBoard(n, tickets("pending", "approved", "pending", "rejected"))
			require.NoError(t, b.Select("4", true))

			res, err := b.SendCustomEmail(context.Background(), "Hello", "Body", group)

			require.NoError(t, err)
			assert.Equal(t, constants.ACTION_CUSTOM_EMAIL, res.Action)
			assert.Equal(t, want, res.Total)
			assert.Equal(t, want, res.Successful)
			assertReset(t, b)
		})
	}
}

func TestSendCustomEmail_UnknownGroup(t *testing.T) {
	n := &fakeNotifier{}
	b := newBoard(n, tickets("pending"))
	require.NoError(t, b.Select("1", true))

	_, err := b.SendCustomEmail(context.Background(), "Hello", "Body", "alumni")

	assert.ErrorIs(t, err, ErrUnknownRecipientGroup)
	assert.Zero(t, n.calls)
	assert.Equal(t, []string{"1"}, b.Selected())
}

func TestSendCustomEmail_NotifierError(t *testing.T) {
	n := &fakeNotifier{err: errors.New("quota exceeded")}
	b := newBoard(n, tickets("pending", "pending"))

	res, err := b.SendCustomEmail(context.Background(), "Hello", "Body", constants.RECIPIENTS_PENDING)

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 0, res.Successful)
	assert.Equal(t, 2, res.Failed)
	assert.Equal(t, "quota exceeded", res.Error)
}

func TestLoad_PrunesMissingSelection(t *testing.T) {
	b := newBoard(&fakeNotifier{}, tickets("pending", "pending"))
	b.SelectAll(true)

	b.Load(tickets("pending"))

	assert.Equal(t, []string{"1"}, b.Selected())
}

func TestRegistry_SweepEvictsIdleBoards(t *testing.T) {
	r := NewRegistry(&fakeNotifier{}, event)
	stale := r.Board("a")
	r.Board("b")
	stale.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	removed := r.Sweep(time.Hour)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, r.Len())
	assert.NotSame(t, stale, r.Board("a"))
}

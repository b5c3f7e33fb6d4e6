package helper

import (
	"camp_registration/constants"
	"camp_registration/model"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-co-op/gocron/v2"
)

type TicketLister interface {
	ListTickets(ctx context.Context) ([]model.Ticket, error)
}

type Mailer interface {
	SendOne(to, subject, body string) error
}

// BuildPendingDigest lists tickets still waiting for review, oldest first.
func BuildPendingDigest(tickets []model.Ticket, now time.Time) (string, string, int) {
	pending := FilterTickets(tickets, model.FilterTicketInput{Status: constants.STATUS_PENDING, Sort: "oldest"})
	subject := fmt.Sprintf("%d registrations awaiting review (%s)", len(pending), now.Format("02 Jan 2006"))

	var b strings.Builder
	stats := Stats(tickets)
	fmt.Fprintf(&b, "Total: %d | Pending: %d | Approved: %d | Rejected: %d\n\n", stats.Total, stats.Pending, stats.Approved, stats.Rejected)
	for _, t := range pending {
		fmt.Fprintf(&b, "- %s  %s  (%s, %s) registered %s\n", t.TicketId, t.FullName, t.Parish, t.Province, t.RegisteredAt.In(now.Location()).Format("02 Jan 15:04"))
	}
	return subject, b.String(), len(pending)
}

func SendPendingDigest(ctx context.Context, lister TicketLister, mailer Mailer, to string, now time.Time) error {
	tickets, err := lister.ListTickets(ctx)
	if err != nil {
		return fmt.Errorf("list tickets: %w", err)
	}
	subject, body, count := BuildPendingDigest(tickets, now)
	if count == 0 {
		log.Println("[CRON] No pending registrations, digest skipped")
		return nil
	}
	if err := mailer.SendOne(to, subject, body); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	log.Printf("[CRON] Pending digest sent to %s (%d tickets)", to, count)
	return nil
}

// StartDigestScheduler runs job every day at hour:00 in loc.
func StartDigestScheduler(loc *time.Location, hour uint, job func()) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(hour, 0, 0),
			),
		),
		gocron.NewTask(job),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	log.Printf("Pending digest scheduler started (%02d:00 %s)", hour, loc)
	return s, nil
}

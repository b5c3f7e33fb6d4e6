package utils

import (
	"camp_registration/model"
	"context"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smtpServer accepts mail for every address except the refused one.
// Like a real MTA, it answers 503 to a MAIL issued inside an open transaction.
type smtpServer struct {
	ln      net.Listener
	refused string

	mu        sync.Mutex
	delivered []string
	sessions  int
}

func startSMTPServer(t *testing.T, refused string) *smtpServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := &smtpServer{ln: ln, refused: refused}
	t.Cleanup(func() { ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.serve(conn)
		}
	}()
	return s
}

func (s *smtpServer) config() SMTPConfig {
	return SMTPConfig{
		Host: "127.0.0.1",
		Port: s.ln.Addr().(*net.TCPAddr).Port,
		From: "camp@example.com",
	}
}

func (s *smtpServer) serve(conn net.Conn) {
	defer conn.Close()
	s.mu.Lock()
	s.sessions++
	s.mu.Unlock()

	tp := textproto.NewConn(conn)
	_ = tp.PrintfLine("220 localhost ESMTP")
	inMail := false
	var rcpts []string
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		cmd := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			_ = tp.PrintfLine("250 localhost")
		case strings.HasPrefix(cmd, "MAIL FROM:"):
			if inMail {
				_ = tp.PrintfLine("503 5.5.1 Error: nested MAIL command")
				continue
			}
			inMail = true
			rcpts = nil
			_ = tp.PrintfLine("250 OK")
		case strings.HasPrefix(cmd, "RCPT TO:"):
			addr := strings.Trim(line[len("RCPT TO:"):], "<> ")
			if addr == s.refused {
				_ = tp.PrintfLine("550 5.1.1 Mailbox unavailable")
				continue
			}
			rcpts = append(rcpts, addr)
			_ = tp.PrintfLine("250 OK")
		case cmd == "DATA":
			_ = tp.PrintfLine("354 End data with <CR><LF>.<CR><LF>")
			if _, err := tp.ReadDotBytes(); err != nil {
				return
			}
			s.mu.Lock()
			s.delivered = append(s.delivered, rcpts...)
			s.mu.Unlock()
			inMail = false
			_ = tp.PrintfLine("250 OK")
		case cmd == "RSET":
			inMail = false
			_ = tp.PrintfLine("250 OK")
		case cmd == "QUIT":
			_ = tp.PrintfLine("221 Bye")
			return
		default:
			_ = tp.PrintfLine("502 Command not implemented")
		}
	}
}

func recipients(emails ...string) []model.Recipient {
	out := make([]model.Recipient, 0, len(emails))
	for i, e := range emails {
		out = append(out, model.Recipient{TicketID: string(rune('1' + i)), Email: e, Name: e})
	}
	return out
}

func TestSMTPNotifier_RejectedRecipientDoesNotPoisonBatch(t *testing.T) {
	server := startSMTPServer(t, "bad@example.com")
	n := NewSMTPNotifier(server.config())

	result, err := n.SendBulk(context.Background(),
		recipients("a@example.com", "bad@example.com", "c@example.com", "d@example.com"),
		"Reminder", "See you at camp")

	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Details, 4)
	assert.False(t, result.Details[1].Success)
	assert.Contains(t, result.Details[1].Error, "550")
	for _, i := range []int{0, 2, 3} {
		assert.True(t, result.Details[i].Success, result.Details[i].Recipient)
		assert.NotEmpty(t, result.Details[i].MessageId)
	}

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Equal(t, []string{"a@example.com", "c@example.com", "d@example.com"}, server.delivered)
	assert.Equal(t, 2, server.sessions)
}

func TestSMTPNotifier_SingleConnectionWhenAllAccepted(t *testing.T) {
	server := startSMTPServer(t, "")
	n := NewSMTPNotifier(server.config())

	result, err := n.SendBulk(context.Background(), recipients("a@example.com", "b@example.com"), "Approved", "Welcome")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Successful)
	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Equal(t, 1, server.sessions)
}

func TestSMTPNotifier_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	n := NewSMTPNotifier(SMTPConfig{Host: "127.0.0.1", Port: port, From: "camp@example.com"})

	_, err = n.SendBulk(context.Background(), recipients("a@example.com"), "Reminder", "x")

	assert.ErrorContains(t, err, "smtp dial")
}

func TestSMTPNotifier_EmptyBatchSkipsDial(t *testing.T) {
	n := NewSMTPNotifier(SMTPConfig{Host: "127.0.0.1", Port: 1})

	result, err := n.SendBulk(context.Background(), nil, "Reminder", "x")

	require.NoError(t, err)
	assert.Equal(t, model.BulkSendResult{}, result)
}

package client

import (
	"camp_registration/model"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api/", 2*time.Second)
}

const ticketJSON = `{
	"id": "6f1c2a8e-0000-4000-8000-000000000001",
	"ticket_id": "R63T-ABCDEF12",
	"full_name": "Ada Obi",
	"age": 14,
	"category": "teens",
	"email": "ada@example.com",
	"province": "province_3",
	"parent_relationship": "mother",
	"status": "pending",
	"registered_at": "2025-11-30T09:15:00.123456Z",
	"registered_by_name": "Coordinator P3"
}`

func TestListTickets_AcceptsBareArrayAndEnvelope(t *testing.T) {
	for name, body := range map[string]string{
		"array":    "[" + ticketJSON + "]",
		"envelope": `{"count": 1, "next": null, "results": [` + ticketJSON + `]}`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/tickets/", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
				_, _ = io.WriteString(w, body)
			})

			tickets, err := c.ListTickets(WithToken(context.Background(), "tok"))

			require.NoError(t, err)
			require.Len(t, tickets, 1)
			tk := tickets[0]
			assert.Equal(t, "6f1c2a8e-0000-4000-8000-000000000001", tk.ID)
			assert.Equal(t, "R63T-ABCDEF12", tk.TicketId)
			assert.Equal(t, "Ada Obi", tk.FullName)
			assert.Equal(t, 14, tk.Age)
			assert.Equal(t, "mother", tk.ParentRelationship)
			assert.Equal(t, "Coordinator P3", tk.RegisteredBy)
			assert.Equal(t, 2025, tk.RegisteredAt.Year())
		})
	}
}

func TestCreateTicket_SendsSnakeCase(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, ticketJSON)
	})

	created, err := c.CreateTicket(context.Background(), model.Ticket{
		TicketId:              "R63T-ABCDEF12",
		FullName:              "Ada Obi",
		EmergencyRelationship: "Mother",
		ParentConsent:         true,
		Status:                "pending",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada Obi", got["full_name"])
	assert.Equal(t, "Mother", got["emergency_relationship"])
	assert.Equal(t, true, got["parent_consent"])
	assert.NotContains(t, got, "fullName")
	assert.NotContains(t, got, "id")
	assert.Equal(t, "6f1c2a8e-0000-4000-8000-000000000001", created.ID)
}

func TestFindByTicketID_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "R63T-NOPE0000", r.URL.Query().Get("search"))
		assert.Empty(t, r.URL.Query().Get("ticket_id"))
		_, _ = io.WriteString(w, `{"results": []}`)
	})

	_, err := c.FindByTicketID(context.Background(), "R63T-NOPE0000")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindByTicketID_SearchesAndMatchesExactly(t *testing.T) {
	other := strings.Replace(ticketJSON, "R63T-ABCDEF12", "R63T-ABCDEF123", 1)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tickets/", r.URL.Path)
		assert.Equal(t, "R63T-ABCDEF12", r.URL.Query().Get("search"))
		_, _ = io.WriteString(w, `{"results": [`+other+`,`+ticketJSON+`]}`)
	})

	tk, err := c.FindByTicketID(context.Background(), "R63T-ABCDEF12")

	require.NoError(t, err)
	assert.Equal(t, "R63T-ABCDEF12", tk.TicketId)
}

func TestGetTicket_404IsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"detail": "Not found."}`)
	})

	_, err := c.GetTicket(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Not found.", apiErr.Message)
}

func TestUpdateStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tickets/abc/update-status/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "approved", "notes": "paid at desk"}, body)
		_, _ = io.WriteString(w, strings.Replace(ticketJSON, `"pending"`, `"approved"`, 1))
	})

	tk, err := c.UpdateStatus(context.Background(), "abc", "approved", "paid at desk")

	require.NoError(t, err)
	assert.Equal(t, "approved", tk.Status)
}

func TestUploadProof_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tickets/abc/upload_proof/", r.URL.Path)
		file, header, err := r.FormFile("proof_of_payment")
		require.NoError(t, err)
		defer file.Close()
		raw, _ := io.ReadAll(file)
		assert.Equal(t, "receipt.png", header.Filename)
		assert.Equal(t, "png-bytes", string(raw))
		_, _ = io.WriteString(w, ticketJSON)
	})

	_, err := c.UploadProof(context.Background(), "abc", "receipt.png", strings.NewReader("png-bytes"))

	require.NoError(t, err)
}

func TestCreateUser_AdminDropsAffiliation(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/users/", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"id": "u1", "username": "admin2", "role": "admin", "first_name": "Grace"}`)
	})

	u, err := c.CreateUser(context.Background(), model.CreateUserInput{
		Username:        "admin2",
		Password:        "s3cret-pass",
		PasswordConfirm: "s3cret-pass",
		FirstName:       "Grace",
		Role:            "admin",
		Province:        "province_1",
	})

	require.NoError(t, err)
	assert.NotContains(t, got, "province")
	assert.Equal(t, "s3cret-pass", got["password_confirm"])
	assert.Equal(t, "Grace", got["first_name"])
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Grace", u.FirstName)
}

func TestLogin_MergesTokens(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login/", r.URL.Path)
		_, _ = io.WriteString(w, `{"access": "acc", "refresh": "ref", "user": {"id": "u9", "username": "coord", "role": "coordinator", "province": "Province 3"}}`)
	})

	u, err := c.Login(context.Background(), "coord", "pw")

	require.NoError(t, err)
	assert.Equal(t, "acc", u.Token)
	assert.Equal(t, "ref", u.RefreshToken)
	assert.Equal(t, "coordinator", u.Role)
	assert.Equal(t, "Province 3", u.Province)
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"non_field_errors": ["Unable to log in with provided credentials."]}`)
	})

	_, err := c.Login(context.Background(), "x", "y")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Unable to log in")
}

func TestVerifyPayment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/payments/payments/verify/", r.URL.Path)
		_, _ = io.WriteString(w, `{"payment": {"id": "p1", "reference": "PSK-1", "amount": "6000.00", "status": "success",
			"metadata": {"is_bulk": true, "ticket_ids": ["a", "b"]}, "ticket_details": null}}`)
	})

	p, err := c.VerifyPayment(context.Background(), "PSK-1")

	require.NoError(t, err)
	assert.True(t, p.Succeeded())
	assert.True(t, p.Metadata.IsBulk)
	assert.Equal(t, []string{"a", "b"}, p.Metadata.TicketIDs)
	assert.Equal(t, "6000", p.Amount.String())
	assert.Nil(t, p.TicketDetails)
}

func TestInitializeBulkPayment(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"a", "b"}, body["ticket_ids"])
		_, _ = io.WriteString(w, `{"authorization_url": "https://checkout.example/x", "access_code": "ac", "reference": "PSK-2", "payment": {"id": "p2", "status": "pending"}}`)
	})

	resp, err := c.InitializeBulkPayment(context.Background(), []string{"a", "b"})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example/x", resp.AuthorizationURL)
	assert.Equal(t, "PSK-2", resp.Reference)
	assert.False(t, resp.Payment.Succeeded())
}

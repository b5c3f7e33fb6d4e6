package client

import (
	"bytes"
	"camp_registration/model"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

func (c *Client) ListTickets(ctx context.Context) ([]model.Ticket, error) {
	return c.listTickets(ctx, nil)
}

func (c *Client) listTickets(ctx context.Context, query url.Values) ([]model.Ticket, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/tickets/", query, nil, &raw); err != nil {
		return nil, err
	}
	ws, err := list[ticketWire](raw)
	if err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	return ticketsFromWire(ws)
}

func (c *Client) GetTicket(ctx context.Context, id string) (model.Ticket, error) {
	var w ticketWire
	if err := c.do(ctx, http.MethodGet, "/tickets/"+url.PathEscape(id)+"/", nil, nil, &w); err != nil {
		return model.Ticket{}, err
	}
	return ticketFromWire(w)
}

// FindByTicketID looks a ticket up by its public reference.
func (c *Client) FindByTicketID(ctx context.Context, ticketID string) (model.Ticket, error) {
	tickets, err := c.listTickets(ctx, url.Values{"search": {ticketID}})
	if err != nil {
		return model.Ticket{}, err
	}
	for _, t := range tickets {
		if t.TicketId == ticketID {
			return t, nil
		}
	}
	return model.Ticket{}, fmt.Errorf("ticket %s: %w", ticketID, ErrNotFound)
}

func (c *Client) CreateTicket(ctx context.Context, ticket model.Ticket) (model.Ticket, error) {
	w, err := ticketToWire(ticket)
	if err != nil {
		return model.Ticket{}, err
	}
	var created ticketWire
	if err := c.do(ctx, http.MethodPost, "/tickets/", nil, w, &created); err != nil {
		return model.Ticket{}, err
	}
	return ticketFromWire(created)
}

func (c *Client) UpdateStatus(ctx context.Context, id, status, notes string) (model.Ticket, error) {
	body := map[string]string{"status": status}
	if notes != "" {
		body["notes"] = notes
	}
	var w ticketWire
	if err := c.do(ctx, http.MethodPost, "/tickets/"+url.PathEscape(id)+"/update-status/", nil, body, &w); err != nil {
		return model.Ticket{}, err
	}
	return ticketFromWire(w)
}

// UploadProof sends the payment proof as the proof_of_payment multipart field.
func (c *Client) UploadProof(ctx context.Context, id, filename string, file io.Reader) (model.Ticket, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("proof_of_payment", filename)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return model.Ticket{}, fmt.Errorf("build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.Ticket{}, fmt.Errorf("build upload: %w", err)
	}

	var w ticketWire
	path := "/tickets/" + url.PathEscape(id) + "/upload_proof/"
	if err := c.send(ctx, http.MethodPost, path, nil, &buf, mw.FormDataContentType(), &w); err != nil {
		return model.Ticket{}, err
	}
	return ticketFromWire(w)
}

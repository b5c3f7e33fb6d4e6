package client

import (
	"camp_registration/model"
	"context"
	"net/http"
)

const (
	initializePath = "/payments/payments/initialize/"
	verifyPath     = "/payments/payments/verify/"
)

func (c *Client) InitializePayment(ctx context.Context, ticketID string) (model.InitializeResponse, error) {
	return c.initialize(ctx, map[string]any{"ticket_id": ticketID})
}

func (c *Client) InitializeBulkPayment(ctx context.Context, ticketIDs []string) (model.InitializeResponse, error) {
	return c.initialize(ctx, map[string]any{"ticket_ids": ticketIDs})
}

func (c *Client) initialize(ctx context.Context, body map[string]any) (model.InitializeResponse, error) {
	var w initializeWire
	if err := c.do(ctx, http.MethodPost, initializePath, nil, body, &w); err != nil {
		return model.InitializeResponse{}, err
	}
	p, err := paymentFromWire(w.Payment)
	if err != nil {
		return model.InitializeResponse{}, err
	}
	return model.InitializeResponse{
		AuthorizationURL: w.AuthorizationURL,
		AccessCode:       w.AccessCode,
		Reference:        w.Reference,
		Payment:          p,
	}, nil
}

func (c *Client) VerifyPayment(ctx context.Context, reference string) (model.Payment, error) {
	var resp struct {
		Payment paymentWire `json:"payment"`
	}
	if err := c.do(ctx, http.MethodPost, verifyPath, nil, map[string]string{"reference": reference}, &resp); err != nil {
		return model.Payment{}, err
	}
	return paymentFromWire(resp.Payment)
}

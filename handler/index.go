package handler

import (
	"camp_registration/bulk"
	"camp_registration/client"
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/session"
	"camp_registration/utils"
	"camp_registration/validate"
	"camp_registration/wizard"
	"context"
	"errors"
	"io"
	"log"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// CampAPI is the part of the camp API client the handlers call.
type CampAPI interface {
	ListTickets(ctx context.Context) ([]model.Ticket, error)
	GetTicket(ctx context.Context, id string) (model.Ticket, error)
	FindByTicketID(ctx context.Context, ticketID string) (model.Ticket, error)
	CreateTicket(ctx context.Context, ticket model.Ticket) (model.Ticket, error)
	UpdateStatus(ctx context.Context, id, status, notes string) (model.Ticket, error)
	UploadProof(ctx context.Context, id, filename string, file io.Reader) (model.Ticket, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, in model.CreateUserInput) (model.User, error)
	Login(ctx context.Context, username, password string) (model.User, error)
	InitializePayment(ctx context.Context, ticketID string) (model.InitializeResponse, error)
	InitializeBulkPayment(ctx context.Context, ticketIDs []string) (model.InitializeResponse, error)
	VerifyPayment(ctx context.Context, reference string) (model.Payment, error)
}

type OperationStore interface {
	Save(ctx context.Context, entry *model.OperationLog) error
	List(ctx context.Context, page model.Pagination) (model.ResponseCustom, error)
}

type OperationFeed interface {
	Publish(ctx context.Context, entry model.OperationLog) error
	Subscribe(ctx context.Context) *redis.PubSub
}

type ProofArchive interface {
	Upload(ctx context.Context, ticket model.Ticket, filename string, file io.Reader) (string, error)
}

type ConfirmationSender interface {
	SendAsync(ticket model.Ticket)
}

// Agent holds the credentials used for public calls made without a session.
type Agent struct {
	Username string
	Password string
}

func (a Agent) configured() bool {
	return a.Username != "" && a.Password != ""
}

type Handler struct {
	API        CampAPI
	Wizard     *wizard.Machine
	Sessions   *session.Manager
	Boards     *bulk.Registry
	Operations OperationStore
	Feed       OperationFeed
	Archive    ProofArchive
	Mailer     ConfirmationSender

	Secret    []byte
	AccessTTL time.Duration
	DraftTTL  time.Duration
	Fee       decimal.Decimal
	Agent     Agent
	Location  *time.Location

	now func() time.Time
}

func (h *Handler) clock() time.Time {
	if h.now != nil {
		return h.now()
	}
	return time.Now()
}

func (h *Handler) location() *time.Location {
	if h.Location != nil {
		return h.Location
	}
	return time.UTC
}

func account(c *fiber.Ctx) (model.User, bool) {
	user, ok := c.Locals("account").(model.User)
	return user, ok
}

func claim(c *fiber.Ctx) model.TokenClaim {
	cl, _ := c.Locals("claim").(model.TokenClaim)
	return cl
}

// draftKey returns the draft cookie, issuing a new one on first visit.
func (h *Handler) draftKey(c *fiber.Ctx) string {
	key := c.Cookies(constants.DRAFT_COOKIE)
	if _, err := uuid.Parse(key); err == nil {
		return key
	}
	key = uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     constants.DRAFT_COOKIE,
		Value:    key,
		Path:     "/",
		Expires:  h.clock().Add(h.DraftTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return key
}

// agentContext returns a context carrying a token for the camp API.
// Guests get the public agent's token when one is configured.
func (h *Handler) agentContext(c *fiber.Ctx) (context.Context, error) {
	ctx := c.UserContext()
	if client.TokenFrom(ctx) != "" || !h.Agent.configured() {
		return ctx, nil
	}
	agent, err := h.API.Login(ctx, h.Agent.Username, h.Agent.Password)
	if err != nil {
		return nil, err
	}
	return client.WithToken(ctx, agent.Token), nil
}

// respondError maps domain and remote failures onto HTTP answers.
func respondError(c *fiber.Ctx, err error) error {
	var fields validate.FieldErrors
	var apiErr *client.APIError
	var netErr net.Error

	switch {
	case errors.As(err, &fields):
		return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, fields)
	case errors.Is(err, client.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	case errors.Is(err, session.ErrInvalidCredentials):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, err)
	case errors.Is(err, wizard.ErrNotOnFinalStep):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DRAFT_NOT_ON_FINAL_STEP, err)
	case errors.Is(err, wizard.ErrPaymentNotConfirmed):
		return utils.ErrorResponse(c, fiber.StatusPaymentRequired, constants.PAYMENT_NOT_CONFIRMED, err)
	case errors.Is(err, wizard.ErrUnknownField), errors.Is(err, wizard.ErrInvalidValue):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	case errors.Is(err, bulk.ErrNothingSelected):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NOTHING_SELECTED, err)
	case errors.Is(err, bulk.ErrNoAction), errors.Is(err, bulk.ErrUnknownAction), errors.Is(err, bulk.ErrUnknownTicket):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
	case errors.Is(err, bulk.ErrUnknownRecipientGroup):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.UNKNOWN_RECIPIENT_GROUP, err)
	case errors.Is(err, bulk.ErrBusy):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.OPERATION_IN_PROGRESS, err)
	case errors.Is(err, model.ErrInvalidTransition):
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_STATUS_TRANSITION, err)
	case errors.As(err, &apiErr) && apiErr.StatusCode == fiber.StatusBadRequest:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, apiErr.Message, err)
	case errors.As(err, &apiErr) && apiErr.StatusCode == fiber.StatusUnauthorized:
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
	case errors.As(err, &apiErr), errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded):
		log.Printf("Camp API call failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, constants.REMOTE_UNAVAILABLE, err)
	}
	log.Printf("Request %s %s failed: %v", c.Method(), c.Path(), err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func (h *Handler) Healthz(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "ok",
		"boards":      h.Boards.Len(),
		"feedClients": ConnectedClients(),
	})
}

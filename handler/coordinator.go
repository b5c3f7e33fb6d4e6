package handler

import (
	"bytes"
	"camp_registration/constants"
	"camp_registration/helper"
	"camp_registration/model"
	"camp_registration/utils"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CoordinatorTickets lists the registrations of the coordinator's province.
func (h *Handler) CoordinatorTickets(c *fiber.Ctx) error {
	user, ok := account(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	filter, _ := c.Locals("inputFilterTicket").(model.FilterTicketInput)

	tickets, err := h.API.ListTickets(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	mine := helper.ForProvince(tickets, user.Province)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"province": user.Province,
		"tickets":  helper.FilterTickets(mine, filter),
		"stats":    helper.Stats(mine),
	})
}

// ExportTickets downloads the province list as CSV.
func (h *Handler) ExportTickets(c *fiber.Ctx) error {
	user, ok := account(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	tickets, err := h.API.ListTickets(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	mine := helper.FilterTickets(helper.ForProvince(tickets, user.Province), model.FilterTicketInput{Sort: "oldest"})

	var buf bytes.Buffer
	if err := helper.WriteTicketsCSV(&buf, mine, h.location()); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Attachment(helper.ExportFilename(user.Province))
	return c.Send(buf.Bytes())
}

// RegisterGroup creates one ticket per attendee and opens a single payment for all of them.
func (h *Handler) RegisterGroup(c *fiber.Ctx) error {
	user, ok := account(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
	}
	input, ok := c.Locals("inputGroupRegistration").(model.GroupRegistrationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	ctx := c.UserContext()

	planned := helper.GroupTickets(input, user, h.clock())
	created := make([]model.Ticket, 0, len(planned))
	ids := make([]string, 0, len(planned))
	for i, t := range planned {
		ticket, err := h.API.CreateTicket(ctx, t)
		if err != nil {
			log.Printf("Group registration for %s stopped after %d of %d tickets: %v", input.Parish, i, len(planned), err)
			return respondError(c, fmt.Errorf("create ticket %d of %d: %w", i+1, len(planned), err))
		}
		created = append(created, ticket)
		ids = append(ids, ticket.ID)
	}

	payment, err := h.API.InitializeBulkPayment(ctx, ids)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, model.GroupRegistrationResult{
		Tickets:        created,
		ExpectedAmount: helper.ExpectedAmount(h.Fee, len(created)),
		Payment:        payment,
	})
}

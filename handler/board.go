package handler

import (
	"camp_registration/bulk"
	"camp_registration/constants"
	"camp_registration/helper"
	"camp_registration/model"
	"camp_registration/utils"
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type boardView struct {
	Tickets    []model.Ticket         `json:"tickets"`
	Stats      model.TicketStats      `json:"stats"`
	Selected   []string               `json:"selected"`
	Action     string                 `json:"action"`
	Processing bool                   `json:"processing"`
	LastResult *model.OperationResult `json:"lastResult"`
}

// AdminTickets serves the admin dashboard. The ticket list is fetched once per
// session board and refetched on ?refresh=true; local bulk changes stand until then.
func (h *Handler) AdminTickets(c *fiber.Ctx) error {
	filter, _ := c.Locals("inputFilterTicket").(model.FilterTicketInput)
	board := h.Boards.Board(claim(c).SessionId)

	if !board.Loaded() || c.QueryBool("refresh") {
		tickets, err := h.API.ListTickets(c.UserContext())
		if err != nil {
			return respondError(c, err)
		}
		board.Load(tickets)
	}

	all := board.Tickets()
	return utils.SuccessResponse(c, fiber.StatusOK, boardView{
		Tickets:    helper.FilterTickets(all, filter),
		Stats:      helper.Stats(all),
		Selected:   board.Selected(),
		Action:     board.Action(),
		Processing: board.Processing(),
		LastResult: board.Result(),
	})
}

func (h *Handler) SelectTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSelection").(model.SelectionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	board := h.Boards.Board(claim(c).SessionId)
	if err := board.Select(input.TicketID, input.Checked); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"selected": board.Selected()})
}

func (h *Handler) SelectAllTickets(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSelectAll").(model.SelectAllInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	board := h.Boards.Board(claim(c).SessionId)
	board.SelectAll(input.Checked)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"selected": board.Selected()})
}

func (h *Handler) RunBulkAction(c *fiber.Ctx) error {
	input, ok := c.Locals("inputBulkAction").(model.BulkActionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	board := h.Boards.Board(claim(c).SessionId)
	if err := board.SetAction(input.Action); err != nil {
		return respondError(c, err)
	}

	result, err := board.Run(c.UserContext())
	if err != nil {
		if !errors.Is(err, bulk.ErrBusy) {
			_ = board.SetAction("")
		}
		return respondError(c, err)
	}
	h.record(c.UserContext(), claim(c).Username, result)
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

func (h *Handler) SendCustomEmail(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCustomEmail").(model.CustomEmailInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	board := h.Boards.Board(claim(c).SessionId)
	result, err := board.SendCustomEmail(c.UserContext(), input.Subject, input.Message, input.Recipient)
	if err != nil {
		return respondError(c, err)
	}
	h.record(c.UserContext(), claim(c).Username, result)
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// record keeps the operation in the log and announces it on the feed. Failures are only logged.
func (h *Handler) record(ctx context.Context, actor string, result model.OperationResult) {
	entry := model.NewOperationLog(actor, result, h.clock())
	if h.Operations != nil {
		if err := h.Operations.Save(ctx, &entry); err != nil {
			log.Printf("Save %s operation log failed: %v", result.Action, err)
		}
	}
	if h.Feed != nil {
		if err := h.Feed.Publish(ctx, entry); err != nil {
			log.Printf("Publish %s operation failed: %v", result.Action, err)
		}
	}
}

func (h *Handler) ListOperations(c *fiber.Ctx) error {
	page, _ := c.Locals("pagination").(model.Pagination)
	if h.Operations == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{Rows: []model.OperationLog{}})
	}
	res, err := h.Operations.List(c.UserContext(), page)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, res)
}

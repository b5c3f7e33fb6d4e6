package handler

import (
	"bytes"
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/utils"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxProofSize = 10 << 20

// PreviewTicket looks a ticket up by its public reference.
func (h *Handler) PreviewTicket(c *fiber.Ctx) error {
	ticketID := strings.ToUpper(strings.TrimSpace(c.Params("ticketId")))
	if ticketID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, nil)
	}

	ctx, err := h.agentContext(c)
	if err != nil {
		return respondError(c, err)
	}
	ticket, err := h.API.FindByTicketID(ctx, ticketID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.TicketPreview{
		Ticket: ticket,
		QRData: utils.TicketQRContent(ticket),
	})
}

// VerifyTicket checks a scanned QR code at the gate.
func (h *Handler) VerifyTicket(c *fiber.Ctx) error {
	input, ok := c.Locals("inputVerifyTicket").(model.VerifyTicketInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	ticketID, ok := utils.ParseTicketQR(input.QRData)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, fmt.Errorf("unreadable ticket code"))
	}
	ticket, err := h.API.FindByTicketID(c.UserContext(), ticketID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"valid":  ticket.Status == constants.STATUS_APPROVED,
		"ticket": ticket,
	})
}

// UploadProof forwards a proof of payment to the ticket service and keeps a copy in the archive.
func (h *Handler) UploadProof(c *fiber.Ctx) error {
	id := c.Params("id")
	header, err := c.FormFile("proof_of_payment")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PROOF_REQUIRED, err)
	}
	if header.Size > maxProofSize {
		return utils.ErrorResponse(c, fiber.StatusRequestEntityTooLarge, constants.INVALID_INPUT,
			fmt.Errorf("proof is %d bytes, limit is %d", header.Size, maxProofSize))
	}
	file, err := header.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PROOF_REQUIRED, err)
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PROOF_REQUIRED, err)
	}

	ctx, err := h.agentContext(c)
	if err != nil {
		return respondError(c, err)
	}
	ticket, err := h.API.UploadProof(ctx, id, header.Filename, bytes.NewReader(raw))
	if err != nil {
		return respondError(c, err)
	}

	archived := ""
	if h.Archive != nil {
		archived, err = h.Archive.Upload(ctx, ticket, header.Filename, bytes.NewReader(raw))
		if err != nil {
			log.Printf("%v", err)
		}
	}

	return c.JSON(fiber.Map{
		"message": constants.PROOF_UPLOADED,
		"data": fiber.Map{
			"ticket":     ticket,
			"archiveUrl": archived,
		},
	})
}

// UpdateTicketStatus moves a single ticket through review on the ticket service.
func (h *Handler) UpdateTicketStatus(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateStatus").(model.UpdateStatusInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	ctx := c.UserContext()
	id := c.Params("id")

	current, err := h.API.GetTicket(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	if !current.CanTransition(input.Status) {
		return respondError(c, fmt.Errorf("%w: %s to %s", model.ErrInvalidTransition, current.Status, input.Status))
	}
	updated, err := h.API.UpdateStatus(ctx, id, input.Status, input.Notes)
	if err != nil {
		return respondError(c, err)
	}
	h.Boards.Board(claim(c).SessionId).Update(updated)
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

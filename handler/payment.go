package handler

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

const (
	redirectCoordinatorDashboard = "/coordinator/dashboard"
	redirectTicketPreview        = "/ticket-preview"
	redirectPaymentFailed        = "/payment-failed"
)

func (h *Handler) InitializePayment(c *fiber.Ctx) error {
	input, ok := c.Locals("inputInitializePayment").(model.InitializePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	ctx, err := h.agentContext(c)
	if err != nil {
		return respondError(c, err)
	}
	resp, err := h.API.InitializePayment(ctx, input.TicketID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, resp)
}

// PaymentCallback verifies the reference the checkout sent back and says where to go next.
// A bulk payment leads to the coordinator dashboard, an individual one to its ticket.
func (h *Handler) PaymentCallback(c *fiber.Ctx) error {
	reference, _ := c.Locals("reference").(string)

	ctx, err := h.agentContext(c)
	if err != nil {
		return respondError(c, err)
	}
	payment, err := h.API.VerifyPayment(ctx, reference)
	if err != nil {
		return respondError(c, err)
	}

	if !payment.Succeeded() {
		log.Printf("Payment %s returned with status %q", reference, payment.Status)
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"message": constants.PAYMENT_NOT_CONFIRMED,
			"data":    model.CallbackResult{Payment: payment, Redirect: redirectPaymentFailed},
		})
	}

	result := model.CallbackResult{Payment: payment, Redirect: redirectTicketPreview, Ticket: payment.TicketDetails}
	if payment.Metadata.IsBulk {
		result.Redirect = redirectCoordinatorDashboard
		result.Ticket = nil
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

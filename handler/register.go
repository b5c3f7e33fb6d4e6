package handler

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/utils"

	"github.com/gofiber/fiber/v2"
)

// FormSchema describes the wizard steps so the client can render them.
func (h *Handler) FormSchema(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"steps":     model.Steps,
		"firstStep": model.FirstStep,
		"lastStep":  model.LastStep,
		"fee":       h.Fee,
	})
}

func (h *Handler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.Wizard.Load(c.UserContext(), h.draftKey(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, draft)
}

func (h *Handler) UpdateDraft(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateDraft").(model.UpdateDraftInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var (
		draft *model.Draft
		err   error
	)
	if len(input.Fields) > 0 {
		draft, err = h.Wizard.UpdateFields(c.UserContext(), h.draftKey(c), input.Fields)
	} else {
		draft, err = h.Wizard.UpdateField(c.UserContext(), h.draftKey(c), input.Name, input.Value)
	}
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, draft)
}

func (h *Handler) NextStep(c *fiber.Ctx) error {
	draft, err := h.Wizard.GoNext(c.UserContext(), h.draftKey(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, draft)
}

func (h *Handler) PreviousStep(c *fiber.Ctx) error {
	draft, err := h.Wizard.GoBack(c.UserContext(), h.draftKey(c))
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, draft)
}

func (h *Handler) SubmitDraft(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSubmitDraft").(model.SubmitDraftInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	ctx, err := h.agentContext(c)
	if err != nil {
		return respondError(c, err)
	}
	ticket, err := h.Wizard.Submit(ctx, h.draftKey(c), input)
	if err != nil {
		return respondError(c, err)
	}
	if h.Mailer != nil {
		h.Mailer.SendAsync(ticket)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": constants.REGISTRATION_SUCCESSFUL,
		"data":    ticket,
	})
}

func (h *Handler) ResetDraft(c *fiber.Ctx) error {
	if err := h.Wizard.Reset(c.UserContext(), h.draftKey(c)); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.NewDraft())
}

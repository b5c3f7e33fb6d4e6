package handler

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.API.ListUsers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, out)
}

func (h *Handler) CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateUser").(model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}
	user, err := h.API.CreateUser(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, user.Public())
}

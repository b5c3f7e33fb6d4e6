package handler

import (
	"camp_registration/constants"
	"camp_registration/helper"
	"camp_registration/model"
	"camp_registration/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	sid, user, err := h.Sessions.Login(c.UserContext(), input.Username, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := helper.GenerateAccessToken(h.Secret, model.TokenClaim{
		SessionId: sid,
		Username:  user.Username,
		Role:      user.Role,
	}, h.AccessTTL)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     constants.ACCESS_COOKIE,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  h.clock().Add(h.AccessTTL),
		Path:     "/",
	})

	public := user.Public()
	return c.JSON(fiber.Map{
		"message": "login success",
		"token":   token,
		"state": model.SessionState{
			User:            &public,
			IsAuthenticated: true,
		},
	})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	sid := claim(c).SessionId
	if sid != "" {
		if err := h.Sessions.Logout(c.UserContext(), sid); err != nil {
			log.Printf("Logout of session %s failed: %v", sid, err)
		}
		h.Boards.Drop(sid)
	}

	c.Cookie(&fiber.Cookie{
		Name:     constants.ACCESS_COOKIE,
		Value:    "",
		HTTPOnly: true,
		SameSite: "Lax",
		Expires:  h.clock().Add(-24 * time.Hour),
		Path:     "/",
	})
	return utils.SuccessResponse(c, fiber.StatusOK, model.SessionState{})
}

// Me reports the session state; guests get an unauthenticated state, not an error.
func (h *Handler) Me(c *fiber.Ctx) error {
	user, ok := account(c)
	if !ok {
		return utils.SuccessResponse(c, fiber.StatusOK, model.SessionState{})
	}
	public := user.Public()
	return utils.SuccessResponse(c, fiber.StatusOK, model.SessionState{User: &public, IsAuthenticated: true})
}

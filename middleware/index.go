package middleware

import (
	"camp_registration/client"
	"camp_registration/constants"
	"camp_registration/helper"
	"camp_registration/model"
	"camp_registration/session"
	"camp_registration/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func tokenFrom(c *fiber.Ctx) string {
	token := c.Cookies(constants.ACCESS_COOKIE)
	if token == "" {
		// check header Authorization: Bearer xxx
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

// authenticate resolves the session behind the request token, if any.
func authenticate(c *fiber.Ctx, secret []byte, sessions *session.Manager) (model.TokenClaim, *model.User, error) {
	token := tokenFrom(c)
	if token == "" {
		return model.TokenClaim{}, nil, errors.New("no token")
	}
	jwtToken, err := helper.ParseToken(secret, token)
	if err != nil {
		return model.TokenClaim{}, nil, err
	}
	claim, err := helper.ClaimFromToken(jwtToken)
	if err != nil {
		return model.TokenClaim{}, nil, err
	}
	state, err := sessions.Restore(c.UserContext(), claim.SessionId)
	if err != nil {
		return model.TokenClaim{}, nil, err
	}
	if !state.IsAuthenticated {
		return model.TokenClaim{}, nil, errors.New("session expired")
	}
	return claim, state.User, nil
}

func attach(c *fiber.Ctx, claim model.TokenClaim, user *model.User) {
	c.Locals("claim", claim)
	c.Locals("account", *user)
	c.SetUserContext(client.WithToken(c.UserContext(), user.Token))
}

func Protected(secret []byte, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, user, err := authenticate(c, secret, sessions)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, err)
		}
		attach(c, claim, user)
		return c.Next()
	}
}

// OptionalAuth attaches the session when one is present and lets guests through.
func OptionalAuth(secret []byte, sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, user, err := authenticate(c, secret, sessions)
		if err == nil {
			attach(c, claim, user)
		}
		return c.Next()
	}
}

func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		account, ok := c.Locals("account").(model.User)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.UNAUTHORIZED, nil)
		}
		if !utils.IsValidValueOfConstant(account.Role, roles) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, nil)
		}
		return c.Next()
	}
}

package validate

import (
	"camp_registration/constants"
	"camp_registration/model"
	"camp_registration/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func Login() fiber.Handler {
	return body[model.LoginInput]("inputLogin")
}

func CreateUser() fiber.Handler {
	return body[model.CreateUserInput]("inputCreateUser")
}

func UpdateDraft() fiber.Handler {
	return body[model.UpdateDraftInput]("inputUpdateDraft")
}

// SubmitDraft accepts an empty body for registrations without payment.
func SubmitDraft() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitDraftInput
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&input); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
			}
		}
		if err := Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		c.Locals("inputSubmitDraft", input)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return body[model.UpdateStatusInput]("inputUpdateStatus")
}

func VerifyTicket() fiber.Handler {
	return body[model.VerifyTicketInput]("inputVerifyTicket")
}

func FilterTickets() fiber.Handler {
	return query[model.FilterTicketInput]("inputFilterTicket")
}

func Selection() fiber.Handler {
	return body[model.SelectionInput]("inputSelection")
}

func SelectAll() fiber.Handler {
	return body[model.SelectAllInput]("inputSelectAll")
}

func BulkAction() fiber.Handler {
	return body[model.BulkActionInput]("inputBulkAction")
}

func CustomEmail() fiber.Handler {
	return body[model.CustomEmailInput]("inputCustomEmail")
}

func InitializePayment() fiber.Handler {
	return body[model.InitializePaymentInput]("inputInitializePayment")
}

func GroupRegistration() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GroupRegistrationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		input.Parish = strings.TrimSpace(input.Parish)
		if err := Struct(input); err != nil {
			var fields FieldErrors
			if errors.As(err, &fields) {
				return utils.ValidationErrorResponse(c, constants.VALIDATION_FAILED, fields)
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_INPUT, err)
		}
		if input.Count() == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.GROUP_REGISTRATION_EMPTY, nil)
		}
		c.Locals("inputGroupRegistration", input)
		return c.Next()
	}
}

func PaymentReference() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reference := strings.TrimSpace(c.Query("reference"))
		if reference == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_REFERENCE_MISSING, nil)
		}
		c.Locals("reference", reference)
		return c.Next()
	}
}

package constants

const (
	ERROR_INTERNAL_ERROR       = "Something went wrong, please try again"
	ERROR_PARSE_DATA_TO_LOCALS = "Could not read validated input"
	INVALID_INPUT              = "Invalid input"
	VALIDATION_FAILED          = "Please correct the highlighted fields"
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_CREDENTIALS        = "Invalid username or password"
	UNAUTHORIZED               = "Please log in to continue"
	FORBIDDEN                  = "You do not have access to this page"
	TICKET_NOT_FOUND           = "Ticket not found. Please check your ticket ID"
	REMOTE_UNAVAILABLE         = "The registration service is unavailable, please try again"
	DRAFT_NOT_ON_FINAL_STEP    = "Please complete all steps before submitting"
	PAYMENT_NOT_CONFIRMED      = "Payment failed or was not completed"
	PAYMENT_REFERENCE_MISSING  = "Invalid payment reference"
	NOTHING_SELECTED           = "Select at least one ticket and an action"
	OPERATION_IN_PROGRESS      = "Another bulk operation is still running"
	UNKNOWN_RECIPIENT_GROUP    = "Unknown recipient group"
	INVALID_STATUS_TRANSITION  = "Only pending tickets can be approved or rejected"
	PROOF_REQUIRED             = "Payment proof is required"
	PROOF_UPLOADED             = "Payment proof uploaded successfully"
	REGISTRATION_SUCCESSFUL    = "Registration successful! See you at camp"
	GROUP_REGISTRATION_EMPTY   = "Enter at least one attendee"
)

package model

import "time"

const (
	FirstStep = 1
	LastStep  = 4
)

// Draft is the in-progress wizard state for one browser.
type Draft struct {
	FormData    Registration      `json:"formData"`
	CurrentStep int               `json:"currentStep"`
	Errors      map[string]string `json:"errors,omitempty"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func NewDraft() *Draft {
	return &Draft{CurrentStep: FirstStep}
}

func (d *Draft) ClearError(field string) {
	delete(d.Errors, field)
	if len(d.Errors) == 0 {
		d.Errors = nil
	}
}

type UpdateDraftInput struct {
	Name   string         `json:"name" validate:"required_without=Fields"`
	Value  any            `json:"value"`
	Fields map[string]any `json:"fields" validate:"required_without=Name"`
}

// SubmitDraftInput carries the optional payment reference of a paid registration.
type SubmitDraftInput struct {
	PaymentReference string `json:"paymentReference" validate:"omitempty,max=100"`
}

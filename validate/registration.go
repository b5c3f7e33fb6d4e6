package validate

import (
	"camp_registration/model"
	"errors"

	"github.com/go-playground/validator/v10"
)

var registrationMessages = map[string]string{
	"fullName":              "Full name must be at least 3 characters",
	"age":                   "Age is required",
	"category":              "Please select a category",
	"gender":                "Please select a gender",
	"phone":                 "Enter a valid phone number",
	"email":                 "Enter a valid email address",
	"province":              "Province is required",
	"zone":                  "Zone is required",
	"area":                  "Area is required",
	"parish":                "Parish is required",
	"emergencyContact":      "Emergency contact name is required",
	"emergencyPhone":        "Emergency phone number is required",
	"emergencyRelationship": "Relationship is required",
	"parentName":            "Parent name is required",
	"parentEmail":           "Valid parent email is required",
	"parentPhone":           "Parent phone is required",
	"parentRelationship":    "Relationship is required",
	"parentConsent":         "Parent consent is required to proceed",
	"medicalConsent":        "Medical consent is required",
}

func registrationMessage(fe validator.FieldError) string {
	if fe.Field() == "age" && fe.Tag() == "lte" {
		return "Age must be 25 or below"
	}
	if msg, ok := registrationMessages[fe.Field()]; ok {
		return msg
	}
	return describe(fe)
}

// Registration validates every field at once and returns the errors keyed by field name.
func Registration(r model.Registration) FieldErrors {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return FieldErrors{"": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range ve {
		if _, seen := out[fe.Field()]; !seen {
			out[fe.Field()] = registrationMessage(fe)
		}
	}
	return out
}

// Step validates only the fields that belong to the given wizard step.
func Step(r model.Registration, step int) FieldErrors {
	all := Registration(r)
	if len(all) == 0 {
		return nil
	}
	out := FieldErrors{}
	for _, name := range model.StepFields(step) {
		if msg, ok := all[name]; ok {
			out[name] = msg
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

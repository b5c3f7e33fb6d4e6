package model

import (
	"camp_registration/constants"
	"errors"
	"time"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Registration is the part of a ticket the registrant fills in through the wizard.
type Registration struct {
	// Step 1
	FullName string `json:"fullName" validate:"required,min=3"`
	Age      int    `json:"age" validate:"required,gte=1,lte=25"`
	Category string `json:"category" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Email    string `json:"email" validate:"required,email"`

	// Step 2
	Province   string `json:"province" validate:"required"`
	Zone       string `json:"zone" validate:"required"`
	Area       string `json:"area" validate:"required"`
	Parish     string `json:"parish" validate:"required"`
	Department string `json:"department"`

	// Step 3
	MedicalConditions     string `json:"medicalConditions"`
	Medications           string `json:"medications"`
	DietaryRestrictions   string `json:"dietaryRestrictions"`
	EmergencyContact      string `json:"emergencyContact" validate:"required,min=3"`
	EmergencyPhone        string `json:"emergencyPhone" validate:"required,min=10"`
	EmergencyRelationship string `json:"emergencyRelationship" validate:"required"`

	// Step 4
	ParentName         string `json:"parentName" validate:"required,min=3"`
	ParentEmail        string `json:"parentEmail" validate:"required,email"`
	ParentPhone        string `json:"parentPhone" validate:"required,min=10"`
	ParentRelationship string `json:"parentRelationship" validate:"required"`
	ParentConsent      bool   `json:"parentConsent" validate:"required"`
	MedicalConsent     bool   `json:"medicalConsent" validate:"required"`
	PhotoConsent       bool   `json:"photoConsent"`
}

type Ticket struct {
	ID       string `json:"id"`
	TicketId string `json:"ticketId"`

	FullName string `json:"fullName"`
	Age      int    `json:"age"`
	Category string `json:"category"`
	Gender   string `json:"gender"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`

	Province   string `json:"province"`
	Zone       string `json:"zone"`
	Area       string `json:"area"`
	Parish     string `json:"parish"`
	Department string `json:"department"`

	MedicalConditions     string `json:"medicalConditions"`
	Medications           string `json:"medications"`
	DietaryRestrictions   string `json:"dietaryRestrictions"`
	EmergencyContact      string `json:"emergencyContact"`
	EmergencyPhone        string `json:"emergencyPhone"`
	EmergencyRelationship string `json:"emergencyRelationship"`

	ParentName         string `json:"parentName"`
	ParentEmail        string `json:"parentEmail"`
	ParentPhone        string `json:"parentPhone"`
	ParentRelationship string `json:"parentRelationship"`
	ParentConsent      bool   `json:"parentConsent"`
	MedicalConsent     bool   `json:"medicalConsent"`
	PhotoConsent       bool   `json:"photoConsent"`

	Status           string     `json:"status"`
	Notes            string     `json:"notes,omitempty"`
	RegisteredAt     time.Time  `json:"registeredAt"`
	RegisteredBy     string     `json:"registeredBy,omitempty"`
	RegistrationType string     `json:"registrationType,omitempty"`
	PaymentRef       string     `json:"paymentRef,omitempty"`
	ProofOfPayment   string     `json:"proofOfPayment,omitempty"`
	ApprovedAt       *time.Time `json:"approvedAt,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// CanTransition reports whether status may move to the target.
// Only pending tickets move; re-applying the current status is allowed as a no-op.
func (t Ticket) CanTransition(to string) bool {
	if t.Status == to {
		return true
	}
	return t.Status == constants.STATUS_PENDING &&
		(to == constants.STATUS_APPROVED || to == constants.STATUS_REJECTED)
}

func (t *Ticket) Transition(to string) error {
	if !t.CanTransition(to) {
		return ErrInvalidTransition
	}
	t.Status = to
	return nil
}

type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

type FilterTicketInput struct {
	Search string `query:"search" validate:"omitempty,max=100"`
	Status string `query:"status" validate:"omitempty,oneof=pending approved rejected"`
	Sort   string `query:"sort" validate:"omitempty,oneof=newest oldest name"`
}

type TicketStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// TicketPreview is a ticket with the content its gate QR code encodes.
type TicketPreview struct {
	Ticket
	QRData string `json:"qrData"`
}

// VerifyTicketInput carries what the gate scanner read from a ticket QR code.
type VerifyTicketInput struct {
	QRData string `json:"qrData" validate:"required,startswith=RCCG_TICKET:"`
}

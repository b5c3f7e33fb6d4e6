package client

import (
	"camp_registration/constants"
	"camp_registration/model"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ticketWire struct {
	RemoteID string `json:"id,omitempty"`
	TicketId string `json:"ticket_id,omitempty"`

	FullName string `json:"full_name"`
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

	MedicalConditions     string `json:"medical_conditions"`
	Medications           string `json:"medications"`
	DietaryRestrictions   string `json:"dietary_restrictions"`
	EmergencyContact      string `json:"emergency_contact"`
	EmergencyPhone        string `json:"emergency_phone"`
	EmergencyRelationship string `json:"emergency_relationship"`

	ParentName         string `json:"parent_name"`
	ParentEmail        string `json:"parent_email"`
	ParentPhone        string `json:"parent_phone"`
	ParentRelationship string `json:"parent_relationship"`
	ParentConsent      bool   `json:"parent_consent"`
	MedicalConsent     bool   `json:"medical_consent"`
	PhotoConsent       bool   `json:"photo_consent"`

	Status           string     `json:"status,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	RegisteredAt     time.Time  `json:"registered_at"`
	RegisteredByName string     `json:"registered_by_name,omitempty"`
	RegistrationType string     `json:"registration_type,omitempty"`
	PaymentRef       string     `json:"payment_reference,omitempty"`
	ProofOfPayment   string     `json:"proof_of_payment,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

func ticketToWire(t model.Ticket) (ticketWire, error) {
	var w ticketWire
	if err := copier.Copy(&w, &t); err != nil {
		return ticketWire{}, fmt.Errorf("map ticket: %w", err)
	}
	w.RemoteID = t.ID
	return w, nil
}

func ticketFromWire(w ticketWire) (model.Ticket, error) {
	var t model.Ticket
	if err := copier.Copy(&t, &w); err != nil {
		return model.Ticket{}, fmt.Errorf("map ticket: %w", err)
	}
	t.ID = w.RemoteID
	t.RegisteredBy = w.RegisteredByName
	return t, nil
}

func ticketsFromWire(ws []ticketWire) ([]model.Ticket, error) {
	out := make([]model.Ticket, 0, len(ws))
	for _, w := range ws {
		t, err := ticketFromWire(w)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

type userWire struct {
	ID        string `json:"id,omitempty"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Province  string `json:"province,omitempty"`
	Zone      string `json:"zone,omitempty"`
	Area      string `json:"area,omitempty"`
	Parish    string `json:"parish,omitempty"`
}

type createUserWire struct {
	userWire
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func userFromWire(w userWire) (model.User, error) {
	var u model.User
	if err := copier.Copy(&u, &w); err != nil {
		return model.User{}, fmt.Errorf("map user: %w", err)
	}
	return u, nil
}

// createUserToWire drops the church affiliation of admins, which the API refuses.
func createUserToWire(in model.CreateUserInput) (createUserWire, error) {
	var w createUserWire
	if err := copier.Copy(&w.userWire, &in); err != nil {
		return createUserWire{}, fmt.Errorf("map user: %w", err)
	}
	w.Password = in.Password
	w.PasswordConfirm = in.PasswordConfirm
	if in.Role == constants.ROLE_ADMIN {
		w.Province, w.Zone, w.Area, w.Parish = "", "", "", ""
	}
	return w, nil
}

type paymentWire struct {
	ID         string          `json:"id"`
	Reference  string          `json:"reference"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	PayerEmail string          `json:"payer_email"`
	Metadata   struct {
		IsBulk    bool     `json:"is_bulk"`
		TicketIDs []string `json:"ticket_ids"`
	} `json:"metadata"`
	TicketDetails *ticketWire `json:"ticket_details"`
}

func paymentFromWire(w paymentWire) (model.Payment, error) {
	p := model.Payment{
		ID:         w.ID,
		Reference:  w.Reference,
		Amount:     w.Amount,
		Status:     w.Status,
		PayerEmail: w.PayerEmail,
		Metadata: model.PaymentMetadata{
			IsBulk:    w.Metadata.IsBulk,
			TicketIDs: w.Metadata.TicketIDs,
		},
	}
	if w.TicketDetails != nil {
		t, err := ticketFromWire(*w.TicketDetails)
		if err != nil {
			return model.Payment{}, err
		}
		p.TicketDetails = &t
	}
	return p, nil
}

type initializeWire struct {
	AuthorizationURL string      `json:"authorization_url"`
	AccessCode       string      `json:"access_code"`
	Reference        string      `json:"reference"`
	Payment          paymentWire `json:"payment"`
}

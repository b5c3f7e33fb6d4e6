package model

import "github.com/shopspring/decimal"

type PaymentMetadata struct {
	IsBulk    bool     `json:"isBulk"`
	TicketIDs []string `json:"ticketIds,omitempty"`
}

type Payment struct {
	ID            string          `json:"id"`
	Reference     string          `json:"reference"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	PayerEmail    string          `json:"payerEmail,omitempty"`
	Metadata      PaymentMetadata `json:"metadata"`
	TicketDetails *Ticket         `json:"ticketDetails,omitempty"`
}

func (p Payment) Succeeded() bool {
	return p.Status == "success"
}

type InitializeResponse struct {
	AuthorizationURL string  `json:"authorizationUrl"`
	AccessCode       string  `json:"accessCode"`
	Reference        string  `json:"reference"`
	Payment          Payment `json:"payment"`
}

type InitializePaymentInput struct {
	TicketID string `json:"ticketId" validate:"required"`
}

// CallbackResult tells the caller where a verified payment leads.
type CallbackResult struct {
	Payment  Payment `json:"payment"`
	Redirect string  `json:"redirect"`
	Ticket   *Ticket `json:"ticket,omitempty"`
}

type GroupRegistrationInput struct {
	Parish          string `json:"parish" validate:"required"`
	CoordinatorName string `json:"coordinatorName" validate:"required,min=3"`
	Phone           string `json:"phone" validate:"required,min=10"`
	Email           string `json:"email" validate:"required,email"`
	Teens           int    `json:"teens" validate:"gte=0,lte=500"`
	PreTeens        int    `json:"preTeens" validate:"gte=0,lte=500"`
	Teachers        int    `json:"teachers" validate:"gte=0,lte=500"`
}

func (in GroupRegistrationInput) Count() int {
	return in.Teens + in.PreTeens + in.Teachers
}

type GroupRegistrationResult struct {
	Tickets        []Ticket           `json:"tickets"`
	ExpectedAmount decimal.Decimal    `json:"expectedAmount"`
	Payment        InitializeResponse `json:"payment"`
}

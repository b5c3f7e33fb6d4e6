package model

import "time"

type Recipient struct {
	TicketID string `json:"ticketId"`
	Email    string `json:"email"`
	Name     string `json:"name"`
}

type DeliveryDetail struct {
	Success   bool   `json:"success"`
	MessageId string `json:"messageId,omitempty"`
	Recipient string `json:"recipient"`
	Name      string `json:"name"`
	Action    string `json:"action,omitempty"`
	Error     string `json:"error,omitempty"`
}

type BulkSendResult struct {
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Details    []DeliveryDetail `json:"details"`
}

// OperationResult is the summary of a single bulk action invocation.
type OperationResult struct {
	Action     string           `json:"action"`
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Error      string           `json:"error,omitempty"`
	Details    []DeliveryDetail `json:"details"`
}

type OperationLog struct {
	DTO
	Actor      string           `gorm:"size:150;index" json:"actor"`
	Action     string           `gorm:"size:32;index" json:"action"`
	Total      int              `json:"total"`
	Successful int              `json:"successful"`
	Failed     int              `json:"failed"`
	Error      string           `gorm:"type:text" json:"error,omitempty"`
	Details    []DeliveryDetail `gorm:"serializer:json;type:jsonb" json:"details"`
	FinishedAt time.Time        `gorm:"index" json:"finishedAt"`
}

func NewOperationLog(actor string, result OperationResult, finishedAt time.Time) OperationLog {
	return OperationLog{
		Actor:      actor,
		Action:     result.Action,
		Total:      result.Total,
		Successful: result.Successful,
		Failed:     result.Failed,
		Error:      result.Error,
		Details:    result.Details,
		FinishedAt: finishedAt,
	}
}

type BulkActionInput struct {
	Action string `json:"action" validate:"required,oneof=approve reject delete send_reminder"`
}

type SelectionInput struct {
	TicketID string `json:"ticketId" validate:"required"`
	Checked  bool   `json:"checked"`
}

type SelectAllInput struct {
	Checked bool `json:"checked"`
}

type CustomEmailInput struct {
	Subject   string `json:"subject" validate:"required,max=200"`
	Message   string `json:"message" validate:"required,max=10000"`
	Recipient string `json:"recipients" validate:"required"`
}

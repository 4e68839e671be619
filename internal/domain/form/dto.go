package form

import (
	"encoding/json"
	"time"

	"github.com/linskybing/storeops-go/internal/domain/catalog"
	"github.com/linskybing/storeops-go/internal/domain/user"
)

type SubmitFormInput struct {
	FormType         string          `json:"form_type" binding:"required" example:"equipment"`
	FormData         json.RawMessage `json:"form_data" swaggertype:"object"`
	Notes            string          `json:"notes"`
	ForDate          *time.Time      `json:"for_date"`
	Recipient        string          `json:"recipient" example:"Supervisor"`
	RecipientType    string          `json:"recipient_type" binding:"omitempty,oneof=specific general"`
	GeneralRecipient string          `json:"general_recipient"`
}

type UpdateStatusInput struct {
	Status         string `json:"status" binding:"required,max=50" example:"Approved"`
	SignatureImage string `json:"signature_image"`
}

type MoveFormInput struct {
	FormID         uint   `json:"form_id" binding:"required"`
	NewRecipient   string `json:"new_recipient" binding:"required"`
	RecipientType  string `json:"recipient_type" binding:"omitempty,oneof=specific general"`
	Status         string `json:"status" binding:"omitempty,max=50"`
	SignatureImage string `json:"signature_image"`
}

type Summary struct {
	ID            uint          `json:"id"`
	FormType      string        `json:"form_type"`
	Status        string        `json:"status"`
	Notes         string        `json:"notes"`
	ForDate       time.Time     `json:"for_date"`
	CreatedAt     time.Time     `json:"created_at"`
	RecipientType string        `json:"recipient_type"`
	Recipient     string        `json:"recipient"`
	Submitter     *user.Summary `json:"submitter"`
	RecipientUser *user.Summary `json:"recipient_user,omitempty"`
}

type HistoryView struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Actor     *user.Summary `json:"actor"`
	From      *user.Summary `json:"from,omitempty"`
	To        *user.Summary `json:"to,omitempty"`
	ToPool    string        `json:"to_pool,omitempty"`
}

type Detail struct {
	Summary
	FormData     json.RawMessage `json:"form_data" swaggertype:"object"`
	SignatureURL string          `json:"signature_url,omitempty"`
	AlertID      *uint           `json:"alert_id,omitempty"`
	History      []HistoryView   `json:"history"`
}

type MovedView struct {
	FormID        uint      `json:"form_id"`
	RecipientType string    `json:"recipient_type"`
	Recipient     string    `json:"recipient"`
	Status        string    `json:"status"`
	MovedAt       time.Time `json:"moved_at"`
	Form          *Summary  `json:"form"`
}

type MoveResult struct {
	Message string `json:"message"`
	Form    *Form  `json:"form"`
}

type Stats struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	ByFormType map[string]int64 `json:"by_form_type"`
}

type Metadata struct {
	UnitsOfMeasure []catalog.Option     `json:"units_of_measure,omitempty"`
	Packaging      []catalog.Option     `json:"packaging,omitempty"`
	Actions        []catalog.Action     `json:"actions"`
	ReasonCodes    []catalog.ReasonCode `json:"reason_codes,omitempty"`
}

// Scope selects which forms a listing covers.
type Scope struct {
	All         bool
	RecipientID uint
	Pools       []string
}

package request

import (
	"encoding/json"
	"strings"
	"time"
)

type ReimbursementRequest struct {
	ClaimType      string   `json:"claim_type" binding:"required"`
	Description    string   `json:"description"`
	ExpenseDate    string   `json:"expense_date"`
	EstimatedValue float64  `json:"estimated_value"`
	PixKey         string   `json:"pix_key"`
	PixKeyType     string   `json:"pix_key_type"`
	Documents      []string `json:"documents"`
}

func (r ReimbursementRequest) ResolveExpenseDate() (*time.Time, error) {
	return parseOptionalDate(r.ExpenseDate)
}

// ApproveReimbursementRequest carries the value typed by staff. It may be a
// JSON string ("237,50") or a number (237.5); the text is kept as typed so
// the validator sees exactly what was entered.
type ApproveReimbursementRequest struct {
	ApprovedValue json.RawMessage `json:"approved_value"`
}

func (r ApproveReimbursementRequest) ResolveApprovedValue() string {
	raw := strings.TrimSpace(string(r.ApprovedValue))
	if raw == "" || raw == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil {
		return strings.TrimSpace(s)
	}
	return raw
}

type MarkReimbursementPaidRequest struct {
	Notes string `json:"notes"`
}

package request

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EpochMillis is a millisecond epoch timestamp that accepts the shapes
// POS clients actually send: a JSON number (ms), a numeric string, or an
// RFC 3339 string. Whatever arrives, storage only ever sees milliseconds.
type EpochMillis int64

// UnmarshalJSON implements json.Unmarshaler.
func (e *EpochMillis) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*e = 0
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if ms, err := strconv.ParseInt(str, 10, 64); err == nil {
			*e = EpochMillis(ms)
			return nil
		}
		t, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q", str)
		}
		*e = EpochMillis(t.UnixMilli())
		return nil
	}

	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	*e = EpochMillis(ms)
	return nil
}

// LineItemRequest is one service or product entry on an incoming receipt.
type LineItemRequest struct {
	Name     string  `json:"name" binding:"required,max=255"`
	Price    float64 `json:"price" binding:"min=0"`
	Quantity int     `json:"quantity" binding:"omitempty,min=1"`
}

// CreateReceiptRequest represents a receipt creation request
type CreateReceiptRequest struct {
	CashSessionID string            `json:"cash_session_id" binding:"required,uuid"`
	CustomerName  string            `json:"customer_name" binding:"max=255"`
	MobileNumber  string            `json:"mobile_number" binding:"max=50"`
	Services      []LineItemRequest `json:"services" binding:"omitempty,dive"`
	Products      []LineItemRequest `json:"products" binding:"omitempty,dive"`
	Total         float64           `json:"total" binding:"min=0"`
	VAT           float64           `json:"vat" binding:"min=0"`
	PaymentType   string            `json:"payment_type" binding:"required,oneof=cash card"`
	CreatedAt     EpochMillis       `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment types recognized by the cash/card split. Receipts carrying any
// other value are excluded from the split but still feed item groupings.
const (
	PaymentTypeCash = "cash"
	PaymentTypeCard = "card"
)

// LineItem is one product or service entry copied onto a receipt at the
// moment of sale. Receipts keep their own copy of name and price, so later
// catalog edits never change historical receipts. Services are "performed",
// not bought in bulk: their quantity is implicitly 1.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

// Receipt is one sale within a cash session.
//
// Serial is assigned at creation time as count-of-existing-receipts-in-the-
// session + 1; it is 1-based and never reused (receipts are never deleted).
// CreatedAt is always a millisecond epoch timestamp, whatever representation
// the caller sent.
type Receipt struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CashSessionID uuid.UUID  `gorm:"type:uuid;not null;index" json:"cash_session_id"`
	CustomerName  string     `gorm:"size:255" json:"customer_name"`
	MobileNumber  string     `gorm:"size:50" json:"mobile_number"`
	Services      []LineItem `gorm:"serializer:json" json:"services"`
	Products      []LineItem `gorm:"serializer:json" json:"products"`
	Total         float64    `gorm:"not null" json:"total"`
	VAT           float64    `gorm:"not null" json:"vat"`
	PaymentType   string     `gorm:"size:20;not null" json:"payment_type"`
	Serial        int        `gorm:"not null" json:"serial"`
	CreatedAt     int64      `gorm:"not null" json:"created_at"`

	CashSession CashSession `gorm:"foreignKey:CashSessionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// CreatedAtTime returns the creation timestamp as a time.Time.
func (r *Receipt) CreatedAtTime() time.Time {
	return time.UnixMilli(r.CreatedAt)
}

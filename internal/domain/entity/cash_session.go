package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashSession is one cashier's register shift, bounded by an opening and a
// closing cash count. A session is open while ClosingCashAmount is null and
// is closed exactly once; sessions are never deleted.
type CashSession struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CashierName       string    `gorm:"size:255;not null" json:"cashier_name"`
	CashierEmail      string    `gorm:"size:255;not null;index" json:"cashier_email"`
	OpeningCashAmount float64   `gorm:"not null" json:"opening_cash_amount"`
	OpeningCashTime   int64     `gorm:"not null" json:"opening_cash_time"`
	ClosingCashAmount *float64  `json:"closing_cash_amount"`
	ClosingCashTime   *int64    `json:"closing_cash_time"`
}

// BeforeCreate generates a UUID before creating a new cash session
func (s *CashSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CashSession model
func (CashSession) TableName() string {
	return "cash_sessions"
}

// IsOpen reports whether the register has not been closed yet.
func (s *CashSession) IsOpen() bool {
	return s.ClosingCashAmount == nil
}

// OpeningTime returns the opening timestamp as a time.Time.
func (s *CashSession) OpeningTime() time.Time {
	return time.UnixMilli(s.OpeningCashTime)
}

// ClosingTime returns the closing timestamp, or the zero time while the
// session is still open.
func (s *CashSession) ClosingTime() time.Time {
	if s.ClosingCashTime == nil {
		return time.Time{}
	}
	return time.UnixMilli(*s.ClosingCashTime)
}

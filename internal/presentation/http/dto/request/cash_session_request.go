package request

// OpenCashSessionRequest represents a session open request
type OpenCashSessionRequest struct {
	CashierName       string      `json:"cashier_name" binding:"required,max=255"`
	CashierEmail      string      `json:"cashier_email" binding:"required,email,max=255"`
	OpeningCashAmount float64     `json:"opening_cash_amount" binding:"min=0"`
	OpeningCashTime   EpochMillis `json:"opening_cash_time"`
}

// CloseCashSessionRequest represents the one-time close transition
type CloseCashSessionRequest struct {
	ClosingCashAmount float64 `json:"closing_cash_amount" binding:"min=0"`
}

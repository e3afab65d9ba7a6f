package request

// PrintSessionReportRequest carries the cashier display fields shown on
// the report header. Empty fields fall back to the stored session values.
type PrintSessionReportRequest struct {
	CashierName  string `json:"cashier_name" binding:"max=255"`
	CashierEmail string `json:"cashier_email" binding:"omitempty,email,max=255"`
}

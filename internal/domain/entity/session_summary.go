package entity

// ProductGroup aggregates one product's sales across a session.
type ProductGroup struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// ServiceGroup aggregates one service's sales across a session. Services
// are counted per performance, not per quantity.
type ServiceGroup struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// SessionSummary is the derived reconciliation of a session's receipts.
// It is a value object composed per report request, never persisted.
// Groups keep the first-seen order of item names across the receipt
// sequence so the same input always reproduces the same report layout.
type SessionSummary struct {
	ProductGroups       []ProductGroup `json:"product_groups"`
	ServiceGroups       []ServiceGroup `json:"service_groups"`
	TotalProductRevenue float64        `json:"total_product_revenue"`
	TotalServiceRevenue float64        `json:"total_service_revenue"`
	TotalCash           float64        `json:"total_cash"`
	TotalCard           float64        `json:"total_card"`
}

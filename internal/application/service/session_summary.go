package service

import (
	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
)

// SummarizeReceipts reduces one session's receipts into per-item groupings
// and payment totals in a single pass.
//
// Groups are keyed by the item name exactly as stored (case-sensitive, no
// trimming) and appear in first-seen order across the receipt sequence, so
// the same input always yields the same report.
//
// Receipts whose payment type is neither "cash" nor "card" contribute to
// neither payment bucket but still feed the item groupings.
func SummarizeReceipts(receipts []entity.Receipt) *entity.SessionSummary {
	summary := &entity.SessionSummary{
		ProductGroups: []entity.ProductGroup{},
		ServiceGroups: []entity.ServiceGroup{},
	}
	productIdx := make(map[string]int)
	serviceIdx := make(map[string]int)

	for _, receipt := range receipts {
		for _, p := range receipt.Products {
			i, ok := productIdx[p.Name]
			if !ok {
				i = len(summary.ProductGroups)
				productIdx[p.Name] = i
				summary.ProductGroups = append(summary.ProductGroups, entity.ProductGroup{Name: p.Name})
			}
			revenue := float64(p.Quantity) * p.Price
			summary.ProductGroups[i].Quantity += p.Quantity
			summary.ProductGroups[i].Revenue += revenue
			summary.TotalProductRevenue += revenue
		}

		for _, s := range receipt.Services {
			i, ok := serviceIdx[s.Name]
			if !ok {
				i = len(summary.ServiceGroups)
				serviceIdx[s.Name] = i
				summary.ServiceGroups = append(summary.ServiceGroups, entity.ServiceGroup{Name: s.Name})
			}
			summary.ServiceGroups[i].Count++
			summary.ServiceGroups[i].Revenue += s.Price
			summary.TotalServiceRevenue += s.Price
		}

		switch receipt.PaymentType {
		case entity.PaymentTypeCash:
			summary.TotalCash += receipt.Total
		case entity.PaymentTypeCard:
			summary.TotalCard += receipt.Total
		}
	}

	return summary
}

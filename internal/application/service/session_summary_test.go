package service

import (
	"testing"

	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeReceipts_GroupsAndTotals(t *testing.T) {
	receipts := []entity.Receipt{
		{
			Products: []entity.LineItem{
				{Name: "Water", Price: 5, Quantity: 2},
				{Name: "Juice", Price: 8, Quantity: 1},
			},
			Services:    []entity.LineItem{{Name: "Playtime", Price: 30}},
			Total:       48,
			PaymentType: entity.PaymentTypeCash,
		},
		{
			Products:    []entity.LineItem{{Name: "Water", Price: 5, Quantity: 3}},
			Services:    []entity.LineItem{{Name: "Playtime", Price: 30}},
			Total:       45,
			PaymentType: entity.PaymentTypeCard,
		},
	}

	summary := SummarizeReceipts(receipts)

	assert.Len(t, summary.ProductGroups, 2)
	assert.Equal(t, "Water", summary.ProductGroups[0].Name)
	assert.Equal(t, 5, summary.ProductGroups[0].Quantity)
	assert.Equal(t, 25.0, summary.ProductGroups[0].Revenue)
	assert.Equal(t, "Juice", summary.ProductGroups[1].Name)
	assert.Equal(t, 1, summary.ProductGroups[1].Quantity)
	assert.Equal(t, 8.0, summary.ProductGroups[1].Revenue)

	assert.Len(t, summary.ServiceGroups, 1)
	assert.Equal(t, "Playtime", summary.ServiceGroups[0].Name)
	assert.Equal(t, 2, summary.ServiceGroups[0].Count)
	assert.Equal(t, 60.0, summary.ServiceGroups[0].Revenue)

	assert.Equal(t, 33.0, summary.TotalProductRevenue)
	assert.Equal(t, 60.0, summary.TotalServiceRevenue)
	assert.Equal(t, 48.0, summary.TotalCash)
	assert.Equal(t, 45.0, summary.TotalCard)
}

func TestSummarizeReceipts_FirstSeenOrder(t *testing.T) {
	receipts := []entity.Receipt{
		{Products: []entity.LineItem{{Name: "C", Price: 1, Quantity: 1}}},
		{Products: []entity.LineItem{{Name: "A", Price: 1, Quantity: 1}}},
		{Products: []entity.LineItem{{Name: "C", Price: 1, Quantity: 1}, {Name: "B", Price: 1, Quantity: 1}}},
	}

	summary := SummarizeReceipts(receipts)

	names := make([]string, 0, len(summary.ProductGroups))
	for _, g := range summary.ProductGroups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestSummarizeReceipts_NameKeysAreLiteral(t *testing.T) {
	receipts := []entity.Receipt{
		{Products: []entity.LineItem{
			{Name: "water", Price: 5, Quantity: 1},
			{Name: "Water", Price: 5, Quantity: 1},
			{Name: "Water ", Price: 5, Quantity: 1},
		}},
	}

	summary := SummarizeReceipts(receipts)

	assert.Len(t, summary.ProductGroups, 3)
}

func TestSummarizeReceipts_UnknownPaymentType(t *testing.T) {
	receipts := []entity.Receipt{
		{
			Products:    []entity.LineItem{{Name: "Water", Price: 5, Quantity: 1}},
			Total:       5,
			PaymentType: "voucher",
		},
	}

	summary := SummarizeReceipts(receipts)

	assert.Equal(t, 0.0, summary.TotalCash)
	assert.Equal(t, 0.0, summary.TotalCard)
	assert.Equal(t, 5.0, summary.TotalProductRevenue)
	assert.Len(t, summary.ProductGroups, 1)
}

func TestSummarizeReceipts_Deterministic(t *testing.T) {
	receipts := []entity.Receipt{
		{
			Products:    []entity.LineItem{{Name: "Juice", Price: 8, Quantity: 2}, {Name: "Water", Price: 5, Quantity: 1}},
			Services:    []entity.LineItem{{Name: "Playtime", Price: 30}},
			Total:       51,
			PaymentType: entity.PaymentTypeCash,
		},
		{
			Products:    []entity.LineItem{{Name: "Water", Price: 5, Quantity: 4}},
			Total:       20,
			PaymentType: entity.PaymentTypeCard,
		},
	}

	first := SummarizeReceipts(receipts)
	second := SummarizeReceipts(receipts)

	assert.Equal(t, first, second)
}

func TestSummarizeReceipts_Empty(t *testing.T) {
	summary := SummarizeReceipts(nil)

	assert.Empty(t, summary.ProductGroups)
	assert.Empty(t, summary.ServiceGroups)
	assert.Equal(t, 0.0, summary.TotalCash)
	assert.Equal(t, 0.0, summary.TotalCard)
}

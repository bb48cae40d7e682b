package inventory

import "github.com/rogerio-castellano/pantry-tracker/internal/models"

type LargestItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Summary aggregates an inventory for the dashboard.
type Summary struct {
	TotalItems  int         `json:"total_items"`
	TotalUnits  int         `json:"total_units"`
	LargestItem LargestItem `json:"largest_item"`
}

// Summarize counts items and units. Ties for the largest item keep the first one.
func Summarize(items []models.Item) Summary {
	s := Summary{TotalItems: len(items)}
	for _, item := range items {
		s.TotalUnits += item.Quantity
		if s.LargestItem.Name == "" || item.Quantity > s.LargestItem.Quantity {
			s.LargestItem = LargestItem{Name: item.Name, Quantity: item.Quantity}
		}
	}
	return s
}

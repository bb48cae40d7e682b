package inventory

import (
	"strings"

	"github.com/rogerio-castellano/pantry-tracker/internal/models"
)

func matchesQuery(item models.Item, query string) bool {
	return strings.Contains(strings.ToLower(item.Name), strings.ToLower(query))
}

// Filter returns the items whose name contains query, ignoring case, in their
// original order. An empty query keeps every item.
func Filter(items []models.Item, query string) []models.Item {
	if query == "" {
		return items
	}

	filtered := []models.Item{}
	for _, item := range items {
		if matchesQuery(item, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

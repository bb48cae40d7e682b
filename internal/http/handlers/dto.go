package handlers

import (
	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
	"github.com/rogerio-castellano/pantry-tracker/internal/models"
)

type AddItemRequest struct {
	Name string `json:"name"`
}

type SetQuantityRequest struct {
	// Quantity is an integer or the string "REMOVE".
	Quantity *inventory.Quantity `json:"quantity" swaggertype:"string"`
}

type ItemResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Meta struct {
	TotalCount int    `json:"total_count"`
	Query      string `json:"query,omitempty"`
}

type InventoryResult struct {
	Data []ItemResponse `json:"data"`
	Meta Meta           `json:"meta"`
}

type RecipeRequest struct {
	Query string `json:"query"`
}

type RecipeResponse struct {
	Recipe  string `json:"recipe"`
	Query   string `json:"query,omitempty"`
	Loading bool   `json:"loading"`
}

type ImportItemsResult struct {
	ImportedItemsCount int                   `json:"imported"`
	Errors             []ItemValidationError `json:"errors"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func toItemResponses(items []models.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = ItemResponse{Name: item.Name, Quantity: item.Quantity}
	}
	return resp
}

func (s *Server) inventoryResult(query string) InventoryResult {
	all := s.inventory.Inventory()
	return InventoryResult{
		Data: toItemResponses(inventory.Filter(all, query)),
		Meta: Meta{TotalCount: len(all), Query: query},
	}
}

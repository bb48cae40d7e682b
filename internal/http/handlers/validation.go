package handlers

import (
	"strings"

	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
)

type ItemValidationError struct {
	Field       string `json:"field,omitempty"`
	Description string `json:"description"`
}

func validateName(name string) []ItemValidationError {
	if strings.TrimSpace(name) == "" {
		return []ItemValidationError{{Field: "Name", Description: "Name is required"}}
	}
	return nil
}

func validateQuantity(q *inventory.Quantity) []ItemValidationError {
	if q == nil {
		return []ItemValidationError{{Field: "Quantity", Description: "Quantity is required"}}
	}
	if !q.Removes() && q.Value() < 0 {
		return []ItemValidationError{{Field: "Quantity", Description: "Quantity cannot be negative"}}
	}
	return nil
}

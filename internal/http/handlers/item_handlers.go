package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// GetItemsHandler godoc
// @Summary List pantry items
// @Description Returns the inventory filtered by a case-insensitive substring of the item name
// @Tags items
// @Produce json
// @Param q query string false "Search text"
// @Param refresh query bool false "Re-read the store before answering"
// @Success 200 {object} InventoryResult
// @Failure 502 {string} string "Store unavailable"
// @Router /items [get]
func (s *Server) GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("refresh") == "true" {
		if _, err := s.inventory.Refresh(r.Context()); err != nil {
			s.failed(w, r, "refresh inventory", err)
			return
		}
	}

	if err := writeJSON(w, http.StatusOK, s.inventoryResult(q.Get("q"))); err != nil {
		s.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// AddItemHandler godoc
// @Summary Add one unit of an item
// @Description Creates the item with quantity 1, or increments it when it exists
// @Tags items
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Item to add"
// @Success 200 {object} InventoryResult
// @Failure 400 {array} ItemValidationError
// @Failure 502 {string} string "Store unavailable"
// @Router /items [post]
func (s *Server) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateName(req.Name); len(errs) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	if err := s.inventory.AddItem(r.Context(), req.Name); err != nil {
		s.failed(w, r, "add item", err)
		return
	}

	_ = writeJSON(w, http.StatusOK, s.inventoryResult(""))
}

// IncrementItemHandler godoc
// @Summary Add one unit of an existing item
// @Tags items
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} InventoryResult
// @Failure 400 {string} string "Invalid name"
// @Failure 502 {string} string "Store unavailable"
// @Router /items/{name}/increment [post]
func (s *Server) IncrementItemHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err != nil || len(validateName(name)) > 0 {
		http.Error(w, "invalid item name", http.StatusBadRequest)
		return
	}

	if err := s.inventory.AddItem(r.Context(), name); err != nil {
		s.failed(w, r, "add item", err)
		return
	}

	_ = writeJSON(w, http.StatusOK, s.inventoryResult(""))
}

// SetQuantityHandler godoc
// @Summary Set the quantity of an item
// @Description Writes the quantity as given. 0 or "REMOVE" deletes the item.
// @Tags items
// @Accept json
// @Produce json
// @Param name path string true "Item name"
// @Param quantity body SetQuantityRequest true "New quantity"
// @Success 200 {object} InventoryResult
// @Failure 400 {array} ItemValidationError
// @Failure 502 {string} string "Store unavailable"
// @Router /items/{name} [put]
func (s *Server) SetQuantityHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err != nil || len(validateName(name)) > 0 {
		http.Error(w, "invalid item name", http.StatusBadRequest)
		return
	}

	var req SetQuantityRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if errs := validateQuantity(req.Quantity); len(errs) > 0 {
		_ = writeJSON(w, http.StatusBadRequest, errs)
		return
	}

	if err := s.inventory.SetQuantity(r.Context(), name, *req.Quantity); err != nil {
		s.failed(w, r, "set quantity", err)
		return
	}

	_ = writeJSON(w, http.StatusOK, s.inventoryResult(""))
}

// DeleteItemHandler godoc
// @Summary Remove an item
// @Description Deleting an item that does not exist succeeds
// @Tags items
// @Param name path string true "Item name"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid name"
// @Failure 502 {string} string "Store unavailable"
// @Router /items/{name} [delete]
func (s *Server) DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err != nil || len(validateName(name)) > 0 {
		http.Error(w, "invalid item name", http.StatusBadRequest)
		return
	}

	if err := s.inventory.RemoveItem(r.Context(), name); err != nil {
		s.failed(w, r, "remove item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

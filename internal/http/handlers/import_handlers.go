package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
)

// ImportItemsHandler godoc
// @Summary Import items via CSV
// @Description CSV with a name,quantity header. Rows with quantity 0 delete the item.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportItemsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 502 {string} string "Store unavailable"
// @Router /items/import [post]
func (s *Server) ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := s.inventory.Import(r.Context(), file, mode)
	if errors.Is(err, inventory.ErrInvalidCSV) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.failed(w, r, "import items", err)
		return
	}

	errorsList := make([]ItemValidationError, len(result.Errors))
	for i, rowErr := range result.Errors {
		errorsList[i] = ItemValidationError{Description: rowErr.Error()}
	}

	err = writeJSON(w, http.StatusOK, ImportItemsResult{
		ImportedItemsCount: result.Imported,
		Errors:             errorsList,
	})

	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

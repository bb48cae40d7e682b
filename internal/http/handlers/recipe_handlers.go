package handlers

import (
	"net/http"
)

// RequestRecipeHandler godoc
// @Summary Generate a recipe for a search term
// @Description A failed generation keeps the previous recipe
// @Tags recipe
// @Accept json
// @Produce json
// @Param request body RecipeRequest true "Search term"
// @Success 200 {object} RecipeResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 429 {string} string "Too many requests"
// @Failure 502 {string} string "Generation failed"
// @Router /recipe [post]
func (s *Server) RequestRecipeHandler(w http.ResponseWriter, r *http.Request) {
	var req RecipeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if _, err := s.recipes.Request(r.Context(), req.Query); err != nil {
		s.failed(w, r, "generate recipe", err)
		return
	}

	_ = writeJSON(w, http.StatusOK, s.recipeResponse())
}

// GetRecipeHandler godoc
// @Summary Current recipe
// @Tags recipe
// @Produce json
// @Success 200 {object} RecipeResponse
// @Router /recipe [get]
func (s *Server) GetRecipeHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, s.recipeResponse())
}

func (s *Server) recipeResponse() RecipeResponse {
	return RecipeResponse{
		Recipe:  s.recipes.Recipe(),
		Query:   s.recipes.Query(),
		Loading: s.recipes.Loading(),
	}
}

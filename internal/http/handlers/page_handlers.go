package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
	"github.com/rogerio-castellano/pantry-tracker/internal/models"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{
			"display":    displayName,
			"pathEscape": url.PathEscape,
		}).
		ParseFS(templateFS, "templates/index.html"),
)

type pageData struct {
	Query   string
	Items   []models.Item
	Recipe  string
	Loading bool
}

// displayName upper-cases the first letter for display only.
func displayName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// redirectHome sends the browser back to the page, keeping the search text.
func redirectHome(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if q := r.FormValue("q"); q != "" {
		target += "?q=" + url.QueryEscape(q)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// PageHandler renders the pantry page for the current search text.
func (s *Server) PageHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	data := pageData{
		Query:   query,
		Items:   inventory.Filter(s.inventory.Inventory(), query),
		Recipe:  s.recipes.Recipe(),
		Loading: s.recipes.Loading(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}

// Form handlers below log failures and redirect anyway; the page simply
// shows the inventory as it is.

func (s *Server) PageAddItemHandler(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	if len(validateName(name)) == 0 {
		if err := s.inventory.AddItem(r.Context(), name); err != nil {
			s.logger.Error("add item failed", zap.String("name", name), zap.Error(err))
		}
	}
	redirectHome(w, r)
}

func (s *Server) PageIncrementItemHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err == nil {
		if err := s.inventory.AddItem(r.Context(), name); err != nil {
			s.logger.Error("add item failed", zap.String("name", name), zap.Error(err))
		}
	}
	redirectHome(w, r)
}

func (s *Server) PageRemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err == nil {
		if err := s.inventory.RemoveItem(r.Context(), name); err != nil {
			s.logger.Error("remove item failed", zap.String("name", name), zap.Error(err))
		}
	}
	redirectHome(w, r)
}

func (s *Server) PageSetQuantityHandler(w http.ResponseWriter, r *http.Request) {
	name, err := itemName(r)
	if err != nil {
		redirectHome(w, r)
		return
	}

	raw := strings.TrimSpace(r.FormValue("quantity"))
	if raw == "" {
		redirectHome(w, r)
		return
	}
	q, err := inventory.ParseQuantity(raw)
	if err != nil || len(validateQuantity(&q)) > 0 {
		s.logger.Warn("invalid quantity", zap.String("name", name), zap.String("quantity", raw))
		redirectHome(w, r)
		return
	}

	if err := s.inventory.SetQuantity(r.Context(), name, q); err != nil {
		s.logger.Error("set quantity failed", zap.String("name", name), zap.Error(err))
	}
	redirectHome(w, r)
}

func (s *Server) PageRecipeHandler(w http.ResponseWriter, r *http.Request) {
	// the panel logs generation failures itself
	_, _ = s.recipes.Request(r.Context(), r.FormValue("q"))
	redirectHome(w, r)
}

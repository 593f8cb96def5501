package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/findapro/findapro-api/internal/pkg/errorhandler"
	"github.com/findapro/findapro-api/internal/pkg/response"
)

// Handler handles category HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates category handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListActive(r.Context())
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "CATEGORY_LIST_FAILED", "Failed to list categories", err)
		return
	}

	result := make([]*CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, categories[i].ToResponse())
	}

	response.OK(w, result)
}

// GetBySlug handles GET /categories/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	c, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "CATEGORY_GET_FAILED", "Failed to load category", err)
		return
	}
	if c == nil {
		response.NotFound(w, "Category not found")
		return
	}

	response.OK(w, c.ToResponse())
}

// Routes returns the category router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/{slug}", h.GetBySlug)
	return r
}

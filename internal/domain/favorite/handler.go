package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
	"github.com/findapro/findapro-api/internal/middleware"
	"github.com/findapro/findapro-api/internal/pkg/errorhandler"
	"github.com/findapro/findapro-api/internal/pkg/response"
)

// Handler handles favorite HTTP requests
type Handler struct {
	repo *Repository
}

// NewHandler creates favorite handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Add handles PUT /favorites/{id}
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return
	}

	if err := h.repo.Add(r.Context(), middleware.GetUserID(r.Context()), providerID); err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "ADD_FAVORITE_FAILED", "Failed to save provider", err)
		return
	}
	response.NoContent(w)
}

// Remove handles DELETE /favorites/{id}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return
	}

	if err := h.repo.Remove(r.Context(), middleware.GetUserID(r.Context()), providerID); err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "REMOVE_FAVORITE_FAILED", "Failed to unsave provider", err)
		return
	}
	response.NoContent(w)
}

// List handles GET /favorites
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	providers, err := h.repo.ListProviders(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "LIST_FAVORITES_FAILED", "Failed to list saved providers", err)
		return
	}

	result := make([]provider.Response, 0, len(providers))
	for i := range providers {
		result = append(result, provider.ToResponse(&providers[i]))
	}
	response.OK(w, result)
}

// Routes returns the favorites router
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Get("/", h.List)
	r.Put("/{id}", h.Add)
	r.Delete("/{id}", h.Remove)

	return r
}

package matching

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/findapro/findapro-api/internal/pkg/errorhandler"
	"github.com/findapro/findapro-api/internal/pkg/response"
	"github.com/findapro/findapro-api/internal/pkg/validator"
)

// Handler handles matching quiz HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates matching handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Match handles POST /match
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	resp, err := h.service.Match(r.Context(), &req)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "MATCH_FAILED", "Failed to run matching", err)
		return
	}

	response.OK(w, resp)
}

// Routes returns the matching router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Match)
	return r
}

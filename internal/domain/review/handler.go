package review

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
	"github.com/findapro/findapro-api/internal/middleware"
	"github.com/findapro/findapro-api/internal/pkg/errorhandler"
	"github.com/findapro/findapro-api/internal/pkg/response"
	"github.com/findapro/findapro-api/internal/pkg/validator"
)

// Handler handles review HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates review handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /providers/{id}/reviews
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return
	}

	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	resp, err := h.service.Create(r.Context(), providerID, middleware.GetUserID(r.Context()), &req)
	if err != nil {
		switch err {
		case provider.ErrProviderNotFound:
			response.NotFound(w, "Provider not found")
		case ErrOwnProfile:
			response.Forbidden(w, "You cannot review your own profile")
		case ErrAlreadyReviewed:
			response.Conflict(w, "You have already reviewed this provider")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "CREATE_REVIEW_FAILED", "Failed to create review", err)
		}
		return
	}
	response.Created(w, resp)
}

// List handles GET /providers/{id}/reviews
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	providerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid provider ID")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	resp, err := h.service.List(r.Context(), providerID, limit, offset)
	if err != nil {
		if err == provider.ErrProviderNotFound {
			response.NotFound(w, "Provider not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "LIST_REVIEWS_FAILED", "Failed to list reviews", err)
		return
	}
	response.OK(w, resp)
}

// Routes returns the review router, mounted under /providers/{id}/reviews
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/", h.Create)
	})
	return r
}

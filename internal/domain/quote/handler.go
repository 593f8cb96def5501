package quote

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
	"github.com/findapro/findapro-api/internal/middleware"
	"github.com/findapro/findapro-api/internal/pkg/errorhandler"
	"github.com/findapro/findapro-api/internal/pkg/response"
	"github.com/findapro/findapro-api/internal/pkg/validator"
)

// Handler handles quote HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates quote handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /quotes/providers/{id}
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

	resp, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), providerID, &req)
	if err != nil {
		if err == provider.ErrProviderNotFound {
			response.NotFound(w, "Provider not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "CREATE_QUOTE_FAILED", "Failed to create quote request", err)
		return
	}
	response.Created(w, resp)
}

// Get handles GET /quotes/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid quote ID")
		return
	}

	resp, err := h.service.Get(r.Context(), middleware.GetUserID(r.Context()), quoteID)
	if err != nil {
		h.writeError(w, r, err, "GET_QUOTE_FAILED", "Failed to load quote request")
		return
	}
	response.OK(w, resp)
}

// ListMine handles GET /quotes/mine
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "LIST_QUOTES_FAILED", "Failed to list quote requests", err)
		return
	}
	response.OK(w, resp)
}

// ListReceived handles GET /quotes/received
func (h *Handler) ListReceived(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListForProvider(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if err == provider.ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "LIST_QUOTES_FAILED", "Failed to list quote requests", err)
		return
	}
	response.OK(w, resp)
}

// MarkViewed handles POST /quotes/{id}/view
func (h *Handler) MarkViewed(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid quote ID")
		return
	}

	resp, err := h.service.MarkViewed(r.Context(), middleware.GetUserID(r.Context()), quoteID)
	if err != nil {
		h.writeError(w, r, err, "VIEW_QUOTE_FAILED", "Failed to update quote request")
		return
	}
	response.OK(w, resp)
}

// Respond handles POST /quotes/{id}/respond
func (h *Handler) Respond(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid quote ID")
		return
	}

	var req RespondRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	resp, err := h.service.Respond(r.Context(), middleware.GetUserID(r.Context()), quoteID, &req)
	if err != nil {
		h.writeError(w, r, err, "RESPOND_FAILED", "Failed to send quote")
		return
	}
	response.OK(w, resp)
}

// Accept handles POST /quotes/{id}/accept
func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid quote ID")
		return
	}

	resp, err := h.service.Accept(r.Context(), middleware.GetUserID(r.Context()), quoteID)
	if err != nil {
		h.writeError(w, r, err, "ACCEPT_FAILED", "Failed to accept quote")
		return
	}
	response.OK(w, resp)
}

// Decline handles POST /quotes/{id}/decline
func (h *Handler) Decline(w http.ResponseWriter, r *http.Request) {
	quoteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid quote ID")
		return
	}

	resp, err := h.service.Decline(r.Context(), middleware.GetUserID(r.Context()), quoteID)
	if err != nil {
		h.writeError(w, r, err, "DECLINE_FAILED", "Failed to decline quote")
		return
	}
	response.OK(w, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, code, message string) {
	switch err {
	case ErrQuoteNotFound, provider.ErrProviderNotFound:
		response.NotFound(w, "Quote request not found")
	case ErrNotParticipant:
		response.Forbidden(w, "You are not part of this quote request")
	case ErrInvalidTransition:
		response.Conflict(w, "Status change not allowed from the current state")
	default:
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, code, message, err)
	}
}

// Routes returns the quote router
func (h *Handler) Routes(authMiddleware, providerOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)

	r.Post("/providers/{id}", h.Create)
	r.Get("/mine", h.ListMine)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/accept", h.Accept)
	r.Post("/{id}/decline", h.Decline)

	r.Group(func(r chi.Router) {
		r.Use(providerOnly)
		r.Get("/received", h.ListReceived)
		r.Post("/{id}/view", h.MarkViewed)
		r.Post("/{id}/respond", h.Respond)
	})

	return r
}

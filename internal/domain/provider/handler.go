package provider

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/middleware"
	"github.com/findapro/findapro-api/internal/pkg/errorhandler"
	"github.com/findapro/findapro-api/internal/pkg/response"
	"github.com/findapro/findapro-api/internal/pkg/validator"
)

// Handler handles provider HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates provider handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /providers
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	filter := ListFilter{
		CategorySlug:  q.Get("category"),
		City:          q.Get("city"),
		PricingTier:   q.Get("pricing_tier"),
		Search:        q.Get("search"),
		EmergencyOnly: q.Get("emergency") == "true",
		VerifiedOnly:  q.Get("verified") == "true",
		Sort:          q.Get("sort"),
		Page:          page,
		PerPage:       perPage,
	}
	if filter.PerPage <= 0 || filter.PerPage > 100 {
		filter.PerPage = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	providers, total, err := h.service.List(r.Context(), filter)
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "LIST_PROVIDERS_FAILED", "Failed to list providers", err)
		return
	}

	pages := (total + filter.PerPage - 1) / filter.PerPage
	response.WithMeta(w, providers, response.Meta{
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.PerPage,
		Pages:   pages,
		HasNext: filter.Page < pages,
		HasPrev: filter.Page > 1,
	})
}

// GetBySlug handles GET /providers/{slug}
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	resp, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "GET_PROVIDER_FAILED", "Failed to load provider", err)
		return
	}

	response.OK(w, resp)
}

// Emergency handles GET /providers/emergency
func (h *Handler) Emergency(w http.ResponseWriter, r *http.Request) {
	providers, err := h.service.EmergencyDirectory(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "EMERGENCY_LIST_FAILED", "Failed to load emergency providers", err)
		return
	}
	response.OK(w, providers)
}

// Create handles POST /providers/me
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	resp, err := h.service.Create(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		if err == ErrProfileAlreadyExists {
			response.Conflict(w, "Provider profile already exists")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "CREATE_PROVIDER_FAILED", "Failed to create profile", err)
		return
	}

	response.Created(w, resp)
}

// GetMine handles GET /providers/me
func (h *Handler) GetMine(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "GET_PROFILE_FAILED", "Failed to load profile", err)
		return
	}
	response.OK(w, resp)
}

// Update handles PATCH /providers/me
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	resp, err := h.service.Update(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "UPDATE_PROVIDER_FAILED", "Failed to update profile", err)
		return
	}
	response.OK(w, resp)
}

// Submit handles POST /providers/me/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.SubmitForReview(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		var incomplete *IncompleteProfileError
		switch {
		case errors.As(err, &incomplete):
			response.UnprocessableEntity(w, "PROFILE_INCOMPLETE", incomplete.Error(), map[string]string{
				"percentage": fmt.Sprintf("%.1f", incomplete.Percentage),
				"threshold":  fmt.Sprintf("%.0f", incomplete.Threshold),
			})
		case err == ErrProviderNotFound:
			response.NotFound(w, "Provider profile not found")
		case err == ErrAlreadySubmitted:
			response.Conflict(w, "Profile has already been published")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to submit profile", err)
		}
		return
	}
	response.OK(w, resp)
}

// Completeness handles GET /providers/me/completeness
func (h *Handler) Completeness(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetCompleteness(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "COMPLETENESS_FAILED", "Failed to compute completeness", err)
		return
	}
	response.OK(w, resp)
}

// WizardStep handles PUT /providers/me/wizard/{step}
func (h *Handler) WizardStep(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	step := Step(chi.URLParam(r, "step"))

	var (
		resp *WizardStepResponse
		err  error
	)
	switch step {
	case StepBasicInfo:
		var in BasicInfoInput
		if decodeErr := response.DecodeJSON(r.Body, &in); decodeErr != nil {
			response.BadRequest(w, "Invalid JSON body")
			return
		}
		if fieldErrors := validator.Validate(in); fieldErrors != nil {
			response.ValidationError(w, fieldErrors)
			return
		}
		resp, err = h.service.ApplyBasicInfoStep(r.Context(), userID, in)
	case StepContact:
		var in ContactInput
		if decodeErr := response.DecodeJSON(r.Body, &in); decodeErr != nil {
			response.BadRequest(w, "Invalid JSON body")
			return
		}
		if fieldErrors := validator.Validate(in); fieldErrors != nil {
			response.ValidationError(w, fieldErrors)
			return
		}
		resp, err = h.service.ApplyContactStep(r.Context(), userID, in)
	case StepBusiness:
		var in BusinessInput
		if decodeErr := response.DecodeJSON(r.Body, &in); decodeErr != nil {
			response.BadRequest(w, "Invalid JSON body")
			return
		}
		if fieldErrors := validator.Validate(in); fieldErrors != nil {
			response.ValidationError(w, fieldErrors)
			return
		}
		resp, err = h.service.ApplyBusinessStep(r.Context(), userID, in)
	case StepMedia:
		resp, err = h.service.ApplyMediaStep(r.Context(), userID)
	case StepEmergency:
		var in EmergencyInput
		if decodeErr := response.DecodeJSON(r.Body, &in); decodeErr != nil {
			response.BadRequest(w, "Invalid JSON body")
			return
		}
		if fieldErrors := validator.Validate(in); fieldErrors != nil {
			response.ValidationError(w, fieldErrors)
			return
		}
		resp, err = h.service.ApplyEmergencyStep(r.Context(), userID, in)
	default:
		response.BadRequest(w, "Unknown wizard step")
		return
	}

	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "WIZARD_STEP_FAILED", "Failed to save wizard step", err)
		return
	}
	response.OK(w, resp)
}

// SetHours handles PUT /providers/me/hours
func (h *Handler) SetHours(w http.ResponseWriter, r *http.Request) {
	var req HoursRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	resp, err := h.service.SetHours(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "SET_HOURS_FAILED", "Failed to save business hours", err)
		return
	}
	response.OK(w, resp)
}

// GetHours handles GET /providers/me/hours
func (h *Handler) GetHours(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetHours(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "GET_HOURS_FAILED", "Failed to load business hours", err)
		return
	}
	if resp == nil {
		response.NotFound(w, "Business hours not set")
		return
	}
	response.OK(w, resp)
}

// AddServiceArea handles POST /providers/me/areas
func (h *Handler) AddServiceArea(w http.ResponseWriter, r *http.Request) {
	var req ServiceAreaRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ValidationError(w, fieldErrors)
		return
	}

	resp, err := h.service.AddServiceArea(r.Context(), middleware.GetUserID(r.Context()), &req)
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "ADD_AREA_FAILED", "Failed to add service area", err)
		return
	}
	response.Created(w, resp)
}

// ListServiceAreas handles GET /providers/me/areas
func (h *Handler) ListServiceAreas(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListServiceAreas(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if err == ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "LIST_AREAS_FAILED", "Failed to list service areas", err)
		return
	}
	response.OK(w, resp)
}

// DeleteServiceArea handles DELETE /providers/me/areas/{id}
func (h *Handler) DeleteServiceArea(w http.ResponseWriter, r *http.Request) {
	areaID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid area ID")
		return
	}

	if err := h.service.DeleteServiceArea(r.Context(), middleware.GetUserID(r.Context()), areaID); err != nil {
		switch err {
		case ErrProviderNotFound:
			response.NotFound(w, "Provider profile not found")
		case ErrServiceAreaNotFound:
			response.NotFound(w, "Service area not found")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "DELETE_AREA_FAILED", "Failed to delete service area", err)
		}
		return
	}
	response.NoContent(w)
}

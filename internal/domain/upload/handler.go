package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/findapro/findapro-api/internal/domain/provider"
	"github.com/findapro/findapro-api/internal/middleware"
	"github.com/findapro/findapro-api/internal/pkg/errorhandler"
	"github.com/findapro/findapro-api/internal/pkg/response"
	"github.com/findapro/findapro-api/internal/pkg/storage"
)

// Handler handles upload HTTP requests
type Handler struct {
	service *Service
	maxSize int64
}

// NewHandler creates upload handler
func NewHandler(service *Service, maxSize int64) *Handler {
	return &Handler{service: service, maxSize: maxSize}
}

// Upload handles POST /uploads/{kind}
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if !IsValidKind(kind) {
		response.BadRequest(w, "Upload kind must be profile_image, logo or gallery")
		return
	}

	// Multipart overhead on top of the file limit
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+1024*1024)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		response.BadRequest(w, "File exceeds the maximum upload size")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field")
		return
	}
	defer file.Close()

	result, err := h.service.Upload(r.Context(), middleware.GetUserID(r.Context()), Kind(kind), file, r.FormValue("caption"))
	if err != nil {
		switch err {
		case provider.ErrProviderNotFound:
			response.NotFound(w, "Provider profile not found")
		case storage.ErrFileTooLarge:
			response.BadRequest(w, "File exceeds the maximum upload size")
		case storage.ErrInvalidMimeType:
			response.BadRequest(w, "File type not allowed")
		case storage.ErrEmptyFile:
			response.BadRequest(w, "File is empty")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store upload", err)
		}
		return
	}
	response.Created(w, result)
}

// ListGallery handles GET /uploads/gallery
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.ListGallery(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		if err == provider.ErrProviderNotFound {
			response.NotFound(w, "Provider profile not found")
			return
		}
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "LIST_GALLERY_FAILED", "Failed to list gallery", err)
		return
	}
	response.OK(w, images)
}

// DeleteGalleryImage handles DELETE /uploads/gallery/{id}
func (h *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid image ID")
		return
	}

	if err := h.service.DeleteGalleryImage(r.Context(), middleware.GetUserID(r.Context()), imageID); err != nil {
		switch err {
		case provider.ErrProviderNotFound:
			response.NotFound(w, "Provider profile not found")
		case ErrImageNotFound:
			response.NotFound(w, "Image not found")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "DELETE_IMAGE_FAILED", "Failed to delete image", err)
		}
		return
	}
	response.NoContent(w)
}

// Routes returns the upload router
func (h *Handler) Routes(authMiddleware, providerOnly func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Use(providerOnly)

	r.Post("/{kind}", h.Upload)
	r.Get("/gallery", h.ListGallery)
	r.Delete("/gallery/{id}", h.DeleteGalleryImage)

	return r
}

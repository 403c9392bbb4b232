package http

import (
	"fmt"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/httpx"
	"github.com/ahmadnk31/5gfones-sub000/internal/pkg/imagestore"
)

// 8 MiB covers phone photos without letting clients stream arbitrary blobs.
const maxUploadBytes = 8 << 20

// UploadsHandler accepts product and device images and stores them in the
// image bucket. Clients receive the public URL to put on the catalog entity.
type UploadsHandler struct {
	logger   *zap.Logger
	uploader imagestore.Uploader
}

// NewUploadsHandler creates a new uploads HTTP handler.
func NewUploadsHandler(logger *zap.Logger, uploader imagestore.Uploader) *UploadsHandler {
	return &UploadsHandler{logger: logger, uploader: uploader}
}

// Register mounts the upload route.
func (h *UploadsHandler) Register(r chi.Router) {
	r.Post("/uploads", h.handleUpload)
}

func (h *UploadsHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeBadRequest(w, "multipart form too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/webp":
	default:
		writeBadRequest(w, fmt.Sprintf("unsupported content type %q", contentType))
		return
	}

	objectPath := fmt.Sprintf("images/%s%s", uuid.New().String(), path.Ext(header.Filename))

	url, err := h.uploader.Upload(r.Context(), objectPath, contentType, file)
	if err != nil {
		h.logger.Error("image upload failed", zap.Error(err))
		httpx.WriteError(w, httpx.NewError("upload_failed", "failed to store image", http.StatusBadGateway))
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, map[string]string{"url": url})
}

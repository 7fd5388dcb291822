package uploads

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/suryapratap64/Fullstack-docs/internal/httpx"
)

// maxUploadSize caps a single multipart upload at 32 MiB.
const maxUploadSize = 32 << 20

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// FileStore defines the interface for object storage. Upload returns
// the public URL of the stored object.
type FileStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Handler proxies multipart uploads to object storage. A nil store
// means storage credentials are not configured; requests then fail
// with a configuration error instead of an opaque one.
type Handler struct {
	files FileStore
	log   zerolog.Logger
}

func NewHandler(files FileStore, log zerolog.Logger) *Handler {
	return &Handler{files: files, log: log}
}

// Upload accepts a multipart form with a "file" field and returns
// {url, key}.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.files == nil {
		httpx.Message(w, http.StatusInternalServerError, "Configuration error: object storage credentials not set")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		httpx.Message(w, http.StatusBadRequest, "Could not read file")
		return
	}

	name := unsafeChars.ReplaceAllString(header.Filename, "_")
	key := fmt.Sprintf("uploads/%s-%s", uuid.New().String(), name)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	url, err := h.files.Upload(ctx, key, data, contentType)
	if err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("object upload")
		httpx.Message(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{
		"url":     url,
		"key":     key,
		"message": "File uploaded successfully",
	})
}

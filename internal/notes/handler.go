package notes

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/suryapratap64/Fullstack-docs/internal/httpx"
	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
)

// NoteStore defines the interface for note persistence.
type NoteStore interface {
	Insert(ctx context.Context, note *models.Note) (*models.Note, error)
	ListByUser(ctx context.Context, userID string) ([]models.Note, error)
	Update(ctx context.Context, id, userID string, req *models.UpdateNoteRequest) (*models.Note, error)
	Delete(ctx context.Context, id, userID string) error
}

// Handler holds note HTTP handlers.
type Handler struct {
	notes NoteStore
}

func NewHandler(notes NoteStore) *Handler {
	return &Handler{notes: notes}
}

// List returns all notes for the current user, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	notes, err := h.notes.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}
	httpx.JSON(w, http.StatusOK, notes)
}

// Create validates and persists a new note. The owner always comes
// from the session, never from the body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		httpx.Message(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	note, err := h.notes.Insert(r.Context(), &models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, note)
}

// Update merges the provided fields into an owned note.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NoteID == "" {
		httpx.Message(w, http.StatusBadRequest, "noteId is required")
		return
	}

	note, err := h.notes.Update(r.Context(), req.NoteID, userID, &req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, note)
}

// Delete removes an owned note; deleting a missing id succeeds.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.DeleteNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.NoteID == "" {
		httpx.Message(w, http.StatusBadRequest, "noteId is required")
		return
	}

	if err := h.notes.Delete(r.Context(), req.NoteID, userID); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Deleted")
}

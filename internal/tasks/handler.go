package tasks

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/suryapratap64/Fullstack-docs/internal/httpx"
	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
)

// TaskStore defines the interface for vocabulary-entry persistence.
type TaskStore interface {
	Insert(ctx context.Context, task *models.Task) (*models.Task, error)
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	Update(ctx context.Context, id, userID string, req *models.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, id, userID string) error
}

// Handler holds task HTTP handlers.
type Handler struct {
	tasks TaskStore
}

func NewHandler(tasks TaskStore) *Handler {
	return &Handler{tasks: tasks}
}

// List returns all vocabulary entries for the current user, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	tasks, err := h.tasks.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	httpx.JSON(w, http.StatusOK, tasks)
}

// Create validates and persists a new entry.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.English == "" || req.Meaning == "" {
		httpx.Message(w, http.StatusBadRequest, "English and meaning are required")
		return
	}

	task, err := h.tasks.Insert(r.Context(), &models.Task{
		UserID:  userID,
		English: req.English,
		Meaning: req.Meaning,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, task)
}

// Update merges the provided fields into an owned entry.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TaskID == "" {
		httpx.Message(w, http.StatusBadRequest, "taskId is required")
		return
	}

	task, err := h.tasks.Update(r.Context(), req.TaskID, userID, &req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, task)
}

// Delete removes an owned entry; deleting a missing id succeeds.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.DeleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.TaskID == "" {
		httpx.Message(w, http.StatusBadRequest, "taskId is required")
		return
	}

	if err := h.tasks.Delete(r.Context(), req.TaskID, userID); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

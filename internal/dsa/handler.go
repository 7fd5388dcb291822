package dsa

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/suryapratap64/Fullstack-docs/internal/httpx"
	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
)

// QuestionStore defines the interface for DSA question persistence.
type QuestionStore interface {
	Insert(ctx context.Context, q *models.DSAQuestion) (*models.DSAQuestion, error)
	ListByUser(ctx context.Context, userID string) ([]models.DSAQuestion, error)
	Update(ctx context.Context, id, userID string, req *models.UpdateDSARequest) (*models.DSAQuestion, error)
	Delete(ctx context.Context, id, userID string) error
}

// Handler holds DSA question HTTP handlers.
type Handler struct {
	questions QuestionStore
}

func NewHandler(questions QuestionStore) *Handler {
	return &Handler{questions: questions}
}

// List returns all questions for the current user in creation order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	questions, err := h.questions.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if questions == nil {
		questions = []models.DSAQuestion{}
	}
	httpx.JSON(w, http.StatusOK, questions)
}

// Create validates and persists a new question.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.CreateDSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Chapter == "" || req.Title == "" {
		httpx.Message(w, http.StatusBadRequest, "Chapter and title are required")
		return
	}
	if req.Difficulty == "" {
		req.Difficulty = models.DifficultyMedium
	}
	if !models.ValidDSADifficulty(req.Difficulty) {
		httpx.Message(w, http.StatusBadRequest, "Difficulty must be Easy, Medium, or Hard")
		return
	}
	if req.CodeLanguage == "" {
		req.CodeLanguage = "javascript"
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	q, err := h.questions.Insert(r.Context(), &models.DSAQuestion{
		UserID:           userID,
		Chapter:          req.Chapter,
		Title:            req.Title,
		Difficulty:       req.Difficulty,
		ProblemStatement: req.ProblemStatement,
		Solution:         req.Solution,
		Code:             req.Code,
		CodeLanguage:     req.CodeLanguage,
		Tags:             req.Tags,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, q)
}

// Update merges the provided fields into an owned question.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.UpdateDSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DSAID == "" {
		httpx.Message(w, http.StatusBadRequest, "dsaId is required")
		return
	}
	if req.Difficulty != nil && !models.ValidDSADifficulty(*req.Difficulty) {
		httpx.Message(w, http.StatusBadRequest, "Difficulty must be Easy, Medium, or Hard")
		return
	}

	q, err := h.questions.Update(r.Context(), req.DSAID, userID, &req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, q)
}

// Delete removes an owned question; deleting a missing id succeeds.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.DeleteDSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DSAID == "" {
		httpx.Message(w, http.StatusBadRequest, "dsaId is required")
		return
	}

	if err := h.questions.Delete(r.Context(), req.DSAID, userID); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Deleted")
}

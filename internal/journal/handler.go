package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/suryapratap64/Fullstack-docs/internal/httpx"
	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
)

// JournalStore defines the interface for monthly-journal persistence.
type JournalStore interface {
	Insert(ctx context.Context, j *models.MonthlyJournal) (*models.MonthlyJournal, error)
	ListByUser(ctx context.Context, userID string) ([]models.MonthlyJournal, error)
	GetOwned(ctx context.Context, id, userID string) (*models.MonthlyJournal, error)
	Update(ctx context.Context, id, userID string, req *models.UpdateJournalRequest) (*models.MonthlyJournal, error)
	Delete(ctx context.Context, id, userID string) error
	ReplacePosts(ctx context.Context, id, userID string, posts []models.Post) (*models.MonthlyJournal, error)
	SetSummary(ctx context.Context, id, userID, summary string) (*models.MonthlyJournal, error)
}

// Locker serializes the posts read-modify-write per journal id.
type Locker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// Summarizer generates a monthly summary from a prompt.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Handler holds monthly-journal HTTP handlers.
type Handler struct {
	journals   JournalStore
	locks      Locker
	summarizer Summarizer
	log        zerolog.Logger
}

func NewHandler(journals JournalStore, locks Locker, summarizer Summarizer, log zerolog.Logger) *Handler {
	return &Handler{journals: journals, locks: locks, summarizer: summarizer, log: log}
}

// List returns the current user's journals, newest month first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	journals, err := h.journals.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	if journals == nil {
		journals = []models.MonthlyJournal{}
	}
	httpx.JSON(w, http.StatusOK, journals)
}

// Create validates and persists a new journal. A second journal for the
// same (month, year) is rejected.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		httpx.Message(w, http.StatusBadRequest, "Month must be between 1 and 12")
		return
	}
	if req.Year == 0 || req.Title == "" {
		httpx.Message(w, http.StatusBadRequest, "Month, year, and title are required")
		return
	}

	posts := req.Posts
	if posts == nil {
		posts = []models.Post{}
	}
	for i := range posts {
		normalizePost(&posts[i])
	}

	journal, err := h.journals.Insert(r.Context(), &models.MonthlyJournal{
		UserID:      userID,
		Month:       req.Month,
		Year:        req.Year,
		Title:       req.Title,
		Summary:     req.Summary,
		AIGenerated: req.AIGenerated,
		Posts:       posts,
		Stats:       models.JournalStats{AverageDifficulty: models.PostIntermediate},
		Images:      []string{},
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, journal)
}

// Update merges the provided fields into an owned journal. The target
// id comes from the query string.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	monthID := r.URL.Query().Get("id")
	if monthID == "" {
		httpx.Message(w, http.StatusBadRequest, "id is required")
		return
	}

	var req models.UpdateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	journal, err := h.journals.Update(r.Context(), monthID, userID, &req)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, journal)
}

// Delete removes an owned journal.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	monthID := r.URL.Query().Get("id")
	if monthID == "" {
		httpx.Message(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.journals.Delete(r.Context(), monthID, userID); err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Deleted successfully")
}

// AddPost appends a post to an owned journal. The whole posts array is
// written back, so the read-modify-write runs under the per-journal lock.
func (h *Handler) AddPost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.AddPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MonthID == "" {
		httpx.Message(w, http.StatusBadRequest, "monthId is required")
		return
	}
	if req.Post.Title == "" || req.Post.Description == "" {
		httpx.Message(w, http.StatusBadRequest, "Post title and description are required")
		return
	}
	normalizePost(&req.Post)
	if !models.ValidPostCategory(req.Post.Category) {
		httpx.Message(w, http.StatusBadRequest, "Invalid post category")
		return
	}
	if !models.ValidPostDifficulty(req.Post.Difficulty) {
		httpx.Message(w, http.StatusBadRequest, "Invalid post difficulty")
		return
	}

	release, err := h.locks.Acquire(r.Context(), req.MonthID)
	if err != nil {
		h.log.Error().Err(err).Str("month_id", req.MonthID).Msg("journal lock")
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer release()

	journal, err := h.journals.GetOwned(r.Context(), req.MonthID, userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	req.Post.ID = primitive.NewObjectID()
	req.Post.CreatedAt = time.Now()
	updated, err := h.journals.ReplacePosts(r.Context(), req.MonthID, userID, append(journal.Posts, req.Post))
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, updated)
}

// UpdatePost merges the provided fields into one embedded post.
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MonthID == "" || req.PostID == "" {
		httpx.Message(w, http.StatusBadRequest, "monthId and postId are required")
		return
	}
	if req.UpdatedPost.Category != nil && !models.ValidPostCategory(*req.UpdatedPost.Category) {
		httpx.Message(w, http.StatusBadRequest, "Invalid post category")
		return
	}
	if req.UpdatedPost.Difficulty != nil && !models.ValidPostDifficulty(*req.UpdatedPost.Difficulty) {
		httpx.Message(w, http.StatusBadRequest, "Invalid post difficulty")
		return
	}

	release, err := h.locks.Acquire(r.Context(), req.MonthID)
	if err != nil {
		h.log.Error().Err(err).Str("month_id", req.MonthID).Msg("journal lock")
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer release()

	journal, err := h.journals.GetOwned(r.Context(), req.MonthID, userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	idx := -1
	for i := range journal.Posts {
		if journal.Posts[i].ID.Hex() == req.PostID {
			idx = i
			break
		}
	}
	if idx == -1 {
		httpx.Message(w, http.StatusNotFound, "Post not found")
		return
	}

	mergePost(&journal.Posts[idx], &req.UpdatedPost)
	updated, err := h.journals.ReplacePosts(r.Context(), req.MonthID, userID, journal.Posts)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// DeletePost removes one embedded post. Removing an id that is already
// gone leaves the journal unchanged.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())
	monthID := r.URL.Query().Get("monthId")
	postID := r.URL.Query().Get("postId")
	if monthID == "" || postID == "" {
		httpx.Message(w, http.StatusBadRequest, "monthId and postId are required")
		return
	}

	release, err := h.locks.Acquire(r.Context(), monthID)
	if err != nil {
		h.log.Error().Err(err).Str("month_id", monthID).Msg("journal lock")
		httpx.Message(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer release()

	journal, err := h.journals.GetOwned(r.Context(), monthID, userID)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	kept := journal.Posts[:0]
	for _, p := range journal.Posts {
		if p.ID.Hex() != postID {
			kept = append(kept, p)
		}
	}

	updated, err := h.journals.ReplacePosts(r.Context(), monthID, userID, kept)
	if err != nil {
		httpx.Error(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

// Summarize asks the generative service for a monthly summary and
// persists it on the owned journal.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserID(r.Context())

	var req models.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MonthID == "" {
		httpx.Message(w, http.StatusBadRequest, "monthId is required")
		return
	}
	if len(req.Posts) == 0 {
		httpx.Message(w, http.StatusBadRequest, "At least one post is required")
		return
	}

	summary, err := h.summarizer.Summarize(r.Context(), summaryPrompt(req.Posts))
	if err != nil {
		h.log.Error().Err(err).Str("month_id", req.MonthID).Msg("summary generation")
		httpx.Message(w, http.StatusInternalServerError, "Summary generation failed")
		return
	}

	journal, err := h.journals.SetSummary(r.Context(), req.MonthID, userID, summary)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"summary":  summary,
		"gptMonth": journal,
	})
}

// summaryPrompt concatenates the posts into the text sent to the
// generative service.
func summaryPrompt(posts []models.Post) string {
	var b strings.Builder
	b.WriteString("Based on the following learning posts, create a comprehensive monthly summary. Posts:\n")
	for _, p := range posts {
		fmt.Fprintf(&b, "- %s (%s, %s): %s", p.Title, p.Category, p.Difficulty, p.Description)
		if p.Content != "" {
			b.WriteString("\n  ")
			b.WriteString(p.Content)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func normalizePost(p *models.Post) {
	if p.Category == "" {
		p.Category = models.CategoryLearning
	}
	if p.Difficulty == "" {
		p.Difficulty = models.PostIntermediate
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
}

// mergePost copies the non-nil fields of upd onto p.
func mergePost(p *models.Post, upd *models.PostUpdate) {
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Content != nil {
		p.Content = *upd.Content
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Difficulty != nil {
		p.Difficulty = *upd.Difficulty
	}
	if upd.Tags != nil {
		p.Tags = *upd.Tags
	}
}

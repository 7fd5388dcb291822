package dsa_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/suryapratap64/Fullstack-docs/internal/dsa"
	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
	"github.com/suryapratap64/Fullstack-docs/internal/store"
)

type mockQuestionStore struct {
	questions []models.DSAQuestion
}

func (m *mockQuestionStore) Insert(_ context.Context, q *models.DSAQuestion) (*models.DSAQuestion, error) {
	q.ID = primitive.NewObjectID()
	m.questions = append(m.questions, *q)
	return q, nil
}

func (m *mockQuestionStore) ListByUser(_ context.Context, userID string) ([]models.DSAQuestion, error) {
	var out []models.DSAQuestion
	for _, q := range m.questions {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *mockQuestionStore) Update(_ context.Context, id, userID string, req *models.UpdateDSARequest) (*models.DSAQuestion, error) {
	for i := range m.questions {
		if m.questions[i].ID.Hex() == id && m.questions[i].UserID == userID {
			if req.Title != nil {
				m.questions[i].Title = *req.Title
			}
			if req.Solution != nil {
				m.questions[i].Solution = *req.Solution
			}
			return &m.questions[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockQuestionStore) Delete(_ context.Context, id, userID string) error {
	for i := range m.questions {
		if m.questions[i].ID.Hex() == id && m.questions[i].UserID == userID {
			m.questions = append(m.questions[:i], m.questions[i+1:]...)
			return nil
		}
	}
	return nil
}

func doJSON(t *testing.T, h http.HandlerFunc, method, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/", &buf)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCreateQuestion_MissingChapterOrTitle(t *testing.T) {
	h := dsa.NewHandler(&mockQuestionStore{})

	rec := doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateDSARequest{Title: "Two Sum"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateDSARequest{Chapter: "Arrays"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateQuestion_Defaults(t *testing.T) {
	ms := &mockQuestionStore{}
	h := dsa.NewHandler(ms)

	rec := doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateDSARequest{
		Chapter: "Arrays", Title: "Two Sum",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, ms.questions, 1)
	assert.Equal(t, models.DifficultyMedium, ms.questions[0].Difficulty)
	assert.Equal(t, "javascript", ms.questions[0].CodeLanguage)
	assert.Equal(t, "user-a", ms.questions[0].UserID)
}

func TestCreateQuestion_RejectsBadDifficulty(t *testing.T) {
	h := dsa.NewHandler(&mockQuestionStore{})
	rec := doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateDSARequest{
		Chapter: "Arrays", Title: "Two Sum", Difficulty: "Impossible",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateQuestion_OwnershipEnforced(t *testing.T) {
	ms := &mockQuestionStore{}
	h := dsa.NewHandler(ms)

	rec := doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateDSARequest{
		Chapter: "Arrays", Title: "Two Sum",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := ms.questions[0].ID.Hex()

	title := "hijacked"
	rec = doJSON(t, h.Update, http.MethodPut, "user-b", models.UpdateDSARequest{DSAID: id, Title: &title})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Two Sum", ms.questions[0].Title)
}

func TestDeleteQuestion_Idempotent(t *testing.T) {
	h := dsa.NewHandler(&mockQuestionStore{})
	rec := doJSON(t, h.Delete, http.MethodDelete, "user-a", models.DeleteDSARequest{
		DSAID: primitive.NewObjectID().Hex(),
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

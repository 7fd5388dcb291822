package tasks_test

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

	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/models"
	"github.com/suryapratap64/Fullstack-docs/internal/store"
	"github.com/suryapratap64/Fullstack-docs/internal/tasks"
)

type mockTaskStore struct {
	tasks []models.Task
}

func (m *mockTaskStore) Insert(_ context.Context, task *models.Task) (*models.Task, error) {
	task.ID = primitive.NewObjectID()
	m.tasks = append(m.tasks, *task)
	return task, nil
}

func (m *mockTaskStore) ListByUser(_ context.Context, userID string) ([]models.Task, error) {
	var out []models.Task
	for _, task := range m.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (m *mockTaskStore) Update(_ context.Context, id, userID string, req *models.UpdateTaskRequest) (*models.Task, error) {
	for i := range m.tasks {
		if m.tasks[i].ID.Hex() == id && m.tasks[i].UserID == userID {
			if req.English != nil {
				m.tasks[i].English = *req.English
			}
			if req.Meaning != nil {
				m.tasks[i].Meaning = *req.Meaning
			}
			return &m.tasks[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockTaskStore) Delete(_ context.Context, id, userID string) error {
	for i := range m.tasks {
		if m.tasks[i].ID.Hex() == id && m.tasks[i].UserID == userID {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
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

func TestCreateTask_MissingFields(t *testing.T) {
	h := tasks.NewHandler(&mockTaskStore{})
	rec := doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateTaskRequest{English: "cat"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTask_StampsOwner(t *testing.T) {
	ms := &mockTaskStore{}
	h := tasks.NewHandler(ms)

	rec := doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateTaskRequest{English: "cat", Meaning: "feline"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, ms.tasks, 1)
	assert.Equal(t, "user-a", ms.tasks[0].UserID)
}

// Deleting a nonexistent task id returns success, not 404.
func TestDeleteTask_Idempotent(t *testing.T) {
	h := tasks.NewHandler(&mockTaskStore{})
	rec := doJSON(t, h.Delete, http.MethodDelete, "user-a", models.DeleteTaskRequest{
		TaskID: primitive.NewObjectID().Hex(),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUpdateTask_OwnershipEnforced(t *testing.T) {
	ms := &mockTaskStore{}
	h := tasks.NewHandler(ms)

	rec := doJSON(t, h.Create, http.MethodPost, "user-a", models.CreateTaskRequest{English: "cat", Meaning: "feline"})
	require.Equal(t, http.StatusCreated, rec.Code)
	taskID := ms.tasks[0].ID.Hex()

	meaning := "hijacked"
	rec = doJSON(t, h.Update, http.MethodPut, "user-b", models.UpdateTaskRequest{TaskID: taskID, Meaning: &meaning})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "feline", ms.tasks[0].Meaning)
}

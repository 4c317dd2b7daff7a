package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BuzzLyutic/plm-api/internal/model"
	"github.com/BuzzLyutic/plm-api/internal/repo"
	"github.com/BuzzLyutic/plm-api/internal/service"
)

func TestTaskHandler_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(*testEnv)
		wantCode   int
		wantIssues []service.Issue
		check      func(*testing.T, *testEnv, map[string]any)
	}{
		{
			name: "successful creation",
			body: `{"name":"Task 1","status":"To Do","type":"Work","userId":"user-1","correspondenceEmailAddress":"user@email.com"}`,
			setupMock: func(e *testEnv) {
				e.tasks.On("NameExists", mock.Anything, "user-1", "Task 1").Return(false, nil)
				e.tasks.On("Insert", mock.Anything, mock.MatchedBy(func(t model.Task) bool {
					return t.CreatedBy == "user@email.com" && t.UserID == "user-1"
				})).Return(storedTask(), nil)
			},
			wantCode: http.StatusOK,
			check: func(t *testing.T, e *testEnv, body map[string]any) {
				assert.Equal(t, float64(1), body["id"])
				assert.Equal(t, "To Do", body["status"])
				assert.NotContains(t, body, "userId")
			},
		},
		{
			name:       "empty body",
			body:       "",
			wantCode:   http.StatusBadRequest,
			wantIssues: []service.Issue{{Message: "empty request body"}},
		},
		{
			name: "unknown status",
			body: `{"name":"Task 1","status":"Unknown Status","type":"Work","correspondenceEmailAddress":"user@email.com"}`,
			setupMock: func(e *testEnv) {
				e.tasks.On("NameExists", mock.Anything, "user-1", "Task 1").Return(false, nil)
			},
			wantCode:   http.StatusBadRequest,
			wantIssues: []service.Issue{{Message: "The task has a status of Unknown Status, which is not allowed."}},
		},
		{
			name:     "missing email and blank name",
			body:     `{"name":"   ","status":"To Do","type":"Work"}`,
			wantCode: http.StatusBadRequest,
			wantIssues: []service.Issue{
				{Message: "The name field is required.", Properties: []string{"name"}},
				{Message: "The correspondenceEmailAddress field is required.", Properties: []string{"correspondenceEmailAddress"}},
			},
		},
		{
			name:     "malformed email",
			body:     `{"name":"Task 1","status":"To Do","type":"Work","correspondenceEmailAddress":"nope"}`,
			wantCode: http.StatusBadRequest,
			wantIssues: []service.Issue{
				{Message: "The correspondenceEmailAddress field must be a valid email address.", Properties: []string{"correspondenceEmailAddress"}},
			},
		},
		{
			name: "duplicate name",
			body: `{"name":"Task 1","status":"To Do","type":"Work","correspondenceEmailAddress":"user@email.com"}`,
			setupMock: func(e *testEnv) {
				e.tasks.On("NameExists", mock.Anything, "user-1", "Task 1").Return(true, nil)
			},
			wantCode:   http.StatusBadRequest,
			wantIssues: []service.Issue{{Message: "A task with this same name already exists."}},
		},
		{
			name: "storage failure",
			body: `{"name":"Task 1","status":"To Do","type":"Work","correspondenceEmailAddress":"user@email.com"}`,
			setupMock: func(e *testEnv) {
				e.tasks.On("NameExists", mock.Anything, "user-1", "Task 1").Return(false, nil)
				e.tasks.On("Insert", mock.Anything, mock.Anything).Return(model.Task{}, assert.AnError)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, defaultAuth())
			if tt.setupMock != nil {
				tt.setupMock(env)
			}

			w := env.do(t, http.MethodPost, "/v1/tasks/user-1", tt.body, &readUser)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantIssues != nil {
				assert.Equal(t, tt.wantIssues, decodeIssues(t, w))
			}
			if tt.check != nil {
				assert.Equal(t, "/v1/tasks/user-1/1", w.Header().Get("Location"))
				var body map[string]any
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				tt.check(t, env, body)
			}
		})
	}
}

func TestTaskHandler_Get(t *testing.T) {
	t.Run("existing task", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())
		env.tasks.On("Get", mock.Anything, "user-1", int64(1)).Return(storedTask(), nil)

		w := env.do(t, http.MethodGet, "/v1/tasks/user-1/1", "", &readUser)

		assert.Equal(t, http.StatusOK, w.Code)
		var got model.Task
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, "Task 1", got.Name)
		assert.Equal(t, "user@email.com", got.CreatedBy)
	})

	t.Run("other owner", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())
		env.tasks.On("Get", mock.Anything, "user-2", int64(1)).Return(model.Task{}, repo.ErrNotFound)

		w := env.do(t, http.MethodGet, "/v1/tasks/user-2/1", "", &readUser)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not found", decodeMap(t, w)["error"])
	})

	t.Run("non numeric id", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())

		w := env.do(t, http.MethodGet, "/v1/tasks/user-1/abc", "", &readUser)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []service.Issue{{Message: "taskId must be an integer.", Properties: []string{"taskId"}}}, decodeIssues(t, w))
	})
}

func TestTaskHandler_List(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage model.PageParams
	}{
		{name: "defaults", query: "", wantPage: model.PageParams{Limit: 50, Offset: 0}},
		{name: "explicit window", query: "?limit=10&offset=20", wantPage: model.PageParams{Limit: 10, Offset: 20}},
		{name: "clamped", query: "?limit=5000&offset=-3", wantPage: model.PageParams{Limit: 1000, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, defaultAuth())
			env.tasks.On("List", mock.Anything, "user-1", tt.wantPage).Return(model.Page[model.Task]{
				Items:  []model.Task{storedTask()},
				Total:  1,
				Limit:  tt.wantPage.Limit,
				Offset: tt.wantPage.Offset,
			}, nil)

			w := env.do(t, http.MethodGet, "/v1/tasks/user-1"+tt.query, "", &readUser)

			assert.Equal(t, http.StatusOK, w.Code)
			var got model.Page[model.Task]
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			assert.Len(t, got.Items, 1)
			assert.Equal(t, int64(1), got.Total)
			assert.Equal(t, tt.wantPage.Limit, got.Limit)
		})
	}

	t.Run("non numeric limit", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())

		w := env.do(t, http.MethodGet, "/v1/tasks/user-1?limit=ten", "", &readUser)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []service.Issue{{Message: "limit must be an integer.", Properties: []string{"limit"}}}, decodeIssues(t, w))
	})
}

func TestTaskHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())
		env.tasks.On("Get", mock.Anything, "user-1", int64(1)).Return(storedTask(), nil)
		env.tasks.On("Update", mock.Anything, mock.MatchedBy(func(t model.Task) bool {
			return t.Status == model.TaskStatusDone &&
				t.Name == "Task 1" &&
				t.ModifiedBy != nil && *t.ModifiedBy == "user@email.com"
		})).Return(func() model.Task {
			done := storedTask()
			done.Status = model.TaskStatusDone
			return done
		}(), nil)

		w := env.do(t, http.MethodPatch, "/v1/tasks/user-1/1", `{"status":"Done"}`, &readUser)

		assert.Equal(t, http.StatusOK, w.Code)
		var got model.Task
		require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
		assert.Equal(t, model.TaskStatusDone, got.Status)
	})

	t.Run("null field", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())

		w := env.do(t, http.MethodPatch, "/v1/tasks/user-1/1", `{"name":null,"type":null}`, &readUser)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []service.Issue{{
			Message:    "These fields cannot be set to null.",
			Properties: []string{"name", "type"},
		}}, decodeIssues(t, w))
	})

	t.Run("unknown type", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())
		env.tasks.On("Get", mock.Anything, "user-1", int64(1)).Return(storedTask(), nil)

		w := env.do(t, http.MethodPatch, "/v1/tasks/user-1/1", `{"type":"Chores"}`, &readUser)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []service.Issue{{Message: "The task has a type of Chores, which is not allowed."}}, decodeIssues(t, w))
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newTestEnv(t, defaultAuth())

		w := env.do(t, http.MethodPatch, "/v1/tasks/user-1/1", `{"status":`, &readUser)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		issues := decodeIssues(t, w)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, "invalid json")
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*testEnv)
		wantCode  int
		wantIssue string
	}{
		{
			name: "no notes",
			setupMock: func(e *testEnv) {
				e.tasks.On("Get", mock.Anything, "user-1", int64(1)).Return(storedTask(), nil)
				e.tasks.On("HasPersonalNotes", mock.Anything, int64(1)).Return(false, nil)
				e.tasks.On("Delete", mock.Anything, "user-1", int64(1)).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name: "has notes",
			setupMock: func(e *testEnv) {
				e.tasks.On("Get", mock.Anything, "user-1", int64(1)).Return(storedTask(), nil)
				e.tasks.On("HasPersonalNotes", mock.Anything, int64(1)).Return(true, nil)
			},
			wantCode:  http.StatusBadRequest,
			wantIssue: "Cannot delete a task for which there are existing personal notes.",
		},
		{
			name: "missing",
			setupMock: func(e *testEnv) {
				e.tasks.On("Get", mock.Anything, "user-1", int64(1)).Return(model.Task{}, repo.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, defaultAuth())
			tt.setupMock(env)

			w := env.do(t, http.MethodDelete, "/v1/tasks/user-1/1", "", &readUser)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantIssue != "" {
				assert.Equal(t, []service.Issue{{Message: tt.wantIssue}}, decodeIssues(t, w))
			}
		})
	}
}

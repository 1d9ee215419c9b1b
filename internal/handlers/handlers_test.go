package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/projectboard/backend/internal/models"
	"github.com/projectboard/backend/internal/services"
	"github.com/projectboard/backend/internal/testutil"
	"github.com/projectboard/backend/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTaskRouter(db *gorm.DB) *gin.Engine {
	activity := services.NewActivityService(db)
	h := NewTaskHandler(services.NewTaskService(db, services.NewSyncQueue(activity.Record)), activity)

	r := gin.New()
	r.GET("/tasks", h.List)
	r.POST("/tasks", h.Create)
	r.PATCH("/tasks/:taskId/status", h.UpdateStatus)
	r.GET("/tasks/:taskId/activity", h.Activity)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func seedProjectAndUser(t *testing.T, db *gorm.DB) (*models.Project, *models.User) {
	t.Helper()
	p := &models.Project{Name: "Alpha"}
	u := &models.User{Username: "author_jane"}
	testutil.MustCreate(t, db, p, u)
	return p, u
}

func TestTaskHandler_CreateThenList(t *testing.T) {
	db := testutil.NewDB(t)
	p, u := seedProjectAndUser(t, db)
	r := newTaskRouter(db)

	body := `{"title":"Fix auth bug","status":"To Do","priority":"High","projectId":` + itoa(p.ID) + `,"authorUserId":` + itoa(u.UserID) + `}`
	w := do(r, http.MethodPost, "/tasks", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/tasks?projectId="+itoa(p.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Fix auth bug", tasks[0].Title)
	require.NotNil(t, tasks[0].Author)
	assert.Equal(t, "author_jane", tasks[0].Author.Username)
}

func TestTaskHandler_ListRequiresProjectID(t *testing.T) {
	r := newTaskRouter(testutil.NewDB(t))

	w := do(r, http.MethodGet, "/tasks", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeMessage(t, w), "projectId")
}

func TestTaskHandler_CreateValidation(t *testing.T) {
	db := testutil.NewDB(t)
	p, u := seedProjectAndUser(t, db)
	r := newTaskRouter(db)

	w := do(r, http.MethodPost, "/tasks", `{"projectId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/tasks", `{"title":"x","status":"Nope","projectId":`+itoa(p.ID)+`,"authorUserId":`+itoa(u.UserID)+`}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeMessage(t, w), "invalid task status")
}

func TestTaskHandler_UpdateStatus(t *testing.T) {
	db := testutil.NewDB(t)
	p, u := seedProjectAndUser(t, db)
	task := &models.Task{Title: "Fix auth bug", Status: models.StatusToDo, ProjectID: p.ID, AuthorUserID: u.UserID}
	testutil.MustCreate(t, db, task)
	r := newTaskRouter(db)

	w := do(r, http.MethodPatch, "/tasks/"+itoa(task.ID)+"/status", `{"status":"Completed"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusCompleted, updated.Status)

	w = do(r, http.MethodGet, "/tasks/"+itoa(task.ID)+"/activity", "")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []models.ActivityLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "To Do -> Completed", entries[0].Detail)
}

func TestTaskHandler_UpdateStatusErrors(t *testing.T) {
	r := newTaskRouter(testutil.NewDB(t))

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{"bad id", "/tasks/abc/status", `{"status":"Completed"}`, http.StatusBadRequest},
		{"missing body", "/tasks/1/status", `{}`, http.StatusBadRequest},
		{"unknown status", "/tasks/1/status", `{"status":"Archived"}`, http.StatusBadRequest},
		{"unknown task", "/tasks/404/status", `{"status":"Completed"}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPatch, tt.target, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, decodeMessage(t, w))
		})
	}
}

func TestTaskHandler_UpdateStatusUnknownTask(t *testing.T) {
	r := newTaskRouter(testutil.NewDB(t))

	w := do(r, http.MethodPatch, "/tasks/404/status", `{"status":"Completed"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "task not found", decodeMessage(t, w))
}

func TestSearchHandler(t *testing.T) {
	db := testutil.NewDB(t)
	p, u := seedProjectAndUser(t, db)
	testutil.MustCreate(t, db, &models.Task{Title: "Fix auth bug", ProjectID: p.ID, AuthorUserID: u.UserID})

	r := gin.New()
	r.GET("/search", NewSearchHandler(services.NewSearchService(db, nil)).Search)

	w := do(r, http.MethodGet, "/search?query=AUTH", "")
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Tasks    []json.RawMessage `json:"tasks"`
		Projects []json.RawMessage `json:"projects"`
		Users    []struct {
			Username      string           `json:"username"`
			OwnedProjects []models.Project `json:"ownedProjects"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Tasks, 1)
	assert.Empty(t, result.Projects)
	require.Len(t, result.Users, 1)
	assert.Equal(t, "author_jane", result.Users[0].Username)
	require.Len(t, result.Users[0].OwnedProjects, 1)
	assert.Equal(t, "Alpha", result.Users[0].OwnedProjects[0].Name)
}

func TestSearchHandler_StoreFailure(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.FailQueriesOn(t, db, "projects", errors.New("connection refused"))

	r := gin.New()
	r.GET("/search", NewSearchHandler(services.NewSearchService(db, nil)).Search)

	w := do(r, http.MethodGet, "/search?query=x", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	msg := decodeMessage(t, w)
	assert.Contains(t, msg, "Error performing search")
	assert.Contains(t, msg, "connection refused")
}

func TestProjectHandler(t *testing.T) {
	r := gin.New()
	h := NewProjectHandler(services.NewProjectService(testutil.NewDB(t)))
	r.GET("/projects", h.List)
	r.POST("/projects", h.Create)

	w := do(r, http.MethodPost, "/projects", `{"name":"Auth Revamp","startDate":"2024-01-01T00:00:00Z","endDate":"2024-03-01T00:00:00Z"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodPost, "/projects", `{"name":"Backwards","startDate":"2024-03-01T00:00:00Z","endDate":"2024-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/projects", `{"description":"no name"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusOK, w.Code)
	var projects []models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "Auth Revamp", projects[0].Name)
}

func TestTeamHandler(t *testing.T) {
	db := testutil.NewDB(t)
	owner := &models.User{Username: "olivia"}
	testutil.MustCreate(t, db, owner)
	testutil.MustCreate(t, db, &models.Team{TeamName: "Platform", ProductOwnerUserID: &owner.UserID})

	r := gin.New()
	r.GET("/teams", NewTeamHandler(services.NewTeamService(db)).List)

	w := do(r, http.MethodGet, "/teams", "")
	require.Equal(t, http.StatusOK, w.Code)

	var teams []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &teams))
	require.Len(t, teams, 1)
	assert.Equal(t, "Platform", teams[0]["teamName"])
	assert.Equal(t, "olivia", teams[0]["productOwnerUsername"])
	assert.Equal(t, "Unknown", teams[0]["projectManagerUsername"])
}

func TestHealthHandler(t *testing.T) {
	db := testutil.NewDB(t)
	r := gin.New()
	r.GET("/health", NewHealthHandler(db, services.NewSyncQueue(nil)).CheckHealth)

	w := do(r, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"queue_mode":"sync"`)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

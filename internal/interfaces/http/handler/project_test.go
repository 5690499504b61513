package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	projectapp "github.com/dachpro/backoffice/internal/application/project"
	"github.com/dachpro/backoffice/internal/domain/project"
	"github.com/dachpro/backoffice/internal/domain/shared"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type projectRouterDeps struct {
	projects *MockProjectRepository
	drafts   *MockDraftChangeRepository
}

func setupProjectRouter(t *testing.T) (*gin.Engine, projectRouterDeps) {
	t.Helper()
	deps := projectRouterDeps{
		projects: new(MockProjectRepository),
		drafts:   new(MockDraftChangeRepository),
	}
	service := projectapp.NewProjectService(deps.projects, deps.drafts, nil, nil, zap.NewNop())
	h := NewProjectHandler(service)

	engine := gin.New()
	engine.POST("/projects", h.Create)
	engine.GET("/projects", h.List)
	engine.GET("/projects/:id", h.Get)
	engine.PUT("/projects/:id", h.Update)
	return engine, deps
}

func TestProjectHandlerCreate(t *testing.T) {
	t.Run("opens a new project", func(t *testing.T) {
		engine, deps := setupProjectRouter(t)
		deps.projects.On("Save", mock.Anything, mock.Anything).Return(nil)

		payload := []byte(`{"name":"Dom jednorodzinny Kowalscy","customer_name":"Jan Kowalski"}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "NEW", data["status"])
	})

	t.Run("rejects blank customer name", func(t *testing.T) {
		engine, _ := setupProjectRouter(t)

		payload := []byte(`{"name":"Dom","customer_name":""}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProjectHandlerGet(t *testing.T) {
	t.Run("returns a project", func(t *testing.T) {
		proj, err := project.NewProject("Stodoła Nowak", "Anna Nowak")
		require.NoError(t, err)

		engine, deps := setupProjectRouter(t)
		deps.projects.On("FindByID", mock.Anything, proj.ID).Return(proj, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/projects/"+proj.ID.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Anna Nowak", data["customer_name"])
	})

	t.Run("maps missing project to 404", func(t *testing.T) {
		engine, deps := setupProjectRouter(t)
		deps.projects.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/projects/"+uuid.NewString(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProjectHandlerList(t *testing.T) {
	proj, err := project.NewProject("Dom jednorodzinny Kowalscy", "Jan Kowalski")
	require.NoError(t, err)

	engine, deps := setupProjectRouter(t)
	deps.projects.On("FindAll", mock.Anything, mock.Anything).Return([]project.Project{*proj}, nil)
	deps.projects.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/projects?page=1&page_size=20", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
}

func TestProjectHandlerUpdate(t *testing.T) {
	proj, err := project.NewProject("Dom", "Jan Kowalski")
	require.NoError(t, err)

	engine, deps := setupProjectRouter(t)
	deps.projects.On("FindByID", mock.Anything, proj.ID).Return(proj, nil)
	deps.projects.On("Save", mock.Anything, mock.Anything).Return(nil)

	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(map[string]string{
		"name":          "Dom z garażem",
		"customer_name": "Jan Kowalski",
		"address":       "ul. Polna 12, Wrocław",
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/projects/"+proj.ID.String(), &body)
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dom z garażem", data["name"])
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()

	catalog := NewDomainGroup("catalog", "/catalog")
	catalog.GET("/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Register(catalog)
	r.Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterDefaultVersion(t *testing.T) {
	engine := gin.New()

	system := NewDomainGroup("system", "/system")
	system.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	NewRouter(engine).Register(system).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroupMethods(t *testing.T) {
	engine := gin.New()

	noop := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	pricing := NewDomainGroup("pricing", "/pricing")
	pricing.GET("/a", noop).POST("/a", noop).PUT("/a", noop).DELETE("/a", noop)

	NewRouter(engine).Register(pricing).Setup()

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/v1/pricing/a", nil)
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code, method)
	}

	assert.Equal(t, "pricing", pricing.Name())
}

func TestDomainGroupMiddleware(t *testing.T) {
	engine := gin.New()

	group := NewDomainGroup("projects", "/projects")
	group.Use(func(c *gin.Context) {
		c.Header("X-Scope", "projects")
		c.Next()
	})
	group.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	NewRouter(engine).Register(group).Setup()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "projects", w.Header().Get("X-Scope"))
}

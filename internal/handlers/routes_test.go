package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registration-api/internal/identity"
	"registration-api/internal/middleware"
	"registration-api/internal/services"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *RouterConfig) {
	gin.SetMode(gin.TestMode)

	authService := middleware.NewAuthService(&middleware.AuthConfig{JWTSecret: "test-secret"})
	config := &RouterConfig{
		RegistrationService: services.NewRegistrationService(identity.NewMockProvider(), quietLogger()),
		OrderService:        newStubRecordService(),
		UserService:         newStubRecordService(),
		AuthService:         authService,
		Logger:              quietLogger(),
	}

	router := gin.New()
	SetupRoutes(router, config)
	return router, config
}

func TestRoutes_SignUp(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := `{"email":"john@example.com","password":"s3cret-password","name":"John"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"User registration successful"}`, w.Body.String())
}

func TestRoutes_GetOrderNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/orders/nonexistent@example.com", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutes_UsersRequireAuth(t *testing.T) {
	router, config := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/users", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := config.AuthService.GenerateToken("demo", "demo@example.com")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/v1/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_Health(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

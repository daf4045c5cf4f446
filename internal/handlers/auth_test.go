package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/todo-web-api/internal/config"
	"github.com/mkobayashi/todo-web-api/internal/dto"
	"github.com/mkobayashi/todo-web-api/internal/middleware"
	"github.com/mkobayashi/todo-web-api/internal/models"
	"github.com/mkobayashi/todo-web-api/internal/repository"
	"github.com/mkobayashi/todo-web-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.AppUser{}))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	cfg := &config.Config{
		JWTSecret:   "test-secret",
		JWTIssuer:   "todo-web-api",
		JWTAudience: "todo-web-client",
		TokenTTL:    time.Hour,
	}
	tokens := services.NewTokenService(cfg)
	authService := services.NewAuthService(repository.NewUserRepository(db), tokens)
	authHandler := NewAuthHandler(authService)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignup_CreatesUser(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(t, r, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Mika",
		"email":    "Mika@Example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user dto.UserVM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	require.NotZero(t, user.ID)
	require.Equal(t, "mika@example.com", user.Email)
	require.Equal(t, models.RoleUser, user.Role)
	require.NotContains(t, w.Body.String(), "password")
}

func TestSignup_RejectsShortPassword(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(t, r, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Mika",
		"email":    "mika@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignup_RejectsDuplicateEmail(t *testing.T) {
	r := setupAuthRouter(t)

	body := map[string]string{
		"name":     "Mika",
		"email":    "mika@example.com",
		"password": "correct-horse",
	}
	w := doJSON(t, r, "POST", "/api/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/signup", "", body)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin_IssuesUsableToken(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(t, r, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Mika",
		"email":    "mika@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "mika@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "mika@example.com", resp.User.Email)

	w = doJSON(t, r, "GET", "/api/auth/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me dto.UserVM
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	require.Equal(t, resp.User.ID, me.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(t, r, "POST", "/api/auth/signup", "", map[string]string{
		"name":     "Mika",
		"email":    "mika@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "mika@example.com",
		"password": "wrong-horse",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownEmail(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetCurrentUser_RequiresToken(t *testing.T) {
	r := setupAuthRouter(t)

	w := doJSON(t, r, "GET", "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

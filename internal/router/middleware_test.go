package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopvn-next/internal/config"
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"
	"github.com/shopvn-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func TestResolveAllowedOrigin(t *testing.T) {
	got := resolveAllowedOrigin("https://shop.example.com", []string{"*"}, false)
	if got != "*" {
		t.Fatalf("wildcard without credentials should return *, got %s", got)
	}

	got = resolveAllowedOrigin("https://shop.example.com", []string{"*"}, true)
	if got != "https://shop.example.com" {
		t.Fatalf("wildcard with credentials should echo origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://a.example.com", []string{"https://a.example.com", "https://b.example.com"}, false)
	if got != "https://a.example.com" {
		t.Fatalf("allow-list should return matched origin, got %s", got)
	}

	got = resolveAllowedOrigin("https://x.example.com", []string{"https://a.example.com"}, false)
	if got != "" {
		t.Fatalf("unmatched origin should be empty, got %s", got)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": getRequestID(c)})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "req-123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if w.Header().Get(requestIDHeader) != "req-123" {
		t.Fatalf("response request id want req-123 got %s", w.Header().Get(requestIDHeader))
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp["request_id"] != "req-123" {
		t.Fatalf("context request id want req-123 got %s", resp["request_id"])
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w2, req2)
	if w2.Header().Get(requestIDHeader) == "" {
		t.Fatalf("generated request id should not be empty")
	}
}

func setupAuthMiddlewareTest(t *testing.T, name string) (repository.UserRepository, *service.UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:router_auth_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	userRepo := repository.NewUserRepository(db)
	cfg := &config.Config{
		JWT: config.JWTConfig{SecretKey: "router-test-secret", ExpireHours: 1},
	}
	return userRepo, service.NewUserAuthService(cfg, userRepo, nil), db
}

func authTestRouter(secret string, userRepo repository.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/me", UserJWTAuthMiddleware(secret, userRepo), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestUserJWTAuthMiddlewareRejectsMissingToken(t *testing.T) {
	userRepo, _, _ := setupAuthMiddlewareTest(t, "missing")
	r := authTestRouter("router-test-secret", userRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}

func TestUserJWTAuthMiddlewareAcceptsValidToken(t *testing.T) {
	userRepo, authSvc, db := setupAuthMiddlewareTest(t, "valid")

	user := models.User{Username: "u1", Email: "u1@example.com", PasswordHash: "x", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := authSvc.GenerateUserJWT(&user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	r := authTestRouter("router-test-secret", userRepo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d (body: %s)", w.Code, w.Body.String())
	}
}

func TestUserJWTAuthMiddlewareRejectsStaleTokenVersion(t *testing.T) {
	userRepo, authSvc, db := setupAuthMiddlewareTest(t, "stale")

	user := models.User{Username: "u2", Email: "u2@example.com", PasswordHash: "x", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := authSvc.GenerateUserJWT(&user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	// 登出后 token_version 前移，旧令牌失效
	if err := userRepo.BumpTokenVersion(user.ID); err != nil {
		t.Fatalf("bump token version failed: %v", err)
	}

	r := authTestRouter("router-test-secret", userRepo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}

func TestUserJWTAuthMiddlewareRejectsDisabledUser(t *testing.T) {
	userRepo, authSvc, db := setupAuthMiddlewareTest(t, "disabled")

	user := models.User{Username: "u3", Email: "u3@example.com", PasswordHash: "x", Status: "active"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	token, _, err := authSvc.GenerateUserJWT(&user)
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("status", "disabled").Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	r := authTestRouter("router-test-secret", userRepo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status want 401 got %d", w.Code)
	}
}

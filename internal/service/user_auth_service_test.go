package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopvn-next/internal/config"
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupUserAuthServiceTest(t *testing.T, name string) (*UserAuthService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:user_auth_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.UserLoginLog{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "test-secret-for-user-auth-service-tests",
			ExpireHours: 1,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:     8,
				RequireLower:  true,
				RequireNumber: true,
			},
		},
	}
	svc := NewUserAuthService(cfg, repository.NewUserRepository(db), nil)
	return svc, db
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t, "register_login")

	user, err := svc.Register(RegisterInput{
		Username: "nguyenvana",
		Email:    "Nguyen.VanA@Example.com",
		Password: "matkhau123",
		FullName: "Nguyễn Văn A",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "nguyen.vana@example.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.PasswordHash == "matkhau123" || user.PasswordHash == "" {
		t.Fatalf("expected hashed password, got %q", user.PasswordHash)
	}

	logged, token, expiresAt, err := svc.Login(LoginInput{Email: "nguyen.vana@example.com", Password: "matkhau123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, logged.ID)
	}
	if logged.LastLoginAt == nil {
		t.Fatalf("expected last login timestamp to be set")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", expiresAt)
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t, "duplicates")

	input := RegisterInput{Username: "dupuser", Email: "dup@example.com", Password: "matkhau123"}
	if _, err := svc.Register(input); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Register(RegisterInput{Username: "another", Email: "dup@example.com", Password: "matkhau123"})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected email exists, got: %v", err)
	}
	_, err = svc.Register(RegisterInput{Username: "dupuser", Email: "other@example.com", Password: "matkhau123"})
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected username exists, got: %v", err)
	}
}

func TestRegisterEnforcesPasswordPolicy(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t, "policy")

	cases := []string{"short1", "allletters", "12345678"}
	for _, password := range cases {
		_, err := svc.Register(RegisterInput{Username: "u" + password, Email: password + "@example.com", Password: password})
		if !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected weak password for %q, got: %v", password, err)
		}
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _ := setupUserAuthServiceTest(t, "invalid")

	if _, err := svc.Register(RegisterInput{Username: "loginuser", Email: "login@example.com", Password: "matkhau123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// 用户不存在与密码错误返回同一错误
	if _, _, _, err := svc.Login(LoginInput{Email: "missing@example.com", Password: "matkhau123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for missing user, got: %v", err)
	}
	if _, _, _, err := svc.Login(LoginInput{Email: "login@example.com", Password: "saimatkhau1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got: %v", err)
	}
}

func TestLoginRejectsDisabledUser(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t, "disabled")

	user, err := svc.Register(RegisterInput{Username: "disabled", Email: "disabled@example.com", Password: "matkhau123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", user.ID).Update("status", "disabled").Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}

	if _, _, _, err := svc.Login(LoginInput{Email: "disabled@example.com", Password: "matkhau123"}); !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("expected user disabled, got: %v", err)
	}
}

func TestLogoutInvalidatesIssuedTokens(t *testing.T) {
	svc, db := setupUserAuthServiceTest(t, "logout")

	user, err := svc.Register(RegisterInput{Username: "logout", Email: "logout@example.com", Password: "matkhau123"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, token, _, err := svc.Login(LoginInput{Email: "logout@example.com", Password: "matkhau123"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(user.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("expected token version bump, got %d", reloaded.TokenVersion)
	}

	// 旧 token 的版本号与当前不符，认证中间件将拒绝
	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.TokenVersion == reloaded.TokenVersion {
		t.Fatalf("expected stale token version, got %d", claims.TokenVersion)
	}
}

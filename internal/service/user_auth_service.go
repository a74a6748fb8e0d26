package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/shopvn-next/internal/config"
	"github.com/shopvn-next/internal/constants"
	"github.com/shopvn-next/internal/logger"
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/queue"
	"github.com/shopvn-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg         *config.Config
	userRepo    repository.UserRepository
	queueClient *queue.Client
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository, queueClient *queue.Client) *UserAuthService {
	return &UserAuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		queueClient: queueClient,
	}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateUserJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *models.User) (string, time.Time, error) {
	expireHours := s.cfg.JWT.ExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}
	expiresAt := time.Now().Add(time.Duration(expireHours) * time.Hour)
	claims := UserJWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("无效的 token")
}

// RegisterInput 注册输入
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

// Register 用户注册
func (s *UserAuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrValidation
	}
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	existEmail, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, err
	}
	if existEmail != nil {
		return nil, ErrEmailExists
	}
	existName, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existName != nil {
		return nil, ErrUsernameExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:     username,
		Email:        normalized,
		PasswordHash: string(hashedPassword),
		FullName:     strings.TrimSpace(input.FullName),
		Status:       constants.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginInput 登录输入
type LoginInput struct {
	Email     string
	Password  string
	ClientIP  string
	UserAgent string
	RequestID string
}

// Login 用户登录
// 登录行为（含失败）异步写入登录日志，不阻塞请求路径。
func (s *UserAuthService) Login(input LoginInput) (*models.User, string, time.Time, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		s.dispatchLoginLog(0, normalized, constants.LoginLogStatusFailed, constants.LoginFailReasonNotFound, input)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if strings.ToLower(user.Status) != constants.UserStatusActive {
		s.dispatchLoginLog(user.ID, normalized, constants.LoginLogStatusFailed, constants.LoginFailReasonUserDisabled, input)
		return nil, "", time.Time{}, ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.dispatchLoginLog(user.ID, normalized, constants.LoginLogStatusFailed, constants.LoginFailReasonBadPassword, input)
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	user.LastLoginAt = &now

	s.dispatchLoginLog(user.ID, normalized, constants.LoginLogStatusSuccess, "", input)
	return user, token, expiresAt, nil
}

// Logout 退出登录
// 自增 token_version，令已签发的所有 JWT 即刻失效。
func (s *UserAuthService) Logout(userID uint) error {
	if userID == 0 {
		return ErrValidation
	}
	return s.userRepo.BumpTokenVersion(userID)
}

func (s *UserAuthService) dispatchLoginLog(userID uint, email, status, failReason string, input LoginInput) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueUserLoginLog(queue.UserLoginLogPayload{
		UserID:     userID,
		Email:      email,
		Status:     status,
		FailReason: failReason,
		ClientIP:   input.ClientIP,
		UserAgent:  input.UserAgent,
		RequestID:  input.RequestID,
	})
	if err != nil {
		logger.Warnw("login_log_enqueue_failed", "email", email, "error", err)
	}
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrValidation
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrValidation
	}
	return normalized, nil
}

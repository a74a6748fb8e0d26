package service

import (
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/repository"
)

// UserLoginLogService 用户登录日志服务
type UserLoginLogService struct {
	logRepo repository.UserLoginLogRepository
}

// NewUserLoginLogService 创建登录日志服务
func NewUserLoginLogService(logRepo repository.UserLoginLogRepository) *UserLoginLogService {
	return &UserLoginLogService{logRepo: logRepo}
}

// Record 写入一条登录日志
func (s *UserLoginLogService) Record(entry *models.UserLoginLog) error {
	if entry == nil || entry.Email == "" || entry.Status == "" {
		return ErrValidation
	}
	return s.logRepo.Create(entry)
}

// ListByUser 按用户查询登录日志
func (s *UserLoginLogService) ListByUser(userID uint, page, pageSize int) ([]models.UserLoginLog, int64, error) {
	if userID == 0 {
		return nil, 0, ErrValidation
	}
	return s.logRepo.List(repository.UserLoginLogListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

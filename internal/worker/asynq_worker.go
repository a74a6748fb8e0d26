package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopvn-next/internal/logger"
	"github.com/shopvn-next/internal/models"
	"github.com/shopvn-next/internal/provider"
	"github.com/shopvn-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 队列任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建任务消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{Container: c}
}

// Register 注册任务处理器
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		return
	}
	mux.HandleFunc(queue.TaskUserLoginLog, c.handleUserLoginLog)
}

// handleUserLoginLog 登录日志落库
func (c *Consumer) handleUserLoginLog(ctx context.Context, t *asynq.Task) error {
	var payload queue.UserLoginLogPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.Errorw("worker_login_log_payload_invalid", "error", err)
		// 载荷损坏无法重试
		return fmt.Errorf("unmarshal login log payload: %v: %w", err, asynq.SkipRetry)
	}

	entry := &models.UserLoginLog{
		UserID:     payload.UserID,
		Email:      payload.Email,
		Status:     payload.Status,
		FailReason: payload.FailReason,
		ClientIP:   payload.ClientIP,
		UserAgent:  payload.UserAgent,
		RequestID:  payload.RequestID,
	}
	if err := c.UserLoginLogService.Record(entry); err != nil {
		logger.Errorw("worker_login_log_record_failed",
			"email", payload.Email,
			"status", payload.Status,
			"error", err,
		)
		return err
	}

	logger.Infow("worker_login_log_recorded",
		"user_id", payload.UserID,
		"email", payload.Email,
		"status", payload.Status,
		"request_id", payload.RequestID,
	)
	return nil
}

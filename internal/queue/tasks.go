package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// TaskUserLoginLog 登录日志落库任务
	TaskUserLoginLog = "user:login_log"
)

// UserLoginLogPayload 登录日志任务载荷
type UserLoginLogPayload struct {
	UserID     uint   `json:"user_id"`
	Email      string `json:"email"`
	Status     string `json:"status"`
	FailReason string `json:"fail_reason"`
	ClientIP   string `json:"client_ip"`
	UserAgent  string `json:"user_agent"`
	RequestID  string `json:"request_id"`
}

// NewUserLoginLogTask 创建登录日志任务
func NewUserLoginLogTask(payload UserLoginLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskUserLoginLog, body), nil
}

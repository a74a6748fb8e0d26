package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopvn-next/internal/logger"
)

// HTTPService 把 gin 引擎接入 Runner 生命周期，Stop 时优雅停机。
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 创建 API 服务
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	return &HTTPService{
		server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *HTTPService) Name() string {
	return "http"
}

// Start 监听并阻塞直到 Shutdown；正常关闭不算错误。
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server 未初始化")
	}
	logger.S().Infow("http_listen", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 优雅停机，超时由 Runner 的 ctx 控制。
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

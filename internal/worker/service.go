package worker

import (
	"context"
	"errors"
	"time"

	"github.com/shopvn-next/internal/config"
	"github.com/shopvn-next/internal/logger"
	"github.com/shopvn-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 后台任务服务，消费队列任务并执行周期性购物车清理
type Service struct {
	name     string
	cfg      *config.Config
	consumer *Consumer
	server   *asynq.Server
	mux      *asynq.ServeMux
}

// NewService 创建后台任务服务
func NewService(cfg *config.Config, consumer *Consumer) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}

	s := &Service{
		name:     "worker",
		cfg:      cfg,
		consumer: consumer,
	}

	if cfg.Queue.Enabled {
		opt, serverCfg := queue.BuildServerConfig(&cfg.Queue)
		s.server = asynq.NewServer(opt, serverCfg)
		s.mux = asynq.NewServeMux()
		consumer.Register(s.mux)
	}

	return s, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("worker service not initialized")
	}

	go s.runCartPruneLoop(ctx)

	if s.server == nil {
		// 队列未启用时仅保留清理循环
		logger.Infow("worker_queue_disabled")
		<-ctx.Done()
		return nil
	}

	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	s.server.Shutdown()
	return nil
}

// runCartPruneLoop 周期清理过期与失效的购物车项
func (s *Service) runCartPruneLoop(ctx context.Context) {
	interval := time.Duration(s.cfg.Cart.PruneIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}
	staleWindow := time.Duration(s.cfg.Cart.StaleDays) * 24 * time.Hour
	if staleWindow <= 0 {
		staleWindow = 30 * 24 * time.Hour
	}

	// 启动时先执行一次，再按间隔轮询
	s.pruneCartsOnce(staleWindow)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.pruneCartsOnce(staleWindow)
		}
	}
}

func (s *Service) pruneCartsOnce(staleWindow time.Duration) {
	staleBefore := time.Now().Add(-staleWindow)
	removed, err := s.consumer.CartService.Prune(staleBefore)
	if err != nil {
		logger.Errorw("worker_cart_prune_failed", "error", err)
		return
	}
	if removed > 0 {
		logger.Infow("worker_cart_prune_done",
			"removed", removed,
			"stale_before", staleBefore.Format(time.RFC3339),
		)
	}
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/amyangfei/redlock-go/v3/redlock"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/pkg/logger"
)

const lockName = "daybreak:pipeline:run"

// RunLock guards pipeline runs so only one replica executes at a time
type RunLock struct {
	lockManager *redlock.RedLock
	ttl         time.Duration
	locked      bool
}

// NewRunLock creates a Redlock-backed run lock
func NewRunLock(cfg *config.RedisConfig) (*RunLock, error) {
	addr := fmt.Sprintf("tcp://%s:%d", cfg.Host, cfg.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lockManager, err := redlock.NewRedLock(ctx, []string{addr})
	if err != nil {
		return nil, fmt.Errorf("failed to create redlock manager: %w", err)
	}

	logger.Info("redis run lock initialized",
		zap.String("address", addr),
		zap.Duration("ttl", cfg.LockTTL),
	)

	return &RunLock{
		lockManager: lockManager,
		ttl:         cfg.LockTTL,
	}, nil
}

// TryAcquire attempts to take the run lock. Returns false when another
// replica holds it; that is a skip condition, not an error.
func (l *RunLock) TryAcquire(ctx context.Context) (bool, error) {
	expiry, err := l.lockManager.Lock(ctx, lockName, l.ttl)
	if err != nil {
		logger.Debug("pipeline run lock held elsewhere",
			zap.String("lock", lockName),
		)
		return false, nil
	}

	if expiry <= 0 {
		return false, fmt.Errorf("failed to acquire lock: invalid expiry %v", expiry)
	}

	l.locked = true

	logger.Info("pipeline run lock acquired",
		zap.String("lock", lockName),
		zap.Duration("expiry", expiry),
	)

	return true, nil
}

// Release drops the run lock; an already-expired lock is not an error
func (l *RunLock) Release(ctx context.Context) {
	if !l.locked {
		return
	}

	if err := l.lockManager.UnLock(ctx, lockName); err != nil {
		logger.Warn("failed to release run lock (may have expired)",
			zap.String("lock", lockName),
			zap.Error(err),
		)
	}

	l.locked = false
}

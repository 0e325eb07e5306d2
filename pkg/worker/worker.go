package worker

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/pkg/logger"
)

// Worker is one schedulable unit of background work
type Worker interface {
	// Name returns worker name for logging
	Name() string
	// Run executes one iteration of work
	Run(ctx context.Context) error
}

// CronRunner schedules workers on cron expressions with graceful shutdown
type CronRunner struct {
	cron *cron.Cron
	ctx  context.Context
	wg   sync.WaitGroup
	mu   sync.Mutex
}

// NewCronRunner creates new cron runner bound to ctx
func NewCronRunner(ctx context.Context) *CronRunner {
	return &CronRunner{
		cron: cron.New(),
		ctx:  ctx,
	}
}

// Add schedules a worker; spec uses standard five-field cron syntax
func (r *CronRunner) Add(spec string, w Worker) error {
	_, err := r.cron.AddFunc(spec, func() {
		r.runOnce(w)
	})
	if err != nil {
		return err
	}

	logger.Info("worker scheduled",
		zap.String("worker", w.Name()),
		zap.String("schedule", spec),
	)

	return nil
}

// RunNow executes a worker immediately in the background
func (r *CronRunner) RunNow(w Worker) {
	go r.runOnce(w)
}

func (r *CronRunner) runOnce(w Worker) {
	// One iteration at a time across all scheduled workers: the runs
	// share the database and the downstream delivery channel.
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ctx.Err() != nil {
		return
	}

	r.wg.Add(1)
	defer r.wg.Done()

	start := time.Now()

	if err := w.Run(r.ctx); err != nil {
		logger.Error("worker iteration failed",
			zap.String("worker", w.Name()),
			zap.Error(err),
		)
		return
	}

	logger.Debug("worker iteration completed",
		zap.String("worker", w.Name()),
		zap.Duration("duration", time.Since(start)),
	)
}

// Start begins scheduling
func (r *CronRunner) Start() {
	r.cron.Start()
}

// Stop halts scheduling and waits for in-flight iterations
func (r *CronRunner) Stop(timeout time.Duration) {
	stopCtx := r.cron.Stop()

	done := make(chan struct{})
	go func() {
		<-stopCtx.Done()
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("cron runner stopped gracefully")
	case <-time.After(timeout):
		logger.Warn("cron runner stop timeout")
	}
}

package workers

import (
	"context"

	"go.uber.org/zap"

	"github.com/daybreakbrief/news-bot/internal/adapters/ai"
	"github.com/daybreakbrief/news-bot/internal/adapters/metrics"
	"github.com/daybreakbrief/news-bot/internal/adapters/redis"
	"github.com/daybreakbrief/news-bot/internal/adapters/telegram"
	"github.com/daybreakbrief/news-bot/internal/export"
	"github.com/daybreakbrief/news-bot/internal/extract"
	"github.com/daybreakbrief/news-bot/internal/pipeline"
	"github.com/daybreakbrief/news-bot/pkg/logger"
)

// BriefWorker executes one complete brief cycle: pipeline run, run
// metrics, optional CSV export, then extraction, summarization and
// delivery of the ranked selection. Every stage after persistence is
// best-effort; only the pipeline itself decides run success.
type BriefWorker struct {
	pipeline   *pipeline.Pipeline
	extractor  *extract.Extractor
	summarizer ai.Summarizer
	notifier   *telegram.Notifier
	metrics    *metrics.Repository
	runLock    *redis.RunLock
	exportDir  string
}

// NewBriefWorker creates new brief worker. Summarizer, notifier, metrics
// and runLock may be nil; the corresponding stage is skipped.
func NewBriefWorker(
	p *pipeline.Pipeline,
	extractor *extract.Extractor,
	summarizer ai.Summarizer,
	notifier *telegram.Notifier,
	metricsRepo *metrics.Repository,
	runLock *redis.RunLock,
	exportDir string,
) *BriefWorker {
	return &BriefWorker{
		pipeline:   p,
		extractor:  extractor,
		summarizer: summarizer,
		notifier:   notifier,
		metrics:    metricsRepo,
		runLock:    runLock,
		exportDir:  exportDir,
	}
}

func (w *BriefWorker) Name() string {
	return "brief"
}

// Run executes one cycle
func (w *BriefWorker) Run(ctx context.Context) error {
	if w.runLock != nil {
		acquired, err := w.runLock.TryAcquire(ctx)
		if err != nil {
			return err
		}
		if !acquired {
			logger.Warn("brief run skipped, another replica holds the lock")
			return nil
		}
		defer w.runLock.Release(ctx)
	}

	result, err := w.pipeline.Run(ctx)
	if err != nil {
		// Persistence failed but the ranked selection survived; report
		// the stats we have and still deliver the brief.
		logger.Error("pipeline run ended with persistence failure", zap.Error(err))
	}

	if result == nil {
		return err
	}

	w.saveMetrics(ctx, result)

	if w.exportDir != "" && len(result.Records) > 0 {
		if _, exportErr := export.SaveTimestamped(w.exportDir, result.Records); exportErr != nil {
			logger.Error("csv export failed", zap.Error(exportErr))
		}
	}

	if result.Selection.IsEmpty() {
		logger.Info("no ranked articles this run, skipping brief generation")
		return err
	}

	w.deliverBrief(ctx, result)

	return err
}

func (w *BriefWorker) saveMetrics(ctx context.Context, result *pipeline.Result) {
	if w.metrics == nil {
		return
	}

	if err := w.metrics.SaveRun(ctx, result.Stats); err != nil {
		logger.Warn("failed to save run metrics", zap.Error(err))
	}
}

func (w *BriefWorker) deliverBrief(ctx context.Context, result *pipeline.Result) {
	if w.summarizer == nil || !w.summarizer.IsEnabled() {
		logger.Debug("summarizer not configured, skipping brief")
		return
	}

	groups := w.extractor.ExtractGroups(ctx, result.Selection)

	report, err := w.summarizer.Summarize(ctx, groups)
	if err != nil {
		logger.Error("brief generation failed", zap.Error(err))
		return
	}

	if w.notifier == nil {
		logger.Info("brief generated but no delivery configured",
			zap.Int("chars", len(report)),
		)
		return
	}

	if err := w.notifier.SendBrief(report); err != nil {
		logger.Error("brief delivery failed", zap.Error(err))
	}
}

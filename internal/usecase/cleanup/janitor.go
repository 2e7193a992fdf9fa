package cleanup

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/pixforge/internal/adapter/storage"
	"github.com/marcos-nsantos/pixforge/internal/domain/entity"
)

const (
	DefaultRetention   = 5 * time.Minute
	DefaultInterval    = 2 * time.Minute
	DefaultDeleteDelay = 5 * time.Second

	scheduledDeleteTimeout = 30 * time.Second
)

type Config struct {
	Retention          time.Duration
	SweepInterval      time.Duration
	DeleteDelay        time.Duration
	BackgroundInterval time.Duration
}

// Janitor removes expired files from both areas. Every trigger ends up in
// SweepAll or DeleteNamed.
type Janitor struct {
	storage storage.FileStorage
	cfg     Config
	logger  *zap.Logger
	now     func() time.Time

	mu        sync.Mutex
	lastSweep time.Time
}

type Option func(*Janitor)

// WithClock replaces time.Now, mainly for tests of MaybeSweep.
func WithClock(now func() time.Time) Option {
	return func(j *Janitor) {
		j.now = now
	}
}

func NewJanitor(fileStorage storage.FileStorage, cfg Config, logger *zap.Logger, opts ...Option) *Janitor {
	if cfg.Retention <= 0 {
		cfg.Retention = DefaultRetention
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultInterval
	}
	if cfg.DeleteDelay <= 0 {
		cfg.DeleteDelay = DefaultDeleteDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	j := &Janitor{
		storage: fileStorage,
		cfg:     cfg,
		logger:  logger.With(zap.String("component", "janitor")),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	// the first opportunistic sweep waits a full interval after startup
	j.lastSweep = j.now()
	return j
}

type SweepResult struct {
	Scanned  int
	Deleted  int
	Errors   int
	Duration time.Duration
}

func (j *Janitor) SweepAll(ctx context.Context) *SweepResult {
	return j.sweep(ctx, TriggerManual)
}

func (j *Janitor) sweep(ctx context.Context, trigger string) *SweepResult {
	start := time.Now()
	result := &SweepResult{}

	for _, area := range entity.Areas() {
		files, err := j.storage.ListWithAge(ctx, area)
		if err != nil {
			result.Errors++
			errorsTotal.Inc()
			j.logger.Error("listing files failed", zap.String("area", string(area)), zap.Error(err))
			continue
		}

		for _, f := range files {
			result.Scanned++
			if f.Age <= j.cfg.Retention {
				continue
			}

			if err := j.storage.Delete(ctx, area, f.Name); err != nil {
				result.Errors++
				errorsTotal.Inc()
				j.logger.Warn("deleting expired file failed",
					zap.String("area", string(area)),
					zap.String("name", f.Name),
					zap.Error(err),
				)
				continue
			}
			result.Deleted++
			filesDeletedTotal.WithLabelValues(string(area)).Inc()
		}
	}

	result.Duration = time.Since(start)
	sweepsTotal.WithLabelValues(trigger).Inc()
	sweepDurationSeconds.Observe(result.Duration.Seconds())

	j.logger.Info("sweep finished",
		zap.String("trigger", trigger),
		zap.Int("scanned", result.Scanned),
		zap.Int("deleted", result.Deleted),
		zap.Int("errors", result.Errors),
		zap.Duration("duration", result.Duration),
	)
	return result
}

func (j *Janitor) DeleteNamed(ctx context.Context, area entity.Area, name string) error {
	if err := j.storage.Delete(ctx, area, name); err != nil {
		errorsTotal.Inc()
		return fmt.Errorf("deleting %s/%s: %w", area, name, err)
	}
	filesDeletedTotal.WithLabelValues(string(area)).Inc()
	return nil
}

// MaybeSweep sweeps when more than the sweep interval passed since the last
// opportunistic sweep. It reports whether a sweep ran.
func (j *Janitor) MaybeSweep(ctx context.Context) bool {
	j.mu.Lock()
	now := j.now()
	if now.Sub(j.lastSweep) <= j.cfg.SweepInterval {
		j.mu.Unlock()
		return false
	}
	j.lastSweep = now
	j.mu.Unlock()

	j.sweep(ctx, TriggerOpportunistic)
	return true
}

// ScheduleDelete removes the file after the configured delay on a detached
// timer. Failures are logged only.
func (j *Janitor) ScheduleDelete(area entity.Area, name string) {
	time.AfterFunc(j.cfg.DeleteDelay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledDeleteTimeout)
		defer cancel()

		if err := j.DeleteNamed(ctx, area, name); err != nil {
			j.logger.Warn("scheduled delete failed", zap.Error(err))
			return
		}
		j.logger.Debug("scheduled delete done", zap.String("area", string(area)), zap.String("name", name))
	})
}

type CleanupInput struct {
	UploadedFile string
	ResizedFile  string
}

type CleanupResult struct {
	Deleted int
	Failed  int
	Swept   bool
}

// Cleanup deletes the named files, or sweeps both areas when none is named.
// A failed delete is logged and counted; the remaining names are still tried
// and the file is left for a later sweep.
func (j *Janitor) Cleanup(ctx context.Context, input CleanupInput) *CleanupResult {
	targets := map[entity.Area]string{
		entity.AreaUploads: strings.TrimSpace(input.UploadedFile),
		entity.AreaResized: strings.TrimSpace(input.ResizedFile),
	}

	result := &CleanupResult{}
	named := false
	for _, area := range entity.Areas() {
		name := targets[area]
		if name == "" {
			continue
		}
		named = true
		if err := j.DeleteNamed(ctx, area, name); err != nil {
			j.logger.Warn("cleanup delete failed",
				zap.String("area", string(area)),
				zap.String("name", name),
				zap.Error(err),
			)
			result.Failed++
			continue
		}
		result.Deleted++
	}

	if !named {
		sweep := j.SweepAll(ctx)
		result.Deleted = sweep.Deleted
		result.Failed = sweep.Errors
		result.Swept = true
	}
	return result
}

// Run sweeps on a ticker until ctx is done. It returns immediately when the
// background interval is zero.
func (j *Janitor) Run(ctx context.Context) {
	if j.cfg.BackgroundInterval <= 0 {
		return
	}

	j.logger.Info("background sweeps started", zap.Duration("interval", j.cfg.BackgroundInterval))

	ticker := time.NewTicker(j.cfg.BackgroundInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("background sweeps stopped")
			return
		case <-ticker.C:
			j.sweep(ctx, TriggerBackground)
		}
	}
}

// Package service orchestrates ranking invocations over an immutable dataset
// snapshot: caching, metrics, readiness, and optional report publishing.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weekend-getaway-ranker/internal/domain"
	"github.com/couchcryptid/weekend-getaway-ranker/internal/observability"
)

// ReportPublisher delivers assembled reports to downstream consumers.
type ReportPublisher interface {
	Publish(ctx context.Context, report domain.Report) error
}

// Service runs the scoring pipeline. All shared state is read-only after
// construction except the cache and metrics, so concurrent Rank calls are
// safe without locking the dataset.
type Service struct {
	records   []domain.Destination
	cfg       domain.ScoringConfig
	logger    *slog.Logger
	metrics   *observability.Metrics
	cache     *reportCache
	publisher ReportPublisher
	ready     atomic.Bool
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithCache enables an LRU report cache of the given capacity. Zero or
// negative sizes leave caching disabled.
func WithCache(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.cache = newReportCache(size)
		}
	}
}

// WithPublisher attaches a report publisher. Publishing is best-effort:
// failures are logged and counted, never returned to the caller.
func WithPublisher(p ReportPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

// New creates a Service over a dataset snapshot. The scoring configuration
// is validated up front so a misconfigured formula fails at startup, not
// per request.
func New(records []domain.Destination, cfg domain.ScoringConfig, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring config: %w", err)
	}

	s := &Service{
		records: records,
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
	for _, opt := range opts {
		opt(s)
	}

	metrics.DatasetSize.Set(float64(len(records)))
	s.ready.Store(len(records) > 0)
	return s, nil
}

// CheckReadiness returns nil once a non-empty dataset has been loaded, or an
// error describing why the service is not ready to rank.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("destination dataset is empty")
	}
	return nil
}

// Rank produces the weekend getaway report for a source city. Unknown source
// cities return an error wrapping domain.ErrSourceCityNotFound; that is the
// only failure mode. topN values <= 0 use the domain default.
func (s *Service) Rank(ctx context.Context, sourceCity string, topN int) (domain.Report, error) {
	if topN <= 0 {
		topN = domain.DefaultTopN
	}

	key := cacheKey(sourceCity, topN)
	if s.cache != nil {
		if report, ok := s.cache.get(key); ok {
			s.metrics.CacheLookups.WithLabelValues("hit").Inc()
			return report, nil
		}
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	ranking, err := domain.Rank(s.records, sourceCity, topN, s.cfg)
	if err != nil {
		s.metrics.RankingErrors.Inc()
		return domain.Report{}, err
	}

	report := domain.AssembleReport(ranking, s.cfg.Weights)

	s.metrics.RankingsTotal.Inc()
	s.metrics.RecordsScored.Add(float64(ranking.Candidates))
	s.metrics.RankingDuration.Observe(time.Since(start).Seconds())
	s.countWarnings(report)

	s.logger.Debug("ranking complete",
		"source_city", report.SourceCity,
		"source_state", report.SourceState,
		"candidates", ranking.Candidates,
		"results", len(report.Results),
	)

	if s.cache != nil {
		s.cache.put(key, report)
	}
	s.publish(ctx, report)
	return report, nil
}

func (s *Service) countWarnings(report domain.Report) {
	for _, entry := range report.Results {
		for _, w := range entry.Breakdown.Warnings {
			s.metrics.RecordWarnings.WithLabelValues(string(w.Kind)).Inc()
		}
	}
}

// publish sends the report downstream when a publisher is configured.
// Cached hits skip this path, so each distinct query publishes once per
// cache lifetime.
func (s *Service) publish(ctx context.Context, report domain.Report) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, report); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Warn("report publish failed",
			"source_city", report.SourceCity,
			"error", err,
		)
		return
	}
	s.metrics.ReportsPublished.Inc()
}

func cacheKey(sourceCity string, topN int) string {
	return fmt.Sprintf("%s|%d", domain.NormalizeKey(sourceCity), topN)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"filing_watcher/internal/classifier"
	"filing_watcher/internal/config"
	"filing_watcher/internal/domain"
	"filing_watcher/internal/extractor"
)

// IngestService runs ingestion passes over the configured court sources:
// fetch feed, extract candidates, persist new filings, classify them and
// derive alerts for the relevant ones. Sources are processed one at a time
// and candidates one at a time with a politeness delay in between; the
// external database serializes concurrent passes via its unique constraints.
type IngestService struct {
	sources   []domain.FeedSource
	fetcher   FeedFetcher
	filings   FilingStore
	alerts    AlertStore
	publisher Publisher
	logger    *slog.Logger
	config    config.IngestConfig
}

func NewIngestService(
	sources []domain.FeedSource,
	fetcher FeedFetcher,
	filings FilingStore,
	alerts AlertStore,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.IngestConfig,
) *IngestService {
	return &IngestService{
		sources:   sources,
		fetcher:   fetcher,
		filings:   filings,
		alerts:    alerts,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
	}
}

// Run performs one ingestion pass over every configured source. Expected
// failures (fetch errors, store write failures within a source) are collected
// into the returned stats, never raised; a failing source does not stop the
// others. The error return is reserved for misconfiguration.
func (s *IngestService) Run(ctx context.Context) (*domain.IngestStats, error) {
	return s.runSources(ctx, s.sources)
}

func (s *IngestService) runSources(ctx context.Context, sources []domain.FeedSource) (*domain.IngestStats, error) {
	startTime := time.Now()
	stats := &domain.IngestStats{}

	s.logger.Info("starting ingestion pass",
		"sources", len(sources),
		"max_candidates", s.config.MaxCandidatesPerPass,
		"candidate_delay", s.config.CandidateDelay,
	)

	for _, src := range sources {
		stats.SourcesAttempted++

		if err := s.ingestSource(ctx, src, stats); err != nil {
			stats.Errors = append(stats.Errors, domain.SourceError{
				Source:  src.Name,
				Message: err.Error(),
			})
			s.logger.Error("source ingestion failed", "source", src.Name, "error", err)
		}

		if ctx.Err() != nil {
			break
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("ingestion pass completed",
		"sources_attempted", stats.SourcesAttempted,
		"filings_processed", stats.FilingsProcessed,
		"alerts_generated", stats.AlertsGenerated,
		"skipped", stats.Skipped,
		"errors", len(stats.Errors),
		"duration", stats.Duration,
	)

	return stats, nil
}

// ingestSource runs one source through fetch, extraction and the per-candidate
// pipeline. A returned error means the remaining candidates of this source
// were abandoned; the caller records it and moves to the next source.
func (s *IngestService) ingestSource(ctx context.Context, src domain.FeedSource, stats *domain.IngestStats) error {
	logger := s.logger.With("source", src.Name)

	content, err := s.fetcher.Fetch(ctx, src.URL)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}

	candidates := extractor.Extract(content, src.URL)
	logger.Info("extracted candidates", "count", len(candidates))

	if limit := s.config.MaxCandidatesPerPass; limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	for i, candidate := range candidates {
		if i > 0 {
			if err := s.politenessDelay(ctx); err != nil {
				return err
			}
		}

		exists, err := s.filings.ExistsByURL(ctx, candidate.URL)
		if err != nil {
			return fmt.Errorf("check filing exists: %w", err)
		}
		if exists {
			stats.Skipped++
			logger.Debug("filing already known", "url", candidate.URL)
			continue
		}

		filing := buildFiling(src, candidate)

		id, err := s.filings.Create(ctx, filing)
		if errors.Is(err, domain.ErrDuplicateFiling) {
			// lost the race against a concurrent pass; same as already known
			stats.Skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("create filing: %w", err)
		}
		filing.ID = id
		stats.FilingsProcessed++

		summary := ""
		if filing.Summary != nil {
			summary = *filing.Summary
		}
		result := classifier.Classify(filing.Title, summary)

		if err := s.filings.MarkClassified(ctx, id); err != nil {
			return fmt.Errorf("mark filing classified: %w", err)
		}
		filing.Classified = true

		if !result.Relevant {
			logger.Debug("filing not relevant", "url", filing.URL)
			continue
		}

		alert := buildAlert(filing, src, result)

		alertID, err := s.alerts.Create(ctx, alert)
		if err != nil {
			return fmt.Errorf("create alert: %w", err)
		}
		alert.ID = alertID
		stats.AlertsGenerated++

		logger.Info("alert generated",
			"filing_id", filing.ID,
			"category", alert.Category,
			"score", alert.OpportunityScore,
			"priority", alert.Priority,
		)

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, alert, filing); err != nil {
				logger.Warn("publish alert", "alert_id", alert.ID, "error", err)
			}
		}
	}

	return nil
}

func (s *IngestService) politenessDelay(ctx context.Context) error {
	if s.config.CandidateDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.config.CandidateDelay):
		return nil
	}
}

func buildFiling(src domain.FeedSource, candidate extractor.Candidate) *domain.Filing {
	externalRef := candidate.GUID
	if externalRef == "" {
		externalRef = candidate.URL
	}

	publishedAt := candidate.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now().UTC()
	}

	filing := &domain.Filing{
		ExternalRef: externalRef,
		Title:       candidate.Title,
		CourtID:     src.CourtID,
		URL:         candidate.URL,
		PublishedAt: publishedAt,
		Extracted:   true,
	}
	if candidate.Summary != "" {
		summary := candidate.Summary
		filing.Summary = &summary
	}
	return filing
}

func buildAlert(filing *domain.Filing, src domain.FeedSource, result classifier.Result) *domain.Alert {
	score := classifier.Score(result)

	title := filing.Title
	if title == "" {
		title = fmt.Sprintf("Court filing %s", filing.ExternalRef)
	}

	description := ""
	if filing.Summary != nil {
		description = *filing.Summary
	}
	if description == "" {
		description = fmt.Sprintf("New %s filing from %s", result.Category, src.Name)
	}

	return &domain.Alert{
		FilingID:         filing.ID,
		Title:            title,
		Description:      description,
		Address:          "Address pending review",
		Province:         src.Region,
		Category:         result.Category,
		Status:           domain.AlertStatusActive,
		Priority:         classifier.PriorityForScore(score),
		OpportunityScore: score,
		TimelineMonths:   classifier.TimelineMonths(result.Category),
	}
}

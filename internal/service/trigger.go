package service

import (
	"context"
	"crypto/subtle"
	"strings"

	"filing_watcher/internal/domain"
)

// TriggerRequest is the payload an external scheduler or CLI sends to kick
// off a pass on demand, optionally narrowed to one region.
type TriggerRequest struct {
	Secret       string `json:"secret"`
	SourceRegion string `json:"sourceRegion"`
}

type TriggerStats struct {
	TotalCasesProcessed int `json:"totalCasesProcessed"`
	NewAlertsGenerated  int `json:"newAlertsGenerated"`
	FeedsProcessed      int `json:"feedsProcessed"`
	Errors              int `json:"errors"`
}

type TriggerResult struct {
	Success bool         `json:"success"`
	Stats   TriggerStats `json:"stats"`
	Errors  []string     `json:"errors,omitempty"`
}

// Trigger runs one ingestion pass on behalf of an external caller. The shared
// secret is compared in constant time when one is configured. The result is
// always structured, even under partial failure; the caller decides whether a
// non-empty Errors list warrants alerting operators.
func (s *IngestService) Trigger(ctx context.Context, req TriggerRequest) TriggerResult {
	if s.config.TriggerSecret != "" {
		if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.config.TriggerSecret)) != 1 {
			return TriggerResult{Errors: []string{"unauthorized"}}
		}
	}

	sources := s.sources
	if req.SourceRegion != "" {
		sources = filterByRegion(sources, req.SourceRegion)
	}

	stats, err := s.runSources(ctx, sources)
	if err != nil {
		return TriggerResult{Errors: []string{err.Error()}}
	}

	result := TriggerResult{
		Success: true,
		Stats: TriggerStats{
			TotalCasesProcessed: stats.FilingsProcessed,
			NewAlertsGenerated:  stats.AlertsGenerated,
			FeedsProcessed:      stats.SourcesAttempted,
			Errors:              len(stats.Errors),
		},
	}
	for _, srcErr := range stats.Errors {
		result.Errors = append(result.Errors, srcErr.Source+": "+srcErr.Message)
	}
	return result
}

func filterByRegion(sources []domain.FeedSource, region string) []domain.FeedSource {
	filtered := make([]domain.FeedSource, 0, len(sources))
	for _, src := range sources {
		if strings.EqualFold(src.Region, region) {
			filtered = append(filtered, src)
		}
	}
	return filtered
}

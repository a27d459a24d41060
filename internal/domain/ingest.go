package domain

import "time"

// FeedSource is one configured external feed to ingest from.
type FeedSource struct {
	Name    string
	URL     string
	CourtID string
	Region  string
}

// SourceError records a non-fatal failure for a single source within a pass.
type SourceError struct {
	Source  string
	Message string
}

// IngestStats summarizes one ingestion pass across all sources.
type IngestStats struct {
	SourcesAttempted int
	FilingsProcessed int
	AlertsGenerated  int
	Skipped          int
	Errors           []SourceError
	Duration         time.Duration
}

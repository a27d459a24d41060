package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"filing_watcher/internal/domain"
)

type FilingStore interface {
	ExistsByURL(ctx context.Context, url string) (bool, error)
	Create(ctx context.Context, filing *domain.Filing) (int64, error)
	MarkClassified(ctx context.Context, id int64) error
}

type AlertStore interface {
	Create(ctx context.Context, alert *domain.Alert) (int64, error)
}

type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, alert *domain.Alert, filing *domain.Filing) error
	Close() error
}

package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"filing_watcher/internal/domain"
)

type AlertStore struct {
	db *sqlx.DB
}

func NewAlertStore(db *sqlx.DB) *AlertStore {
	return &AlertStore{db: db}
}

func (s *AlertStore) Create(ctx context.Context, alert *domain.Alert) (int64, error) {
	query := `
		INSERT INTO alerts (
			filing_id, title, description, address, city, province,
			category, status, priority, opportunity_score, timeline_months
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		alert.FilingID,
		alert.Title,
		alert.Description,
		alert.Address,
		alert.City,
		alert.Province,
		alert.Category,
		alert.Status,
		alert.Priority,
		alert.OpportunityScore,
		alert.TimelineMonths,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

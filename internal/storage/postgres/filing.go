package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"filing_watcher/internal/domain"
)

type FilingStore struct {
	db *sqlx.DB
}

func NewFilingStore(db *sqlx.DB) *FilingStore {
	return &FilingStore{db: db}
}

func (s *FilingStore) ExistsByURL(ctx context.Context, url string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM filings WHERE url = $1)", url)
	return exists, err
}

// Create inserts a new filing. The unique constraint on url is the real
// duplicate guard: when a concurrent pass already inserted the same URL the
// insert affects no rows and ErrDuplicateFiling is returned.
func (s *FilingStore) Create(ctx context.Context, filing *domain.Filing) (int64, error) {
	query := `
		INSERT INTO filings (
			external_ref, title, court_id, url, summary,
			published_at, extracted, classified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (url) DO NOTHING
		RETURNING id`

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		filing.ExternalRef,
		filing.Title,
		filing.CourtID,
		filing.URL,
		filing.Summary,
		filing.PublishedAt,
		filing.Extracted,
		filing.Classified,
	).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, domain.ErrDuplicateFiling
	}
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *FilingStore) MarkClassified(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE filings SET classified = TRUE WHERE id = $1", id)
	return err
}

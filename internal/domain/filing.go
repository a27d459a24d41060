package domain

import (
	"errors"
	"time"
)

// ErrDuplicateFiling is returned by the filing store when an insert hits the
// unique constraint on the canonical URL. The existence check before creation
// is best-effort; the constraint is the real guarantee.
var ErrDuplicateFiling = errors.New("filing already exists")

// Filing is one discovered external court document. Created on first sight of
// a new URL, mutated only to set the processing flags, never deleted here.
type Filing struct {
	ID          int64
	ExternalRef string // feed GUID when present, canonical URL otherwise
	Title       string
	CourtID     string
	URL         string
	Summary     *string
	PublishedAt time.Time
	Extracted   bool
	Classified  bool
	CreatedAt   time.Time
}

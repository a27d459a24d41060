package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"filing_watcher/internal/domain"
)

func TestClassify_PowerOfSaleAnyCase(t *testing.T) {
	t.Parallel()

	titles := []string{
		"Notice of POWER OF SALE - 45 King Street",
		"power of sale proceedings commenced",
		"Bank of Example v. Doe — Power Of Sale",
	}

	for _, title := range titles {
		result := Classify(title, "")
		assert.True(t, result.Relevant, title)
		assert.Equal(t, domain.CategoryPowerOfSale, result.Category, title)
	}
}

func TestClassify_NoKeywordsNotRelevant(t *testing.T) {
	t.Parallel()

	for _, title := range []string{
		"Motion schedule for the fall term",
		"Small claims settlement conference",
		"",
	} {
		result := Classify(title, "")
		assert.False(t, result.Relevant, title)
		assert.Empty(t, result.Category, title)
		assert.Empty(t, result.Matched, title)
	}
}

func TestClassify_PrecedenceOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		title string
		want  domain.AlertCategory
	}{
		{"power of sale beats generic property", "Power of sale of commercial property", domain.CategoryPowerOfSale},
		{"foreclosure beats lien", "Foreclosure following construction lien", domain.CategoryPowerOfSale},
		{"estate beats property", "Estate of Jane Doe, property to be administered", domain.CategoryEstateSale},
		{"development beats real estate", "Development application for real estate parcel", domain.CategoryDevelopmentApplication},
		{"lone lien falls through", "Construction lien registered", domain.CategoryLienClaim},
		{"mortgage alone is a lien claim", "Mortgage default proceedings", domain.CategoryLienClaim},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Classify(tc.title, "")
			assert.True(t, result.Relevant)
			assert.Equal(t, tc.want, result.Category)
		})
	}
}

func TestClassify_BodyTextCounts(t *testing.T) {
	t.Parallel()

	result := Classify("Hearing notice", "probate of the estate of John Doe")

	assert.True(t, result.Relevant)
	assert.Equal(t, domain.CategoryEstateSale, result.Category)
}

func TestClassify_CollectsAllMatches(t *testing.T) {
	t.Parallel()

	result := Classify("Power of sale: mortgage default on commercial property", "")

	assert.Equal(t, domain.CategoryPowerOfSale, result.Category)
	assert.Contains(t, result.Matched, "power of sale")
	assert.Contains(t, result.Matched, "mortgage")
	assert.Contains(t, result.Matched, "property")
}

func TestScore_BoundsForEveryRule(t *testing.T) {
	t.Parallel()

	for _, r := range rules {
		for _, keyword := range r.keywords {
			result := Classify("Notice regarding "+keyword, "")
			assert.True(t, result.Relevant, keyword)

			score := Score(result)
			assert.GreaterOrEqual(t, score, 60, keyword)
			assert.LessOrEqual(t, score, 100, keyword)
		}
	}
}

func TestScore_ExtraMatchesRaiseScoreUpToCap(t *testing.T) {
	t.Parallel()

	single := Score(Classify("power of sale", ""))
	double := Score(Classify("power of sale after foreclosure", ""))
	assert.Greater(t, double, single)

	// pile on keywords from every rule; the cap must hold
	loaded := Classify("power of sale foreclosure estate probate development zoning lien mortgage property real estate", "")
	assert.LessOrEqual(t, Score(loaded), 100)
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()

	result := Classify("Power of sale of property", "")
	assert.Equal(t, Score(result), Score(result))
}

func TestTimelineMonths_Bounds(t *testing.T) {
	t.Parallel()

	for _, category := range []domain.AlertCategory{
		domain.CategoryPowerOfSale,
		domain.CategoryEstateSale,
		domain.CategoryLienClaim,
		domain.CategoryDevelopmentApplication,
	} {
		months := TimelineMonths(category)
		assert.GreaterOrEqual(t, months, 3, category)
		assert.LessOrEqual(t, months, 9, category)
	}
}

func TestPriorityForScore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.PriorityHigh, PriorityForScore(92))
	assert.Equal(t, domain.PriorityHigh, PriorityForScore(85))
	assert.Equal(t, domain.PriorityMedium, PriorityForScore(84))
	assert.Equal(t, domain.PriorityMedium, PriorityForScore(70))
	assert.Equal(t, domain.PriorityLow, PriorityForScore(69))
	assert.Equal(t, domain.PriorityLow, PriorityForScore(60))
}

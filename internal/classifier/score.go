package classifier

import "filing_watcher/internal/domain"

const (
	scoreFloor = 60
	scoreCeil  = 100

	extraMatchBonus = 4
)

// Base scores reflect how directly a category converts into an acquisition
// opportunity; distressed sales rank above planning paperwork.
var categoryBase = map[domain.AlertCategory]int{
	domain.CategoryPowerOfSale:            80,
	domain.CategoryEstateSale:             72,
	domain.CategoryLienClaim:              68,
	domain.CategoryDevelopmentApplication: 64,
}

// Typical months until the underlying property can realistically transact.
var categoryTimeline = map[domain.AlertCategory]int{
	domain.CategoryPowerOfSale:            3,
	domain.CategoryEstateSale:             6,
	domain.CategoryLienClaim:              6,
	domain.CategoryDevelopmentApplication: 9,
}

// Score computes the deterministic opportunity score for a relevant
// classification: category base plus a small bonus per additional matched
// keyword, clamped to [60,100].
func Score(result Result) int {
	score := categoryBase[result.Category]
	if extra := len(result.Matched) - 1; extra > 0 {
		score += extra * extraMatchBonus
	}
	if score < scoreFloor {
		score = scoreFloor
	}
	if score > scoreCeil {
		score = scoreCeil
	}
	return score
}

// TimelineMonths returns the estimated months to opportunity for a category,
// always within [3,9].
func TimelineMonths(category domain.AlertCategory) int {
	if months, ok := categoryTimeline[category]; ok {
		return months
	}
	return 6
}

// PriorityForScore maps an opportunity score onto the alert priority scale:
// 85 and above is HIGH, 70 and above is MEDIUM, everything else LOW.
func PriorityForScore(score int) domain.AlertPriority {
	switch {
	case score >= 85:
		return domain.PriorityHigh
	case score >= 70:
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}

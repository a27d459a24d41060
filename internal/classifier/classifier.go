package classifier

import (
	"strings"

	"filing_watcher/internal/domain"
)

// Result is the outcome of classifying one filing title/body.
type Result struct {
	Relevant bool
	Category domain.AlertCategory
	Matched  []string
}

type rule struct {
	category domain.AlertCategory
	keywords []string
}

// Rules are evaluated in declaration order and the first rule with a keyword
// hit decides the category: power-of-sale keywords outrank estate keywords,
// which outrank development keywords, which outrank the generic property and
// lien terms. Hits in later rules still land in Matched so scoring can weigh
// how strongly a filing reads as real estate. The estate keywords are phrases
// rather than the bare word because "real estate" contains "estate" as a
// substring and belongs to the generic rule.
var rules = []rule{
	{domain.CategoryPowerOfSale, []string{"power of sale", "foreclosure", "mortgage enforcement"}},
	{domain.CategoryEstateSale, []string{"estate sale", "estate of", "estate administration", "probate", "executor"}},
	{domain.CategoryDevelopmentApplication, []string{"development", "zoning", "subdivision", "committee of adjustment"}},
	{domain.CategoryLienClaim, []string{"lien", "mortgage", "property", "real estate"}},
}

// Classify decides real-estate relevance for a filing title and optional body
// text. Matching is case-insensitive substring search; no other normalization
// is applied, unknown encodings pass through as opaque text.
func Classify(title, body string) Result {
	text := strings.ToLower(strings.TrimSpace(title + " " + body))
	if text == "" {
		return Result{}
	}

	var result Result
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			if !result.Relevant {
				result.Relevant = true
				result.Category = r.category
			}
			result.Matched = append(result.Matched, keyword)
		}
	}
	return result
}

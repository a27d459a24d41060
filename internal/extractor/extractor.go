package extractor

import (
	"encoding/xml"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Candidate is one document reference pulled out of a feed before it becomes
// a persisted filing. Summary, GUID and PublishedAt are best effort and only
// populated for RSS/Atom input.
type Candidate struct {
	Title       string
	URL         string
	GUID        string
	Summary     string
	PublishedAt time.Time
}

// Extract parses raw HTML or RSS/Atom markup and returns candidates with
// their targets resolved against baseURL. Candidates are deduplicated by
// absolute URL, first occurrence wins, order preserved. Malformed input never
// errors; the worst case is an empty result.
func Extract(content, baseURL string) []Candidate {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}

	var candidates []Candidate
	switch {
	case looksLike(trimmed, "<rss"):
		candidates = extractRSS(trimmed)
	case looksLike(trimmed, "<feed"):
		candidates = extractAtom(trimmed)
	default:
		candidates = extractHTML(trimmed)
	}

	return resolveAndDedup(candidates, baseURL)
}

// looksLike inspects only the document head so a feed URL mentioned inside an
// HTML page does not flip the parser choice.
func looksLike(content, marker string) bool {
	head := content
	if len(head) > 1024 {
		head = head[:1024]
	}
	return strings.Contains(head, marker)
}

func extractHTML(content string) []Candidate {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var candidates []Candidate
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		candidates = append(candidates, Candidate{
			Title: strings.TrimSpace(sel.Text()),
			URL:   href,
		})
	})
	return candidates
}

type rssDocument struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

func extractRSS(content string) []Candidate {
	var doc rssDocument
	if err := xml.Unmarshal([]byte(content), &doc); err != nil {
		return nil
	}

	candidates := make([]Candidate, 0, len(doc.Channel.Items))
	for _, item := range doc.Channel.Items {
		candidates = append(candidates, Candidate{
			Title:       strings.TrimSpace(item.Title),
			URL:         strings.TrimSpace(item.Link),
			GUID:        strings.TrimSpace(item.GUID),
			Summary:     strings.TrimSpace(item.Description),
			PublishedAt: parsePubDate(item.PubDate),
		})
	}
	return candidates
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title string `xml:"title"`
	Links []struct {
		Href string `xml:"href,attr"`
		Rel  string `xml:"rel,attr"`
	} `xml:"link"`
	ID      string `xml:"id"`
	Summary string `xml:"summary"`
	Updated string `xml:"updated"`
}

func extractAtom(content string) []Candidate {
	var feed atomFeed
	if err := xml.Unmarshal([]byte(content), &feed); err != nil {
		return nil
	}

	candidates := make([]Candidate, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		href := ""
		for _, link := range entry.Links {
			if link.Rel == "" || link.Rel == "alternate" {
				href = link.Href
				break
			}
		}
		candidates = append(candidates, Candidate{
			Title:       strings.TrimSpace(entry.Title),
			URL:         strings.TrimSpace(href),
			GUID:        strings.TrimSpace(entry.ID),
			Summary:     strings.TrimSpace(entry.Summary),
			PublishedAt: parseAtomTime(entry.Updated),
		})
	}
	return candidates
}

func parsePubDate(value string) time.Time {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC1123Z, time.RFC1123, time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func parseAtomTime(value string) time.Time {
	if parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(value)); err == nil {
		return parsed
	}
	return time.Time{}
}

// resolveAndDedup resolves each candidate target against base and drops
// entries whose URL is empty, unparseable, not absolute after resolution, or
// already seen earlier in the same extraction.
func resolveAndDedup(candidates []Candidate, baseURL string) []Candidate {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		base = nil
	}

	seen := make(map[string]struct{}, len(candidates))
	result := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		raw := strings.TrimSpace(c.URL)
		if raw == "" {
			continue
		}
		ref, err := url.Parse(raw)
		if err != nil {
			continue
		}
		if base != nil {
			ref = base.ResolveReference(ref)
		}
		if !ref.IsAbs() {
			continue
		}
		abs := ref.String()
		if _, ok := seen[abs]; ok {
			continue
		}
		seen[abs] = struct{}{}
		c.URL = abs
		result = append(result, c)
	}
	return result
}

package scraper

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Date patterns tried against the page's flattened text, in priority order.
var (
	gaInlineRe = regexp.MustCompile(`(?i)General Availability\s*:?\s*(\d{4}[/-]\d{1,2}[/-]\d{1,2})`)

	genericDateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:Release )?Date\s*[:=]\s*(\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`),
		regexp.MustCompile(`(?is)\b(?:GA|General Availability).*?(\d{4}[/-]\d{1,2}[/-]\d{1,2})\b`),
		regexp.MustCompile(`(?i)\b(?:GA|General Availability)\s+(?:on )?(\w+ \d{1,2}, \d{4})\b`),
		regexp.MustCompile(`(?i)\b(?:Released on|as of)\s+(\w+ \d{1,2}, \d{4})\b`),
	}

	// Layouts tried in order against each generic-pattern candidate.
	dateLayouts = []string{"2006-1-2", "January 2, 2006", "Jan 2, 2006"}
)

// ExtractReleaseDate finds the General Availability date on a JDK release
// page and normalizes it to YYYY-MM-DD. Strategies run in strict priority
// order and the first success wins:
//
//  1. the milestones table's General Availability row,
//  2. an inline "General Availability: <date>" phrase,
//  3. generic labeled/GA/released-on date patterns.
//
// The second return value is false when no strategy matched; callers
// supply their own fallback date.
func ExtractReleaseDate(doc *goquery.Document) (string, bool) {
	if date, ok := milestoneTableDate(doc); ok {
		return date, true
	}

	text := doc.Text()

	if m := gaInlineRe.FindStringSubmatch(text); m != nil {
		normalized := strings.ReplaceAll(m[1], "/", "-")
		if t, err := time.Parse("2006-1-2", normalized); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	for _, re := range genericDateRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.ReplaceAll(m[1], "/", "-")
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, candidate); err == nil {
				return t.Format("2006-01-02"), true
			}
		}
	}

	return "", false
}

// milestoneTableDate scans milestones tables for the General Availability
// row and parses its date cell. The first matching row in document order
// wins; rows with malformed dates are skipped.
func milestoneTableDate(doc *goquery.Document) (string, bool) {
	var date string
	doc.Find("table.milestones tr.milestone").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() < 3 {
			return true
		}
		label := strings.ToLower(cells.Eq(2).Text())
		if !strings.Contains(label, "general availability") {
			return true
		}
		t, err := time.Parse("2006/01/02", strings.TrimSpace(cells.Eq(0).Text()))
		if err != nil {
			return true
		}
		date = t.Format("2006-01-02")
		return false
	})
	return date, date != ""
}

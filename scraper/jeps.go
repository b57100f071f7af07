package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Pre-compiled patterns for JEP references in hrefs and anchor text.
var (
	jepHrefRe   = regexp.MustCompile(`(?i)jeps?[/-](\d+)`)
	jepTextRe   = regexp.MustCompile(`(?i)^jep\s*\d+`)
	jepSplitRe  = regexp.MustCompile(`(?i)jep\s*(\d+)[:\s]*(.*)`)
	jepPrefixRe = regexp.MustCompile(`(?i)^jep\s*\d+[:\s]*`)
)

// sectionPhrases returns the heading phrases that mark a JEP listing,
// in priority order.
func sectionPhrases(version string) []string {
	return []string{
		fmt.Sprintf("features in jdk %s", version),
		fmt.Sprintf("jdk %s features", version),
		"features",
		"jeps",
		fmt.Sprintf("jdk %s jeps", version),
	}
}

// ExtractJEPs finds the JEPs referenced on a JDK release page.
//
// Two phases run in priority order. Phase 1 scopes the link scan to the
// container following a features/JEPs heading; every heading phrase may
// contribute. Phase 2 scans the whole document for JEP-shaped hrefs and
// only runs when Phase 1 found nothing. Results are deduplicated by JEP
// number; the first occurrence wins and discovery order is preserved.
//
// An empty result is a normal outcome, not an error: it signals that the
// page held no recognizable JEP references and the caller should fall
// back to sample content.
func ExtractJEPs(doc *goquery.Document, version string) []JEP {
	var jeps []JEP
	seen := make(map[string]bool)

	// Phase 1: section-scoped extraction.
	for _, phrase := range sectionPhrases(version) {
		heading := findHeading(doc, phrase)
		if heading == nil {
			continue
		}

		container := firstFollowingElement(heading, containerTags)
		if container == nil {
			container = heading.Parent
		}
		if container == nil {
			continue
		}

		forEachElement(container, "a", func(link *html.Node) bool {
			href := strings.ToLower(attrValue(link, "href"))
			text := elementText(link)
			if href == "" || text == "" {
				return true
			}

			var number, title string
			if m := jepHrefRe.FindStringSubmatch(href); m != nil {
				// Href pattern like /jeps/123 or jep-123.
				number = m[1]
				title = text
			} else if jepTextRe.MatchString(text) {
				// Text pattern like "JEP 123: Title".
				if m := jepSplitRe.FindStringSubmatch(text); m != nil {
					number = m[1]
					title = strings.TrimSpace(m[2])
				}
			}

			if number == "" || seen[number] {
				return true
			}
			seen[number] = true

			if title == "" || strings.HasPrefix(strings.ToLower(title), "jep") {
				title = strings.TrimSpace(jepPrefixRe.ReplaceAllString(title, ""))
				if title == "" || strings.HasPrefix(strings.ToLower(title), "jep") {
					title = "JEP " + number
				}
			}

			// A paragraph directly after the link doubles as its summary.
			description := ""
			if next := nextSiblingElement(link); next != nil && next.Data == "p" {
				description = elementText(next)
			}

			jeps = append(jeps, JEP{Number: number, Title: title, Description: description})
			return true
		})
	}

	if len(jeps) > 0 {
		return jeps
	}

	// Phase 2: document-wide fallback.
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if href == "" || text == "" {
			return
		}

		m := jepHrefRe.FindStringSubmatch(href)
		if m == nil {
			return
		}
		number := m[1]
		if seen[number] {
			return
		}
		seen[number] = true

		title := text
		if strings.HasPrefix(strings.ToLower(title), "jep") {
			title = strings.TrimSpace(jepPrefixRe.ReplaceAllString(title, ""))
		}
		if title == "" {
			title = "JEP " + number
		}

		jeps = append(jeps, JEP{Number: number, Title: title})
	})

	return jeps
}

// findHeading returns the first h1-h4 element whose text contains phrase
// (case-insensitive), or nil.
func findHeading(doc *goquery.Document, phrase string) *html.Node {
	phrase = strings.ToLower(phrase)
	var found *html.Node
	doc.Find("h1, h2, h3, h4").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), phrase) {
			found = sel.Get(0)
			return false
		}
		return true
	})
	return found
}

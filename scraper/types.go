// Package scraper fetches OpenJDK release pages and extracts structured
// release information: the JDK Enhancement Proposals (JEPs) shipping in a
// release and its General Availability date.
//
// Extraction is best-effort. The OpenJDK project pages are not published
// against any schema, so the extractors try a sequence of heuristics in
// priority order and return partial or empty results rather than fail.
// Callers are expected to substitute sample data when extraction comes back
// empty (see SampleRelease).
package scraper

// Example is a titled code example attached to a JEP.
type Example struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// JEP is a single JDK Enhancement Proposal discovered on a release page.
type JEP struct {
	// Number is the JEP's numeric identifier as a digit string.
	// It is the deduplication key within a release.
	Number string `json:"number"`

	// Title is the human-readable title. Never empty in extractor output;
	// a synthesized "JEP <number>" is used when no usable title was found.
	Title string `json:"title"`

	// Description is a short summary, empty when none was found.
	Description string `json:"description,omitempty"`

	// Examples holds code examples in presentation order.
	Examples []Example `json:"examples,omitempty"`
}

// Release describes one JDK version: its date, tagline, and the ordered
// list of JEPs that ship in it.
type Release struct {
	// Version is the JDK version identifier (usually numeric, e.g. "25").
	Version string `json:"version"`

	// ReleaseDate is the General Availability date in YYYY-MM-DD form,
	// or a caller-chosen fallback when unknown.
	ReleaseDate string `json:"release_date"`

	// Tagline is the subtitle shown on the deck's title slide.
	Tagline string `json:"tagline"`

	// JEPs is append-only; order is discovery order.
	JEPs []JEP `json:"jeps"`
}

// AddJEP appends a JEP to the release. A JEP whose number is already
// present is dropped: the first-seen record wins, keeping the list free
// of duplicate numbers.
func (r *Release) AddJEP(jep JEP) {
	for _, existing := range r.JEPs {
		if existing.Number == jep.Number {
			return
		}
	}
	r.JEPs = append(r.JEPs, jep)
}

package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestExtractJEPs_SectionScoped(t *testing.T) {
	page := `<html><body>
		<h2>Features in JDK 25</h2>
		<ul>
			<li><a href="/jeps/456">JEP 456: Virtual Threads</a></li>
		</ul>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 1)
	assert.Equal(t, "456", jeps[0].Number)
	assert.Equal(t, "Virtual Threads", jeps[0].Title)
}

func TestExtractJEPs_DescriptionFromFollowingParagraph(t *testing.T) {
	page := `<html><body>
		<h2>Features</h2>
		<div>
			<a href="/jeps/111">JEP 111: Scoped Values</a>
			<p>Introduce scoped values for sharing immutable data.</p>
			<a href="/jeps/222">JEP 222: Vector API</a>
		</div>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 2)
	assert.Equal(t, "Introduce scoped values for sharing immutable data.", jeps[0].Description)
	assert.Empty(t, jeps[1].Description)
}

func TestExtractJEPs_TextPatternStrategy(t *testing.T) {
	// The href gives no JEP number; the anchor text does.
	page := `<html><body>
		<h2>JEPs</h2>
		<ul>
			<li><a href="https://example.com/details">JEP 333: Quantum Leap</a></li>
		</ul>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 1)
	assert.Equal(t, "333", jeps[0].Number)
	assert.Equal(t, "Quantum Leap", jeps[0].Title)
}

func TestExtractJEPs_DedupFirstSeenWins(t *testing.T) {
	page := `<html><body>
		<h2>Features</h2>
		<ul>
			<li><a href="/jeps/456">JEP 456: Virtual Threads</a></li>
			<li><a href="/jeps/456">JEP 456 again, different text</a></li>
			<li><a href="jep-456">another alias</a></li>
		</ul>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 1)
	assert.Equal(t, "456", jeps[0].Number)
	assert.Equal(t, "Virtual Threads", jeps[0].Title)
}

func TestExtractJEPs_PhasePriority(t *testing.T) {
	// Phase 1 finds one JEP; the document-wide scan would find another,
	// but must not run.
	page := `<html><body>
		<h2>Features</h2>
		<ul>
			<li><a href="/jeps/456">JEP 456: Virtual Threads</a></li>
		</ul>
		<p>See also <a href="/jeps/999">JEP 999: Unrelated</a>.</p>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 1)
	assert.Equal(t, "456", jeps[0].Number)
}

func TestExtractJEPs_MultipleHeadingsContribute(t *testing.T) {
	page := `<html><body>
		<h2>Features in JDK 25</h2>
		<ul><li><a href="/jeps/100">JEP 100: One</a></li></ul>
		<h2>JEPs</h2>
		<ul><li><a href="/jeps/200">JEP 200: Two</a></li></ul>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 2)
	assert.Equal(t, "100", jeps[0].Number)
	assert.Equal(t, "200", jeps[1].Number)
}

func TestExtractJEPs_HeadingFallsBackToParent(t *testing.T) {
	// No container element follows the heading; its parent is scanned.
	page := `<html><body>
		<div><h3>JEPs</h3><a href="/jeps/700">JEP 700: Seven Hundred</a></div>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 1)
	assert.Equal(t, "700", jeps[0].Number)
	assert.Equal(t, "Seven Hundred", jeps[0].Title)
}

func TestExtractJEPs_DocumentWideFallback(t *testing.T) {
	page := `<html><body>
		<p><a href="https://openjdk.org/jeps/456">JEP 456: Virtual Threads</a></p>
		<p><a href="/jeps/789">Structured Concurrency</a></p>
		<p><a href="/about">About the project</a></p>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 2)
	assert.Equal(t, "456", jeps[0].Number)
	assert.Equal(t, "Virtual Threads", jeps[0].Title)
	assert.Equal(t, "789", jeps[1].Number)
	assert.Equal(t, "Structured Concurrency", jeps[1].Title)
	assert.Empty(t, jeps[0].Description)
}

func TestExtractJEPs_FallbackSynthesizesTitle(t *testing.T) {
	page := `<html><body><a href="/jeps/500">JEP 500</a></body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 1)
	assert.Equal(t, "JEP 500", jeps[0].Title)
}

func TestExtractJEPs_SkipsMalformedLinks(t *testing.T) {
	page := `<html><body>
		<h2>Features</h2>
		<ul>
			<li><a href="">JEP 600: No href</a></li>
			<li><a href="/jeps/601"></a></li>
			<li><a href="/jeps/602">JEP 602: Valid</a></li>
		</ul>
	</body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	require.Len(t, jeps, 1)
	assert.Equal(t, "602", jeps[0].Number)
}

func TestExtractJEPs_NothingFound(t *testing.T) {
	page := `<html><body><h1>Welcome</h1><p>No proposals here.</p></body></html>`

	jeps := ExtractJEPs(parseDoc(t, page), "25")

	assert.Empty(t, jeps)
}

func TestExtractJEPs_Idempotent(t *testing.T) {
	page := `<html><body>
		<h2>Features in JDK 25</h2>
		<ul>
			<li><a href="/jeps/456">JEP 456: Virtual Threads</a></li>
			<li><a href="/jeps/789">JEP 789: Structured Concurrency</a></li>
		</ul>
	</body></html>`
	doc := parseDoc(t, page)

	first := ExtractJEPs(doc, "25")
	second := ExtractJEPs(doc, "25")

	require.Equal(t, first, second)
}

package deck

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/jdkdeck/scraper"
)

func TestGenerator_SlideOrder(t *testing.T) {
	release := &scraper.Release{Version: "25", ReleaseDate: "2025-09-16", Tagline: "The Future of Java"}
	release.AddJEP(scraper.JEP{
		Number: "456",
		Title:  "Virtual Threads",
		Examples: []scraper.Example{
			{Title: "Spawning", Content: "Thread.startVirtualThread(task);"},
			{Title: "Joining", Content: "thread.join();"},
		},
	})
	release.AddJEP(scraper.JEP{Number: "789", Title: "Structured Concurrency"})

	prs := NewGenerator(DefaultTheme()).Generate(release)

	// Title slide, JEP 456, its two examples, JEP 789.
	assert.Equal(t, 5, prs.SlideCount())
}

func TestGenerator_WriteFile(t *testing.T) {
	release := scraper.SampleRelease("25")
	path := filepath.Join(t.TempDir(), "deck.pptx")

	err := NewGenerator(DefaultTheme()).WriteFile(release, path)
	require.NoError(t, err)

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	wantSlides := 1
	for _, jep := range release.JEPs {
		wantSlides += 1 + len(jep.Examples)
	}

	slides := 0
	parts := make(map[string]bool)
	for _, f := range r.File {
		parts[f.Name] = true
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") &&
			!strings.Contains(f.Name, "_rels") {
			slides++
		}
	}

	assert.Equal(t, wantSlides, slides)
	assert.True(t, parts["[Content_Types].xml"])
	assert.True(t, parts["ppt/presentation.xml"])

	// The title slide carries the release heading and tagline.
	title := readZipPart(t, &r.Reader, "ppt/slides/slide1.xml")
	assert.Contains(t, title, "JAVA 25")
	assert.Contains(t, title, "The Future of Java (Release date 2024-10-22)")
	assert.Contains(t, title, fmt.Sprintf(`val=%q`, DefaultTheme().Background))
}

func TestGenerator_WriteFile_BadPath(t *testing.T) {
	release := scraper.SampleRelease("25")
	err := NewGenerator(DefaultTheme()).WriteFile(release, filepath.Join(t.TempDir(), "no", "such", "dir.pptx"))
	assert.Error(t, err)
}

func readZipPart(t *testing.T, r *zip.Reader, name string) string {
	t.Helper()
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

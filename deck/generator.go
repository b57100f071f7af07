package deck

import (
	"fmt"

	"github.com/c360studio/jdkdeck/deck/pptx"
	"github.com/c360studio/jdkdeck/scraper"
)

// Generator renders Release records into presentations.
type Generator struct {
	theme Theme
}

// NewGenerator creates a generator with the given theme.
func NewGenerator(theme Theme) *Generator {
	return &Generator{theme: theme}
}

// Generate builds the deck in memory. Slide order is fixed: the title
// slide, then one slide per JEP in release order, each followed by one
// slide per example of that JEP.
func (g *Generator) Generate(release *scraper.Release) *pptx.Presentation {
	prs := pptx.New()
	prs.Width = pptx.Inches(g.theme.SlideWidth)
	prs.Height = pptx.Inches(g.theme.SlideHeight)

	g.addTitleSlide(prs, release)

	for _, jep := range release.JEPs {
		g.addJEPSlide(prs, jep)
		for i, example := range jep.Examples {
			title := fmt.Sprintf("JEP %s Example %d", jep.Number, i+1)
			content := fmt.Sprintf("%s\n\n%s", example.Title, example.Content)
			g.addExampleSlide(prs, title, content)
		}
	}

	return prs
}

// WriteFile generates the deck and saves it to path.
func (g *Generator) WriteFile(release *scraper.Release, path string) error {
	return g.Generate(release).Save(path)
}

func (g *Generator) addTitleSlide(prs *pptx.Presentation, release *scraper.Release) {
	slide := prs.AddSlide()
	slide.Background = g.theme.Background

	// A single box holds both title and subtitle, centered vertically.
	height := pptx.Inches(2.2)
	box := slide.AddTextBox(pptx.Inches(0.6), (prs.Height-height)/2, g.contentWidth(), height)
	box.VerticalCenter = true

	title := box.AddParagraph(fmt.Sprintf("JAVA %s", release.Version))
	title.Font = g.theme.TitleFont
	title.Size = g.theme.TitleSize
	title.Color = g.theme.TextColor
	title.SpaceAfter = 12

	subtitle := box.AddParagraph(fmt.Sprintf("%s (Release date %s)", release.Tagline, release.ReleaseDate))
	subtitle.Font = g.theme.BodyFont
	subtitle.Size = g.theme.SubtitleSize
	subtitle.Color = g.theme.TextColor
}

func (g *Generator) addJEPSlide(prs *pptx.Presentation, jep scraper.JEP) {
	slide := prs.AddSlide()
	slide.Background = g.theme.Background

	height := pptx.Inches(2.8)
	box := slide.AddTextBox(pptx.Inches(0.6), (prs.Height-height)/2, g.contentWidth(), height)
	box.VerticalCenter = true

	number := box.AddParagraph("JEP " + jep.Number)
	number.Font = g.theme.TitleFont
	number.Size = g.theme.TitleSize
	number.Color = g.theme.TextColor
	number.SpaceAfter = 12

	title := box.AddParagraph(jep.Title)
	title.Font = g.theme.BodyFont
	title.Size = g.theme.SubtitleSize
	title.Color = g.theme.TextColor
}

func (g *Generator) addExampleSlide(prs *pptx.Presentation, title, content string) {
	slide := prs.AddSlide()
	slide.Background = g.theme.Background

	titleBox := slide.AddTextBox(pptx.Inches(0.6), pptx.Inches(0.5), g.contentWidth(), pptx.Inches(1))
	heading := titleBox.AddParagraph(title)
	heading.Font = g.theme.TitleFont
	heading.Size = g.theme.TitleSize
	heading.Color = g.theme.TextColor

	contentBox := slide.AddTextBox(pptx.Inches(0.6), pptx.Inches(1.5), g.contentWidth(), pptx.Inches(3.5))
	code := contentBox.AddParagraph(content)
	code.Font = g.theme.CodeFont
	code.Size = g.theme.CodeSize
	code.Color = g.theme.TextColor
	code.Bold = true
}

func (g *Generator) contentWidth() int64 {
	return pptx.Inches(g.theme.SlideWidth - 1)
}

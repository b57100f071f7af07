// Package pptx writes PowerPoint (.pptx) files.
//
// It implements the small slice of Office Open XML that slide deck
// generation needs: slides with a solid background fill and absolutely
// positioned text boxes. Packages are assembled with archive/zip; no
// third-party OOXML library is involved.
package pptx

// EMUPerInch is the number of English Metric Units per inch, the
// coordinate unit used throughout DrawingML.
const EMUPerInch = 914400

// Inches converts inches to EMU.
func Inches(in float64) int64 {
	return int64(in * EMUPerInch)
}

// Alignment values for paragraphs.
const (
	AlignLeft   = "l"
	AlignCenter = "ctr"
	AlignRight  = "r"
)

// Presentation is an in-memory slide deck. Slide size defaults to
// 10in x 5.625in (16:9).
type Presentation struct {
	// Width and Height are the slide dimensions in EMU.
	Width  int64
	Height int64

	slides []*Slide
}

// New creates an empty 16:9 presentation.
func New() *Presentation {
	return &Presentation{
		Width:  Inches(10),
		Height: Inches(5.625),
	}
}

// AddSlide appends a new empty slide and returns it.
func (p *Presentation) AddSlide() *Slide {
	s := &Slide{}
	p.slides = append(p.slides, s)
	return s
}

// SlideCount returns the number of slides added so far.
func (p *Presentation) SlideCount() int {
	return len(p.slides)
}

// Slide is a single slide: an optional solid background and text boxes.
type Slide struct {
	// Background is a solid fill color as RRGGBB hex; empty means the
	// layout's background shows through.
	Background string

	boxes []*TextBox
}

// AddTextBox places a text box at (x, y) with size (w, h), all in EMU.
func (s *Slide) AddTextBox(x, y, w, h int64) *TextBox {
	tb := &TextBox{x: x, y: y, w: w, h: h}
	s.boxes = append(s.boxes, tb)
	return tb
}

// TextBox is an absolutely positioned text frame holding paragraphs.
type TextBox struct {
	x, y, w, h int64

	// VerticalCenter anchors the text block to the middle of the box.
	VerticalCenter bool

	paras []*Paragraph
}

// AddParagraph appends a paragraph with the given text. Newlines in the
// text become line breaks within the paragraph.
func (t *TextBox) AddParagraph(text string) *Paragraph {
	p := &Paragraph{Text: text, Size: 18, Align: AlignLeft}
	t.paras = append(t.paras, p)
	return p
}

// Paragraph is a run of uniformly styled text.
type Paragraph struct {
	Text string

	// Font is the latin typeface name; empty uses the theme font.
	Font string

	// Size is the font size in points.
	Size float64

	// Color is the text color as RRGGBB hex; empty uses the theme color.
	Color string

	Bold bool

	// Align is one of AlignLeft, AlignCenter, AlignRight.
	Align string

	// SpaceAfter adds spacing after the paragraph, in points.
	SpaceAfter float64
}

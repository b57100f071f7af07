// Package deck renders a Release into a styled .pptx slide deck: a title
// slide, one slide per JEP, and one slide per code example.
package deck

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

var hexColorRe = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Theme holds the deck's styling: colors, fonts, font sizes, and slide
// geometry. It is immutable once handed to a Generator.
type Theme struct {
	// Background is the slide background color as RRGGBB hex.
	Background string `yaml:"background"`
	// TextColor is the text color as RRGGBB hex.
	TextColor string `yaml:"text_color"`

	TitleFont string `yaml:"title_font"`
	BodyFont  string `yaml:"body_font"`
	CodeFont  string `yaml:"code_font"`

	// Font sizes in points.
	TitleSize    float64 `yaml:"title_size"`
	SubtitleSize float64 `yaml:"subtitle_size"`
	CodeSize     float64 `yaml:"code_size"`

	// Slide dimensions in inches.
	SlideWidth  float64 `yaml:"slide_width"`
	SlideHeight float64 `yaml:"slide_height"`
}

// DefaultTheme returns the stock styling: orange background, white text,
// 16:9 slides.
func DefaultTheme() Theme {
	return Theme{
		Background:   "FF5722",
		TextColor:    "FFFFFF",
		TitleFont:    "Alfa Slab One",
		BodyFont:     "Roboto",
		CodeFont:     "Courier New",
		TitleSize:    48,
		SubtitleSize: 24,
		CodeSize:     16,
		SlideWidth:   10,
		SlideHeight:  5.625,
	}
}

// LoadTheme reads a YAML theme file. Fields absent from the file keep
// their DefaultTheme values.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, fmt.Errorf("read theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return theme, fmt.Errorf("parse theme file: %w", err)
	}
	if err := theme.Validate(); err != nil {
		return theme, fmt.Errorf("invalid theme: %w", err)
	}
	return theme, nil
}

// Validate checks the theme for usable values.
func (t Theme) Validate() error {
	if !hexColorRe.MatchString(t.Background) {
		return fmt.Errorf("background must be RRGGBB hex, got %q", t.Background)
	}
	if !hexColorRe.MatchString(t.TextColor) {
		return fmt.Errorf("text_color must be RRGGBB hex, got %q", t.TextColor)
	}
	if t.TitleFont == "" || t.BodyFont == "" || t.CodeFont == "" {
		return fmt.Errorf("title_font, body_font, and code_font are required")
	}
	if t.TitleSize <= 0 || t.SubtitleSize <= 0 || t.CodeSize <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	if t.SlideWidth <= 0 || t.SlideHeight <= 0 {
		return fmt.Errorf("slide dimensions must be positive")
	}
	return nil
}

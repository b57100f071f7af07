package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme_Valid(t *testing.T) {
	require.NoError(t, DefaultTheme().Validate())
}

func TestTheme_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Theme)
	}{
		{"bad background", func(th *Theme) { th.Background = "orange" }},
		{"short hex", func(th *Theme) { th.TextColor = "FFF" }},
		{"missing font", func(th *Theme) { th.BodyFont = "" }},
		{"zero size", func(th *Theme) { th.TitleSize = 0 }},
		{"negative width", func(th *Theme) { th.SlideWidth = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme := DefaultTheme()
			tt.mutate(&theme)
			assert.Error(t, theme.Validate())
		})
	}
}

func TestLoadTheme_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("background: \"003366\"\ntitle_size: 40\n"), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "003366", theme.Background)
	assert.Equal(t, float64(40), theme.TitleSize)
	// Untouched fields keep their defaults.
	assert.Equal(t, DefaultTheme().BodyFont, theme.BodyFont)
}

func TestLoadTheme_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("background: chartreuse\n"), 0o644))

	_, err := LoadTheme(path)
	assert.Error(t, err)
}

func TestLoadTheme_MissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/filetug/crumbtug/pkg/anim"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	return filePath
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	s := Defaults()
	assert.NoError(t, s.Validate())
	assert.True(t, s.Animation.Enabled)
	assert.Equal(t, 200*time.Millisecond, s.Animation.Duration)
	assert.Equal(t, time.Duration(0), s.Animation.StartDelay)
	assert.Equal(t, 60, s.Animation.FPS)
	assert.Equal(t, 4, s.Edge.Range)
	assert.Equal(t, "› ", s.Layout.Separator)
	assert.Equal(t, 0, s.Layout.SegmentGap)
	assert.Equal(t, 1, s.Layout.LongNamePadding)
	assert.Equal(t, slog.LevelInfo, s.LogLevel())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("missing_not_required", func(t *testing.T) {
		s, err := Load(filepath.Join(t.TempDir(), "none.yaml"), false)
		assert.NoError(t, err)
		assert.Equal(t, Defaults(), s)
	})

	t.Run("missing_required", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "none.yaml"), true)
		assert.Error(t, err)
	})

	t.Run("empty_file", func(t *testing.T) {
		s, err := Load(writeSettings(t, ""), true)
		assert.NoError(t, err)
		assert.Equal(t, Defaults(), s)
	})

	t.Run("partial_override", func(t *testing.T) {
		s, err := Load(writeSettings(t, `
animation:
  duration: 350ms
  easing: linear
  enabled: false
edge:
  range: 8
colors:
  primary: "#ff0000"
log:
  level: debug
`), true)
		require.NoError(t, err)
		assert.Equal(t, 350*time.Millisecond, s.Animation.Duration)
		assert.False(t, s.Animation.Enabled)
		assert.Equal(t, 60, s.Animation.FPS, "untouched keys keep their defaults")
		assert.Equal(t, 8, s.Edge.Range)
		assert.Equal(t, "› ", s.Layout.Separator)
		assert.Equal(t, 0.5, s.Easing()(0.5))
		assert.Equal(t, tcell.NewRGBColor(255, 0, 0), s.CrumbColors().Primary)
		assert.Equal(t, slog.LevelDebug, s.LogLevel())
	})

	t.Run("invalid_yaml", func(t *testing.T) {
		_, err := Load(writeSettings(t, "animation: [1, 2"), true)
		assert.Error(t, err)
	})

	t.Run("invalid_values", func(t *testing.T) {
		_, err := Load(writeSettings(t, `
animation:
  fps: 0
  easing: bouncy
colors:
  separator: not-a-color
`), true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "animation.fps")
		assert.Contains(t, err.Error(), "animation.easing")
		assert.Contains(t, err.Error(), "colors.separator")
	})
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()
	filePath := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	s := Defaults()
	s.Animation.Duration = time.Second
	s.Layout.SegmentGap = 1
	require.NoError(t, Save(filePath, s))

	loaded, err := Load(filePath, true)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		modify func(s *Settings)
	}{
		{name: "negative_duration", modify: func(s *Settings) { s.Animation.Duration = -time.Millisecond }},
		{name: "negative_delay", modify: func(s *Settings) { s.Animation.StartDelay = -time.Millisecond }},
		{name: "fps_too_high", modify: func(s *Settings) { s.Animation.FPS = 1000 }},
		{name: "negative_range", modify: func(s *Settings) { s.Edge.Range = -1 }},
		{name: "negative_gap", modify: func(s *Settings) { s.Layout.SegmentGap = -1 }},
		{name: "negative_padding", modify: func(s *Settings) { s.Layout.LongNamePadding = -1 }},
		{name: "unknown_color", modify: func(s *Settings) { s.Colors.Primary = "ultraviolet" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			tt.modify(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalid)
		})
	}
}

func TestEasing_Fallback(t *testing.T) {
	t.Parallel()
	s := Defaults()
	s.Animation.Easing = "bouncy"
	assert.Equal(t, anim.Decelerate(0.3), s.Easing()(0.3))
}

func TestCrumbColors(t *testing.T) {
	t.Parallel()
	s := Defaults()
	s.Colors.Secondary = ""
	colors := s.CrumbColors()
	assert.Equal(t, tcell.ColorWhite, colors.Primary)
	assert.Equal(t, tcell.ColorDefault, colors.Secondary)
	assert.Equal(t, tcell.ColorGray, colors.Separator)
}

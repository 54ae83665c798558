// Package settings reads the YAML settings file of crumbtug.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/filetug/crumbtug/pkg/anim"
	"github.com/filetug/crumbtug/pkg/fsutils"
	"github.com/filetug/crumbtug/pkg/logutil"
	"github.com/filetug/crumbtug/pkg/sneatv/crumbs"
	"github.com/gdamore/tcell/v2"
)

var ErrInvalid = errors.New("invalid settings")

type Animation struct {
	Enabled    bool          `yaml:"enabled"`
	Duration   time.Duration `yaml:"duration"`
	StartDelay time.Duration `yaml:"start_delay"`
	Easing     string        `yaml:"easing"`
	FPS        int           `yaml:"fps"`
}

type Edge struct {
	Range int `yaml:"range"`
}

type Layout struct {
	Separator       string `yaml:"separator"`
	SegmentGap      int    `yaml:"segment_gap"`
	LongNamePadding int    `yaml:"long_name_padding"`
}

type Colors struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Separator string `yaml:"separator"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

type Settings struct {
	Animation Animation `yaml:"animation"`
	Edge      Edge      `yaml:"edge"`
	Layout    Layout    `yaml:"layout"`
	Colors    Colors    `yaml:"colors"`
	Log       Log       `yaml:"log"`
}

func Defaults() Settings {
	return Settings{
		Animation: Animation{
			Enabled:  true,
			Duration: 200 * time.Millisecond,
			Easing:   "decelerate",
			FPS:      anim.DefaultFPS,
		},
		Edge: Edge{Range: 4},
		Layout: Layout{
			Separator:       "› ",
			LongNamePadding: 1,
		},
		Colors: Colors{
			Primary:   "white",
			Secondary: "silver",
			Separator: "gray",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the settings file at filePath on top of the defaults.
// A missing file is not an error unless required is set.
func Load(filePath string, required bool) (Settings, error) {
	s := Defaults()
	if err := fsutils.ReadYAMLFile(fsutils.ExpandHome(filePath), required, &s); err != nil {
		return s, fmt.Errorf("failed to read settings from %s: %w", filePath, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", filePath, err)
	}
	return s, nil
}

// Save writes s to filePath.
func Save(filePath string, s Settings) error {
	return fsutils.WriteYAMLFile(fsutils.ExpandHome(filePath), s)
}

func (s Settings) Validate() error {
	var errs []error
	if s.Animation.Duration < 0 {
		errs = append(errs, fmt.Errorf("animation.duration must not be negative, got %v", s.Animation.Duration))
	}
	if s.Animation.StartDelay < 0 {
		errs = append(errs, fmt.Errorf("animation.start_delay must not be negative, got %v", s.Animation.StartDelay))
	}
	if s.Animation.FPS < 1 || s.Animation.FPS > 240 {
		errs = append(errs, fmt.Errorf("animation.fps must be within 1..240, got %d", s.Animation.FPS))
	}
	if _, err := anim.EasingByName(s.Animation.Easing); err != nil {
		errs = append(errs, fmt.Errorf("animation.easing: %w", err))
	}
	if s.Edge.Range < 0 {
		errs = append(errs, fmt.Errorf("edge.range must not be negative, got %d", s.Edge.Range))
	}
	if s.Layout.SegmentGap < 0 {
		errs = append(errs, fmt.Errorf("layout.segment_gap must not be negative, got %d", s.Layout.SegmentGap))
	}
	if s.Layout.LongNamePadding < 0 {
		errs = append(errs, fmt.Errorf("layout.long_name_padding must not be negative, got %d", s.Layout.LongNamePadding))
	}
	for key, name := range map[string]string{
		"colors.primary":   s.Colors.Primary,
		"colors.secondary": s.Colors.Secondary,
		"colors.separator": s.Colors.Separator,
	} {
		if _, err := parseColor(name); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Easing returns the easing function named in the settings, decelerate when the name is unknown.
func (s Settings) Easing() anim.EasingFunc {
	f, err := anim.EasingByName(s.Animation.Easing)
	if err != nil {
		return anim.Decelerate
	}
	return f
}

// CrumbColors converts the color names, unknown names become the terminal default.
func (s Settings) CrumbColors() crumbs.Colors {
	color := func(name string) tcell.Color {
		c, _ := parseColor(name)
		return c
	}
	return crumbs.Colors{
		Primary:   color(s.Colors.Primary),
		Secondary: color(s.Colors.Secondary),
		Separator: color(s.Colors.Separator),
	}
}

func (s Settings) LogLevel() slog.Level {
	return logutil.LevelFromString(s.Log.Level)
}

// parseColor accepts tcell color names and #rrggbb values. An empty name is the terminal default.
func parseColor(name string) (tcell.Color, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "default") {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

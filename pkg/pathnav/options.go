package pathnav

import (
	"log/slog"
	"time"

	"github.com/filetug/crumbtug/pkg/anim"
)

type navigatorOptions struct {
	segmentGap      int
	longNamePadding int
	logger          *slog.Logger
	coordinator     []CoordinatorOption
}

type Option func(o *navigatorOptions)

// WithSegmentGap sets the number of cells left before every segment.
func WithSegmentGap(cells int) Option {
	return func(o *navigatorOptions) {
		o.segmentGap = max(0, cells)
	}
}

// WithLongNamePadding sets the cells reserved at the end of the bar when the primary label
// does not fit next to the edge range.
func WithLongNamePadding(cells int) Option {
	return func(o *navigatorOptions) {
		o.longNamePadding = max(0, cells)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *navigatorOptions) {
		o.logger = logger
		o.coordinator = append(o.coordinator, WithCoordinatorLogger(logger))
	}
}

func WithAnimationDuration(d time.Duration) Option {
	return func(o *navigatorOptions) {
		o.coordinator = append(o.coordinator, WithDuration(d))
	}
}

func WithAnimationStartDelay(d time.Duration) Option {
	return func(o *navigatorOptions) {
		o.coordinator = append(o.coordinator, WithStartDelay(d))
	}
}

func WithAnimationEasing(f anim.EasingFunc) Option {
	return func(o *navigatorOptions) {
		o.coordinator = append(o.coordinator, WithEasing(f))
	}
}

func WithAnimationsEnabled(enabled bool) Option {
	return func(o *navigatorOptions) {
		o.coordinator = append(o.coordinator, WithAnimations(enabled))
	}
}

func WithSharedScheduler(s *anim.Scheduler) Option {
	return func(o *navigatorOptions) {
		o.coordinator = append(o.coordinator, WithScheduler(s))
	}
}

package crumbs

import "github.com/filetug/crumbtug/pkg/pathnav"

func WithSeparator(separator string) func(bc *Breadcrumbs) {
	return func(bc *Breadcrumbs) {
		bc.separator = separator
	}
}

// WithSeparatorStartIndex sets the first segment index that is prefixed with the separator.
func WithSeparatorStartIndex(i int) func(bc *Breadcrumbs) {
	return func(bc *Breadcrumbs) {
		bc.separatorStartIdx = i
	}
}

func WithColors(colors Colors) func(bc *Breadcrumbs) {
	return func(bc *Breadcrumbs) {
		bc.colors = colors
	}
}

// WithWheelStep sets how many cells a mouse wheel notch scrolls the bar.
func WithWheelStep(cells int) func(bc *Breadcrumbs) {
	return func(bc *Breadcrumbs) {
		if cells > 0 {
			bc.wheelStep = cells
		}
	}
}

// WithNavigatorOptions configures the navigator the bar renders.
func WithNavigatorOptions(options ...pathnav.Option) func(bc *Breadcrumbs) {
	return func(bc *Breadcrumbs) {
		bc.navOptions = append(bc.navOptions, options...)
	}
}

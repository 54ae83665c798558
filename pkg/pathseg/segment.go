// Package pathseg splits absolute paths into breadcrumb segments and diffs
// two segment lists.
package pathseg

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const Separator = '/'

// RootPath is the path of the root segment.
const RootPath = "/"

// ErrInvalidPath is matched by every InvalidPathError.
var ErrInvalidPath = errors.New("invalid path")

// InvalidPathError is returned when a path is empty or not absolute.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

func (e *InvalidPathError) Is(target error) bool {
	return target == ErrInvalidPath
}

// Segment is one directory level of a path.
type Segment struct {
	Label     string
	Path      string
	Index     int
	IsPrimary bool
}

func (s Segment) IsRoot() bool {
	return s.Index == 0
}

// WithPrimary returns a copy of the segment with the primary flag set to primary.
func (s Segment) WithPrimary(primary bool) Segment {
	s.IsPrimary = primary
	return s
}

// DisplayLabel is the label in NFC form, so decomposed names render as precomposed characters.
// Path and Label keep the bytes of the file system name.
func (s Segment) DisplayLabel() string {
	return norm.NFC.String(s.Label)
}

func (s Segment) String() string {
	return s.Path
}

// Validate checks that p can be split into segments.
func Validate(p string) error {
	if p == "" {
		return &InvalidPathError{Path: p, Reason: "path is empty"}
	}
	if p[0] != Separator {
		return &InvalidPathError{Path: p, Reason: "path is not absolute"}
	}
	return nil
}

// Split returns one segment per directory component of p, root first.
// The last segment is the primary one.
func Split(p string) ([]Segment, error) {
	return SplitFrom(p, 0)
}

// SplitFrom is like Split but skips the segments with an index lower than firstDirToAdd.
// Indexes of the returned segments are still counted from the root.
func SplitFrom(p string, firstDirToAdd int) ([]Segment, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	p = path.Clean(p)

	segments := make([]Segment, 0, strings.Count(p, string(Separator))+1)
	depth := 0
	start := 0
	for i := 0; i < len(p); i++ {
		if p[i] != Separator && i != len(p)-1 {
			continue
		}
		end := i
		if p[i] != Separator || i == 0 {
			end = i + 1
		}
		if depth >= firstDirToAdd {
			segmentPath := p[:end]
			label := p[start:end]
			if depth == 0 {
				segmentPath, label = RootPath, RootPath
			}
			segments = append(segments, Segment{
				Label: label,
				Path:  segmentPath,
				Index: depth,
			})
		}
		depth++
		start = i + 1
	}
	if n := len(segments); n > 0 && segments[n-1].Index == depth-1 {
		segments[n-1].IsPrimary = true
	}
	return segments, nil
}

// Count returns the number of segments Split would return for p.
func Count(p string) (int, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	p = path.Clean(p)
	if p == RootPath {
		return 1, nil
	}
	return strings.Count(p, string(Separator)) + 1, nil
}

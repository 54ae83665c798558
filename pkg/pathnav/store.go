package pathnav

import (
	"errors"
	"fmt"

	"github.com/filetug/crumbtug/pkg/pathseg"
)

// ErrRangeOutOfBounds is returned by Store.ApplyDiff for a diff computed against other segments.
var ErrRangeOutOfBounds = errors.New("diff does not match the stored segments")

// Entry pairs a segment with the visual state the bar draws it with.
type Entry struct {
	Segment pathseg.Segment

	// X is the layout position in content coordinates. It is frozen once the entry is removed.
	X     int
	Width int

	// TranslationX shifts the entry to the right of its layout position.
	TranslationX float64
	// Alpha is 1 for a fully visible entry and 0 for a gone one.
	Alpha float64

	removing bool
}

func newEntry(s pathseg.Segment) *Entry {
	return &Entry{Segment: s, Alpha: 1}
}

// Removing reports whether the entry left the path and waits for its exit animation.
func (e *Entry) Removing() bool {
	return e.removing
}

// Right returns the content coordinate just past the entry.
func (e *Entry) Right() int {
	return e.X + e.Width
}

// ChangeFunc receives the entries added and removed by a single ApplyDiff call.
type ChangeFunc func(added, removed []*Entry)

// Store owns the ordered segment entries of the bar.
// Removed entries stay in a pending list until Finalize is called for them.
type Store struct {
	live      []*Entry
	pending   []*Entry
	observers []ChangeFunc
}

func NewStore() *Store {
	return &Store{}
}

// Current returns the segments of the current path, root first.
func (s *Store) Current() []pathseg.Segment {
	segments := make([]pathseg.Segment, len(s.live))
	for i, e := range s.live {
		segments[i] = e.Segment
	}
	return segments
}

func (s *Store) Entries() []*Entry {
	return s.live
}

func (s *Store) Pending() []*Entry {
	return s.pending
}

func (s *Store) Len() int {
	return len(s.live)
}

// Primary returns the entry of the deepest segment, or nil for an empty store.
func (s *Store) Primary() *Entry {
	if len(s.live) == 0 {
		return nil
	}
	return s.live[len(s.live)-1]
}

// Path returns the path of the primary segment, or "" for an empty store.
func (s *Store) Path() string {
	if p := s.Primary(); p != nil {
		return p.Segment.Path
	}
	return ""
}

// OnChanged subscribes f to changes. The returned function unsubscribes it.
func (s *Store) OnChanged(f ChangeFunc) (unsubscribe func()) {
	s.observers = append(s.observers, f)
	i := len(s.observers) - 1
	return func() {
		if i < len(s.observers) {
			s.observers[i] = nil
		}
	}
}

// ApplyDiff replaces the removed range with the added segments and notifies observers once.
// Nothing changes when an error is returned.
func (s *Store) ApplyDiff(d pathseg.DiffResult) error {
	keep := 0
	if !d.FullRebuild() {
		if err := s.validate(d); err != nil {
			return err
		}
		keep = d.Removed.Start
	}

	removed := make([]*Entry, 0, len(s.live)-keep)
	for _, e := range s.live[keep:] {
		e.removing = true
		removed = append(removed, e)
	}
	added := make([]*Entry, 0, len(d.Added))
	for _, segment := range d.Added {
		added = append(added, newEntry(segment))
	}

	live := make([]*Entry, 0, keep+len(added))
	live = append(live, s.live[:keep]...)
	live = append(live, added...)
	s.live = live
	s.pending = append(s.pending, removed...)

	last := len(s.live) - 1
	for i, e := range s.live {
		e.Segment = e.Segment.WithPrimary(i == last)
	}

	if len(added) == 0 && len(removed) == 0 {
		return nil
	}
	for _, f := range s.observers {
		if f != nil {
			f(added, removed)
		}
	}
	return nil
}

func (s *Store) validate(d pathseg.DiffResult) error {
	r := d.Removed
	switch {
	case r.Start != d.CommonPrefixIndex+1:
		return fmt.Errorf("%w: removal starts at %d after common index %d", ErrRangeOutOfBounds, r.Start, d.CommonPrefixIndex)
	case r.Start > len(s.live):
		return fmt.Errorf("%w: common index %d with %d segments", ErrRangeOutOfBounds, d.CommonPrefixIndex, len(s.live))
	case r.End != len(s.live) || r.Start > r.End:
		return fmt.Errorf("%w: removal range [%d, %d) with %d segments", ErrRangeOutOfBounds, r.Start, r.End, len(s.live))
	}
	for i, segment := range d.Added {
		if segment.Index != r.Start+i {
			return fmt.Errorf("%w: added segment %q has index %d, expected %d", ErrRangeOutOfBounds, segment.Path, segment.Index, r.Start+i)
		}
	}
	return nil
}

// Finalize drops a removed entry once its exit animation has completed.
// It reports whether the entry was pending.
func (s *Store) Finalize(e *Entry) bool {
	for i, p := range s.pending {
		if p == e {
			s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

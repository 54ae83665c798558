package pathnav

import (
	"testing"

	"github.com/filetug/crumbtug/pkg/pathseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDiff(t *testing.T, previous, next string) pathseg.DiffResult {
	t.Helper()
	d, err := pathseg.Diff(previous, next)
	require.NoError(t, err)
	return d
}

func segmentPaths(segments []pathseg.Segment) []string {
	result := make([]string, len(segments))
	for i, s := range segments {
		result[i] = s.Path
	}
	return result
}

func entryPaths(entries []*Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Segment.Path
	}
	return result
}

func assertSinglePrimary(t *testing.T, s *Store) {
	t.Helper()
	current := s.Current()
	primaries := 0
	for i, segment := range current {
		if segment.IsPrimary {
			primaries++
			assert.Equal(t, len(current)-1, i, "primary must be the last segment")
		}
	}
	if len(current) > 0 {
		assert.Equal(t, 1, primaries)
	}
}

type changeRecorder struct {
	calls   int
	added   []*Entry
	removed []*Entry
}

func (r *changeRecorder) record(added, removed []*Entry) {
	r.calls++
	r.added = added
	r.removed = removed
}

func TestStore_ApplyDiff(t *testing.T) {
	t.Parallel()
	s := NewStore()
	rec := &changeRecorder{}
	s.OnChanged(rec.record)

	assert.Nil(t, s.Primary())
	assert.Equal(t, "", s.Path())

	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/home/user")))
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, []string{"/", "/home", "/home/user"}, entryPaths(rec.added))
	assert.Empty(t, rec.removed)
	assert.Equal(t, "/home/user", s.Path())
	assert.Equal(t, 3, s.Len())
	assertSinglePrimary(t, s)
	for _, e := range s.Entries() {
		assert.Equal(t, 1.0, e.Alpha)
		assert.False(t, e.Removing())
	}

	require.NoError(t, s.ApplyDiff(mustDiff(t, "/home/user", "/home/user/docs")))
	assert.Equal(t, 2, rec.calls)
	assert.Equal(t, []string{"/home/user/docs"}, entryPaths(rec.added))
	assert.Empty(t, rec.removed)
	assert.False(t, s.Entries()[2].Segment.IsPrimary, "previous primary is demoted")
	assertSinglePrimary(t, s)

	require.NoError(t, s.ApplyDiff(mustDiff(t, "/home/user/docs", "/home/other")))
	assert.Equal(t, 3, rec.calls)
	assert.Equal(t, []string{"/home/other"}, entryPaths(rec.added))
	assert.Equal(t, []string{"/home/user", "/home/user/docs"}, entryPaths(rec.removed))
	assert.Equal(t, []string{"/", "/home", "/home/other"}, segmentPaths(s.Current()))
	assert.Equal(t, []string{"/home/user", "/home/user/docs"}, entryPaths(s.Pending()))
	for _, e := range s.Pending() {
		assert.True(t, e.Removing())
	}
	assertSinglePrimary(t, s)
}

func TestStore_AncestorNavigation(t *testing.T) {
	t.Parallel()
	s := NewStore()
	rec := &changeRecorder{}
	s.OnChanged(rec.record)
	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/a/b/c")))

	require.NoError(t, s.ApplyDiff(mustDiff(t, "/a/b/c", "/a")))
	assert.Equal(t, 2, rec.calls)
	assert.Empty(t, rec.added)
	assert.Equal(t, []string{"/a/b", "/a/b/c"}, entryPaths(rec.removed))
	assert.Equal(t, "/a", s.Path())
	assertSinglePrimary(t, s)
}

func TestStore_EmptyDiffDoesNotNotify(t *testing.T) {
	t.Parallel()
	s := NewStore()
	rec := &changeRecorder{}
	s.OnChanged(rec.record)
	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/a/b")))
	before := s.Current()

	require.NoError(t, s.ApplyDiff(mustDiff(t, "/a/b", "/a/b")))
	assert.Equal(t, 1, rec.calls)
	assert.Equal(t, before, s.Current())
}

func TestStore_FullRebuildRemovesEverything(t *testing.T) {
	t.Parallel()
	s := NewStore()
	rec := &changeRecorder{}
	s.OnChanged(rec.record)
	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/a/b")))
	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/c")))
	assert.Equal(t, []string{"/", "/a", "/a/b"}, entryPaths(rec.removed))
	assert.Equal(t, []string{"/", "/c"}, entryPaths(rec.added))
	assert.Len(t, s.Pending(), 3)
}

func TestStore_RejectsMismatchedDiff(t *testing.T) {
	t.Parallel()
	s := NewStore()
	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/a/b")))
	before := s.Current()

	tests := []struct {
		name string
		diff pathseg.DiffResult
	}{
		{name: "longer_previous", diff: mustDiff(t, "/a/b/c/d", "/a/b/x")},
		{name: "common_past_end", diff: pathseg.DiffResult{CommonPrefixIndex: 5, Removed: pathseg.Range{Start: 6, End: 6}}},
		{name: "start_mismatch", diff: pathseg.DiffResult{CommonPrefixIndex: 0, Removed: pathseg.Range{Start: 2, End: 3}}},
		{name: "bad_added_index", diff: pathseg.DiffResult{
			CommonPrefixIndex: 2,
			Removed:           pathseg.Range{Start: 3, End: 3},
			Added:             []pathseg.Segment{{Label: "z", Path: "/a/b/z", Index: 7}},
		}},
	}
	for _, tt := range tests {
		err := s.ApplyDiff(tt.diff)
		assert.ErrorIs(t, err, ErrRangeOutOfBounds, tt.name)
		assert.Equal(t, before, s.Current(), tt.name)
		assert.Empty(t, s.Pending(), tt.name)
	}
}

func TestStore_Finalize(t *testing.T) {
	t.Parallel()
	s := NewStore()
	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/a/b/c")))
	require.NoError(t, s.ApplyDiff(mustDiff(t, "/a/b/c", "/a")))
	pending := s.Pending()
	require.Len(t, pending, 2)
	first, second := pending[0], pending[1]

	assert.True(t, s.Finalize(first))
	assert.Equal(t, []*Entry{second}, s.Pending())
	assert.False(t, s.Finalize(first))
	assert.True(t, s.Finalize(second))
	assert.Empty(t, s.Pending())
	assert.Equal(t, []string{"/", "/a"}, segmentPaths(s.Current()))
}

func TestStore_Unsubscribe(t *testing.T) {
	t.Parallel()
	s := NewStore()
	rec := &changeRecorder{}
	unsubscribe := s.OnChanged(rec.record)
	unsubscribe()
	require.NoError(t, s.ApplyDiff(mustDiff(t, "", "/a")))
	assert.Equal(t, 0, rec.calls)
}

func TestEntry_Right(t *testing.T) {
	t.Parallel()
	e := &Entry{X: 4, Width: 3}
	assert.Equal(t, 7, e.Right())
}

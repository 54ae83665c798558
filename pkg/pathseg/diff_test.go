package pathseg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(segments []Segment) []string {
	result := make([]string, len(segments))
	for i, s := range segments {
		result[i] = s.Path
	}
	return result
}

func TestDiff_NoPrevious(t *testing.T) {
	t.Parallel()
	d, err := Diff("", "/home/user")
	require.NoError(t, err)
	assert.Equal(t, -1, d.CommonPrefixIndex)
	assert.True(t, d.FullRebuild())
	assert.True(t, d.Removed.Empty())
	assert.Equal(t, []string{"/", "/home", "/home/user"}, paths(d.Added))
	assert.False(t, d.IsEmpty())
}

func TestDiff_IntoChild(t *testing.T) {
	t.Parallel()
	d, err := Diff("/home/user", "/home/user/docs")
	require.NoError(t, err)
	assert.Equal(t, 2, d.CommonPrefixIndex)
	assert.True(t, d.Removed.Empty())
	assert.Equal(t, []string{"/home/user/docs"}, paths(d.Added))
	assert.True(t, d.Added[0].IsPrimary)
}

func TestDiff_Sibling(t *testing.T) {
	t.Parallel()
	d, err := Diff("/home/user/docs", "/home/other")
	require.NoError(t, err)
	assert.Equal(t, 1, d.CommonPrefixIndex)
	assert.Equal(t, Range{Start: 2, End: 4}, d.Removed)
	assert.Equal(t, 2, d.Removed.Len())
	assert.Equal(t, []string{"/home/other"}, paths(d.Added))
}

func TestDiff_Ancestor(t *testing.T) {
	t.Parallel()
	d, err := Diff("/home/user/docs", "/home")
	require.NoError(t, err)
	assert.Equal(t, 1, d.CommonPrefixIndex)
	assert.Equal(t, Range{Start: 2, End: 4}, d.Removed)
	assert.Empty(t, d.Added)
}

func TestDiff_Identical(t *testing.T) {
	t.Parallel()
	for _, p := range []string{"/", "/home", "/home/user/docs"} {
		d, err := Diff(p, p)
		require.NoError(t, err)
		assert.True(t, d.IsEmpty(), p)
		assert.Empty(t, d.Added)
		assert.True(t, d.Removed.Empty())
	}
}

func TestDiff_ComponentWise(t *testing.T) {
	t.Parallel()
	d, err := Diff("/a/ab", "/a/abc")
	require.NoError(t, err)
	assert.Equal(t, 1, d.CommonPrefixIndex)
	assert.Equal(t, Range{Start: 2, End: 3}, d.Removed)
	assert.Equal(t, []string{"/a/abc"}, paths(d.Added))
}

func TestDiff_OnlyRootShared(t *testing.T) {
	t.Parallel()
	d, err := Diff("/usr/local", "/home")
	require.NoError(t, err)
	assert.Equal(t, 0, d.CommonPrefixIndex)
	assert.Equal(t, Range{Start: 1, End: 3}, d.Removed)
	assert.Equal(t, []string{"/home"}, paths(d.Added))
}

func TestDiff_UnicodeNormalizationIsSignificant(t *testing.T) {
	t.Parallel()
	composed := "/home/caf\u00e9/docs"
	decomposed := "/home/cafe\u0301"
	d, err := Diff(composed, decomposed)
	require.NoError(t, err)
	assert.Equal(t, 1, d.CommonPrefixIndex)
	assert.Equal(t, Range{Start: 2, End: 4}, d.Removed)
	require.Len(t, d.Added, 1)
	assert.Equal(t, decomposed, d.Added[0].Path)
}

func TestDiff_InvalidNext(t *testing.T) {
	t.Parallel()
	_, err := Diff("/home", "relative")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestDiff_InvalidPreviousFallsBackToFullRebuild(t *testing.T) {
	t.Parallel()
	d, err := Diff("not/absolute", "/home")
	require.NoError(t, err)
	assert.True(t, d.FullRebuild())
	assert.Equal(t, []string{"/", "/home"}, paths(d.Added))
}

func TestDiff_SharedPrefixProperty(t *testing.T) {
	t.Parallel()
	pairs := []struct {
		a, b   string
		shared int
	}{
		{"/", "/x", 1},
		{"/x/y", "/x/z", 2},
		{"/x/y/z", "/x/y/z/w", 4},
		{"/p/q/r", "/s", 1},
	}
	for _, p := range pairs {
		d, err := Diff(p.a, p.b)
		require.NoError(t, err)
		assert.Equal(t, p.shared-1, d.CommonPrefixIndex, "%s vs %s", p.a, p.b)
		next, _ := Split(p.b)
		assert.Equal(t, paths(next[p.shared:]), paths(d.Added))
		prev, _ := Split(p.a)
		assert.LessOrEqual(t, d.CommonPrefixIndex, min(len(prev), len(next))-1)
	}
}

func TestRange(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, Range{Start: 3, End: 1}.Len())
	assert.True(t, Range{}.Empty())
	assert.Equal(t, 2, Range{Start: 1, End: 3}.Len())
}

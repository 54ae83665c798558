package pathseg

// Range is a half-open range [Start, End) of segment indexes.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r Range) Empty() bool {
	return r.Len() == 0
}

// DiffResult describes how to turn the segments of a previous path into the segments of a next one.
// CommonPrefixIndex is the index of the last segment both paths share, or -1 for a full rebuild.
type DiffResult struct {
	CommonPrefixIndex int
	Removed           Range
	Added             []Segment
}

// FullRebuild reports whether every existing segment has to be replaced.
func (d DiffResult) FullRebuild() bool {
	return d.CommonPrefixIndex < 0
}

// IsEmpty reports whether applying the diff changes nothing.
func (d DiffResult) IsEmpty() bool {
	return !d.FullRebuild() && d.Removed.Empty() && len(d.Added) == 0
}

// Diff computes the segments to remove from previous and the segments to add from next.
// An empty previous means there is nothing to keep.
// An invalid previous is treated the same way, only next has to be valid.
func Diff(previous, next string) (DiffResult, error) {
	nextSegments, err := Split(next)
	if err != nil {
		return DiffResult{}, err
	}
	full := DiffResult{CommonPrefixIndex: -1, Added: nextSegments}
	if previous == "" {
		return full, nil
	}
	previousSegments, err := Split(previous)
	if err != nil {
		return full, nil
	}
	return DiffSegments(previousSegments, nextSegments), nil
}

// DiffSegments is Diff for already split paths.
func DiffSegments(previous, next []Segment) DiffResult {
	common := LastCommonIndex(previous, next)
	if common < 0 {
		return DiffResult{CommonPrefixIndex: -1, Added: next}
	}
	var added []Segment
	if common+1 < len(next) {
		added = next[common+1:]
	}
	return DiffResult{
		CommonPrefixIndex: common,
		Removed:           Range{Start: common + 1, End: len(previous)},
		Added:             added,
	}
}

// LastCommonIndex returns the index of the deepest segment a and b have in common.
// Components are compared byte for byte as whole names, so "/a/ab" and "/a/abc" only share "/a".
// Names that differ only in Unicode normalization are different directories.
func LastCommonIndex(a, b []Segment) int {
	n := min(len(a), len(b))
	last := -1
	for i := 0; i < n; i++ {
		if a[i].Index != b[i].Index || a[i].Label != b[i].Label {
			break
		}
		last = i
	}
	return last
}

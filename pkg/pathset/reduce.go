package pathset

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Reduced is a single concrete path produced by reducing a Spec. Entries
// expanded from a pattern remember the pattern's priority so that resolution
// can rank them against entries that name their path outright.
type Reduced struct {
	// Path is a concrete absolute path, never a pattern.
	Path string
	// Excluded mirrors the flag of the Spec the entry came from.
	Excluded bool

	depth   int
	relPrio int
	literal bool
}

// NewReduced builds the reduction of a path that was named outright.
func NewReduced(path string, excluded bool) Reduced {
	return Reduced{Path: path, Excluded: excluded, depth: pathDepth(path), literal: true}
}

func newExpanded(path string, relPrio int, excluded bool) Reduced {
	return Reduced{Path: path, Excluded: excluded, depth: pathDepth(path), relPrio: relPrio}
}

// Depth returns the number of segments in the entry's path.
func (r Reduced) Depth() int {
	return r.depth
}

// RelPrio returns the entry's specificity. Entries named outright are as
// specific as they are deep; expanded entries inherit their pattern's
// priority instead.
func (r Reduced) RelPrio() int {
	if r.literal {
		return r.depth
	}
	return r.relPrio
}

// compare orders entries by depth, then path, then specificity.
func (r Reduced) compare(o Reduced) int {
	if d := r.depth - o.depth; d != 0 {
		return d
	}
	if c := strings.Compare(r.Path, o.Path); c != 0 {
		return c
	}
	return r.RelPrio() - o.RelPrio()
}

// Reduce expands the Spec into its concrete entries. A Spec is expanded on
// the filesystem only when it is flagged as a glob and its path actually
// contains an unescaped wildcard; anything else reduces to itself.
func (s Spec) Reduce(fsys Filesystem) ([]Reduced, error) {
	if !s.Glob || !IsPattern(s.Path) {
		return []Reduced{NewReduced(s.Path, s.Excluded)}, nil
	}

	matches, err := fsys.Glob(s.Path)
	if err != nil {
		return nil, err
	}
	logrus.Tracef("Pattern %s matched %d paths", s.Path, len(matches))

	prio := Priority(s.Path)
	entries := make([]Reduced, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, newExpanded(m, prio, s.Excluded))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].compare(entries[j]) < 0
	})
	return entries, nil
}

// reduceStream is one Spec's sorted entries queued up for the merge.
type reduceStream struct {
	entries []Reduced
	pos     int
	order   int
}

func (st *reduceStream) head() Reduced {
	return st.entries[st.pos]
}

type mergeHeap []*reduceStream

func (h mergeHeap) Len() int { return len(h) }

func (h mergeHeap) Less(i, j int) bool {
	if c := h[i].head().compare(h[j].head()); c != 0 {
		return c < 0
	}
	return h[i].order < h[j].order
}

func (h mergeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *mergeHeap) Push(x any) { *h = append(*h, x.(*reduceStream)) }

func (h *mergeHeap) Pop() any {
	old := *h
	n := len(old)
	st := old[n-1]
	*h = old[:n-1]
	return st
}

// ReduceAll reduces every Spec and merges the results into one slice sorted
// by depth, path and specificity. Ties across specs keep their input order.
// Entries for the same path collapse into one; the most specific survives,
// and on equal specificity the later spec wins.
func ReduceAll(specs []Spec, fsys Filesystem) ([]Reduced, error) {
	streams := make(mergeHeap, 0, len(specs))
	total := 0
	for i, s := range specs {
		entries, err := s.Reduce(fsys)
		if err != nil {
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		total += len(entries)
		streams = append(streams, &reduceStream{entries: entries, order: i})
	}
	heap.Init(&streams)

	merged := make([]Reduced, 0, total)
	for streams.Len() > 0 {
		st := streams[0]
		r := st.head()
		st.pos++
		if st.pos == len(st.entries) {
			heap.Pop(&streams)
		} else {
			heap.Fix(&streams, 0)
		}

		if n := len(merged); n > 0 && merged[n-1].Path == r.Path {
			if r.RelPrio() >= merged[n-1].RelPrio() {
				merged[n-1] = r
			}
			continue
		}
		merged = append(merged, r)
	}

	logrus.Debugf("Reduced %d specs to %d entries", len(specs), len(merged))
	return merged, nil
}

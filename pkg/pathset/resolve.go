package pathset

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// IsAncestor reports whether candidate equals path or is one of its parent
// directories. Matching happens on whole segments, so "/foo" does not cover
// "/foobar".
func IsAncestor(candidate, path string) bool {
	c := strings.TrimRight(candidate, "/")
	if c == "" {
		// The root covers every absolute path.
		return strings.HasPrefix(path, "/")
	}
	p := strings.TrimRight(path, "/")
	return p == c || strings.HasPrefix(p, c+"/")
}

// Resolve reduces specs against fsys and works out the set of paths they
// effectively select. Included paths already covered by an accepted ancestor
// are dropped as redundant. An excluded path knocks its ancestors out level
// by level: the covering directory is replaced by its children, the cascade
// repeats one level deeper until the excluded path's own level is reached,
// and finally the path itself is removed. The result never contains a path
// together with one of its ancestors.
func Resolve(specs []Spec, fsys Filesystem) ([]string, error) {
	reduced, err := ReduceAll(specs, fsys)
	if err != nil {
		return nil, err
	}

	accepted := make(map[int]map[string]bool)
	add := func(depth int, path string) {
		if accepted[depth] == nil {
			accepted[depth] = make(map[string]bool)
		}
		accepted[depth][path] = true
	}

	for _, r := range reduced {
		depth := r.Depth()

		if r.Excluded {
			for d := 0; d < depth; d++ {
				covering := ""
				for p := range accepted[d] {
					if IsAncestor(p, r.Path) {
						covering = p
						break
					}
				}
				if covering == "" {
					continue
				}
				children, err := fsys.ListDir(covering)
				if err != nil {
					return nil, err
				}
				logrus.Debugf("Splitting %s into %d children to carve out %s", covering, len(children), r.Path)
				delete(accepted[d], covering)
				for _, child := range children {
					add(d+1, child)
				}
			}
			delete(accepted[depth], r.Path)
			continue
		}

		covered := false
		for d := 0; d < depth && !covered; d++ {
			for p := range accepted[d] {
				if IsAncestor(p, r.Path) {
					covered = true
					break
				}
			}
		}
		if !covered {
			add(depth, r.Path)
		}
	}

	var out []string
	for _, bucket := range accepted {
		for p := range bucket {
			out = append(out, p)
		}
	}
	sort.Strings(out)

	logrus.Debugf("Resolved %d entries to %d effective paths", len(reduced), len(out))
	return out, nil
}

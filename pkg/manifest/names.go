package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kukaryambik/packrat/pkg/pathset"
)

var groupNameRe = regexp.MustCompile(`^[a-z0-9_]+$`)

// CanonicalGroupName lowercases the name and rejects anything outside
// letters, digits and underscores.
func CanonicalGroupName(name string) (string, error) {
	name = strings.ToLower(name)
	if !groupNameRe.MatchString(name) {
		return "", fmt.Errorf("illegal characters in group name %q", name)
	}
	return name, nil
}

// Upsert merges added specs into existing ones. Specs are keyed by path, so
// re-adding a path overwrites its flags; new paths are appended in order.
func Upsert(existing []pathset.Spec, add ...pathset.Spec) []pathset.Spec {
	index := make(map[string]int, len(existing))
	out := make([]pathset.Spec, len(existing))
	copy(out, existing)
	for i, spec := range out {
		index[spec.Path] = i
	}

	for _, spec := range add {
		if i, ok := index[spec.Path]; ok {
			out[i] = spec
			continue
		}
		index[spec.Path] = len(out)
		out = append(out, spec)
	}
	return out
}

// Package manifest stores the tracked path specs of every group as plain
// text files inside a config directory, one file per group, with a hidden
// backup copy next to each.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/kukaryambik/packrat/pkg/pathset"
)

const (
	manifestExt = ".txt"
	backupExt   = ".bkp"
)

// Store reads and writes group manifests under a single directory. Group
// names are expected in canonical form, see CanonicalGroupName.
type Store struct {
	// Dir is the directory holding the manifest files.
	Dir string
	// FS is consulted when pruning entries whose paths no longer exist.
	FS pathset.Filesystem
}

// NewStore creates the directory if needed and returns a Store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create config directory %s: %w", dir, err)
	}
	return &Store{Dir: dir, FS: pathset.OS{}}, nil
}

func (s *Store) manifestPath(group string) string {
	return filepath.Join(s.Dir, group+manifestExt)
}

func (s *Store) backupPath(group string) string {
	return filepath.Join(s.Dir, "."+group+backupExt)
}

// Exists reports whether the group has a manifest file.
func (s *Store) Exists(group string) bool {
	return s.FS.Exists(s.manifestPath(group))
}

// HasBackup reports whether the group has a backup file.
func (s *Store) HasBackup(group string) bool {
	return s.FS.Exists(s.backupPath(group))
}

// Load parses the group's manifest into specs. Blank lines are skipped;
// any other malformed line aborts the load.
func (s *Store) Load(group string) ([]pathset.Spec, error) {
	f, err := os.Open(s.manifestPath(group))
	if err != nil {
		return nil, fmt.Errorf("cannot open manifest for group %s: %w", group, err)
	}
	defer f.Close()

	var specs []pathset.Spec
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		spec, err := pathset.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("group %s, line %d: %w", group, n, err)
		}
		specs = append(specs, spec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read manifest for group %s: %w", group, err)
	}

	logrus.Debugf("Loaded %d specs for group %s", len(specs), group)
	return specs, nil
}

// Save replaces the group's manifest with the given specs. The previous
// non-empty content is copied to the backup file first, then the new content
// is written to a temp file and renamed into place. Entries are sorted with
// globs first, and entries whose literal path no longer exists are dropped
// unless they are glob or sticky.
func (s *Store) Save(group string, specs []pathset.Spec) error {
	fp := s.manifestPath(group)
	bkp := s.backupPath(group)

	if fi, err := os.Stat(fp); err == nil && fi.Size() > 0 {
		if err := copyFile(fp, bkp); err != nil {
			return fmt.Errorf("cannot back up manifest for group %s: %w", group, err)
		}
	}

	sorted := make([]pathset.Spec, len(specs))
	copy(sorted, specs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Glob != sorted[j].Glob {
			return sorted[i].Glob
		}
		return sorted[i].Path < sorted[j].Path
	})

	tf, err := os.CreateTemp(s.Dir, "."+group+"-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create temp manifest: %w", err)
	}
	defer os.Remove(tf.Name())

	kept := 0
	for _, spec := range sorted {
		if !spec.Glob && !spec.Sticky && !s.FS.Exists(spec.Path) {
			logrus.Debugf("Dropping vanished path %s from group %s", spec.Path, group)
			continue
		}
		if _, err := fmt.Fprintln(tf, spec.Line()); err != nil {
			tf.Close()
			return fmt.Errorf("cannot write manifest for group %s: %w", group, err)
		}
		kept++
	}
	if err := tf.Close(); err != nil {
		return fmt.Errorf("cannot write manifest for group %s: %w", group, err)
	}
	if err := os.Rename(tf.Name(), fp); err != nil {
		return fmt.Errorf("cannot replace manifest for group %s: %w", group, err)
	}

	// A fresh group gets a backup right away.
	if !s.HasBackup(group) {
		if fi, err := os.Stat(fp); err == nil && fi.Size() > 0 {
			if err := copyFile(fp, bkp); err != nil {
				return fmt.Errorf("cannot back up manifest for group %s: %w", group, err)
			}
		}
	}

	logrus.Debugf("Saved %d specs for group %s", kept, group)
	return nil
}

// RestoreBackup copies the group's backup file over its manifest.
func (s *Store) RestoreBackup(group string) error {
	if err := copyFile(s.backupPath(group), s.manifestPath(group)); err != nil {
		return fmt.Errorf("cannot restore backup for group %s: %w", group, err)
	}
	logrus.Infof("Restored group %s from backup", group)
	return nil
}

// Remove deletes the group's manifest, and its backup too when dropBackup
// is set. Missing files are not an error.
func (s *Store) Remove(group string, dropBackup bool) error {
	if err := os.Remove(s.manifestPath(group)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("cannot remove manifest for group %s: %w", group, err)
	}
	if dropBackup {
		if err := os.Remove(s.backupPath(group)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("cannot remove backup for group %s: %w", group, err)
		}
	}
	return nil
}

// Rename moves the group's manifest and backup to a new name. The caller is
// responsible for clearing the target name first.
func (s *Store) Rename(oldGroup, newGroup string) error {
	if s.HasBackup(oldGroup) {
		if err := os.Rename(s.backupPath(oldGroup), s.backupPath(newGroup)); err != nil {
			return fmt.Errorf("cannot rename backup of group %s: %w", oldGroup, err)
		}
	}
	if err := os.Rename(s.manifestPath(oldGroup), s.manifestPath(newGroup)); err != nil {
		return fmt.Errorf("cannot rename group %s: %w", oldGroup, err)
	}
	return nil
}

// Groups returns the names of all groups in the store, sorted.
func (s *Store) Groups() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.Dir, "*"+manifestExt))
	if err != nil {
		return nil, fmt.Errorf("cannot list groups: %w", err)
	}
	groups := make([]string, 0, len(matches))
	for _, m := range matches {
		groups = append(groups, strings.TrimSuffix(filepath.Base(m), manifestExt))
	}
	return groups, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

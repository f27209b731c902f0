package vault

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gerunddev/interviewer/internal/note"
	"github.com/google/uuid"
)

const noteExt = ".md"

var (
	// ErrStale is returned when a note changed on disk between being read
	// and being written back
	ErrStale = errors.New("note changed on disk while it was being edited")

	// ErrNotInterview is returned when a note lacks the interview tag
	ErrNotInterview = errors.New("not an interview note")
)

// Vault is a directory of markdown notes
type Vault struct {
	Root string
}

// New returns a vault rooted at dir
func New(dir string) *Vault {
	return &Vault{Root: dir}
}

// Path returns the absolute path of a vault relative path. Absolute paths
// are returned unchanged.
func (v *Vault) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(v.Root, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
}

// Read loads a note and the hash of its content
func (v *Vault) Read(rel string) (note.Lines, string, error) {
	data, err := os.ReadFile(v.Path(rel))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read note: %w", err)
	}
	return note.Split(string(data)), ComputeHash(data), nil
}

// ScanNotes returns the vault relative, slash separated paths of every
// markdown note. Hidden directories such as .obsidian are skipped.
func (v *Vault) ScanNotes(ctx context.Context) ([]string, error) {
	var notes []string

	err := filepath.WalkDir(v.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if p != v.Root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(p) == noteExt {
			rel, err := filepath.Rel(v.Root, p)
			if err != nil {
				return err
			}
			notes = append(notes, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vault: %w", err)
	}

	slices.Sort(notes)
	return notes, nil
}

// Resolve finds the note a name refers to. The name may be a vault relative
// path (with or without ".md") or a bare note name; both are matched
// case-insensitively. Names that match nothing return os.ErrNotExist.
func (v *Vault) Resolve(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("empty note name: %w", os.ErrNotExist)
	}

	// Exact paths need no scan
	for _, candidate := range []string{name, name + noteExt} {
		if info, err := os.Stat(v.Path(candidate)); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	notes, err := v.ScanNotes(ctx)
	if err != nil {
		return "", err
	}
	return match(notes, name)
}

// Notes reads the notes behind names, keyed by the names given. Names that
// match no note are returned separately.
func (v *Vault) Notes(ctx context.Context, names []string) (map[string]string, []string, error) {
	paths, err := v.ScanNotes(ctx)
	if err != nil {
		return nil, nil, err
	}

	found := make(map[string]string, len(names))
	var unresolved []string

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		p, err := match(paths, name)
		if err != nil {
			unresolved = append(unresolved, name)
			continue
		}

		data, err := os.ReadFile(v.Path(p))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read note '%s': %w", p, err)
		}
		found[name] = string(data)
	}

	return found, unresolved, nil
}

// match picks the note for name from paths: a full path match wins over a
// base name match
func match(paths []string, name string) (string, error) {
	want := strings.ToLower(strings.TrimSuffix(filepath.ToSlash(name), noteExt))
	want = strings.TrimPrefix(want, "/")

	var byBase string
	for _, p := range paths {
		key := strings.ToLower(strings.TrimSuffix(p, noteExt))
		if key == want {
			return p, nil
		}
		if byBase == "" && path.Base(key) == path.Base(want) {
			byBase = p
		}
	}
	if byBase != "" {
		return byBase, nil
	}
	return "", fmt.Errorf("note '%s': %w", name, os.ErrNotExist)
}

// Update applies fn to a note and writes the result back atomically. The
// write is refused with ErrStale if the file changed after it was read.
// It reports whether the note content changed.
func (v *Vault) Update(rel string, fn func(note.Lines) (note.Lines, error)) (bool, error) {
	lines, hash, err := v.Read(rel)
	if err != nil {
		return false, err
	}

	updated, err := fn(lines.Clone())
	if err != nil {
		return false, err
	}
	if updated.Equal(lines) {
		return false, nil
	}

	p := v.Path(rel)
	current, err := os.ReadFile(p)
	if err != nil {
		return false, fmt.Errorf("failed to re-read note: %w", err)
	}
	if ComputeHash(current) != hash {
		return false, fmt.Errorf("%s: %w", rel, ErrStale)
	}

	if err := writeAtomic(p, []byte(updated.Join())); err != nil {
		return false, err
	}
	return true, nil
}

// Create writes a new note. It fails if the note already exists.
func (v *Vault) Create(rel, content string) error {
	p := v.Path(rel)
	if _, err := os.Stat(p); err == nil {
		return fmt.Errorf("note '%s': %w", rel, os.ErrExist)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("failed to create note directory: %w", err)
	}
	return writeAtomic(p, []byte(content))
}

// writeAtomic writes data next to path under a random name and renames it
// into place
func writeAtomic(p string, data []byte) error {
	perm := os.FileMode(0644)
	if info, err := os.Stat(p); err == nil {
		perm = info.Mode().Perm()
	}

	tmp := filepath.Join(filepath.Dir(p), "."+filepath.Base(p)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace note: %w", err)
	}
	return nil
}

// RequireTag returns ErrNotInterview unless the note carries tag
func RequireTag(lines note.Lines, tag string) error {
	if !note.HasTag(lines, tag) {
		return fmt.Errorf("missing tag %s: %w", tag, ErrNotInterview)
	}
	return nil
}

// ComputeHash computes the SHA256 hash of note content
func ComputeHash(data []byte) string {
	return fmt.Sprintf("sha256:%x", sha256.Sum256(data))
}

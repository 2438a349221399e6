package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"killerpack/internal/domain"
)

// DefaultExtensions are the file extensions treated as puzzle definitions.
var DefaultExtensions = []string{".txt"}

// DirSourceStore reads puzzle definitions from a single directory.
type DirSourceStore struct {
	dir  string
	exts []string
}

// NewDirSourceStore returns a DirSourceStore over dir. Extensions are
// matched case-insensitively; nil means DefaultExtensions.
func NewDirSourceStore(dir string, exts []string) *DirSourceStore {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	lower := make([]string, len(exts))
	for i, e := range exts {
		lower[i] = strings.ToLower(e)
	}
	return &DirSourceStore{dir: dir, exts: lower}
}

// SortNames sorts file names in plain byte order. Puzzle ids are positions
// in this order.
func SortNames(names []string) {
	sort.Strings(names)
}

// Names lists matching regular files in puzzle-id order.
func (s *DirSourceStore) Names() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &domain.IOError{Op: "list", Path: s.dir, Err: err}
	}
	var names []string
	for _, e := range entries {
		if !s.matches(e.Name()) {
			continue
		}
		switch {
		case e.Type().IsRegular():
		case e.Type()&os.ModeSymlink != 0:
			// follow the link; dangling links surface as read errors later
			fi, err := os.Stat(filepath.Join(s.dir, e.Name()))
			if err == nil && !fi.Mode().IsRegular() {
				continue
			}
		default:
			continue
		}
		names = append(names, e.Name())
	}
	SortNames(names)
	return names, nil
}

// LoadSources reads every matching file in puzzle-id order.
func (s *DirSourceStore) LoadSources() ([]domain.Source, error) {
	names, err := s.Names()
	if err != nil {
		return nil, err
	}
	sources := make([]domain.Source, 0, len(names))
	for _, name := range names {
		path := filepath.Join(s.dir, name)
		b, err := readFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, domain.Source{Name: name, Path: path, Data: b})
	}
	return sources, nil
}

func (s *DirSourceStore) matches(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range s.exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Compile-time assertion that DirSourceStore implements domain.SourceStore.
var _ domain.SourceStore = (*DirSourceStore)(nil)

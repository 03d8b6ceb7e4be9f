package mazes

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader loads maze files from a directory tree.
type Loader struct {
	Root string

	// Problems collects the files LoadAll skipped and why.
	Problems []error
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans Root and loads every valid maze file.
// Invalid files are skipped and recorded in Problems.
// Returns mazes sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Maze, error) {
	var mazes []Maze
	l.Problems = nil

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsMazeFile(path) {
			return nil
		}

		m, err := LoadFile(path)
		if err != nil {
			l.Problems = append(l.Problems, err)
			return nil
		}

		mazes = append(mazes, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("mazes: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes, nil
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (Maze, error) {
	mazes, err := l.LoadAll()
	if err != nil {
		return Maze{}, err
	}

	for _, m := range mazes {
		if m.ID == id {
			return m, nil
		}
	}
	return Maze{}, fmt.Errorf("mazes: maze not found: %s", id)
}

// LoadFile reads, parses and validates a single maze file.
// A file without an id takes its base name as the ID.
func LoadFile(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("mazes: reading file %s: %w", path, err)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return Maze{}, fmt.Errorf("mazes: parsing file %s: %w", path, err)
	}
	if m.ID == "" {
		m.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	m.FilePath = path

	if err := Validate(m); err != nil {
		return Maze{}, fmt.Errorf("mazes: invalid maze %s: %w", path, err)
	}
	return m, nil
}

// IsMazeFile reports whether path has a supported maze extension.
func IsMazeFile(path string) bool {
	return slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path)))
}

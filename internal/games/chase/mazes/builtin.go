package mazes

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the mazes shipped with the game, sorted by ID.
func Builtin() ([]Maze, error) {
	files, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("mazes: listing built-in mazes: %w", err)
	}

	mazes := make([]Maze, 0, len(files))
	for _, name := range files {
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("mazes: reading %s: %w", name, err)
		}
		m, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("mazes: parsing %s: %w", name, err)
		}
		if err := Validate(m); err != nil {
			return nil, fmt.Errorf("mazes: built-in maze %s: %w", m.ID, err)
		}
		mazes = append(mazes, m)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes, nil
}

// DefaultID is the maze used when none is requested.
const DefaultID = "classic"

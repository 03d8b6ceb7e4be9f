package mazes

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLMaze represents the YAML structure of a maze file.
type YAMLMaze struct {
	ID      string       `yaml:"id"`
	Name    string       `yaml:"name"`
	Layout  []string     `yaml:"layout"`
	Pursuer *YAMLPursuer `yaml:"pursuer,omitempty"`
}

// YAMLPursuer holds the pursuer's start. Row and Col may be omitted when the
// layout carries a G marker.
type YAMLPursuer struct {
	Row     *int   `yaml:"row,omitempty"`
	Col     *int   `yaml:"col,omitempty"`
	Heading string `yaml:"heading,omitempty"`
}

// ParseYAML parses a maze file. It does not validate the layout.
func ParseYAML(data []byte) (Maze, error) {
	var ym YAMLMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	m := Maze{
		ID:   ym.ID,
		Name: ym.Name,
		Rows: ym.Layout,
	}

	if p := ym.Pursuer; p != nil {
		m.Heading = p.Heading
		switch {
		case p.Row != nil && p.Col != nil:
			m.Pursuer = &Spawn{Row: *p.Row, Col: *p.Col}
		case p.Row != nil || p.Col != nil:
			return Maze{}, fmt.Errorf("pursuer needs both row and col: %w", ErrPursuerStart)
		}
	}

	return m, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

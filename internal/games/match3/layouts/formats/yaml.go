// Package formats provides layout file parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/match3-arcade/internal/games/match3/core"
	"gopkg.in/yaml.v3"
)

// YAMLLayout is the YAML structure of a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Colors   int               `yaml:"colors,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Layout is a parsed layout ready for use.
type Layout struct {
	ID       string
	Name     string
	Colors   int
	Board    *core.Board
	Metadata map[string]string
}

// ParseYAML parses a YAML layout file. Rows use the board notation:
// '0'-'9' token colors, 'B' bomb, 'R' rainbow.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layout has no id")
	}

	board, err := core.ParseBoard(yl.Rows...)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", yl.ID, err)
	}
	if board.Size() == 0 {
		return Layout{}, fmt.Errorf("layout %s: no rows", yl.ID)
	}

	// Default the color count to the highest color used.
	colors := yl.Colors
	if colors <= 0 {
		for _, c := range board.Find(func(c core.Cell) bool { return c.IsToken() }) {
			if col := board.Get(c).Color + 1; col > colors {
				colors = col
			}
		}
	}

	return Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Colors:   colors,
		Board:    board,
		Metadata: yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/mode-runner/internal/core"
	"github.com/vovakirdan/mode-runner/internal/games/runner"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	Floor     []YAMLPoint   `yaml:"floor"`
	Ceiling   []YAMLPoint   `yaml:"ceiling,omitempty"`
	Obstacles []YAMLRect    `yaml:"obstacles,omitempty"`
	Triggers  []YAMLTrigger `yaml:"triggers,omitempty"`
}

// YAMLPoint is one polyline vertex.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLRect is an obstacle box.
type YAMLRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// YAMLTrigger switches mode at a distance.
type YAMLTrigger struct {
	At   float64 `yaml:"at"`
	Mode string  `yaml:"mode"`
}

// ParseYAML parses and validates a YAML level file.
// Unknown mode names and malformed geometry are rejected.
func ParseYAML(data []byte) (*runner.Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return nil, fmt.Errorf("level id is required")
	}
	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	level := &runner.Level{
		ID:      yl.ID,
		Name:    name,
		Floor:   toPolyline(yl.Floor),
		Ceiling: toPolyline(yl.Ceiling),
	}

	for _, r := range yl.Obstacles {
		level.Obstacles = append(level.Obstacles, core.NewRect(r.X, r.Y, r.W, r.H))
	}

	for i, tr := range yl.Triggers {
		kind, err := runner.ParseModeKind(tr.Mode)
		if err != nil {
			return nil, runner.ValidationError{
				Code:    "UNKNOWN_MODE",
				Message: fmt.Sprintf("trigger %d: %v", i, err),
			}
		}
		level.Triggers = append(level.Triggers, runner.ModeTrigger{AtDistance: tr.At, Mode: kind})
	}

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func toPolyline(pts []YAMLPoint) runner.Polyline {
	if len(pts) == 0 {
		return nil
	}
	p := make(runner.Polyline, len(pts))
	for i, pt := range pts {
		p[i] = runner.Point{X: pt.X, Y: pt.Y}
	}
	return p
}

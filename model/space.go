package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lattiq/lattiq/parametric"
)

// Load parses a parameter space from YAML.
// Returns ErrParse wrapping the decoder error on malformed input;
// validation of axes happens later, in Points.
func Load(data []byte) (*Space, error) {
	var s Space
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &s, nil
}

// LoadFile reads and parses a parameter-space YAML file.
func LoadFile(path string) (*Space, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read %s: %w", path, err)
	}

	return Load(data)
}

// Points expands the space into the cartesian product of its axes, in
// declaration order with the last axis varying fastest. Every point
// carries the fixed assignments plus one value per axis.
// Returns ErrEmptyAxis, ErrBadSteps or ErrDuplicateAxis on invalid axes.
// Complexity: O(points × parameters).
func (s *Space) Points() ([]parametric.Params, error) {
	seen := make(map[string]struct{}, len(s.Axes)+len(s.Fixed))
	for name := range s.Fixed {
		seen[name] = struct{}{}
	}
	grids := make([][]float64, len(s.Axes))
	for i, ax := range s.Axes {
		if ax.Name == "" {
			return nil, fmt.Errorf("axis %d: %w", i, ErrEmptyAxis)
		}
		if _, dup := seen[ax.Name]; dup {
			return nil, fmt.Errorf("axis %q: %w", ax.Name, ErrDuplicateAxis)
		}
		seen[ax.Name] = struct{}{}
		vals, err := ax.values()
		if err != nil {
			return nil, err
		}
		grids[i] = vals
	}

	total := 1
	for _, g := range grids {
		total *= len(g)
	}
	points := make([]parametric.Params, 0, total)
	idx := make([]int, len(grids))
	for n := 0; n < total; n++ {
		p := make(parametric.Params, len(s.Fixed)+len(grids))
		for name, v := range s.Fixed {
			p[name] = v
		}
		for i, ax := range s.Axes {
			p[ax.Name] = grids[i][idx[i]]
		}
		points = append(points, p)

		for i := len(idx) - 1; i >= 0; i-- { // last axis varies fastest
			idx[i]++
			if idx[i] < len(grids[i]) {
				break
			}
			idx[i] = 0
		}
	}

	return points, nil
}

// values expands one axis into its sample list.
func (ax Axis) values() ([]float64, error) {
	if len(ax.Values) > 0 {
		out := make([]float64, len(ax.Values))
		copy(out, ax.Values)

		return out, nil
	}
	if ax.Steps < 1 {
		return nil, fmt.Errorf("axis %q: %w", ax.Name, ErrBadSteps)
	}
	if ax.Steps == 1 {
		return []float64{ax.From}, nil
	}
	out := make([]float64, ax.Steps)
	step := (ax.To - ax.From) / float64(ax.Steps-1)
	for i := range out {
		out[i] = ax.From + float64(i)*step
	}

	return out, nil
}

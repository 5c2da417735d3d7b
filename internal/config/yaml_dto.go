// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLJob is the on-disk shape of a job file.
type YAMLJob struct {
	Name    string    `yaml:"name"`
	Rows    int       `yaml:"rows"`
	Cols    int       `yaml:"cols"`
	Points  []float64 `yaml:"points"`
	Mu      YAMLParam `yaml:"mu"`
	Sigma   YAMLParam `yaml:"sigma"`
	Log     bool      `yaml:"log"`
	Workers int       `yaml:"workers"`
}

// YAMLParam accepts either a single number or a list of numbers.
type YAMLParam struct {
	Scalar *float64
	List   []float64
}

// IsSet reports whether the field was present in the document.
func (p YAMLParam) IsSet() bool { return p.Scalar != nil || p.List != nil }

func (p *YAMLParam) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		p.Scalar, p.List = &v, nil
	case yaml.SequenceNode:
		vs := make([]float64, 0, len(n.Content))
		if err := n.Decode(&vs); err != nil {
			return err
		}
		p.Scalar, p.List = nil, vs
	default:
		return fmt.Errorf("line %d: expected a number or a list of numbers", n.Line)
	}
	return nil
}

// Package pcgconfig loads the YAML scenario files the CLI demo harness
// (cmd/pcgctl) feeds into the PCG core: a topology plus an ordered list of
// DFA fixtures, validated with struct tags the way this codebase's
// pkg/validation validates API request bodies.
package pcgconfig

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-pcg/pkg/automaton"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

var validate = validator.New()

// NodeConfig is one topology node.
type NodeConfig struct {
	Loc  string `yaml:"loc" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=inside inside_originates outside unknown"`
}

// EdgeConfig is one undirected topology edge.
type EdgeConfig struct {
	A string `yaml:"a" validate:"required"`
	B string `yaml:"b" validate:"required"`
}

// TopologyConfig is the whole network topology.
type TopologyConfig struct {
	Nodes []NodeConfig `yaml:"nodes" validate:"required,min=1,dive"`
	Edges []EdgeConfig `yaml:"edges" validate:"dive"`
}

// RuleConfig is a single DFA transition rule: from state From, on every
// symbol in On, advance to To.
type RuleConfig struct {
	From int      `yaml:"from"`
	To   int      `yaml:"to"`
	On   []string `yaml:"on" validate:"required,min=1"`
}

// DFAConfig is a hand-specified DFA fixture for one preference level.
type DFAConfig struct {
	Start  int          `yaml:"start"`
	Accept []int        `yaml:"accept" validate:"required,min=1"`
	Rules  []RuleConfig `yaml:"rules" validate:"required,min=1,dive"`
}

// Scenario is a complete pcgctl input: a topology and up to 31 ordered DFA
// preference levels.
type Scenario struct {
	Topology TopologyConfig `yaml:"topology" validate:"required"`
	DFAs     []DFAConfig    `yaml:"dfas" validate:"required,min=1,max=31,dive"`
}

var kindByName = map[string]topology.Kind{
	"inside":            topology.KindInside,
	"inside_originates": topology.KindInsideOriginates,
	"outside":           topology.KindOutside,
	"unknown":           topology.KindUnknown,
}

// Load reads and validates a scenario YAML file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pcgconfig: reading %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("pcgconfig: parsing %s: %w", path, err)
	}

	if err := validate.Struct(&s); err != nil {
		return nil, formatValidationError(err)
	}
	for _, n := range s.Topology.Nodes {
		if _, ok := kindByName[n.Kind]; !ok {
			return nil, fmt.Errorf("pcgconfig: node %q has unknown kind %q", n.Loc, n.Kind)
		}
	}

	return &s, nil
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	e := validationErrs[0]
	return fmt.Errorf("pcgconfig: field %s failed validation %q", e.Field(), e.Tag())
}

// BuildTopology converts a TopologyConfig into a *topology.Topology.
func (s *Scenario) BuildTopology() (*topology.Topology, error) {
	b := topology.NewBuilder()
	for _, n := range s.Topology.Nodes {
		b = b.AddNode(n.Loc, kindByName[n.Kind])
	}
	for _, e := range s.Topology.Edges {
		b = b.AddEdge(e.A, e.B)
	}
	return b.Build()
}

// BuildDFAs converts every DFAConfig into an *automaton.DFA, in order.
func (s *Scenario) BuildDFAs() []*automaton.DFA {
	dfas := make([]*automaton.DFA, 0, len(s.DFAs))
	for _, cfg := range s.DFAs {
		d := automaton.New(cfg.Start)
		for _, acc := range cfg.Accept {
			d.Accept(acc)
		}
		for _, r := range cfg.Rules {
			d.AddRule(r.From, r.To, r.On...)
		}
		dfas = append(dfas, d)
	}
	return dfas
}

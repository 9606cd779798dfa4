package plan

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var planSchema = jsonschema.MustCompileString("plan.schema.json", schemaJSON)

// Machine kinds accepted in a plan.
const (
	KindArm          = "arm"
	KindConveyor     = "conveyor"
	KindConveyorPair = "conveyor_pair"
)

// Plan is a declarative set of machines to generate.
type Plan struct {
	// Name identifies the plan in run results and catalog entries.
	Name string `yaml:"name"`

	// OutputDir, when set, is prepended to every output path and
	// created on execution.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Machines lists the structures to generate, executed in order.
	Machines []Machine `yaml:"machines"`
}

// Machine describes one structure to generate.
type Machine struct {
	// Kind is arm, conveyor or conveyor_pair.
	Kind string `yaml:"kind"`

	// Origin is the machine's world position; stored coordinates are
	// relative to it. Defaults to [0, 0, 0].
	Origin []int `yaml:"origin,omitempty"`

	// Output is the target file path for arm and conveyor kinds.
	Output string `yaml:"output,omitempty"`

	// Base is the base filename for conveyor_pair; the generator
	// derives the _main and _{i} file names from it.
	Base string `yaml:"base,omitempty"`

	// Uncompressed writes raw NBT instead of gzip for arm and conveyor
	// kinds. Pairs are always compressed.
	Uncompressed bool `yaml:"uncompressed,omitempty"`

	// Points are the arm's interaction points.
	Points []Point `yaml:"points,omitempty"`

	// Connections are absolute connection targets for conveyor and
	// conveyor_pair kinds.
	Connections [][]int `yaml:"connections,omitempty"`
}

// Point is one interaction point of an arm machine.
type Point struct {
	Type string `yaml:"type"`
	Mode string `yaml:"mode"`
	Pos  []int  `yaml:"pos"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	// Strict decode catches field typos the schema's additionalProperties
	// would also reject; keeping both means schema violations report
	// paths and the decoder reports line numbers.
	var p Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse plan YAML: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &p, nil
}

// validateSchema checks the raw document against the embedded JSON
// Schema. YAML is round-tripped through encoding/json first so the
// validator sees the value types it expects.
func validateSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse plan YAML: %w", err)
	}

	jsonRaw, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("convert plan to JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(jsonRaw, &doc); err != nil {
		return fmt.Errorf("convert plan to JSON: %w", err)
	}

	if err := planSchema.Validate(doc); err != nil {
		return fmt.Errorf("plan does not match schema: %w", err)
	}
	return nil
}

// Validate checks per-kind field consistency that the schema cannot
// express: which of output/base/points/connections each kind requires
// or forbids.
func (p *Plan) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(p.Machines) == 0 {
		return fmt.Errorf("machines list is required and must be non-empty")
	}

	for i, m := range p.Machines {
		if err := validateMachine(i, &m); err != nil {
			return err
		}
	}
	return nil
}

func validateMachine(index int, m *Machine) error {
	switch m.Kind {
	case KindArm:
		if m.Output == "" {
			return fmt.Errorf("machines[%d]: output is required for kind arm", index)
		}
		if m.Base != "" {
			return fmt.Errorf("machines[%d]: base is only valid for kind conveyor_pair", index)
		}
		if len(m.Connections) > 0 {
			return fmt.Errorf("machines[%d]: connections are not valid for kind arm", index)
		}
	case KindConveyor:
		if m.Output == "" {
			return fmt.Errorf("machines[%d]: output is required for kind conveyor", index)
		}
		if m.Base != "" {
			return fmt.Errorf("machines[%d]: base is only valid for kind conveyor_pair", index)
		}
		if len(m.Points) > 0 {
			return fmt.Errorf("machines[%d]: points are only valid for kind arm", index)
		}
	case KindConveyorPair:
		if m.Base == "" {
			return fmt.Errorf("machines[%d]: base is required for kind conveyor_pair", index)
		}
		if m.Output != "" {
			return fmt.Errorf("machines[%d]: output is not valid for kind conveyor_pair, use base", index)
		}
		if len(m.Points) > 0 {
			return fmt.Errorf("machines[%d]: points are only valid for kind arm", index)
		}
		if len(m.Connections) == 0 {
			return fmt.Errorf("machines[%d]: conveyor_pair needs at least one connection", index)
		}
		if m.Uncompressed {
			return fmt.Errorf("machines[%d]: conveyor_pair output is always compressed", index)
		}
	default:
		return fmt.Errorf("machines[%d]: unknown kind %q", index, m.Kind)
	}
	return nil
}

package plan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/machine"
	"github.com/Usu171/CreateSG/internal/schem"
)

// WrittenFile records one structure file produced by a run.
type WrittenFile struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Origin string `json:"origin"`
}

// RunResult summarizes a plan execution.
type RunResult struct {
	RunID string        `json:"run_id"`
	Name  string        `json:"name"`
	Files []WrittenFile `json:"files"`
}

// Execute generates every machine in the plan, in order. File writes
// are sequential with no rollback: a failure partway through leaves the
// files already written on disk and returns the error.
func Execute(p *Plan) (*RunResult, error) {
	if p.OutputDir != "" {
		if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	result := &RunResult{
		RunID: newRunID(),
		Name:  p.Name,
		Files: []WrittenFile{},
	}
	for i, m := range p.Machines {
		files, err := executeMachine(p, i, &m)
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, files...)
	}
	return result, nil
}

func executeMachine(p *Plan, index int, m *Machine) ([]WrittenFile, error) {
	origin, err := tripleOf(m.Origin, fmt.Sprintf("machines[%d].origin", index))
	if err != nil {
		return nil, err
	}

	switch m.Kind {
	case KindArm:
		return executeArm(p, index, m, origin)
	case KindConveyor:
		return executeConveyor(p, index, m, origin)
	case KindConveyorPair:
		return executePair(p, index, m, origin)
	default:
		return nil, fmt.Errorf("machines[%d]: unknown kind %q", index, m.Kind)
	}
}

func executeArm(p *Plan, index int, m *Machine, origin geom.Vec3) ([]WrittenFile, error) {
	arm := machine.NewArm(origin)
	for j, pt := range m.Points {
		pos, err := tripleOf(pt.Pos, fmt.Sprintf("machines[%d].points[%d].pos", index, j))
		if err != nil {
			return nil, err
		}
		// Resource locations are NFC-normalized so the bytes written do
		// not depend on the editor that produced the plan file.
		typ := norm.NFC.String(pt.Type)
		if err := arm.AddInteractionPoint(typ, schem.Mode(pt.Mode), pos); err != nil {
			return nil, fmt.Errorf("machines[%d].points[%d]: %w", index, j, err)
		}
	}

	path := p.resolve(m.Output)
	if err := arm.Structure().Save(path, !m.Uncompressed); err != nil {
		return nil, fmt.Errorf("machines[%d]: %w", index, err)
	}
	return []WrittenFile{{Path: path, Kind: KindArm, Origin: origin.String()}}, nil
}

func executeConveyor(p *Plan, index int, m *Machine, origin geom.Vec3) ([]WrittenFile, error) {
	conv := machine.NewConveyor(origin)
	for j, c := range m.Connections {
		pos, err := tripleOf(c, fmt.Sprintf("machines[%d].connections[%d]", index, j))
		if err != nil {
			return nil, err
		}
		conv.AddConnection(pos)
	}

	path := p.resolve(m.Output)
	if err := conv.Structure().Save(path, !m.Uncompressed); err != nil {
		return nil, fmt.Errorf("machines[%d]: %w", index, err)
	}
	return []WrittenFile{{Path: path, Kind: KindConveyor, Origin: origin.String()}}, nil
}

func executePair(p *Plan, index int, m *Machine, origin geom.Vec3) ([]WrittenFile, error) {
	targets := make([]geom.Vec3, 0, len(m.Connections))
	for j, c := range m.Connections {
		pos, err := tripleOf(c, fmt.Sprintf("machines[%d].connections[%d]", index, j))
		if err != nil {
			return nil, err
		}
		targets = append(targets, pos)
	}

	written, err := machine.GenerateConnectedConveyors(targets, origin, p.resolve(m.Base))
	if err != nil {
		return nil, fmt.Errorf("machines[%d]: %w", index, err)
	}

	files := make([]WrittenFile, 0, len(written))
	for i, path := range written {
		fileOrigin := origin
		if i > 0 {
			// Inverse conveyors live at their connection target.
			fileOrigin = targets[i-1]
		}
		files = append(files, WrittenFile{Path: path, Kind: KindConveyorPair, Origin: fileOrigin.String()})
	}
	return files, nil
}

// tripleOf converts a decoded triple, treating nil as the zero origin
// when the field is optional (machine origins default to [0, 0, 0]).
func tripleOf(xs []int, field string) (geom.Vec3, error) {
	if xs == nil {
		return geom.Zero, nil
	}
	v, err := geom.FromSlice(xs)
	if err != nil {
		return geom.Vec3{}, machine.NewTripleError(field, err)
	}
	return v, nil
}

// resolve joins a plan-relative output path with the plan's output
// directory, if any.
func (p *Plan) resolve(path string) string {
	if p.OutputDir == "" {
		return path
	}
	return filepath.Join(p.OutputDir, path)
}

// newRunID returns a time-sortable UUIDv7 so catalog listings sort by
// creation time when ordered lexically.
func newRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

package machine

import (
	"fmt"
	"strings"

	"github.com/Usu171/CreateSG/internal/geom"
)

// GenerateConnectedConveyors writes a main conveyor plus one inverse
// conveyor per connection, so that placing the main structure at origin
// and each inverse structure at its connection target yields mutually
// consistent connection vectors on both ends.
//
// The main conveyor lives at origin and holds every connection,
// relativized as usual. Each inverse conveyor's origin is the connection
// target itself and it holds a single connection back to origin, so its
// stored vector is exactly origin - target. That is the negation of the
// connection vector only when origin is zero; for non-zero origins it is
// a points-back-at-the-main-block vector, not a negation.
//
// Files are named from baseName: a trailing ".nbt" is replaced by
// "_main.nbt" for the main file and "_{i}.nbt" (1-based) for the
// inverses; without the suffix the tags are appended. Writes happen
// sequentially with no rollback: on error the paths written so far are
// returned alongside it.
func GenerateConnectedConveyors(connections []geom.Vec3, origin geom.Vec3, baseName string) ([]string, error) {
	written := make([]string, 0, len(connections)+1)

	main := NewConveyor(origin)
	main.AddConnections(connections)
	mainPath := nameWithTag(baseName, "_main")
	if err := main.Save(mainPath); err != nil {
		return written, fmt.Errorf("save main conveyor: %w", err)
	}
	written = append(written, mainPath)

	for i, target := range connections {
		inv := NewConveyor(target)
		inv.AddConnection(origin)
		path := nameWithTag(baseName, fmt.Sprintf("_%d", i+1))
		if err := inv.Save(path); err != nil {
			return written, fmt.Errorf("save inverse conveyor %d: %w", i+1, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// nameWithTag splices tag before a trailing ".nbt", or appends
// tag+".nbt" when baseName has no such suffix.
func nameWithTag(baseName, tag string) string {
	if rest, ok := strings.CutSuffix(baseName, ".nbt"); ok {
		return rest + tag + ".nbt"
	}
	return baseName + tag + ".nbt"
}

package machine

import (
	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/schem"
)

// Conveyor owns a chain conveyor template and the origin its
// connections are stored relative to.
type Conveyor struct {
	origin geom.Vec3
	st     *schem.ConveyorStructure
}

// NewConveyor builds a conveyor at the given origin.
func NewConveyor(origin geom.Vec3) *Conveyor {
	return &Conveyor{origin: origin, st: schem.NewConveyor()}
}

// Origin returns the origin the conveyor was constructed with.
func (c *Conveyor) Origin() geom.Vec3 {
	return c.origin
}

// Structure returns the underlying template.
func (c *Conveyor) Structure() *schem.ConveyorStructure {
	return c.st
}

// AddConnection appends one connection to the absolute position pos,
// stored relative to the conveyor's origin. Connections have no
// uniqueness constraint.
func (c *Conveyor) AddConnection(pos geom.Vec3) {
	be := c.st.BlockEntity()
	be.Connections = append(be.Connections, pos.Sub(c.origin).Slice())
}

// AddConnections appends one connection per position, in the given
// order.
func (c *Conveyor) AddConnections(positions []geom.Vec3) {
	for _, pos := range positions {
		c.AddConnection(pos)
	}
}

// Save writes the conveyor's current template snapshot to path,
// gzip-compressed.
func (c *Conveyor) Save(path string) error {
	return c.st.Save(path, true)
}

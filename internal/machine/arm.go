package machine

import (
	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/schem"
)

// Arm owns a mechanical arm template and the origin its interaction
// points are stored relative to.
type Arm struct {
	origin geom.Vec3
	st     *schem.ArmStructure
}

// NewArm builds an arm at the given origin. Pass geom.Zero for a
// world-absolute machine.
func NewArm(origin geom.Vec3) *Arm {
	return &Arm{origin: origin, st: schem.NewArm()}
}

// Origin returns the origin the arm was constructed with.
func (a *Arm) Origin() geom.Vec3 {
	return a.origin
}

// Structure returns the underlying template. The arm retains ownership;
// the accessor exists for serialization variants and inspection.
func (a *Arm) Structure() *schem.ArmStructure {
	return a.st
}

// AddInteractionPoint appends an interaction point targeting the
// absolute position pos. The stored position is pos relative to the
// arm's origin. Returns an ArgumentError and appends nothing when mode
// is not TAKE or DEPOSIT. Previously appended points and their order are
// preserved.
func (a *Arm) AddInteractionPoint(typ string, mode schem.Mode, pos geom.Vec3) error {
	if !mode.Valid() {
		return NewModeError(mode)
	}

	be := a.st.BlockEntity()
	be.InteractionPoints = append(be.InteractionPoints, schem.InteractionPoint{
		Type: typ,
		Mode: string(mode),
		Pos:  pos.Sub(a.origin).Slice(),
	})
	return nil
}

// Save writes the arm's current template snapshot to path,
// gzip-compressed. I/O errors surface unchanged.
func (a *Arm) Save(path string) error {
	return a.st.Save(path, true)
}

package machine_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/machine"
	"github.com/Usu171/CreateSG/internal/schem"
	"github.com/Usu171/CreateSG/internal/schemtest"
)

func TestAddInteractionPoint(t *testing.T) {
	arm := machine.NewArm(geom.Vec3{1, 1, 1})

	err := arm.AddInteractionPoint("create:depot", schem.ModeTake, geom.Vec3{3, 2, 0})
	require.NoError(t, err)

	points := arm.Structure().BlockEntity().InteractionPoints
	require.Len(t, points, 1)
	assert.Equal(t, "create:depot", points[0].Type)
	assert.Equal(t, string(schem.ModeTake), points[0].Mode)
	assert.Equal(t, []int32{2, 1, -1}, points[0].Pos)
}

func TestAddInteractionPointInvalidMode(t *testing.T) {
	arm := machine.NewArm(geom.Zero)

	err := arm.AddInteractionPoint("create:depot", schem.Mode("INVALID"), geom.Vec3{0, 0, 0})
	require.Error(t, err)
	assert.True(t, machine.IsInvalidArgument(err))

	var ae *machine.ArgumentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, machine.ErrCodeInvalidMode, ae.Code)

	// A rejected call must append nothing.
	assert.Empty(t, arm.Structure().BlockEntity().InteractionPoints)
}

func TestAddInteractionPointOrder(t *testing.T) {
	arm := machine.NewArm(geom.Zero)
	require.NoError(t, arm.AddInteractionPoint("create:depot", schem.ModeTake, geom.Vec3{1, 0, 0}))
	require.NoError(t, arm.AddInteractionPoint("create:basin", schem.ModeDeposit, geom.Vec3{2, 0, 0}))
	require.NoError(t, arm.AddInteractionPoint("create:depot", schem.ModeTake, geom.Vec3{3, 0, 0}))

	points := arm.Structure().BlockEntity().InteractionPoints
	require.Len(t, points, 3)
	assert.Equal(t, []int32{1, 0, 0}, points[0].Pos)
	assert.Equal(t, []int32{2, 0, 0}, points[1].Pos)
	assert.Equal(t, []int32{3, 0, 0}, points[2].Pos)
	assert.Equal(t, "create:basin", points[1].Type)
}

func TestArmSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arm.nbt")

	arm := machine.NewArm(geom.Vec3{1, 1, 1})
	require.NoError(t, arm.AddInteractionPoint("create:depot", schem.ModeTake, geom.Vec3{3, 2, 0}))
	require.NoError(t, arm.Save(path))

	got := schemtest.ReadArm(t, path)
	points := got.BlockEntity().InteractionPoints
	require.Len(t, points, 1)
	assert.Equal(t, []int32{2, 1, -1}, points[0].Pos)
}

func TestArmGolden(t *testing.T) {
	arm := machine.NewArm(geom.Vec3{1, 1, 1})
	require.NoError(t, arm.AddInteractionPoint("create:depot", schem.ModeTake, geom.Vec3{0, 0, 10}))
	require.NoError(t, arm.AddInteractionPoint("create:depot", schem.ModeDeposit, geom.Vec3{0, 0, 11}))

	schemtest.Golden(t, "arm_points", arm.Structure())
}

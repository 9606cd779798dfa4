package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/schem"
	"github.com/Usu171/CreateSG/internal/schemtest"
)

func TestArmCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "arm.nbt")

	stdout, err := execute(t, "arm",
		"--origin", "1,1,1",
		"--take", "create:depot@3,2,0",
		"--deposit", "create:depot@0,0,11",
		"-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 interaction point(s)")

	st := schemtest.ReadArm(t, out)
	points := st.BlockEntity().InteractionPoints
	require.Len(t, points, 2)
	assert.Equal(t, string(schem.ModeTake), points[0].Mode)
	assert.Equal(t, []int32{2, 1, -1}, points[0].Pos)
	assert.Equal(t, string(schem.ModeDeposit), points[1].Mode)
	assert.Equal(t, []int32{-1, -1, 10}, points[1].Pos)
}

func TestArmCommandBadOrigin(t *testing.T) {
	_, err := execute(t, "arm", "--origin", "1,2", "-o", filepath.Join(t.TempDir(), "arm.nbt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestArmCommandBadPoint(t *testing.T) {
	_, err := execute(t, "arm", "--take", "create:depot", "-o", filepath.Join(t.TempDir(), "arm.nbt"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestConveyorCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "conv.nbt")

	_, err := execute(t, "conveyor",
		"--origin", "1,0,0",
		"--connect", "1,2,3",
		"-o", out)
	require.NoError(t, err)

	st := schemtest.ReadConveyor(t, out)
	conns := st.BlockEntity().Connections
	require.Len(t, conns, 1)
	assert.Equal(t, []int32{0, 2, 3}, conns[0])
}

func TestConveyorCommandUncompressed(t *testing.T) {
	out := filepath.Join(t.TempDir(), "conv.nbt")

	_, err := execute(t, "conveyor", "--connect", "5,0,0", "--uncompressed", "-o", out)
	require.NoError(t, err)

	// The sniffing reader handles raw NBT too.
	st := schemtest.ReadConveyor(t, out)
	assert.Len(t, st.BlockEntity().Connections, 1)
}

func TestPairCommand(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conv.nbt")

	stdout, err := execute(t, "pair",
		"--origin", "50,0,0",
		"--connect", "100,0,0",
		"--connect", "-100,0,0",
		"--base", base)
	require.NoError(t, err)
	assert.Contains(t, stdout, "3 file(s)")

	main := schemtest.ReadConveyor(t, filepath.Join(dir, "conv_main.nbt"))
	mainConns := main.BlockEntity().Connections
	require.Len(t, mainConns, 2)
	assert.Equal(t, []int32{50, 0, 0}, mainConns[0])
	assert.Equal(t, []int32{-150, 0, 0}, mainConns[1])

	inv := schemtest.ReadConveyor(t, filepath.Join(dir, "conv_1.nbt"))
	invConns := inv.BlockEntity().Connections
	require.Len(t, invConns, 1)
	assert.Equal(t, []int32{-50, 0, 0}, invConns[0])
}

func TestParsePointSpec(t *testing.T) {
	typ, pos, err := parsePointSpec("create:depot@3,2,0")
	require.NoError(t, err)
	assert.Equal(t, "create:depot", typ)
	assert.Equal(t, geom.Vec3{3, 2, 0}, pos)

	for _, bad := range []string{"", "create:depot", "@1,2,3", "create:depot@", "create:depot@1,2"} {
		if _, _, err := parsePointSpec(bad); err == nil {
			t.Errorf("parsePointSpec(%q) succeeded, want error", bad)
		}
	}
}

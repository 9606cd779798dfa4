package machine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Usu171/CreateSG/internal/geom"
	"github.com/Usu171/CreateSG/internal/machine"
	"github.com/Usu171/CreateSG/internal/schemtest"
)

func readConnections(t *testing.T, path string) [][]int32 {
	t.Helper()
	return schemtest.ReadConveyor(t, path).BlockEntity().Connections
}

func TestGenerateConnectedConveyorsZeroOrigin(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conv.nbt")

	written, err := machine.GenerateConnectedConveyors([]geom.Vec3{{10, 0, 0}}, geom.Zero, base)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "conv_main.nbt"),
		filepath.Join(dir, "conv_1.nbt"),
	}, written)

	mainConns := readConnections(t, written[0])
	require.Len(t, mainConns, 1)
	assert.Equal(t, []int32{10, 0, 0}, mainConns[0])

	// With a zero main origin the inverse vector is the plain negation.
	invConns := readConnections(t, written[1])
	require.Len(t, invConns, 1)
	assert.Equal(t, []int32{-10, 0, 0}, invConns[0])
}

func TestGenerateConnectedConveyorsNonZeroOrigin(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conv.nbt")
	origin := geom.Vec3{50, 0, 0}

	written, err := machine.GenerateConnectedConveyors(
		[]geom.Vec3{{100, 0, 0}, {-100, 0, 0}}, origin, base)
	require.NoError(t, err)
	require.Len(t, written, 3)

	mainConns := readConnections(t, written[0])
	require.Len(t, mainConns, 2)
	assert.Equal(t, []int32{50, 0, 0}, mainConns[0])
	assert.Equal(t, []int32{-150, 0, 0}, mainConns[1])

	// Inverse vectors are origin - target, pointing back at the main
	// block, not a negation of the connection vector.
	inv1 := readConnections(t, written[1])
	require.Len(t, inv1, 1)
	assert.Equal(t, []int32{-50, 0, 0}, inv1[0])

	inv2 := readConnections(t, written[2])
	require.Len(t, inv2, 1)
	assert.Equal(t, []int32{150, 0, 0}, inv2[0])
}

func TestGenerateConnectedConveyorsInverseOrigins(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conv.nbt")

	// Two inverse files, one per connection, named by 1-based index.
	written, err := machine.GenerateConnectedConveyors(
		[]geom.Vec3{{0, 1000, 0}, {0, 0, 1000}}, geom.Zero, base)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "conv_main.nbt"),
		filepath.Join(dir, "conv_1.nbt"),
		filepath.Join(dir, "conv_2.nbt"),
	}, written)

	for _, p := range written {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected file %s: %v", p, err)
		}
	}
}

func TestGenerateConnectedConveyorsBaseWithoutSuffix(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conv")

	written, err := machine.GenerateConnectedConveyors([]geom.Vec3{{1, 2, 3}}, geom.Zero, base)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "conv_main.nbt"),
		filepath.Join(dir, "conv_1.nbt"),
	}, written)
}

func TestGenerateConnectedConveyorsNoConnections(t *testing.T) {
	dir := t.TempDir()

	written, err := machine.GenerateConnectedConveyors(nil, geom.Zero, filepath.Join(dir, "conv.nbt"))
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Empty(t, readConnections(t, written[0]))
}

func TestGenerateConnectedConveyorsPartialFailure(t *testing.T) {
	dir := t.TempDir()

	// Base path inside a missing directory: the main save fails and no
	// cleanup or retry happens.
	written, err := machine.GenerateConnectedConveyors(
		[]geom.Vec3{{1, 0, 0}}, geom.Zero, filepath.Join(dir, "missing", "conv.nbt"))
	require.Error(t, err)
	assert.Empty(t, written)
}

func TestGenerateConnectedConveyorsPartialFailureAfterMain(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "conv.nbt")

	// A directory squatting on the first inverse path makes its save
	// fail after the main file is already on disk. The main path must
	// still be reported, and the main file must stay valid.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "conv_1.nbt"), 0o755))

	written, err := machine.GenerateConnectedConveyors(
		[]geom.Vec3{{7, 0, 0}}, geom.Zero, base)
	require.Error(t, err)
	require.Equal(t, []string{filepath.Join(dir, "conv_main.nbt")}, written)

	mainConns := readConnections(t, written[0])
	require.Len(t, mainConns, 1)
	assert.Equal(t, []int32{7, 0, 0}, mainConns[0])
}

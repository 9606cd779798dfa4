// Package schemtest provides test helpers for decoding generated
// structure files and comparing structures against golden fixtures.
package schemtest

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/Usu171/CreateSG/internal/schem"
)

// ReadArm decodes a mechanical arm structure file, transparently
// handling gzip-compressed and raw NBT.
func ReadArm(t *testing.T, path string) *schem.ArmStructure {
	t.Helper()
	var st schem.ArmStructure
	decodeFile(t, path, &st)
	return &st
}

// ReadConveyor decodes a chain conveyor structure file.
func ReadConveyor(t *testing.T, path string) *schem.ConveyorStructure {
	t.Helper()
	var st schem.ConveyorStructure
	decodeFile(t, path, &st)
	return &st
}

// decodeFile sniffs the gzip magic bytes so tests can read both
// compressed and uncompressed output through the same helper.
func decodeFile(t *testing.T, path string, v any) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err, "open structure file")
	defer f.Close()

	br := bufio.NewReader(f)
	var r io.Reader = br
	if head, err := br.Peek(2); err == nil && head[0] == 0x1f && head[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		require.NoError(t, err, "open gzip stream")
		defer zr.Close()
		r = zr
	}

	_, err = nbt.NewDecoder(r).Decode(v)
	require.NoError(t, err, "decode NBT")
}

// Golden marshals v as indented JSON and compares it against the golden
// fixture testdata/golden/{name}.golden of the calling package.
//
// To regenerate fixtures, run the package tests with -update.
func Golden(t *testing.T, name string, v any) {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err, "marshal golden payload")
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

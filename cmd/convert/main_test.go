package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/branch-locator/internal/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeSheet(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestConvert_XLSX(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	in := filepath.Join(dir, "branches.xlsx")
	writeSheet(t, in, [][]any{
		{"gov", "area", "cutomer", "address", "tel", "Latitude", "Longitude"},
		{"القاهرة", "المعادي", "كشك المعادي", "شارع 9", "0100", "29.96", "31.25"},
		{"الجيزة", "", "", "", "", "", ""},
	})

	cmd := newConvertCmd()
	out := filepath.Join(dir, "public", "cities.csv")
	cmd.SetArgs([]string{"--input", in, "--output", out})
	require.NoError(t, cmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	d, err := loader.ReadAll(f, loader.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())
	branches := d.Branches("القاهرة", "المعادي")
	require.Len(t, branches, 1)
	assert.Equal(t, "كشك المعادي", branches[0].Name)
	assert.True(t, branches[0].HasCoordinates())
}

func TestConvert_RequiresInput(t *testing.T) {
	cmd := newConvertCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(new(nopWriter))
	cmd.SetErr(new(nopWriter))
	assert.Error(t, cmd.Execute())
}

func TestConvert_MissingInput(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cmd := newConvertCmd()
	cmd.SetArgs([]string{"--input", filepath.Join(dir, "nope.csv"), "--output", filepath.Join(dir, "out.csv")})
	cmd.SetOut(new(nopWriter))
	cmd.SetErr(new(nopWriter))
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrFetch)
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

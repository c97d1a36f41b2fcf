package loader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/branch-locator/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_ReadableByLoader(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(
		"city,region,branch,phone,lat,lng\n" +
			"Cairo,Maadi,Kiosk 1,0100 123,29.96,31.25\n" +
			",,Orphan,,NULL,NULL\n" +
			"Giza,Dokki,,,,\n"))
	require.NoError(t, err)

	recs := Records(rows, DefaultFields())
	require.Len(t, recs, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, recs, true))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), utf8BOM))
	assert.Contains(t, buf.String(), "gov,area,cutomer,address,tel,Latitude,Longitude\n")
	assert.Contains(t, buf.String(), "Cairo,Maadi,Kiosk 1,,0100 123,29.96,31.25\n")

	dir, err := ReadAll(&buf, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, dir.Len())

	kiosk := dir.Branches("Cairo", "Maadi")
	require.Len(t, kiosk, 1)
	assert.Equal(t, "0100 123", kiosk[0].Phone)
	require.NotNil(t, kiosk[0].Coordinates)
	assert.InDelta(t, 29.96, kiosk[0].Coordinates.Lat, 1e-9)

	orphan := dir.Branches(models.UnspecifiedCity, models.AllRegions)
	require.Len(t, orphan, 1)
	assert.Nil(t, orphan[0].Coordinates)
}

func TestWriteCSV_NoBOM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, false))
	assert.Equal(t, "gov,area,cutomer,address,tel,Latitude,Longitude\n", buf.String())
}

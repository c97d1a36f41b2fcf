package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinate(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"30.0444", 30.0444, true},
		{" -31.5 ", -31.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"NULL", 0, false},
		{"null", 0, false},
		{"not found", 0, false},
		{"Not Found", 0, false},
		{"abc", 0, false},
		{"30,5", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseCoordinate(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.InDelta(t, tc.want, got, 1e-9, "input %q", tc.in)
		}
	}
}

func TestExtractRecord_CoordinatesAllOrNothing(t *testing.T) {
	headers := []string{"cutomer", "Latitude", "Longitude"}
	cases := []struct {
		name     string
		lat, lng string
		present  bool
	}{
		{"valid/valid", "30.1", "31.2", true},
		{"valid/sentinel", "30.1", "NULL", false},
		{"sentinel/valid", "not found", "31.2", false},
		{"sentinel/sentinel", "NULL", "not found", false},
		{"empty/empty", "", "", false},
		{"valid/garbage", "30.1", "east", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := ExtractRecord(NewRow(headers, []string{"Kiosk", tc.lat, tc.lng}), DefaultFields())
			assert.True(t, ok)
			assert.Equal(t, tc.present, rec.Coordinates != nil)
		})
	}
}

func TestExtractRecord_MissingName(t *testing.T) {
	_, ok := ExtractRecord(NewRow([]string{"gov", "cutomer"}, []string{"Cairo", "  "}), DefaultFields())
	assert.False(t, ok)

	_, ok = ExtractRecord(NewRow([]string{"gov"}, []string{"Cairo"}), DefaultFields())
	assert.False(t, ok)
}

func TestRowGet(t *testing.T) {
	row := NewRow([]string{"Gov", "AREA", "tel"}, []string{" Cairo ", "", "0100"})

	assert.Equal(t, "Cairo", row.Get("Gov"))
	assert.Equal(t, "Cairo", row.Get("gov"))
	assert.Equal(t, "", row.Get("area"))
	assert.Equal(t, "0100", row.Get("TEL"))
	assert.Equal(t, "", row.Get("missing"))
}

func TestExtractRecord_CustomAliases(t *testing.T) {
	fields := Fields{City: []string{"المحافظة"}, Name: []string{"الفرع"}}
	rec, ok := ExtractRecord(NewRow([]string{"المحافظة", "الفرع", "address"}, []string{"أسيوط", "فرع ١", "ش الجمهورية"}), fields)

	assert.True(t, ok)
	assert.Equal(t, "أسيوط", rec.City)
	assert.Equal(t, "فرع ١", rec.Name)
	assert.Equal(t, "ش الجمهورية", rec.Address, "unset aliases fall back to defaults")
}

func TestExtractRecord_ComposesNames(t *testing.T) {
	headers := []string{"gov", "cutomer"}
	decomposed, ok := ExtractRecord(NewRow(headers, []string{"Café", "A"}), DefaultFields())
	assert.True(t, ok)
	composed, _ := ExtractRecord(NewRow(headers, []string{"Café", "B"}), DefaultFields())
	assert.Equal(t, composed.City, decomposed.City)
}

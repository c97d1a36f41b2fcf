package loader

import (
	"math"
	"strconv"
	"strings"

	"github.com/branch-locator/app/models"
	"golang.org/x/text/unicode/norm"
)

// Fields header aliases per recognized field, tried in order
type Fields struct {
	City      []string `mapstructure:"city" yaml:"city"`
	Region    []string `mapstructure:"region" yaml:"region"`
	Name      []string `mapstructure:"name" yaml:"name"`
	Address   []string `mapstructure:"address" yaml:"address"`
	Phone     []string `mapstructure:"phone" yaml:"phone"`
	Latitude  []string `mapstructure:"latitude" yaml:"latitude"`
	Longitude []string `mapstructure:"longitude" yaml:"longitude"`
}

// DefaultFields the header names of the published branches sheet
func DefaultFields() Fields {
	return Fields{
		City:      []string{"gov", "city"},
		Region:    []string{"area", "region"},
		Name:      []string{"cutomer", "customer", "branch"},
		Address:   []string{"address"},
		Phone:     []string{"tel", "phone"},
		Latitude:  []string{"Latitude", "lat"},
		Longitude: []string{"Longitude", "lng"},
	}
}

// withDefaults fills alias lists left empty by configuration
func (f Fields) withDefaults() Fields {
	d := DefaultFields()
	if len(f.City) == 0 {
		f.City = d.City
	}
	if len(f.Region) == 0 {
		f.Region = d.Region
	}
	if len(f.Name) == 0 {
		f.Name = d.Name
	}
	if len(f.Address) == 0 {
		f.Address = d.Address
	}
	if len(f.Phone) == 0 {
		f.Phone = d.Phone
	}
	if len(f.Latitude) == 0 {
		f.Latitude = d.Latitude
	}
	if len(f.Longitude) == 0 {
		f.Longitude = d.Longitude
	}
	return f
}

// lookup first non-empty value among aliases, NFC-composed so that names typed
// with combining marks group with their precomposed spelling
func lookup(row Row, aliases []string) string {
	for _, key := range aliases {
		if v := row.Get(key); v != "" {
			return norm.NFC.String(v)
		}
	}
	return ""
}

// Record one row after field extraction and defaulting
type Record struct {
	City        string
	Region      string
	Name        string
	Address     string
	Phone       string
	Coordinates *models.Coordinates
}

// ExtractRecord reads the recognized fields of a row. ok is false when the row
// has no branch name and must be dropped.
func ExtractRecord(row Row, fields Fields) (rec Record, ok bool) {
	fields = fields.withDefaults()

	rec.Name = lookup(row, fields.Name)
	if rec.Name == "" {
		return Record{}, false
	}

	rec.City = lookup(row, fields.City)
	if rec.City == "" {
		rec.City = models.UnspecifiedCity
	}
	rec.Region = lookup(row, fields.Region)
	if rec.Region == "" {
		rec.Region = models.AllRegions
	}
	rec.Address = lookup(row, fields.Address)
	rec.Phone = lookup(row, fields.Phone)

	lat, latOK := ParseCoordinate(lookup(row, fields.Latitude))
	lng, lngOK := ParseCoordinate(lookup(row, fields.Longitude))
	if latOK && lngOK {
		rec.Coordinates = &models.Coordinates{Lat: lat, Lng: lng}
	}
	return rec, true
}

// ParseCoordinate accepts a finite number. Empty values and the NULL /
// "not found" sentinels are rejected.
func ParseCoordinate(raw string) (float64, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || strings.EqualFold(v, "NULL") || strings.EqualFold(v, "not found") {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

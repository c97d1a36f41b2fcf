package services

import (
	"cmp"
	"slices"

	"github.com/branch-locator/app/models"
	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0088

// Locator ranks branches by great-circle distance. Branches without
// coordinates are never returned.
type Locator struct {
	branches []models.Branch
}

// NewLocator indexes the geolocated branches of dir
func NewLocator(dir *models.Directory) *Locator {
	l := &Locator{}
	for _, b := range dir.AllBranches() {
		if b.HasCoordinates() {
			l.branches = append(l.branches, b)
		}
	}
	return l
}

// Len number of geolocated branches
func (l *Locator) Len() int { return len(l.branches) }

// Nearest returns up to limit branches closest to (lat, lng)
func (l *Locator) Nearest(lat, lng float64, limit int) []models.BranchDistance {
	return l.rank(s2.LatLngFromDegrees(lat, lng), -1, limit)
}

// NearbyBranches returns up to limit other branches closest to b; empty when b
// has no coordinates
func (l *Locator) NearbyBranches(b models.Branch, limit int) []models.BranchDistance {
	if !b.HasCoordinates() {
		return nil
	}
	return l.rank(s2.LatLngFromDegrees(b.Coordinates.Lat, b.Coordinates.Lng), b.ID, limit)
}

func (l *Locator) rank(origin s2.LatLng, skipID, limit int) []models.BranchDistance {
	if limit <= 0 {
		return nil
	}
	out := make([]models.BranchDistance, 0, len(l.branches))
	for _, b := range l.branches {
		if b.ID == skipID {
			continue
		}
		p := s2.LatLngFromDegrees(b.Coordinates.Lat, b.Coordinates.Lng)
		out = append(out, models.BranchDistance{
			Branch:     b,
			DistanceKm: origin.Distance(p).Radians() * earthRadiusKm,
		})
	}
	slices.SortFunc(out, func(a, b models.BranchDistance) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.Branch.ID, b.Branch.ID)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

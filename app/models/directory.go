package models

import (
	"fmt"
	"slices"
)

// RegionScope decides how the branch table is keyed
type RegionScope int

const (
	// ScopeRegionName keys branches by region name only. Two cities sharing a
	// region label (e.g. AllRegions) see one merged branch list.
	ScopeRegionName RegionScope = iota
	// ScopeCityRegion keys branches by the (city, region) pair.
	ScopeCityRegion
)

// String returns the config name of the scope
func (s RegionScope) String() string {
	switch s {
	case ScopeRegionName:
		return "region"
	case ScopeCityRegion:
		return "city_region"
	default:
		return fmt.Sprintf("RegionScope(%d)", int(s))
	}
}

// ParseRegionScope maps a config value onto a RegionScope
func ParseRegionScope(v string) (RegionScope, error) {
	switch v {
	case "", "region", "name":
		return ScopeRegionName, nil
	case "city_region", "city":
		return ScopeCityRegion, nil
	}
	return ScopeRegionName, fmt.Errorf("unknown region scope %q", v)
}

// BranchKey returns the branch-table key of a (city, region) pair under the scope
func (s RegionScope) BranchKey(city, region string) string {
	if s == ScopeCityRegion {
		return city + "\x1f" + region
	}
	return region
}

// Directory is the lookup structure: cities, regions per city and branches per
// region key. It is built once and never mutated; accessors hand out copies.
type Directory struct {
	cities   []City
	regions  map[string][]Region
	branches map[string][]Branch
	scope    RegionScope
	total    int
}

// NewDirectory freezes builder output into a Directory. Region lists without a
// branch entry get an empty one.
func NewDirectory(cities []City, regions map[string][]Region, branches map[string][]Branch, scope RegionScope) *Directory {
	d := &Directory{
		cities:   slices.Clone(cities),
		regions:  make(map[string][]Region, len(regions)),
		branches: make(map[string][]Branch, len(branches)),
		scope:    scope,
	}
	for city, list := range regions {
		d.regions[city] = slices.Clone(list)
	}
	for key, list := range branches {
		d.branches[key] = cloneBranches(list)
		d.total += len(list)
	}
	for city, list := range d.regions {
		for _, r := range list {
			key := scope.BranchKey(city, r.Name)
			if _, ok := d.branches[key]; !ok {
				d.branches[key] = []Branch{}
			}
		}
	}
	return d
}

// Cities returns the sorted city list
func (d *Directory) Cities() []City {
	if d == nil {
		return nil
	}
	return slices.Clone(d.cities)
}

// Regions returns the regions of a city, empty when the city is unknown
func (d *Directory) Regions(city string) []Region {
	if d == nil {
		return []Region{}
	}
	list, ok := d.regions[city]
	if !ok {
		return []Region{}
	}
	return slices.Clone(list)
}

// Branches returns the branches listed under a region. The city is only
// consulted under ScopeCityRegion.
func (d *Directory) Branches(city, region string) []Branch {
	if d == nil {
		return []Branch{}
	}
	list, ok := d.branches[d.scope.BranchKey(city, region)]
	if !ok {
		return []Branch{}
	}
	return cloneBranches(list)
}

// HasBranchEntry reports whether the branch table holds a key for the pair,
// even an empty one
func (d *Directory) HasBranchEntry(city, region string) bool {
	if d == nil {
		return false
	}
	_, ok := d.branches[d.scope.BranchKey(city, region)]
	return ok
}

// AllBranches returns every distinct branch ordered by ID
func (d *Directory) AllBranches() []Branch {
	if d == nil {
		return nil
	}
	seen := make(map[int]struct{}, d.total)
	out := make([]Branch, 0, d.total)
	for _, list := range d.branches {
		for _, b := range list {
			if _, dup := seen[b.ID]; dup {
				continue
			}
			seen[b.ID] = struct{}{}
			out = append(out, b.Clone())
		}
	}
	slices.SortFunc(out, func(a, b Branch) int { return a.ID - b.ID })
	return out
}

// Len number of distinct branches
func (d *Directory) Len() int {
	return len(d.AllBranches())
}

// IsEmpty reports whether the directory has nothing to offer at step 1
func (d *Directory) IsEmpty() bool {
	return d == nil || len(d.cities) == 0
}

// Scope how branches are keyed
func (d *Directory) Scope() RegionScope {
	if d == nil {
		return ScopeRegionName
	}
	return d.scope
}

func cloneBranches(list []Branch) []Branch {
	out := make([]Branch, len(list))
	for i, b := range list {
		out[i] = b.Clone()
	}
	return out
}

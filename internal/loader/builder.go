package loader

import (
	"slices"

	"github.com/branch-locator/app/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Builder accumulates records in one pass and freezes them into a Directory
type Builder struct {
	locale language.Tag
	scope  models.RegionScope

	cities    []string
	citySeen  map[string]struct{}
	regions   map[string][]models.Region
	regionSeq map[string]int
	branches  map[string][]models.Branch
	branchSeq int
}

// NewBuilder creates a builder sorting names with the collation of locale
func NewBuilder(locale language.Tag, scope models.RegionScope) *Builder {
	return &Builder{
		locale:    locale,
		scope:     scope,
		citySeen:  make(map[string]struct{}),
		regions:   make(map[string][]models.Region),
		regionSeq: make(map[string]int),
		branches:  make(map[string][]models.Branch),
	}
}

// Add registers the record's city, its region (deduplicated by name within the
// city, first id kept) and a new branch with the next global id.
func (b *Builder) Add(rec Record) {
	if _, ok := b.citySeen[rec.City]; !ok {
		b.citySeen[rec.City] = struct{}{}
		b.cities = append(b.cities, rec.City)
		b.regions[rec.City] = []models.Region{}
	}

	if !slices.ContainsFunc(b.regions[rec.City], func(r models.Region) bool { return r.Name == rec.Region }) {
		b.regionSeq[rec.City]++
		b.regions[rec.City] = append(b.regions[rec.City], models.Region{
			ID:   b.regionSeq[rec.City],
			Name: rec.Region,
		})
	}

	b.branchSeq++
	key := b.scope.BranchKey(rec.City, rec.Region)
	b.branches[key] = append(b.branches[key], models.Branch{
		ID:          b.branchSeq,
		Name:        rec.Name,
		Address:     rec.Address,
		Phone:       rec.Phone,
		Coordinates: rec.Coordinates,
	})
}

// Len number of branches added so far
func (b *Builder) Len() int { return b.branchSeq }

// Build assigns city ids in first-seen order, sorts every list by name and
// returns the frozen directory. The builder can keep accepting records.
func (b *Builder) Build() *models.Directory {
	col := collate.New(b.locale)

	cities := make([]models.City, len(b.cities))
	for i, name := range b.cities {
		cities[i] = models.City{ID: i + 1, Name: name}
	}
	slices.SortStableFunc(cities, func(x, y models.City) int { return col.CompareString(x.Name, y.Name) })

	regions := make(map[string][]models.Region, len(b.regions))
	for city, list := range b.regions {
		list = slices.Clone(list)
		slices.SortStableFunc(list, func(x, y models.Region) int { return col.CompareString(x.Name, y.Name) })
		regions[city] = list
	}

	branches := make(map[string][]models.Branch, len(b.branches))
	for key, list := range b.branches {
		list = slices.Clone(list)
		slices.SortStableFunc(list, func(x, y models.Branch) int { return col.CompareString(x.Name, y.Name) })
		branches[key] = list
	}

	return models.NewDirectory(cities, regions, branches, b.scope)
}

package loader

import (
	"slices"

	"github.com/branch-locator/app/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sample dataset served when the real one cannot be loaded
var (
	fallbackCities = []models.City{
		{ID: 1, Name: "القاهرة"},
		{ID: 2, Name: "الجيزة"},
	}
	fallbackBranch = models.Branch{
		ID:      1,
		Name:    "فرع تجريبي",
		Address: "العنوان التجريبي",
	}
)

// Fallback returns the embedded sample directory. Every sample city has the
// single region AllRegions holding the demo branch.
func Fallback(locale language.Tag, scope models.RegionScope) *models.Directory {
	col := collate.New(locale)
	cities := slices.Clone(fallbackCities)
	slices.SortStableFunc(cities, func(x, y models.City) int { return col.CompareString(x.Name, y.Name) })

	regions := make(map[string][]models.Region, len(cities))
	branches := make(map[string][]models.Branch)
	for _, c := range cities {
		regions[c.Name] = []models.Region{{ID: 1, Name: models.AllRegions}}
		branches[scope.BranchKey(c.Name, models.AllRegions)] = []models.Branch{fallbackBranch}
	}
	return models.NewDirectory(cities, regions, branches, scope)
}

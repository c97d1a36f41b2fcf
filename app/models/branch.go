package models

// Placeholder names used when a row leaves city or region empty
const (
	UnspecifiedCity = "غير محدد"
	AllRegions      = "الكل"
)

// City top-level grouping, first selection of the wizard
type City struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Region sub-grouping of a city; ID is sequential within its parent city
type Region struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Coordinates geographic position of a branch
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Branch a physical retail location; ID is sequential across the whole dataset
type Branch struct {
	ID          int          `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Address     string       `json:"address" yaml:"address"`
	Phone       string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
}

// HasPhone reports whether phone-specific actions apply to the branch
func (b Branch) HasPhone() bool {
	return b.Phone != ""
}

// Clone returns a copy that shares no memory with b
func (b Branch) Clone() Branch {
	if b.Coordinates != nil {
		c := *b.Coordinates
		b.Coordinates = &c
	}
	return b
}

// HasCoordinates reports whether the branch can be placed on a map
func (b Branch) HasCoordinates() bool {
	return b.Coordinates != nil
}

// BranchDistance a branch paired with its distance from a reference point
type BranchDistance struct {
	Branch     Branch  `json:"branch"`
	DistanceKm float64 `json:"distance_km"`
}

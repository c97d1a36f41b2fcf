package wizard

import (
	"errors"
	"fmt"

	"github.com/branch-locator/app/models"
	"github.com/branch-locator/helpers/utils"
)

// Step position in the four-step flow
type Step int

const (
	StepSelectCity Step = iota + 1
	StepSelectRegion
	StepSelectBranch
	StepShowDetails
)

// Steps in display order
var Steps = []Step{StepSelectCity, StepSelectRegion, StepSelectBranch, StepShowDetails}

func (s Step) String() string {
	switch s {
	case StepSelectCity:
		return "select_city"
	case StepSelectRegion:
		return "select_region"
	case StepSelectBranch:
		return "select_branch"
	case StepShowDetails:
		return "show_details"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// ErrWrongStep is returned when a selection is made outside its step
var ErrWrongStep = errors.New("selection not allowed at current step")

// Catalog is the read side of a directory
type Catalog interface {
	Cities() []models.City
	Regions(city string) []models.Region
	Branches(city, region string) []models.Branch
}

// Details what the last step shows about the selected branch
type Details struct {
	City        string
	Region      string
	Branch      models.Branch
	HasPhone    bool
	MapsURL     string
	MapsEmbed   string // empty without an embed key
	DialURI     string // empty without a phone
	Coordinates *models.Coordinates
}

// Option configures a Wizard
type Option func(*Wizard)

// WithEmbedKey sets the key used for map embed URLs
func WithEmbedKey(key string) Option {
	return func(w *Wizard) { w.embedKey = key }
}

// Wizard drives city → region → branch → details. It is not safe for
// concurrent use; the UI owns it.
type Wizard struct {
	catalog  Catalog
	embedKey string

	step   Step
	city   string
	region string
	branch *models.Branch
}

// New starts a wizard at StepSelectCity
func New(catalog Catalog, opts ...Option) *Wizard {
	w := &Wizard{catalog: catalog, step: StepSelectCity}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Step current step
func (w *Wizard) Step() Step { return w.step }

// SelectedCity name of the chosen city, empty before step 2
func (w *Wizard) SelectedCity() string { return w.city }

// SelectedRegion name of the chosen region, empty before step 3
func (w *Wizard) SelectedRegion() string { return w.region }

// SelectedBranch the chosen branch, nil before step 4
func (w *Wizard) SelectedBranch() *models.Branch {
	if w.branch == nil {
		return nil
	}
	b := w.branch.Clone()
	return &b
}

// SelectCity records the city and moves to region selection
func (w *Wizard) SelectCity(name string) error {
	if w.step != StepSelectCity {
		return fmt.Errorf("select city at %s: %w", w.step, ErrWrongStep)
	}
	w.city = name
	w.region = ""
	w.branch = nil
	w.step = StepSelectRegion
	return nil
}

// SelectRegion records the region and moves to branch selection
func (w *Wizard) SelectRegion(name string) error {
	if w.step != StepSelectRegion {
		return fmt.Errorf("select region at %s: %w", w.step, ErrWrongStep)
	}
	w.region = name
	w.branch = nil
	w.step = StepSelectBranch
	return nil
}

// SelectBranch records the branch and moves to the details step
func (w *Wizard) SelectBranch(b models.Branch) error {
	if w.step != StepSelectBranch {
		return fmt.Errorf("select branch at %s: %w", w.step, ErrWrongStep)
	}
	b = b.Clone()
	w.branch = &b
	w.step = StepShowDetails
	return nil
}

// Back goes one step back keeping the selections made so far. It does nothing
// at the first step.
func (w *Wizard) Back() {
	if w.step > StepSelectCity {
		w.step--
	}
}

// Reset returns to the first step and clears every selection
func (w *Wizard) Reset() {
	w.step = StepSelectCity
	w.city = ""
	w.region = ""
	w.branch = nil
}

// Cities options of step 1
func (w *Wizard) Cities() []models.City {
	return w.catalog.Cities()
}

// Regions options of step 2, empty when the city is unknown
func (w *Wizard) Regions() []models.Region {
	if w.city == "" {
		return []models.Region{}
	}
	return w.catalog.Regions(w.city)
}

// Branches options of step 3, empty when the region is unknown
func (w *Wizard) Branches() []models.Branch {
	if w.region == "" {
		return []models.Branch{}
	}
	return w.catalog.Branches(w.city, w.region)
}

// Details of the selected branch; ok is false before step 4
func (w *Wizard) Details() (Details, bool) {
	if w.step != StepShowDetails || w.branch == nil {
		return Details{}, false
	}
	b := w.branch.Clone()
	d := Details{
		City:        w.city,
		Region:      w.region,
		Branch:      b,
		HasPhone:    b.HasPhone(),
		MapsURL:     utils.MapsSearchURL(b.Address),
		DialURI:     utils.DialURI(b.Phone),
		Coordinates: b.Coordinates,
	}
	if w.embedKey != "" {
		d.MapsEmbed = utils.MapsEmbedURL(w.embedKey, b.Address)
	}
	return d, true
}

package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/branch-locator/app/services"
	"github.com/branch-locator/internal/i18n"
	"github.com/branch-locator/internal/loader"
	"github.com/branch-locator/internal/matcher"
	"github.com/branch-locator/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "gov,area,cutomer,address,tel,Latitude,Longitude\n" +
	"Cairo,Downtown,Tahrir,Tahrir Sq,0223,30.0444,31.2357\n" +
	"Cairo,Maadi,Road9,Road 9,,30.0,31.25\n" +
	"Giza,Dokki,Dokki,Mesaha Sq,0233,30.0384,31.2126\n" +
	"Alexandria,Raml,Raml,Raml St,,31.2001,29.9187\n"

type stubSource struct {
	result services.LoadResult
	calls  int
}

func (s *stubSource) Load(ctx context.Context) services.LoadResult {
	s.calls++
	return s.result
}

func newModel(t *testing.T, res services.LoadResult) (Model, *stubSource) {
	t.Helper()
	m, err := matcher.New(64, 0.8, nil)
	require.NoError(t, err)
	src := &stubSource{result: res}
	return New(Config{
		Source:      src,
		Matcher:     m,
		Messages:    i18n.MustLoad("en"),
		NearbyLimit: 2,
	}), src
}

func sampleResult(t *testing.T) services.LoadResult {
	t.Helper()
	dir, err := loader.ReadAll(strings.NewReader(sample), loader.DefaultOptions())
	require.NoError(t, err)
	return services.LoadResult{Directory: dir}
}

func loaded(t *testing.T, m Model) Model {
	t.Helper()
	cmd := m.Init()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, key(k))
	}
	return m
}

func TestModel_LoadingState(t *testing.T) {
	m, src := newModel(t, sampleResult(t))
	assert.True(t, m.Loading())
	assert.Equal(t, wizard.Step(0), m.Step())

	view := m.View()
	assert.Contains(t, view, "Loading data...")
	assert.NotContains(t, view, "Step 1")

	m = press(t, m, "enter", "down")
	assert.True(t, m.Loading(), "keys are ignored until the data arrives")
	assert.Equal(t, 0, src.calls)

	m = loaded(t, m)
	assert.Equal(t, 1, src.calls)
	assert.False(t, m.Loading())
	assert.Equal(t, wizard.StepSelectCity, m.Step())
	assert.Equal(t, []string{"Alexandria", "Cairo", "Giza"}, m.Options())
	assert.Contains(t, m.View(), "Step 1: Choose a governorate")
}

func TestModel_WalkToDetails(t *testing.T) {
	m, _ := newModel(t, sampleResult(t))
	m = loaded(t, m)

	m = press(t, m, "down", "enter")
	assert.Equal(t, wizard.StepSelectRegion, m.Step())
	assert.Equal(t, []string{"Downtown", "Maadi"}, m.Options())
	assert.Contains(t, m.View(), "Step 2: Choose an area in Cairo")

	m = press(t, m, "enter")
	assert.Equal(t, wizard.StepSelectBranch, m.Step())
	assert.Equal(t, []string{"Tahrir"}, m.Options())

	m = press(t, m, "enter")
	assert.Equal(t, wizard.StepShowDetails, m.Step())

	view := m.View()
	assert.Contains(t, view, "Tahrir Sq")
	assert.Contains(t, view, "tel:0223")
	assert.Contains(t, view, "https://www.google.com/maps/search/?api=1&query=Tahrir%20Sq")
	assert.Contains(t, view, "Nearby branches")
	assert.Contains(t, view, "Dokki")
	assert.NotContains(t, view, "Raml")

	m = press(t, m, "x")
	assert.Empty(t, m.Filter(), "no filtering on the details step")
}

func TestModel_BackAndReset(t *testing.T) {
	m, _ := newModel(t, sampleResult(t))
	m = loaded(t, m)

	m = press(t, m, "esc")
	assert.Equal(t, wizard.StepSelectCity, m.Step())

	m = press(t, m, "enter", "enter")
	assert.Equal(t, wizard.StepSelectBranch, m.Step())

	m = press(t, m, "backspace")
	assert.Equal(t, wizard.StepSelectRegion, m.Step())

	m = press(t, m, "enter", "enter")
	assert.Equal(t, wizard.StepShowDetails, m.Step())

	m = press(t, m, "ctrl+r")
	assert.Equal(t, wizard.StepSelectCity, m.Step())
	assert.Len(t, m.Options(), 3)
}

func TestModel_Filter(t *testing.T) {
	m, _ := newModel(t, sampleResult(t))
	m = loaded(t, m)

	m = press(t, m, "g", "i", "z")
	assert.Equal(t, "giz", m.Filter())
	assert.Equal(t, []string{"Giza"}, m.Options())
	assert.Contains(t, m.View(), "Filter: giz")

	m = press(t, m, "backspace")
	assert.Equal(t, "gi", m.Filter())

	m = press(t, m, "esc")
	assert.Empty(t, m.Filter())
	assert.Len(t, m.Options(), 3)
	assert.Equal(t, wizard.StepSelectCity, m.Step(), "esc clears the filter before going back")

	m = press(t, m, "qqqq")
	assert.Empty(t, m.Options())
	assert.Contains(t, m.View(), "No options")

	m = press(t, m, "enter")
	assert.Equal(t, wizard.StepSelectCity, m.Step())
}

func TestModel_FallbackWarning(t *testing.T) {
	opts := loader.DefaultOptions()
	m, _ := newModel(t, services.LoadResult{
		Directory: loader.Fallback(opts.Locale, opts.Scope),
		Fallback:  true,
		Warning:   "Could not load branch data. Sample data will be used.",
	})
	m = loaded(t, m)

	assert.True(t, m.Fallback())
	assert.Contains(t, m.View(), "Could not load branch data")
	assert.Len(t, m.Options(), 2)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newModel(t, sampleResult(t))
	_, cmd := m.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

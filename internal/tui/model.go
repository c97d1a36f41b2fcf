package tui

import (
	"context"
	"strings"

	"github.com/branch-locator/app/models"
	"github.com/branch-locator/app/services"
	"github.com/branch-locator/internal/i18n"
	"github.com/branch-locator/internal/matcher"
	"github.com/branch-locator/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// DirectorySource yields the directory exactly once per session
type DirectorySource interface {
	Load(ctx context.Context) services.LoadResult
}

// Config everything the model needs from the outside
type Config struct {
	Source      DirectorySource
	Matcher     *matcher.Matcher
	Messages    *i18n.Messages
	EmbedKey    string
	NearbyLimit int
	Logger      *zap.Logger
}

type loadedMsg services.LoadResult

// option one selectable line of the current step
type option struct {
	label  string
	detail string
	city   string
	region string
	branch models.Branch
}

// Model is the Bubble Tea model of the branch locator
type Model struct {
	cfg    Config
	msgs   *i18n.Messages
	logger *zap.Logger

	loading  bool
	fallback bool
	warning  string

	wiz     *wizard.Wizard
	locator *services.Locator

	filter  string
	cursor  int
	visible []option
	width   int
}

// New creates a model in the loading state
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Messages == nil {
		cfg.Messages = i18n.MustLoad(i18n.Default)
	}
	return Model{
		cfg:     cfg,
		msgs:    cfg.Messages,
		logger:  cfg.Logger,
		loading: true,
	}
}

// Init starts the single directory load
func (m Model) Init() tea.Cmd {
	src := m.cfg.Source
	return func() tea.Msg {
		return loadedMsg(src.Load(context.Background()))
	}
}

// Update handles the load result, window size and keys
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.loading = false
		m.fallback = msg.Fallback
		m.warning = msg.Warning
		m.wiz = wizard.New(msg.Directory, wizard.WithEmbedKey(m.cfg.EmbedKey))
		m.locator = services.NewLocator(msg.Directory)
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "enter":
		m.choose()
	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.refresh()
		} else {
			m.back()
		}
	case "backspace":
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
			m.refresh()
		} else {
			m.back()
		}
	case "ctrl+r":
		m.wiz.Reset()
		m.filter = ""
		m.refresh()
	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			if m.wiz.Step() == wizard.StepShowDetails {
				return m, nil
			}
			m.filter += string(msg.Runes)
			m.refresh()
		}
	}
	return m, nil
}

func (m *Model) choose() {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return
	}
	opt := m.visible[m.cursor]

	var err error
	switch m.wiz.Step() {
	case wizard.StepSelectCity:
		err = m.wiz.SelectCity(opt.city)
	case wizard.StepSelectRegion:
		err = m.wiz.SelectRegion(opt.region)
	case wizard.StepSelectBranch:
		err = m.wiz.SelectBranch(opt.branch)
	default:
		return
	}
	if err != nil {
		m.logger.Warn("Selection rejected", zap.Stringer("step", m.wiz.Step()), zap.Error(err))
		return
	}
	m.logger.Debug("Selected", zap.Stringer("step", m.wiz.Step()), zap.String("option", opt.label))
	m.filter = ""
	m.refresh()
}

func (m *Model) back() {
	m.wiz.Back()
	m.filter = ""
	m.refresh()
}

// refresh rebuilds the visible options of the current step
func (m *Model) refresh() {
	var all []option
	switch m.wiz.Step() {
	case wizard.StepSelectCity:
		for _, c := range m.wiz.Cities() {
			all = append(all, option{label: c.Name, city: c.Name})
		}
	case wizard.StepSelectRegion:
		for _, r := range m.wiz.Regions() {
			all = append(all, option{label: r.Name, region: r.Name})
		}
	case wizard.StepSelectBranch:
		for _, b := range m.wiz.Branches() {
			all = append(all, option{label: b.Name, detail: b.Address, branch: b})
		}
	}

	if m.cfg.Matcher != nil && strings.TrimSpace(m.filter) != "" {
		all = matcher.Filter(m.cfg.Matcher, m.filter, all, func(o option) string { return o.label })
	}
	m.visible = all
	m.cursor = 0
}

// Step current wizard step, zero while loading
func (m Model) Step() wizard.Step {
	if m.wiz == nil {
		return 0
	}
	return m.wiz.Step()
}

// Loading reports whether the directory is still being fetched
func (m Model) Loading() bool { return m.loading }

// Fallback reports whether sample data is shown
func (m Model) Fallback() bool { return m.fallback }

// Options labels of the options currently shown
func (m Model) Options() []string {
	out := make([]string, len(m.visible))
	for i, o := range m.visible {
		out[i] = o.label
	}
	return out
}

// Filter text typed on the current step
func (m Model) Filter() string { return m.filter }

// nearby other branches close to the selected one
func (m Model) nearby() []models.BranchDistance {
	b := m.wiz.SelectedBranch()
	if b == nil || m.cfg.NearbyLimit <= 0 {
		return nil
	}
	return m.locator.NearbyBranches(*b, m.cfg.NearbyLimit)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/branch-locator/internal/wizard"
	"github.com/charmbracelet/lipgloss"
)

// View renders the whole screen
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.msgs.Title))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.msgs.Subtitle))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(m.msgs.Loading))
		b.WriteString("\n")
		return m.frame(b.String())
	}

	if m.warning != "" {
		b.WriteString(warnStyle.Render("⚠ " + m.warning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.progress())
	b.WriteString("\n\n")

	if m.wiz.Step() == wizard.StepShowDetails {
		b.WriteString(m.details())
	} else {
		b.WriteString(m.list())
	}

	if hint := m.backHint(); hint != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Esc: " + hint))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.msgs.Help))
	b.WriteString("\n")
	return m.frame(b.String())
}

// frame aligns the screen to the reading direction once the width is known
func (m Model) frame(s string) string {
	if m.width <= 0 || !m.msgs.RTL() {
		return s
	}
	return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right).Render(s)
}

func (m Model) progress() string {
	current := m.wiz.Step()
	parts := make([]string, 0, len(wizard.Steps))
	for _, s := range wizard.Steps {
		label := fmt.Sprintf("%d. %s", int(s), m.msgs.StepLabel(int(s)))
		switch {
		case s == current:
			parts = append(parts, activeStyle.Render("["+label+"]"))
		case s < current:
			parts = append(parts, dimStyle.Render("✓ "+label))
		default:
			parts = append(parts, dimStyle.Render(label))
		}
	}
	return strings.Join(parts, dimStyle.Render(" › "))
}

func (m Model) heading() string {
	switch m.wiz.Step() {
	case wizard.StepSelectCity:
		return m.msgs.Step1Heading
	case wizard.StepSelectRegion:
		return fmt.Sprintf(m.msgs.Step2Heading, m.wiz.SelectedCity())
	case wizard.StepSelectBranch:
		return fmt.Sprintf(m.msgs.Step3Heading, m.wiz.SelectedRegion())
	default:
		return m.msgs.Step4Heading
	}
}

func (m Model) list() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(m.heading()))
	b.WriteString("\n")
	if m.filter != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf(m.msgs.Filter, m.filter)))
		b.WriteString("\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("  " + m.msgs.NoOptions))
		b.WriteString("\n")
		return b.String()
	}
	for i, opt := range m.visible {
		cursor := "  "
		label := opt.label
		if i == m.cursor {
			cursor = activeStyle.Render("> ")
			label = activeStyle.Render(label)
		}
		b.WriteString(cursor + label)
		if opt.detail != "" {
			b.WriteString(dimStyle.Render(" · " + opt.detail))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) details() string {
	d, ok := m.wiz.Details()
	if !ok {
		return ""
	}

	var card strings.Builder
	card.WriteString(headingStyle.Render(d.Branch.Name))
	card.WriteString("\n")
	card.WriteString(dimStyle.Render(d.City + " / " + d.Region))
	card.WriteString("\n\n")
	card.WriteString(m.msgs.Address + " " + d.Branch.Address + "\n")
	if d.HasPhone {
		card.WriteString(m.msgs.Phone + " " + d.Branch.Phone + "\n")
	}
	card.WriteString("\n")
	card.WriteString(m.msgs.OpenInMaps + ": " + d.MapsURL + "\n")
	if d.HasPhone {
		card.WriteString(m.msgs.CallNow + ": " + d.DialURI + "\n")
	}
	if d.MapsEmbed != "" {
		card.WriteString(fmt.Sprintf(m.msgs.MapEmbed, d.Branch.Name) + ": " + d.MapsEmbed + "\n")
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(m.heading()))
	b.WriteString("\n")
	b.WriteString(cardStyle.Render(strings.TrimRight(card.String(), "\n")))
	b.WriteString("\n")

	if near := m.nearby(); len(near) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render(m.msgs.Nearby))
		b.WriteString("\n")
		for _, n := range near {
			b.WriteString("  • " + n.Branch.Name + " ")
			b.WriteString(dimStyle.Render(fmt.Sprintf(m.msgs.DistanceKm, n.DistanceKm)))
			b.WriteString("\n")
		}
	}
	b.WriteString(dimStyle.Render("Ctrl+R: " + m.msgs.StartOver))
	b.WriteString("\n")
	return b.String()
}

func (m Model) backHint() string {
	switch m.wiz.Step() {
	case wizard.StepSelectRegion:
		return m.msgs.BackToCities
	case wizard.StepSelectBranch:
		return m.msgs.BackToRegions
	case wizard.StepShowDetails:
		return m.msgs.BackToBranches
	}
	return ""
}

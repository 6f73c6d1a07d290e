package tui

import (
	"fmt"
	"strings"

	"hospitalfood/internal/client/lifecycle"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	chosenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))

	statusStyles = map[lifecycle.Level]lipgloss.Style{
		lifecycle.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		lifecycle.LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")),
		lifecycle.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
	}
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	return s
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Hospital food · %s dashboard", m.mode)))
	b.WriteString("\n")
	if m.mode == ModeManager {
		b.WriteString(filterStyle.Render(m.describeMeals()))
	} else {
		b.WriteString(filterStyle.Render(m.describeFilter()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.coord.AssignOpen() {
		b.WriteString(m.dialogView())
		b.WriteString("\n")
	}

	b.WriteString(m.statusView())
	b.WriteString("\n")
	if m.coord.AssignOpen() {
		b.WriteString(m.help.View(dialogHelp{keys: m.keys}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m *Model) describeFilter() string {
	date := m.filter.Date
	if date == "" {
		date = "all dates"
	}
	session := "all sessions"
	if m.filter.Session != kernel.SessionUnknown {
		session = m.filter.Session.String()
	}
	line := fmt.Sprintf("%s · %s · %d selected", date, session, len(m.coord.Selected()))
	if summary := m.coord.Summary(); summary != "" {
		line += " · " + summary
	}
	return line
}

func (m *Model) dialogView() string {
	state, _ := m.coord.Picker(staff.RoleDelivery)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Assign %d order(s) for delivery\n", len(m.coord.Selected())))

	location := state.Location
	if location == "" {
		location = "(press tab)"
	}
	b.WriteString(fmt.Sprintf("Location: %s\n", location))

	if len(state.People) == 0 {
		b.WriteString("No delivery staff loaded\n")
	}
	for _, p := range state.People {
		line := fmt.Sprintf("  %s  %s", p.Name, p.ContactInfo)
		if state.Chosen != nil && state.Chosen.ID.IsEqual(p.ID) {
			line = chosenStyle.Render("> " + strings.TrimPrefix(line, "  "))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(m.notes.View())

	return dialogStyle.Render(b.String())
}

func (m *Model) statusView() string {
	if m.busy > 0 || m.coord.Submitting() {
		return filterStyle.Render("working…")
	}
	if m.status == "" {
		return ""
	}
	style, ok := statusStyles[m.statusLevel]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Render(m.status)
}

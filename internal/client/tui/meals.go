package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hospitalfood/internal/client/api"
	"hospitalfood/internal/client/lifecycle"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// updateMeals handles keys of the manager screen: pick patients with a planned meal
// for one session, choose the pantry that cooks it and place the orders.
func (m *Model) updateMeals(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if p, ok := m.currentPatient(); ok {
			m.coord.TogglePatient(p.Patient.ID)
			m.sync()
		}
		return nil

	case key.Matches(msg, m.keys.Refresh):
		return m.loadPatients()

	case key.Matches(msg, m.keys.Session):
		m.mealSession = nextMealSession(m.mealSession)
		return m.loadPatients()

	case key.Matches(msg, m.keys.NextLocation):
		state, _ := m.coord.Picker(staff.RolePantryStaff)
		next := nextString(state.Locations, state.Location)
		if next == "" {
			return nil
		}
		return m.run(func(ctx context.Context) error {
			return m.coord.SelectLocation(ctx, staff.RolePantryStaff, next)
		})

	case key.Matches(msg, m.keys.NextCook):
		state, _ := m.coord.Picker(staff.RolePantryStaff)
		if person, ok := stepPerson(state, 1); ok {
			_ = m.coord.ChoosePerson(staff.RolePantryStaff, person.ID)
			m.sync()
		}
		return nil

	case key.Matches(msg, m.keys.Place):
		return m.run(func(ctx context.Context) error {
			return m.coord.PlaceOrder(ctx, lifecycle.MealOrderInput{})
		})
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *Model) loadPatients() tea.Cmd {
	session := m.mealSession
	return m.run(func(ctx context.Context) error {
		return m.coord.LoadPatients(ctx, session)
	})
}

func (m *Model) currentPatient() (api.PatientMeal, bool) {
	patients := m.coord.Patients()
	i := m.table.Cursor()
	if i < 0 || i >= len(patients) {
		return api.PatientMeal{}, false
	}
	return patients[i], true
}

func (m *Model) mealRows() []table.Row {
	patients := m.coord.Patients()
	selected := m.coord.SelectedPatients()
	rows := make([]table.Row, len(patients))
	for i, p := range patients {
		mark := "[ ]"
		if slices.ContainsFunc(selected, p.Patient.ID.IsEqual) {
			mark = "[x]"
		}
		rows[i] = table.Row{
			mark,
			p.Patient.Name,
			fmt.Sprintf("%s/%s", p.Patient.RoomNumber, p.Patient.BedNumber),
			strings.Join(p.Patient.Allergies, ", "),
			describeItems(p.MealDetails),
		}
	}
	return rows
}

func (m *Model) describeMeals() string {
	state, _ := m.coord.Picker(staff.RolePantryStaff)
	pantry := "no pantry (press tab)"
	if state.Location != "" {
		pantry = state.Location
		if state.Chosen != nil {
			pantry += " / " + state.Chosen.Name
		} else {
			pantry += " / no cook (press n)"
		}
	}
	return fmt.Sprintf("%s meals · %s · %d selected", m.mealSession, pantry, len(m.coord.SelectedPatients()))
}

func mealColumns(width int) []table.Column {
	fixed := []table.Column{
		{Title: "", Width: 3},
		{Title: "Patient", Width: 18},
		{Title: "Room/Bed", Width: 9},
		{Title: "Allergies", Width: 18},
	}
	used := 0
	for _, c := range fixed {
		used += c.Width + 2
	}
	return append(fixed, table.Column{Title: "Planned meal", Width: max(12, width-used-2)})
}

func nextMealSession(s kernel.Session) kernel.Session {
	sessions := kernel.Sessions()
	i := slices.Index(sessions, s)
	return sessions[(i+1)%len(sessions)]
}

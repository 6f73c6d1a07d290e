package lifecycle

import (
	"fmt"
	"slices"

	"hospitalfood/internal/client/api"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
)

// StaffPicker holds a location and the staff member chosen there as one unit.
// Changing the location drops the people list and the chosen person.
type StaffPicker struct {
	role       staff.Role
	locations  []string
	location   string
	generation uint64
	people     []api.StaffMember
	chosen     *api.StaffMember
}

func newStaffPicker(role staff.Role) *StaffPicker {
	return &StaffPicker{role: role}
}

func (p *StaffPicker) Role() staff.Role {
	return p.role
}

// selectLocation switches location and returns the generation the people lookup must answer for.
func (p *StaffPicker) selectLocation(location string) uint64 {
	p.generation++
	p.location = location
	p.people = nil
	p.chosen = nil
	return p.generation
}

// setPeople stores a lookup result unless the location changed in the meantime.
func (p *StaffPicker) setPeople(generation uint64, people []api.StaffMember) bool {
	if generation != p.generation {
		return false
	}
	p.people = slices.Clone(people)
	return true
}

func (p *StaffPicker) choose(id kernel.UUID) error {
	if p.location == "" {
		return ErrLocationRequired
	}
	i := slices.IndexFunc(p.people, func(m api.StaffMember) bool { return m.ID.IsEqual(id) })
	if i < 0 {
		return fmt.Errorf("%w: %s is not listed at %s", ErrPersonRequired, id, p.location)
	}
	person := p.people[i]
	p.chosen = &person
	return nil
}

// resolved returns the location and person an action can submit, or the first missing piece.
func (p *StaffPicker) resolved() (string, api.StaffMember, error) {
	if p.location == "" {
		return "", api.StaffMember{}, ErrLocationRequired
	}
	if p.chosen == nil {
		return "", api.StaffMember{}, ErrPersonRequired
	}
	return p.location, *p.chosen, nil
}

func (p *StaffPicker) reset() {
	p.generation++
	p.location = ""
	p.people = nil
	p.chosen = nil
}

// PickerState is a snapshot of a StaffPicker.
type PickerState struct {
	Role      staff.Role
	Locations []string
	Location  string
	People    []api.StaffMember
	Chosen    *api.StaffMember
}

func (p *StaffPicker) state() PickerState {
	s := PickerState{
		Role:      p.role,
		Locations: slices.Clone(p.locations),
		Location:  p.location,
		People:    slices.Clone(p.people),
	}
	if p.chosen != nil {
		chosen := *p.chosen
		s.Chosen = &chosen
	}
	return s
}

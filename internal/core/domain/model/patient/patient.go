package patient

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/pkg/errs"
)

const (
	MinAge = 0
	MaxAge = 130
)

var (
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrRoomNumberIsRequired = errs.NewValueIsRequiredError("roomNumber")
	ErrBedNumberIsRequired  = errs.NewValueIsRequiredError("bedNumber")
	// ErrPatientIsNotConstructed is returned when using an improperly initialized Patient.
	ErrPatientIsNotConstructed = errors.New("Patient must be created via NewPatient or RestorePatient constructor")
)

// Gender is optional; an empty value means not recorded.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderOther       Gender = "Other"
)

func (g Gender) Validate() error {
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale, GenderOther:
		return nil
	default:
		return errs.NewValueIsInvalidError("gender")
	}
}

// Profile holds the descriptive fields of a patient.
type Profile struct {
	Name             string
	Diseases         []string
	Allergies        []string
	RoomNumber       string
	BedNumber        string
	FloorNumber      string
	Age              int
	Gender           Gender
	ContactInfo      string
	EmergencyContact string
	Others           map[string]string
}

// Patient is the aggregate root for a hospitalized person who receives meals.
type Patient struct {
	id        kernel.UUID
	profile   Profile
	createdAt time.Time

	isConstructed bool
}

func NewPatient(id kernel.UUID, profile Profile, createdAt time.Time) (*Patient, error) {
	p := &Patient{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(p.setID(id), p.setProfile(profile)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePatient rebuilds a patient loaded from storage.
func RestorePatient(id kernel.UUID, profile Profile, createdAt time.Time) (*Patient, error) {
	return NewPatient(id, profile, createdAt)
}

func (p *Patient) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPatientIsNotConstructed
	}
	return nil
}

func (p *Patient) ID() kernel.UUID {
	return p.id
}

func (p *Patient) Name() string {
	return p.profile.Name
}

// Profile returns a copy of the descriptive fields.
func (p *Patient) Profile() Profile {
	out := p.profile
	out.Diseases = slices.Clone(p.profile.Diseases)
	out.Allergies = slices.Clone(p.profile.Allergies)
	out.Others = maps.Clone(p.profile.Others)
	return out
}

func (p *Patient) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Patient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Patient) setProfile(profile Profile) error {
	profile.Name = strings.TrimSpace(profile.Name)
	profile.RoomNumber = strings.TrimSpace(profile.RoomNumber)
	profile.BedNumber = strings.TrimSpace(profile.BedNumber)
	profile.FloorNumber = strings.TrimSpace(profile.FloorNumber)
	profile.ContactInfo = strings.TrimSpace(profile.ContactInfo)
	profile.EmergencyContact = strings.TrimSpace(profile.EmergencyContact)
	profile.Diseases = cleanList(profile.Diseases)
	profile.Allergies = cleanList(profile.Allergies)
	profile.Others = maps.Clone(profile.Others)

	var problems []error
	if profile.Name == "" {
		problems = append(problems, ErrNameIsRequired)
	}
	if profile.RoomNumber == "" {
		problems = append(problems, ErrRoomNumberIsRequired)
	}
	if profile.BedNumber == "" {
		problems = append(problems, ErrBedNumberIsRequired)
	}
	if profile.Age < MinAge || profile.Age > MaxAge {
		problems = append(problems, errs.NewValueIsOutOfRangeError("age", profile.Age, MinAge, MaxAge))
	}
	if err := profile.Gender.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	p.profile = profile
	return nil
}

// cleanList trims entries and drops blanks and case-insensitive duplicates.
func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		key := strings.ToLower(v)
		if v == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

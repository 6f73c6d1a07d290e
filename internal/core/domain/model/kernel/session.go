package kernel

import (
	"fmt"
	"strings"

	"hospitalfood/internal/pkg/errs"
)

// Session is the meal service a food item or order belongs to.
type Session int

const (
	// SessionUnknown is the zero value and never valid.
	SessionUnknown Session = iota
	SessionMorning
	SessionAfternoon
	SessionNight
)

var sessionNames = map[Session]string{
	SessionMorning:   "morning",
	SessionAfternoon: "afternoon",
	SessionNight:     "night",
}

// Sessions lists every valid session in serving order.
func Sessions() []Session {
	return []Session{SessionMorning, SessionAfternoon, SessionNight}
}

// ParseSession accepts the wire names "morning", "afternoon" and "night" in any case.
func ParseSession(s string) (Session, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for session, name := range sessionNames {
		if name == needle {
			return session, nil
		}
	}
	return SessionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"session is invalid",
		fmt.Errorf("%q is not one of morning, afternoon, night", s),
	)
}

func (s Session) Validate() error {
	if _, ok := sessionNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("session is invalid", fmt.Errorf("%d is not a valid session", s))
	}
	return nil
}

func (s Session) String() string {
	if name, ok := sessionNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s Session) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Session) UnmarshalText(text []byte) error {
	parsed, err := ParseSession(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

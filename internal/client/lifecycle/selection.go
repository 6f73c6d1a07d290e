package lifecycle

import (
	"slices"

	"hospitalfood/internal/core/domain/model/kernel"
)

// Selection is an insertion-ordered set of IDs.
type Selection struct {
	ids []kernel.UUID
}

// Toggle adds id if absent and removes it if present. It reports whether id is now selected.
func (s *Selection) Toggle(id kernel.UUID) bool {
	if i := s.index(id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *Selection) Contains(id kernel.UUID) bool {
	return s.index(id) >= 0
}

func (s *Selection) IDs() []kernel.UUID {
	return slices.Clone(s.ids)
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) Clear() {
	s.ids = nil
}

func (s *Selection) index(id kernel.UUID) int {
	return slices.IndexFunc(s.ids, func(other kernel.UUID) bool {
		return other.IsEqual(id)
	})
}

package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hospitalfood/internal/pkg/errs"
	"hospitalfood/internal/pkg/guard"
)

var ErrGetSessionDigestQueryIsNotConstructed = errors.New(
	"GetSessionDigestQuery must be created via NewGetSessionDigestQuery constructor",
)

// GetSessionDigestQuery counts the open orders of one day, per session.
type GetSessionDigestQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

func NewGetSessionDigestQuery(date string) (GetSessionDigestQuery, error) {
	value := strings.TrimSpace(date)
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return GetSessionDigestQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"date", fmt.Errorf("%q is not YYYY-MM-DD", value))
	}

	return GetSessionDigestQuery{
		date:  parsed,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetSessionDigestQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionDigestQueryIsNotConstructed)
}

func (q GetSessionDigestQuery) Date() string {
	return q.date.Format(DateLayout)
}

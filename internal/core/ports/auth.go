package ports

import (
	"errors"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
)

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned for a malformed, forged or expired token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns ErrInvalidCredentials when password does not match hash.
	Compare(hash, password string) error
}

// Principal is the authenticated staff member behind a request.
type Principal struct {
	StaffID  kernel.UUID
	Name     string
	Role     staff.Role
	Location string
}

type TokenIssuer interface {
	Issue(member *staff.Staff) (string, error)
}

type TokenParser interface {
	Parse(token string) (Principal, error)
}

// ErrAccessDenied is returned when the caller's role does not allow an operation.
var ErrAccessDenied = errors.New("access denied")

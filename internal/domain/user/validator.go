package user

import (
	"fmt"
	"unicode"

	"github.com/hengadev/errsx"
)

const (
	MinLoginLen    = 3
	MaxLoginLen    = 32
	MinPasswordLen = 8
)

// Validator checks account input before any hashing or storage happens.
type Validator interface {
	ValidateRegister(login, password string, role Role) error
	ValidateLogin(login string) error
	ValidatePassword(password string) error
}

type AccountValidator struct{}

func NewAccountValidator() *AccountValidator {
	return &AccountValidator{}
}

// ValidateRegister validates a full registration request, collecting every
// failing field into one errsx.Map so callers can report them all at once.
func (v *AccountValidator) ValidateRegister(login, password string, role Role) error {
	var errs errsx.Map

	if err := v.ValidateLogin(login); err != nil {
		errs.Set("login", err)
	}
	if err := v.ValidatePassword(password); err != nil {
		errs.Set("password", err)
	}
	if !role.Valid() {
		errs.Set("role", fmt.Errorf("unknown role %q", role))
	}

	if !errs.IsEmpty() {
		return errs.AsError()
	}
	return nil
}

func (v *AccountValidator) ValidateLogin(login string) error {
	if len(login) < MinLoginLen {
		return fmt.Errorf("login must be at least %d characters", MinLoginLen)
	}

	if len(login) > MaxLoginLen {
		return fmt.Errorf("login must be at most %d characters", MaxLoginLen)
	}

	for _, r := range login {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("login can only contain letters, digits, '_', '-', '.'")
		}
	}

	return nil
}

func (v *AccountValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}

		if hasLower && hasUpper && hasDigit {
			break
		}
	}

	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

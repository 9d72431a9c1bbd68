package patient

import (
	"errors"
	"strings"

	"github.com/hengadev/errsx"

	"medvault/internal/domain/user"
)

// authorizeCreate admits only Administrators to the create path. Every
// other role, including the unauthenticated zero role, is rejected with
// no partial effect.
func authorizeCreate(role user.Role) error {
	if role != user.RoleAdministrator {
		return ErrUnauthorized
	}
	return nil
}

// validateCreate enforces the Administrator create rules: name, contact
// and a non-blank diagnosis are all required. Failures are collected per
// field so the caller can report them together.
func validateCreate(in CreateInput) error {
	var errs errsx.Map

	if in.Name == "" {
		errs.Set("name", errors.New("this field is required"))
	}
	if in.Contact == "" {
		errs.Set("contact", errors.New("this field is required"))
	}
	if strings.TrimSpace(in.Diagnosis) == "" {
		errs.Set("diagnosis", errors.New("this field is required"))
	}

	if !errs.IsEmpty() {
		return errs.AsError()
	}
	return nil
}

// filterUpdate decides which proposed fields an update may carry through.
// Administrators mutate freely. FrontDesk proposals are silently reduced
// to the custodian assignment; dropping the rest is expected practice,
// not an error. Clinicians have no update path and fail closed, as does
// any unrecognized role.
func filterUpdate(role user.Role, ch Change) (Change, error) {
	switch role {
	case user.RoleAdministrator:
		return ch, nil
	case user.RoleFrontDesk:
		return Change{AssignedClinicianID: ch.AssignedClinicianID}, nil
	default:
		return Change{}, ErrUnauthorized
	}
}

package patient

import (
	"medvault/internal/domain/user"
)

// Field names the attributes subject to role-based disclosure. Everything
// not listed here (age, identity, custodian, anonymized fields, creation
// time) is revealed to every recognized role.
type Field string

const (
	FieldName      Field = "name"
	FieldContact   Field = "contact"
	FieldDiagnosis Field = "diagnosis"
)

// Action is a disclosure decision for one (role, field) cell.
type Action int

const (
	// ActionSuppress omits the field from the view entirely. It is the
	// zero value so unknown roles and unknown fields fail closed.
	ActionSuppress Action = iota
	// ActionReveal passes the decrypted or plain value through unchanged.
	ActionReveal
	// ActionPlaceholder replaces the value with a fixed literal.
	ActionPlaceholder
)

// RestrictedPlaceholder is the literal shown where the policy says a field
// exists but its content is withheld.
const RestrictedPlaceholder = "RESTRICTED"

// decryptFailureText substitutes a single field whose ciphertext cannot be
// opened. One corrupted field must never make the whole record unreadable.
const decryptFailureText = "Error Decrypting"

// disclosurePolicy is the entire field-disclosure policy in one place:
// Administrators see everything, Clinicians work from anonymized identity
// plus the diagnosis, FrontDesk sees identity but never the diagnosis.
// Defined once at init, read-only afterwards.
var disclosurePolicy = map[user.Role]map[Field]Action{
	user.RoleAdministrator: {
		FieldName:      ActionReveal,
		FieldContact:   ActionReveal,
		FieldDiagnosis: ActionReveal,
	},
	user.RoleClinician: {
		FieldName:      ActionSuppress,
		FieldContact:   ActionSuppress,
		FieldDiagnosis: ActionReveal,
	},
	user.RoleFrontDesk: {
		FieldName:      ActionReveal,
		FieldContact:   ActionReveal,
		FieldDiagnosis: ActionPlaceholder,
	},
}

// actionFor resolves one policy cell, failing closed to suppression when
// either the role or the field has no row.
func actionFor(role user.Role, f Field) Action {
	if fields, ok := disclosurePolicy[role]; ok {
		if action, ok := fields[f]; ok {
			return action
		}
	}
	return ActionSuppress
}

// Decrypter opens a ciphertext token produced by the field codec.
type Decrypter interface {
	Decrypt(token string) (string, error)
}

// Project turns a stored record into the view a role is allowed to see.
// It is a pure function of (record, role): no I/O, no mutation of p, and
// it never fails: a field whose ciphertext will not open degrades to a
// per-field placeholder instead of aborting the projection.
func Project(p Patient, role user.Role, dec Decrypter) View {
	view := View{
		ID:                  p.ID,
		Age:                 p.Age,
		AssignedClinicianID: p.AssignedClinicianID,
		CreatedAt:           p.CreatedAt,
		AnonymizedName:      p.AnonymizedName,
		AnonymizedContact:   p.AnonymizedContact,
	}

	view.Name = applyAction(actionFor(role, FieldName), decryptField(dec, p.Name))
	view.Contact = applyAction(actionFor(role, FieldContact), p.Contact)
	view.Diagnosis = applyAction(actionFor(role, FieldDiagnosis), decryptField(dec, p.Diagnosis))

	return view
}

func applyAction(action Action, value string) *string {
	switch action {
	case ActionReveal:
		return &value
	case ActionPlaceholder:
		placeholder := RestrictedPlaceholder
		return &placeholder
	default:
		return nil
	}
}

func decryptField(dec Decrypter, token string) string {
	plaintext, err := dec.Decrypt(token)
	if err != nil {
		return decryptFailureText
	}
	return plaintext
}

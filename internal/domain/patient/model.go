package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the stored shape of a record. Name and Diagnosis hold
// ciphertext tokens, never plaintext; both are sealed by the field codec
// before the record reaches the repository. AnonymizedName and
// AnonymizedContact are derived once at creation and immutable afterwards.
type Patient struct {
	ID                  uuid.UUID
	Name                string
	Diagnosis           string
	Age                 int
	Contact             string
	AssignedClinicianID *int
	CreatedAt           time.Time
	AnonymizedName      string
	AnonymizedContact   string
}

// CreateInput carries the plaintext fields proposed for a new record.
// AnonymizedName/AnonymizedContact may be supplied explicitly; when empty
// they are derived exactly once.
type CreateInput struct {
	Name                string
	Diagnosis           string
	Age                 int
	Contact             string
	AssignedClinicianID *int
	AnonymizedName      string
	AnonymizedContact   string
}

// Change is a proposed partial update. Nil means the field was not
// proposed. Identity, creation time and the anonymized fields are not
// representable here: no role may mutate them.
type Change struct {
	Name                *string
	Diagnosis           *string
	Age                 *int
	Contact             *string
	AssignedClinicianID *int
}

func (c Change) isEmpty() bool {
	return c.Name == nil && c.Diagnosis == nil && c.Age == nil &&
		c.Contact == nil && c.AssignedClinicianID == nil
}

// View is the role-specific projection returned to callers. Suppressed
// fields stay nil and drop out of the JSON encoding entirely.
type View struct {
	ID                  uuid.UUID `json:"id"`
	Name                *string   `json:"name,omitempty"`
	Diagnosis           *string   `json:"diagnosis,omitempty"`
	Age                 int       `json:"age"`
	Contact             *string   `json:"contact,omitempty"`
	AssignedClinicianID *int      `json:"assigned_clinician_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	AnonymizedName      string    `json:"anonymized_name"`
	AnonymizedContact   string    `json:"anonymized_contact"`
}

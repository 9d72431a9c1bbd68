package patient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medvault/internal/crypto"
	"medvault/internal/domain/user"
)

func testCodec(t *testing.T) *crypto.Codec {
	t.Helper()
	key := make([]byte, crypto.KeySize)
	for i := range key {
		key[i] = byte(i)
	}
	codec, err := crypto.NewCodec(key)
	require.NoError(t, err)
	return codec
}

func storedPatient(t *testing.T, codec *crypto.Codec) Patient {
	t.Helper()
	encName, err := codec.Encrypt("Jane Roe")
	require.NoError(t, err)
	encDiagnosis, err := codec.Encrypt("Type 2 diabetes")
	require.NoError(t, err)

	clinicianID := 7
	return Patient{
		ID:                  uuid.New(),
		Name:                encName,
		Diagnosis:           encDiagnosis,
		Age:                 54,
		Contact:             "555-867-5309",
		AssignedClinicianID: &clinicianID,
		CreatedAt:           time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		AnonymizedName:      "Patient-00C0FFEE",
		AnonymizedContact:   "********5309",
	}
}

func TestProject_Administrator(t *testing.T) {
	codec := testCodec(t)
	p := storedPatient(t, codec)

	view := Project(p, user.RoleAdministrator, codec)

	require.NotNil(t, view.Name)
	assert.Equal(t, "Jane Roe", *view.Name)
	require.NotNil(t, view.Diagnosis)
	assert.Equal(t, "Type 2 diabetes", *view.Diagnosis)
	require.NotNil(t, view.Contact)
	assert.Equal(t, "555-867-5309", *view.Contact)
	assert.Equal(t, p.ID, view.ID)
	assert.Equal(t, 54, view.Age)
	assert.Equal(t, "Patient-00C0FFEE", view.AnonymizedName)
}

func TestProject_Clinician(t *testing.T) {
	codec := testCodec(t)
	p := storedPatient(t, codec)

	view := Project(p, user.RoleClinician, codec)

	assert.Nil(t, view.Name)
	assert.Nil(t, view.Contact)
	require.NotNil(t, view.Diagnosis)
	assert.Equal(t, "Type 2 diabetes", *view.Diagnosis)
	assert.Equal(t, "Patient-00C0FFEE", view.AnonymizedName)
	assert.Equal(t, "********5309", view.AnonymizedContact)

	// Suppressed fields must be absent from the encoding, not just empty.
	raw, err := json.Marshal(view)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.NotContains(t, m, "name")
	assert.NotContains(t, m, "contact")
	assert.Contains(t, m, "diagnosis")
}

func TestProject_FrontDesk(t *testing.T) {
	codec := testCodec(t)
	p := storedPatient(t, codec)

	view := Project(p, user.RoleFrontDesk, codec)

	require.NotNil(t, view.Name)
	assert.Equal(t, "Jane Roe", *view.Name)
	require.NotNil(t, view.Contact)
	assert.Equal(t, "555-867-5309", *view.Contact)
	require.NotNil(t, view.Diagnosis)
	assert.Equal(t, RestrictedPlaceholder, *view.Diagnosis)
}

func TestProject_UnknownRoleFailsClosed(t *testing.T) {
	codec := testCodec(t)
	p := storedPatient(t, codec)

	for _, role := range []user.Role{user.RoleNone, user.Role("janitor")} {
		view := Project(p, role, codec)
		assert.Nil(t, view.Name, "role %q", role)
		assert.Nil(t, view.Contact, "role %q", role)
		assert.Nil(t, view.Diagnosis, "role %q", role)
	}
}

func TestProject_DecryptFailureIsPerField(t *testing.T) {
	codec := testCodec(t)
	p := storedPatient(t, codec)
	p.Name = "deadbeef" // not a valid token

	view := Project(p, user.RoleAdministrator, codec)

	require.NotNil(t, view.Name)
	assert.Equal(t, "Error Decrypting", *view.Name)
	// The corrupted name must not take the diagnosis down with it.
	require.NotNil(t, view.Diagnosis)
	assert.Equal(t, "Type 2 diabetes", *view.Diagnosis)
	require.NotNil(t, view.Contact)
	assert.Equal(t, "555-867-5309", *view.Contact)
}

func TestActionFor_FailClosedDefaults(t *testing.T) {
	assert.Equal(t, ActionSuppress, actionFor(user.RoleNone, FieldName))
	assert.Equal(t, ActionSuppress, actionFor(user.RoleAdministrator, Field("ssn")))
	assert.Equal(t, ActionPlaceholder, actionFor(user.RoleFrontDesk, FieldDiagnosis))
	assert.Equal(t, ActionReveal, actionFor(user.RoleClinician, FieldDiagnosis))
}

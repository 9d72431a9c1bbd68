package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medvault/internal/domain/user"
)

func TestAuthorizeCreate(t *testing.T) {
	assert.NoError(t, authorizeCreate(user.RoleAdministrator))
	assert.ErrorIs(t, authorizeCreate(user.RoleClinician), ErrUnauthorized)
	assert.ErrorIs(t, authorizeCreate(user.RoleFrontDesk), ErrUnauthorized)
	assert.ErrorIs(t, authorizeCreate(user.RoleNone), ErrUnauthorized)
}

func TestValidateCreate(t *testing.T) {
	valid := CreateInput{
		Name:      "Jane Roe",
		Diagnosis: "Asthma",
		Age:       31,
		Contact:   "555-0100",
	}
	assert.NoError(t, validateCreate(valid))

	tests := []struct {
		name  string
		mutab func(in *CreateInput)
	}{
		{"missing name", func(in *CreateInput) { in.Name = "" }},
		{"missing contact", func(in *CreateInput) { in.Contact = "" }},
		{"empty diagnosis", func(in *CreateInput) { in.Diagnosis = "" }},
		{"whitespace diagnosis", func(in *CreateInput) { in.Diagnosis = "   \t" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutab(&in)
			assert.Error(t, validateCreate(in))
		})
	}
}

func TestFilterUpdate_Administrator(t *testing.T) {
	name := "New Name"
	diagnosis := "New diagnosis"
	age := 40
	clinicianID := 3
	ch := Change{Name: &name, Diagnosis: &diagnosis, Age: &age, AssignedClinicianID: &clinicianID}

	accepted, err := filterUpdate(user.RoleAdministrator, ch)
	require.NoError(t, err)
	assert.Equal(t, ch, accepted)
}

func TestFilterUpdate_FrontDeskKeepsOnlyCustodian(t *testing.T) {
	name := "X"
	diagnosis := "Y"
	clinicianID := 9
	ch := Change{Name: &name, Diagnosis: &diagnosis, AssignedClinicianID: &clinicianID}

	accepted, err := filterUpdate(user.RoleFrontDesk, ch)
	require.NoError(t, err)
	assert.Nil(t, accepted.Name)
	assert.Nil(t, accepted.Diagnosis)
	assert.Nil(t, accepted.Age)
	assert.Nil(t, accepted.Contact)
	require.NotNil(t, accepted.AssignedClinicianID)
	assert.Equal(t, 9, *accepted.AssignedClinicianID)
}

func TestFilterUpdate_ClinicianFailsClosed(t *testing.T) {
	clinicianID := 2
	_, err := filterUpdate(user.RoleClinician, Change{AssignedClinicianID: &clinicianID})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = filterUpdate(user.RoleNone, Change{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

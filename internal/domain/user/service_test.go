package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, login, passwordHash string, role Role) (int, error) {
	args := m.Called(ctx, login, passwordHash, role)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) FindByLogin(ctx context.Context, login string) (User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) ListByRole(ctx context.Context, role Role) ([]User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]User), args.Error(1)
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewAccountValidator(), slog.Default())
}

func TestService_Register(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, "dr.house", mock.AnythingOfType("string"), RoleClinician).
		Return(7, nil)

	id, err := svc.Register(context.Background(), "dr.house", "Vicodin42x", RoleClinician)

	require.NoError(t, err)
	assert.Equal(t, 7, id)

	// stored value must be a bcrypt hash of the password, not the password
	hash := repo.Calls[0].Arguments.String(2)
	assert.NotEqual(t, "Vicodin42x", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Vicodin42x")))
}

func TestService_Register_WeakPassword(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "dr.house", "short", RoleClinician)

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Register_UnknownRole(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "dr.house", "Vicodin42x", Role("janitor"))

	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Create")
}

func TestService_Register_LoginTaken(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("Create", mock.Anything, "dr.house", mock.AnythingOfType("string"), RoleClinician).
		Return(0, ErrLoginTaken)

	_, err := svc.Register(context.Background(), "dr.house", "Vicodin42x", RoleClinician)

	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Vicodin42x"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := User{ID: 7, Login: "dr.house", PasswordHash: string(hash), Role: RoleClinician}

	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("FindByLogin", mock.Anything, "dr.house").Return(stored, nil)

	u, err := svc.Authenticate(context.Background(), "dr.house", "Vicodin42x")

	require.NoError(t, err)
	assert.Equal(t, 7, u.ID)
	assert.Equal(t, RoleClinician, u.Role)
}

func TestService_Authenticate_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Vicodin42x"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("FindByLogin", mock.Anything, "dr.house").
		Return(User{ID: 7, Login: "dr.house", PasswordHash: string(hash)}, nil)

	_, err = svc.Authenticate(context.Background(), "dr.house", "wrong")

	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_Authenticate_UnknownLogin(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)
	repo.On("FindByLogin", mock.Anything, "nobody").Return(User{}, ErrNotFound)

	_, err := svc.Authenticate(context.Background(), "nobody", "whatever")

	// unknown login and wrong password must be indistinguishable
	assert.ErrorIs(t, err, ErrInvalidAuth)
}

func TestService_ListClinicians(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(repo)

	repo.On("ListByRole", mock.Anything, RoleClinician).Return([]User{
		{ID: 7, Login: "dr.house", Role: RoleClinician},
		{ID: 8, Login: "dr.wilson", Role: RoleClinician},
	}, nil)

	users, err := svc.ListClinicians(context.Background())

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"administrator", RoleAdministrator, false},
		{"clinician", RoleClinician, false},
		{"frontdesk", RoleFrontDesk, false},
		{"", RoleNone, true},
		{"Administrator", RoleNone, true},
		{"root", RoleNone, true},
	}

	for _, tt := range tests {
		role, err := ParseRole(tt.input)
		assert.Equal(t, tt.want, role, "input %q", tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
		}
	}
}

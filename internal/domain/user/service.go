package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, login, password string, role Role) (int, error)
	Authenticate(ctx context.Context, login, password string) (User, error)
	Find(ctx context.Context, id int) (User, error)
	ListClinicians(ctx context.Context) ([]User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

// Register creates a staff account with the given role. The caller-side
// authorization (Administrator only) happens at the API layer; the service
// only enforces input shape.
func (s *Service) Register(ctx context.Context, login, password string, role Role) (int, error) {
	if err := s.validator.ValidateRegister(login, password, role); err != nil {
		s.log.Debug("registration validation failed", "login", login, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, login, string(hash), role)
	if err != nil {
		s.log.Error("failed to create user", "login", login, "error", err)
		return 0, err
	}

	s.log.Info("user registered", "user_id", id, "role", role)
	return id, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (User, error) {
	if err := s.validator.ValidateLogin(login); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByLogin(ctx, login)
	if err != nil {
		return User{}, ErrInvalidAuth
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) Find(ctx context.Context, id int) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// ListClinicians returns every account with the Clinician role. FrontDesk
// uses it to pick a custodian when assigning patients.
func (s *Service) ListClinicians(ctx context.Context) ([]User, error) {
	users, err := s.repo.ListByRole(ctx, RoleClinician)
	if err != nil {
		s.log.Error("failed to list clinicians", "error", err)
		return nil, fmt.Errorf("list clinicians: %w", err)
	}
	return users, nil
}

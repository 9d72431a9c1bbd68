package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"medvault/internal/domain/audit"
	"medvault/internal/domain/user"
)

// Codec seals and opens individual field values.
type Codec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) (string, error)
}

type Servicer interface {
	Create(ctx context.Context, actor user.User, in CreateInput) (View, error)
	Update(ctx context.Context, actor user.User, id uuid.UUID, ch Change) (View, error)
	Get(ctx context.Context, actor user.User, id uuid.UUID) (View, error)
	List(ctx context.Context, actor user.User) ([]View, error)
}

// Service owns the write path and the read projection for patient records.
// It holds no per-record state: the policy table and the codec key are
// fixed at startup and every call operates on value copies.
type Service struct {
	repo  Repository
	codec Codec
	audit audit.Servicer
	log   *slog.Logger
}

func NewService(repo Repository, codec Codec, auditSvc audit.Servicer, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		codec: codec,
		audit: auditSvc,
		log:   log.With("component", "patient_service"),
	}
}

// Create registers a new patient. Administrator only; name, contact and a
// non-blank diagnosis are required. Name and diagnosis are sealed before
// the record ever reaches storage, and the anonymized fields are derived
// exactly once when not supplied.
func (s *Service) Create(ctx context.Context, actor user.User, in CreateInput) (View, error) {
	if err := authorizeCreate(actor.Role); err != nil {
		s.log.Warn("create rejected", "actor_id", actor.ID, "role", actor.Role)
		return View{}, err
	}

	if err := validateCreate(in); err != nil {
		return View{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	encName, err := s.codec.Encrypt(in.Name)
	if err != nil {
		return View{}, fmt.Errorf("encrypt name: %w", err)
	}
	encDiagnosis, err := s.codec.Encrypt(in.Diagnosis)
	if err != nil {
		return View{}, fmt.Errorf("encrypt diagnosis: %w", err)
	}

	p := Patient{
		Name:                encName,
		Diagnosis:           encDiagnosis,
		Age:                 in.Age,
		Contact:             in.Contact,
		AssignedClinicianID: in.AssignedClinicianID,
		AnonymizedName:      in.AnonymizedName,
		AnonymizedContact:   in.AnonymizedContact,
	}

	if p.AnonymizedName == "" {
		p.AnonymizedName = NewAnonymizedName()
	}
	if p.AnonymizedContact == "" {
		p.AnonymizedContact = MaskContact(p.Contact)
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		s.log.Error("failed to create patient", "actor_id", actor.ID, "error", err)
		return View{}, fmt.Errorf("create patient: %w", err)
	}

	s.audit.Record(ctx, actor.ID, audit.ActionCreateRecord,
		fmt.Sprintf("Created patient record %s", p.ID))
	s.log.Info("patient created", "patient_id", p.ID, "actor_id", actor.ID)

	return Project(p, actor.Role, s.codec), nil
}

// Update applies a role-filtered change set to an existing record.
// Administrators may change any mutable field, with name and diagnosis
// re-encrypted when proposed. FrontDesk updates are reduced to the
// custodian assignment. Identity, creation time and the anonymized fields
// are never touched regardless of role.
func (s *Service) Update(ctx context.Context, actor user.User, id uuid.UUID, ch Change) (View, error) {
	accepted, err := filterUpdate(actor.Role, ch)
	if err != nil {
		s.log.Warn("update rejected", "actor_id", actor.ID, "role", actor.Role, "patient_id", id)
		return View{}, err
	}

	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return View{}, ErrNotFound
		}
		return View{}, fmt.Errorf("get patient for update: %w", err)
	}

	if accepted.Name != nil {
		enc, err := s.codec.Encrypt(*accepted.Name)
		if err != nil {
			return View{}, fmt.Errorf("encrypt name: %w", err)
		}
		p.Name = enc
	}
	if accepted.Diagnosis != nil {
		enc, err := s.codec.Encrypt(*accepted.Diagnosis)
		if err != nil {
			return View{}, fmt.Errorf("encrypt diagnosis: %w", err)
		}
		p.Diagnosis = enc
	}
	if accepted.Age != nil {
		p.Age = *accepted.Age
	}
	if accepted.Contact != nil {
		p.Contact = *accepted.Contact
	}
	if accepted.AssignedClinicianID != nil {
		p.AssignedClinicianID = accepted.AssignedClinicianID
	}

	if !accepted.isEmpty() {
		if err := s.repo.Update(ctx, p); err != nil {
			s.log.Error("failed to update patient",
				"patient_id", id, "actor_id", actor.ID, "error", err)
			return View{}, fmt.Errorf("update patient: %w", err)
		}
	}

	s.auditUpdate(ctx, actor, id)
	s.log.Info("patient updated", "patient_id", id, "actor_id", actor.ID, "role", actor.Role)

	return Project(*p, actor.Role, s.codec), nil
}

// Get returns one record projected for the caller's role and logs the
// access.
func (s *Service) Get(ctx context.Context, actor user.User, id uuid.UUID) (View, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return View{}, ErrNotFound
		}
		s.log.Error("failed to get patient", "patient_id", id, "error", err)
		return View{}, fmt.Errorf("get patient: %w", err)
	}

	s.audit.Record(ctx, actor.ID, audit.ActionViewRecord,
		fmt.Sprintf("Viewed patient %s", id))

	return Project(*p, actor.Role, s.codec), nil
}

// List returns the role-scoped record listing: Administrators and
// FrontDesk see every record, Clinicians only the ones assigned to them,
// and anyone else sees nothing.
func (s *Service) List(ctx context.Context, actor user.User) ([]View, error) {
	var (
		patients []Patient
		err      error
	)

	switch actor.Role {
	case user.RoleAdministrator, user.RoleFrontDesk:
		patients, err = s.repo.List(ctx)
	case user.RoleClinician:
		patients, err = s.repo.ListByClinician(ctx, actor.ID)
	default:
		return []View{}, nil
	}

	if err != nil {
		s.log.Error("failed to list patients", "actor_id", actor.ID, "error", err)
		return nil, fmt.Errorf("list patients: %w", err)
	}

	views := make([]View, len(patients))
	for i, p := range patients {
		views[i] = Project(p, actor.Role, s.codec)
	}
	return views, nil
}

func (s *Service) auditUpdate(ctx context.Context, actor user.User, id uuid.UUID) {
	switch actor.Role {
	case user.RoleFrontDesk:
		s.audit.Record(ctx, actor.ID, audit.ActionUpdateRecordCustodian,
			fmt.Sprintf("FrontDesk updated assigned clinician for patient %s", id))
	default:
		s.audit.Record(ctx, actor.ID, audit.ActionUpdateRecordFull,
			fmt.Sprintf("Administrator updated patient %s details", id))
	}
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"medvault/internal/domain/patient"
)

type PatientRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPatientRepository(pool *pgxpool.Pool, log *slog.Logger) *PatientRepository {
	return &PatientRepository{
		pool: pool,
		log:  log.With("component", "patient_repository"),
	}
}

func (r *PatientRepository) Get(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	const query = `
		SELECT id, name, diagnosis, age, contact, assigned_clinician_id,
		       created_at, anonymized_name, anonymized_contact
		FROM patients
		WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	p, err := r.scanPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, patient.ErrNotFound
		}
		r.log.Error("failed to get patient", "patient_id", id, "error", err)
		return nil, fmt.Errorf("get patient: %w", err)
	}

	return p, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]patient.Patient, error) {
	const query = `
		SELECT id, name, diagnosis, age, contact, assigned_clinician_id,
		       created_at, anonymized_name, anonymized_contact
		FROM patients
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list patients", "error", err)
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer rows.Close()

	return r.scanPatients(rows)
}

func (r *PatientRepository) ListByClinician(ctx context.Context, clinicianID int) ([]patient.Patient, error) {
	const query = `
		SELECT id, name, diagnosis, age, contact, assigned_clinician_id,
		       created_at, anonymized_name, anonymized_contact
		FROM patients
		WHERE assigned_clinician_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, clinicianID)
	if err != nil {
		r.log.Error("failed to list patients by clinician",
			"clinician_id", clinicianID, "error", err)
		return nil, fmt.Errorf("list patients by clinician: %w", err)
	}
	defer rows.Close()

	return r.scanPatients(rows)
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	const query = `
		INSERT INTO patients (name, diagnosis, age, contact, assigned_clinician_id,
		                      anonymized_name, anonymized_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		p.Name, p.Diagnosis, p.Age, p.Contact, p.AssignedClinicianID,
		p.AnonymizedName, p.AnonymizedContact,
	).Scan(&p.ID, &p.CreatedAt)

	if err != nil {
		r.log.Error("failed to create patient", "error", err)
		return fmt.Errorf("create patient: %w", err)
	}

	return nil
}

// Update rewrites the mutable columns. Identity, creation time and the
// anonymized columns are deliberately absent from the SET list.
func (r *PatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	const query = `
		UPDATE patients
		SET name = $1, diagnosis = $2, age = $3, contact = $4,
		    assigned_clinician_id = $5
		WHERE id = $6`

	result, err := r.pool.Exec(ctx, query,
		p.Name, p.Diagnosis, p.Age, p.Contact, p.AssignedClinicianID, p.ID)
	if err != nil {
		r.log.Error("failed to update patient", "patient_id", p.ID, "error", err)
		return fmt.Errorf("update patient: %w", err)
	}

	if result.RowsAffected() == 0 {
		return patient.ErrNotFound
	}

	return nil
}

func (r *PatientRepository) scanPatients(rows pgx.Rows) ([]patient.Patient, error) {
	var patients []patient.Patient

	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *p)
	}

	return patients, rows.Err()
}

func (r *PatientRepository) scanPatient(row interface {
	Scan(dest ...interface{}) error
}) (*patient.Patient, error) {
	var p patient.Patient
	var clinicianID sql.NullInt32

	err := row.Scan(
		&p.ID, &p.Name, &p.Diagnosis, &p.Age, &p.Contact,
		&clinicianID, &p.CreatedAt, &p.AnonymizedName, &p.AnonymizedContact,
	)
	if err != nil {
		return nil, err
	}

	if clinicianID.Valid {
		id := int(clinicianID.Int32)
		p.AssignedClinicianID = &id
	}

	return &p, nil
}

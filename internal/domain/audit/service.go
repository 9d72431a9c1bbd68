package audit

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Record(ctx context.Context, actorID int, action, details string)
	List(ctx context.Context, limit, offset int) ([]Entry, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "audit_service"),
	}
}

// Record writes one access-log entry. Emission is required on every
// accepted operation, but a sink failure must never abort the operation
// that triggered it, so errors are logged and swallowed here.
func (s *Service) Record(ctx context.Context, actorID int, action, details string) {
	if err := s.repo.Insert(ctx, actorID, action, details); err != nil {
		s.log.Error("failed to record audit entry",
			"actor_id", actorID, "action", action, "error", err)
	}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Entry, error) {
	entries, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		s.log.Error("failed to list audit entries", "error", err)
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}

// ExportCSV renders the full log as CSV for offline review.
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	entries, err := s.repo.List(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("export audit entries: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Timestamp", "User", "Action", "Details"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		actor := e.ActorName
		if actor == "" {
			actor = strconv.Itoa(e.ActorID)
		}
		row := []string{e.CreatedAt.Format("2006-01-02 15:04:05"), actor, e.Action, e.Details}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

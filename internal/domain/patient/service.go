package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/platform/remote"
)

var validStatuses = map[string]bool{
	StatusActive: true, StatusInactive: true, StatusOnHold: true,
}

// Service is the typed access layer for the patients collection. It
// validates writes and normalizes repository failures into the remote
// taxonomy; a not-found read surfaces as remote.ErrNotFound.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return &remote.ValidationError{Msg: "name is required"}
	}
	if p.Email == "" {
		return &remote.ValidationError{Msg: "email is required"}
	}
	if p.Phone == "" {
		return &remote.ValidationError{Msg: "phone is required"}
	}
	if p.Status == "" {
		p.Status = StatusActive
	}
	if !validStatuses[p.Status] {
		return &remote.ValidationError{Msg: fmt.Sprintf("invalid patient status: %s", p.Status)}
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return &remote.WriteError{Op: "create patient", Err: err}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			return nil, remote.ErrNotFound
		}
		return nil, &remote.FetchError{Op: "get patient", Err: err}
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	items, err := s.patients.ListAll(ctx)
	if err != nil {
		return nil, &remote.FetchError{Op: "list patients", Err: err}
	}
	return items, nil
}

// Update applies a partial change to an existing patient and returns
// the full updated record. A missing id fails; nothing is created.
func (s *Service) Update(ctx context.Context, id uuid.UUID, u Update) (*Patient, error) {
	if u.Status != nil && !validStatuses[*u.Status] {
		return nil, &remote.ValidationError{Msg: fmt.Sprintf("invalid patient status: %s", *u.Status)}
	}

	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			return nil, &remote.WriteError{Op: "update patient", Err: remote.ErrNotFound}
		}
		return nil, &remote.FetchError{Op: "update patient: load", Err: err}
	}

	u.apply(p)
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, &remote.WriteError{Op: "update patient", Err: err}
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return &remote.WriteError{Op: "delete patient", Err: err}
	}
	return nil
}

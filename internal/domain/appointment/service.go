package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/domain/patient"
	"github.com/nutridash/nutridash/internal/platform/remote"
)

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusCompleted: true,
	StatusCancelled: true, StatusNoShow: true,
}

var validTypes = func() map[string]bool {
	m := make(map[string]bool, len(Types))
	for _, t := range Types {
		m[t] = true
	}
	return m
}()

var validDurations = func() map[int]bool {
	m := make(map[int]bool, len(DurationOptions))
	for _, d := range DurationOptions {
		m[d] = true
	}
	return m
}()

// PatientLookup is the slice of the patient repository the booking
// flow needs to snapshot a display name.
type PatientLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

// Service is the typed access layer for the appointments collection.
type Service struct {
	appts    Repository
	patients PatientLookup
}

func NewService(appts Repository, patients PatientLookup) *Service {
	return &Service{appts: appts, patients: patients}
}

// Create books an appointment. The patient's current name is copied
// into the record at this point; later renames do not touch it.
func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.PatientID == uuid.Nil {
		return &remote.ValidationError{Msg: "patient is required"}
	}
	if a.Date == "" {
		return &remote.ValidationError{Msg: "date is required"}
	}
	if a.Time == "" {
		return &remote.ValidationError{Msg: "time is required"}
	}
	if a.Type == "" {
		a.Type = DefaultType
	}
	if !validTypes[a.Type] {
		return &remote.ValidationError{Msg: fmt.Sprintf("invalid appointment type: %s", a.Type)}
	}
	if a.Duration == 0 {
		a.Duration = DefaultDuration
	}
	if !validDurations[a.Duration] {
		return &remote.ValidationError{Msg: fmt.Sprintf("invalid duration: %d", a.Duration)}
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatuses[a.Status] {
		return &remote.ValidationError{Msg: fmt.Sprintf("invalid appointment status: %s", a.Status)}
	}

	p, err := s.patients.GetByID(ctx, a.PatientID)
	if err != nil {
		if remote.IsNotFound(err) {
			return &remote.ValidationError{Msg: "Patient not found"}
		}
		return &remote.FetchError{Op: "create appointment: load patient", Err: err}
	}
	a.PatientName = p.Name

	if err := s.appts.Create(ctx, a); err != nil {
		return &remote.WriteError{Op: "create appointment", Err: err}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			return nil, remote.ErrNotFound
		}
		return nil, &remote.FetchError{Op: "get appointment", Err: err}
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	items, err := s.appts.ListAll(ctx)
	if err != nil {
		return nil, &remote.FetchError{Op: "list appointments", Err: err}
	}
	return items, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	items, err := s.appts.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, &remote.FetchError{Op: "list patient appointments", Err: err}
	}
	return items, nil
}

// Update applies a partial change, typically a reschedule, and returns
// the full updated record. The patient reference and the name snapshot
// are not part of the delta; a missing id fails, nothing is created.
func (s *Service) Update(ctx context.Context, id uuid.UUID, u Update) (*Appointment, error) {
	if u.Date != nil && *u.Date == "" {
		return nil, &remote.ValidationError{Msg: "date is required"}
	}
	if u.Time != nil && *u.Time == "" {
		return nil, &remote.ValidationError{Msg: "time is required"}
	}
	if u.Type != nil && !validTypes[*u.Type] {
		return nil, &remote.ValidationError{Msg: fmt.Sprintf("invalid appointment type: %s", *u.Type)}
	}
	if u.Duration != nil && !validDurations[*u.Duration] {
		return nil, &remote.ValidationError{Msg: fmt.Sprintf("invalid duration: %d", *u.Duration)}
	}
	if u.Status != nil && !validStatuses[*u.Status] {
		return nil, &remote.ValidationError{Msg: fmt.Sprintf("invalid appointment status: %s", *u.Status)}
	}

	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		if remote.IsNotFound(err) {
			return nil, &remote.WriteError{Op: "update appointment", Err: remote.ErrNotFound}
		}
		return nil, &remote.FetchError{Op: "update appointment: load", Err: err}
	}

	u.apply(a)
	if err := s.appts.Update(ctx, a); err != nil {
		return nil, &remote.WriteError{Op: "update appointment", Err: err}
	}
	return a, nil
}

// UpdateStatus sets the status column and nothing else. Callers decide
// which transitions to offer; this layer only rejects values outside
// the known set.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !validStatuses[status] {
		return &remote.ValidationError{Msg: fmt.Sprintf("invalid appointment status: %s", status)}
	}
	if err := s.appts.UpdateStatus(ctx, id, status); err != nil {
		if remote.IsNotFound(err) {
			return &remote.WriteError{Op: "update appointment status", Err: remote.ErrNotFound}
		}
		return &remote.WriteError{Op: "update appointment status", Err: err}
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.appts.Delete(ctx, id); err != nil {
		return &remote.WriteError{Op: "delete appointment", Err: err}
	}
	return nil
}

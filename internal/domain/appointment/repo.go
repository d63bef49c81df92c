package appointment

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	// Update stores the full record; the patient reference and name
	// snapshot are written back unchanged.
	Update(ctx context.Context, a *Appointment) error
	// UpdateStatus changes only the status column.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListAll returns every appointment ordered by date then time,
	// both compared as strings.
	ListAll(ctx context.Context) ([]*Appointment, error)
	// ListByPatient returns a patient's appointments in the same order.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
}

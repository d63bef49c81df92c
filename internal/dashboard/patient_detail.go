package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
	"github.com/nutridash/nutridash/internal/platform/remote"
)

// PatientDetail drives the patient detail screen: the record plus the
// patient's appointment history, partitioned around today.
type PatientDetail struct {
	store DataStore
	gen   int

	Patient      *patient.Patient
	Appointments []*appointment.Appointment
	Loading      bool
	NotFound     bool
	Err          string
}

func NewPatientDetail(store DataStore) *PatientDetail {
	return &PatientDetail{store: store, Loading: true}
}

// Load fetches the patient and then their appointments, with the same
// generation guard as the appointment detail screen.
func (d *PatientDetail) Load(ctx context.Context, id uuid.UUID) {
	d.gen++
	gen := d.gen
	d.Loading = true
	d.Err = ""
	d.NotFound = false

	p, err := d.store.GetPatient(ctx, id)
	if gen != d.gen {
		return
	}
	if err != nil {
		if remote.IsNotFound(err) {
			d.NotFound = true
		} else {
			d.Err = msgLoadPatientData
		}
		d.Loading = false
		return
	}

	appts, err := d.store.ListAppointmentsByPatient(ctx, id)
	if gen != d.gen {
		return
	}
	if err != nil {
		d.Err = msgLoadPatientData
		d.Loading = false
		return
	}
	d.Patient = p
	d.Appointments = appts
	d.Loading = false
}

// Upcoming returns appointments dated today or later, most distant
// first. Dates are compared as strings, which matches chronological
// order for YYYY-MM-DD.
func (d *PatientDetail) Upcoming(today string) []*appointment.Appointment {
	var out []*appointment.Appointment
	// The fetch is date-ascending; walking backwards yields descending.
	for i := len(d.Appointments) - 1; i >= 0; i-- {
		if d.Appointments[i].Date >= today {
			out = append(out, d.Appointments[i])
		}
	}
	return out
}

// Past returns appointments dated before today, oldest first.
func (d *PatientDetail) Past(today string) []*appointment.Appointment {
	var out []*appointment.Appointment
	for _, a := range d.Appointments {
		if a.Date < today {
			out = append(out, a)
		}
	}
	return out
}

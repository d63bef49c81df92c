package appointment

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusNoShow    = "No-show"
)

// Types offered when booking. The first entry after the default is
// what the forms preselect alongside the default duration.
var Types = []string{
	"Initial Consultation",
	"Follow-up",
	"Diet Review",
	"Measurement Check",
	"Nutrition Education",
}

// DurationOptions are the bookable lengths in minutes.
var DurationOptions = []int{15, 30, 45, 60, 90, 120}

const (
	DefaultType     = "Follow-up"
	DefaultDuration = 30
)

// Appointment maps to the appointments table. Date and Time are stored
// as text exactly as entered ("2025-03-14", "10:00 AM"); ordering over
// them is plain string comparison, so "10:00 AM" sorts before
// "9:00 AM". PatientName is copied from the patient record when the
// appointment is created and is never resynced afterwards.
type Appointment struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patientid"`
	PatientName string    `db:"patient_name" json:"patientname"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Duration    int       `db:"duration" json:"duration"`
	Type        string    `db:"type" json:"type"`
	Status      string    `db:"status" json:"status"`
	Notes       *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Update carries a partial appointment change, typically a reschedule.
// Nil fields are left as they are. The patient reference and the name
// snapshot taken at creation are not part of the delta.
type Update struct {
	Date     *string `json:"date,omitempty"`
	Time     *string `json:"time,omitempty"`
	Duration *int    `json:"duration,omitempty"`
	Type     *string `json:"type,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (u Update) apply(a *Appointment) {
	if u.Date != nil {
		a.Date = *u.Date
	}
	if u.Time != nil {
		a.Time = *u.Time
	}
	if u.Duration != nil {
		a.Duration = *u.Duration
	}
	if u.Type != nil {
		a.Type = *u.Type
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Notes != nil {
		a.Notes = u.Notes
	}
}

// CanCancel reports whether the cancel action is offered. Only a
// scheduled appointment can be cancelled.
func (a *Appointment) CanCancel() bool { return a.Status == StatusScheduled }

// CanComplete reports whether the complete action is offered. Only a
// scheduled appointment can be completed.
func (a *Appointment) CanComplete() bool { return a.Status == StatusScheduled }

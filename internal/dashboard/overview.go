package dashboard

import (
	"context"
	"sync"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
)

// Overview drives the dashboard landing screen. Patients and
// appointments are fetched concurrently and both must succeed; there
// is no partial-success dashboard.
type Overview struct {
	store DataStore

	Patients     []*patient.Patient
	Appointments []*appointment.Appointment
	Loading      bool
	Err          string
}

func NewOverview(store DataStore) *Overview {
	return &Overview{store: store, Loading: true}
}

func (o *Overview) Load(ctx context.Context) {
	o.Loading = true
	o.Err = ""

	var (
		wg       sync.WaitGroup
		patients []*patient.Patient
		appts    []*appointment.Appointment
		pErr     error
		aErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		patients, pErr = o.store.ListPatients(ctx)
	}()
	go func() {
		defer wg.Done()
		appts, aErr = o.store.ListAppointments(ctx)
	}()
	wg.Wait()

	switch {
	case aErr != nil:
		o.Err = msgLoadAppointments
	case pErr != nil:
		o.Err = msgLoadPatients
	default:
		o.Patients = patients
		o.Appointments = appts
	}
	o.Loading = false
}

// Stats mirrors the dashboard cards.
type Stats struct {
	TotalPatients        int                        `json:"totalpatients"`
	TotalAppointments    int                        `json:"totalappointments"`
	TodaysAppointments   int                        `json:"todaysappointments"`
	ActiveDietPlans      int                        `json:"activedietplans"`
	RecentPatients       []*patient.Patient         `json:"recentpatients"`
	UpcomingAppointments []*appointment.Appointment `json:"upcomingappointments"`
}

const recentPatientLimit = 5

// Derive computes the cards from the loaded collections. today is the
// wall-clock date string, compared against appointment dates as raw
// strings.
func (o *Overview) Derive(today string) Stats {
	s := Stats{
		TotalPatients:     len(o.Patients),
		TotalAppointments: len(o.Appointments),
	}
	for _, a := range o.Appointments {
		if a.Date == today {
			s.TodaysAppointments++
		}
		if a.Date >= today && a.Status == appointment.StatusScheduled {
			s.UpcomingAppointments = append(s.UpcomingAppointments, a)
		}
	}
	for _, p := range o.Patients {
		if p.DietPlan != nil && *p.DietPlan != "" {
			s.ActiveDietPlans++
		}
	}
	limit := recentPatientLimit
	if len(o.Patients) < limit {
		limit = len(o.Patients)
	}
	s.RecentPatients = o.Patients[:limit]
	return s
}

package dashboard

import (
	"context"
	"errors"
	"testing"
)

func TestOverviewLoadsBothCollections(t *testing.T) {
	store := newMockStore()
	p := store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	store.addAppointment(p, "2023-06-22", "9:00 AM", "Follow-up", "Scheduled")

	o := NewOverview(store)
	o.Load(context.Background())
	if o.Err != "" || o.Loading {
		t.Fatalf("unexpected state: err=%q loading=%v", o.Err, o.Loading)
	}
	if len(o.Patients) != 1 || len(o.Appointments) != 1 {
		t.Errorf("expected both collections loaded, got %d/%d", len(o.Patients), len(o.Appointments))
	}
}

func TestOverviewNoPartialSuccess(t *testing.T) {
	store := newMockStore()
	p := store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	store.addAppointment(p, "2023-06-22", "9:00 AM", "Follow-up", "Scheduled")
	store.failListAppointments = errors.New("connection refused")

	o := NewOverview(store)
	o.Load(context.Background())
	if o.Err == "" {
		t.Fatal("expected failure when one fetch fails")
	}
	if o.Patients != nil || o.Appointments != nil {
		t.Error("expected no partial-success dashboard")
	}

	store.failListAppointments = nil
	store.failListPatients = errors.New("connection refused")
	o2 := NewOverview(store)
	o2.Load(context.Background())
	if o2.Err == "" {
		t.Fatal("expected failure when the other fetch fails")
	}
}

func TestOverviewStats(t *testing.T) {
	store := newMockStore()
	emma := store.addPatient("Emma Johnson", "emma@x.com", "1", "Active")
	plan := "Low Carb"
	emma.DietPlan = &plan
	mike := store.addPatient("Michael Smith", "michael@x.com", "2", "Inactive")

	store.addAppointment(emma, "2023-06-22", "9:00 AM", "Follow-up", "Scheduled")
	store.addAppointment(emma, "2023-06-25", "9:00 AM", "Diet Review", "Scheduled")
	store.addAppointment(mike, "2023-06-20", "9:00 AM", "Follow-up", "Completed")

	o := NewOverview(store)
	o.Load(context.Background())
	s := o.Derive("2023-06-22")

	if s.TotalPatients != 2 || s.TotalAppointments != 3 {
		t.Errorf("totals: got %d/%d", s.TotalPatients, s.TotalAppointments)
	}
	if s.TodaysAppointments != 1 {
		t.Errorf("expected 1 today, got %d", s.TodaysAppointments)
	}
	if s.ActiveDietPlans != 1 {
		t.Errorf("expected 1 active diet plan, got %d", s.ActiveDietPlans)
	}
	if len(s.UpcomingAppointments) != 2 {
		t.Errorf("expected 2 upcoming scheduled, got %d", len(s.UpcomingAppointments))
	}
	if len(s.RecentPatients) != 2 {
		t.Errorf("expected 2 recent patients, got %d", len(s.RecentPatients))
	}
}

package dashboard

import (
	"context"
	"sort"
	"strings"

	"github.com/nutridash/nutridash/internal/domain/appointment"
)

const (
	ViewList     = "list"
	ViewCalendar = "calendar"
)

// AppointmentList drives the appointments screen: the fetched
// collection plus the search/filter/view state layered over it. The
// fetched slice is never mutated; every projection derives from it.
type AppointmentList struct {
	store DataStore

	Appointments []*appointment.Appointment
	Loading      bool
	Err          string

	View       string
	SearchTerm string
	DateFilter string
	TypeFilter string
}

func NewAppointmentList(store DataStore) *AppointmentList {
	return &AppointmentList{
		store:      store,
		Loading:    true,
		View:       ViewList,
		TypeFilter: "all",
	}
}

// Load fetches the full collection. On failure the previous slice is
// kept as it was (empty on first load) and Err carries the message.
func (l *AppointmentList) Load(ctx context.Context) {
	l.Loading = true
	l.Err = ""

	items, err := l.store.ListAppointments(ctx)
	if err != nil {
		l.Err = msgLoadAppointments
		l.Loading = false
		return
	}
	l.Appointments = items
	l.Loading = false
}

func (l *AppointmentList) SetSearchTerm(term string) { l.SearchTerm = term }
func (l *AppointmentList) SetDateFilter(date string) { l.DateFilter = date }
func (l *AppointmentList) SetTypeFilter(typ string)  { l.TypeFilter = typ }

func (l *AppointmentList) SetView(view string) {
	if view == ViewList || view == ViewCalendar {
		l.View = view
	}
}

// matchesSearch reports whether term hits the denormalized patient
// name or the notes, case-insensitively. Absent notes count as ""
// and never match a non-empty term.
func matchesSearch(a *appointment.Appointment, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(a.PatientName), term) {
		return true
	}
	notes := ""
	if a.Notes != nil {
		notes = *a.Notes
	}
	return strings.Contains(strings.ToLower(notes), term)
}

// Visible derives the filtered set: search term, exact date, and type
// (with "all" passing everything) must all hold.
func (l *AppointmentList) Visible() []*appointment.Appointment {
	var out []*appointment.Appointment
	for _, a := range l.Appointments {
		if !matchesSearch(a, l.SearchTerm) {
			continue
		}
		if l.DateFilter != "" && a.Date != l.DateFilter {
			continue
		}
		if l.TypeFilter != "all" && a.Type != l.TypeFilter {
			continue
		}
		out = append(out, a)
	}
	return out
}

// TypeOptions lists the distinct types present in the unfiltered
// collection, first-seen order, with "all" always first.
func (l *AppointmentList) TypeOptions() []string {
	opts := []string{"all"}
	seen := map[string]bool{}
	for _, a := range l.Appointments {
		if !seen[a.Type] {
			seen[a.Type] = true
			opts = append(opts, a.Type)
		}
	}
	return opts
}

// CalendarDay is one date bucket of the calendar view.
type CalendarDay struct {
	Date         string                     `json:"date"`
	Today        bool                       `json:"today"`
	Appointments []*appointment.Appointment `json:"appointments"`
}

// CalendarDays partitions the visible set into date buckets, each
// sorted by plain string comparison of the time field, days ascending
// by date string. The bucket matching today gets flagged.
func (l *AppointmentList) CalendarDays(today string) []CalendarDay {
	buckets := map[string][]*appointment.Appointment{}
	var dates []string
	for _, a := range l.Visible() {
		if _, ok := buckets[a.Date]; !ok {
			dates = append(dates, a.Date)
		}
		buckets[a.Date] = append(buckets[a.Date], a)
	}
	sort.Strings(dates)

	days := make([]CalendarDay, 0, len(dates))
	for _, d := range dates {
		appts := buckets[d]
		sort.SliceStable(appts, func(i, j int) bool { return appts[i].Time < appts[j].Time })
		days = append(days, CalendarDay{Date: d, Today: d == today, Appointments: appts})
	}
	return days
}

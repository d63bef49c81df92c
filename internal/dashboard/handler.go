package dashboard

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/nutridash/nutridash/internal/domain/appointment"
	"github.com/nutridash/nutridash/internal/domain/patient"
)

// Handler exposes the screens over HTTP. Each request builds a fresh
// controller, loads it, and serializes its state; nothing is cached
// between requests.
type Handler struct {
	store DataStore
	today func() string
}

func NewHandler(store DataStore) *Handler {
	return &Handler{
		store: store,
		today: func() string { return time.Now().Format("2006-01-02") },
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/screens")
	g.GET("/overview", h.Overview)
	g.GET("/patients", h.PatientList)
	g.GET("/patients/:id", h.PatientDetail)
	g.POST("/patients", h.PatientCreate)
	g.GET("/appointments", h.AppointmentList)
	g.GET("/appointments/:id", h.AppointmentDetail)
	g.POST("/appointments", h.AppointmentCreate)
	g.POST("/appointments/:id/cancel", h.AppointmentCancel)
	g.POST("/appointments/:id/complete", h.AppointmentComplete)
}

func (h *Handler) Overview(c echo.Context) error {
	o := NewOverview(h.store)
	o.Load(c.Request().Context())
	if o.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, o.Err)
	}
	return c.JSON(http.StatusOK, o.Derive(h.today()))
}

func (h *Handler) PatientList(c echo.Context) error {
	l := NewPatientList(h.store)
	l.SetSearchTerm(c.QueryParam("search"))
	if status := c.QueryParam("status"); status != "" {
		l.SetStatusFilter(status)
	}
	l.Load(c.Request().Context())
	if l.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, l.Err)
	}
	visible := l.Visible()
	if visible == nil {
		visible = []*patient.Patient{}
	}
	return c.JSON(http.StatusOK, echo.Map{"patients": visible})
}

func (h *Handler) PatientDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d := NewPatientDetail(h.store)
	d.Load(c.Request().Context(), id)
	if d.NotFound {
		return echo.NewHTTPError(http.StatusNotFound, msgPatientNotFound)
	}
	if d.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, d.Err)
	}
	today := h.today()
	return c.JSON(http.StatusOK, echo.Map{
		"patient":  d.Patient,
		"upcoming": d.Upcoming(today),
		"past":     d.Past(today),
	})
}

func (h *Handler) PatientCreate(c echo.Context) error {
	f := NewPatientForm(h.store)
	var body struct {
		Name              string `json:"name"`
		Email             string `json:"email"`
		Phone             string `json:"phone"`
		Age               *int   `json:"age"`
		Gender            string `json:"gender"`
		DateOfBirth       string `json:"dateofbirth"`
		Height            string `json:"height"`
		Weight            string `json:"weight"`
		Allergies         string `json:"allergies"`
		MedicalConditions string `json:"medicalconditions"`
		DietPlan          string `json:"dietplan"`
		Notes             string `json:"notes"`
		Status            string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.Name, f.Email, f.Phone = body.Name, body.Email, body.Phone
	f.Age = body.Age
	f.Gender, f.DateOfBirth = body.Gender, body.DateOfBirth
	f.Height, f.Weight = body.Height, body.Weight
	f.Allergies, f.MedicalConditions = body.Allergies, body.MedicalConditions
	f.DietPlan, f.Notes = body.DietPlan, body.Notes
	if body.Status != "" {
		f.Status = body.Status
	}

	f.Submit(c.Request().Context())
	if f.Err != "" {
		if f.Err == msgCreatePatient {
			return echo.NewHTTPError(http.StatusBadGateway, f.Err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, f.Err)
	}
	return c.JSON(http.StatusCreated, f.Created)
}

func (h *Handler) AppointmentList(c echo.Context) error {
	l := NewAppointmentList(h.store)
	l.SetSearchTerm(c.QueryParam("search"))
	l.SetDateFilter(c.QueryParam("date"))
	if typ := c.QueryParam("type"); typ != "" {
		l.SetTypeFilter(typ)
	}
	l.SetView(c.QueryParam("view"))
	l.Load(c.Request().Context())
	if l.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, l.Err)
	}

	resp := echo.Map{
		"view":        l.View,
		"typeoptions": l.TypeOptions(),
	}
	if l.View == ViewCalendar {
		days := l.CalendarDays(h.today())
		if days == nil {
			days = []CalendarDay{}
		}
		resp["days"] = days
	} else {
		visible := l.Visible()
		if visible == nil {
			visible = []*appointment.Appointment{}
		}
		resp["appointments"] = visible
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) AppointmentDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d := NewAppointmentDetail(h.store)
	d.Load(c.Request().Context(), id)
	if d.NotFound {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if d.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, d.Err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"appointment": d.Appointment,
		"patient":     d.Patient,
		"cancancel":   d.Appointment.CanCancel(),
		"cancomplete": d.Appointment.CanComplete(),
	})
}

func (h *Handler) AppointmentCreate(c echo.Context) error {
	f := NewAppointmentForm(h.store)
	var body struct {
		PatientID uuid.UUID `json:"patientid"`
		Date      string    `json:"date"`
		Time      string    `json:"time"`
		Duration  int       `json:"duration"`
		Type      string    `json:"type"`
		Notes     string    `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.Load(c.Request().Context())
	if f.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, f.Err)
	}
	f.PatientID = body.PatientID
	f.Date, f.Time = body.Date, body.Time
	if body.Duration != 0 {
		f.Duration = body.Duration
	}
	if body.Type != "" {
		f.Type = body.Type
	}
	f.Notes = body.Notes

	f.Submit(c.Request().Context())
	if f.Err != "" {
		if f.Err == msgCreateAppointment {
			return echo.NewHTTPError(http.StatusBadGateway, f.Err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, f.Err)
	}
	return c.JSON(http.StatusCreated, f.Created)
}

// AppointmentCancel is the two-step gesture over the wire: without
// {"confirmed": true} the prompt is opened but nothing is written.
func (h *Handler) AppointmentCancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var body struct {
		Confirmed bool `json:"confirmed"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	d := NewAppointmentDetail(h.store)
	d.Load(c.Request().Context(), id)
	if d.NotFound {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if d.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, d.Err)
	}
	if !d.Appointment.CanCancel() {
		return echo.NewHTTPError(http.StatusConflict, "appointment is not scheduled")
	}

	d.RequestCancel()
	if !body.Confirmed {
		return c.JSON(http.StatusOK, echo.Map{"requiresconfirmation": true})
	}
	d.ConfirmCancel(c.Request().Context())
	if d.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, d.Err)
	}
	return c.JSON(http.StatusOK, d.Appointment)
}

func (h *Handler) AppointmentComplete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d := NewAppointmentDetail(h.store)
	d.Load(c.Request().Context(), id)
	if d.NotFound {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if d.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, d.Err)
	}
	if !d.Appointment.CanComplete() {
		return echo.NewHTTPError(http.StatusConflict, "appointment is not scheduled")
	}
	d.Complete(c.Request().Context())
	if d.Err != "" {
		return echo.NewHTTPError(http.StatusBadGateway, d.Err)
	}
	return c.JSON(http.StatusOK, d.Appointment)
}

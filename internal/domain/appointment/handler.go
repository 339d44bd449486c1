package appointment

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padyhealth/portal/internal/platform/auth"
	"github.com/padyhealth/portal/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole(auth.RoleDoctor, auth.RoleStaff, auth.RolePatient)

	g := api.Group("", role)
	g.GET("/appointments", h.ListAppointments)
	g.GET("/appointments/today", h.ListToday)
	g.GET("/appointments/:id", h.GetAppointment)
	g.GET("/patients/:patientId/appointments", h.ListPatientAppointments)
	g.POST("/appointments", h.BookAppointment)
	g.PUT("/appointments/:id", h.UpdateAppointment)
}

func (h *Handler) BookAppointment(c echo.Context) error {
	var a Appointment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uid, _ := auth.UserIDFromContext(c)
	if err := h.svc.BookAppointment(c.Request().Context(), &a, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to book appointment")
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	pg := pagination.FromContext(c)
	all := h.svc.ListAppointments(c.Request().Context())
	lo, hi := pg.Bounds(len(all))
	return c.JSON(http.StatusOK, pagination.NewResponse(all[lo:hi], len(all), pg.Limit, pg.Offset))
}

func (h *Handler) ListToday(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListTodayAppointments(c.Request().Context()))
}

func (h *Handler) ListPatientAppointments(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListPatientAppointments(c.Request().Context(), c.Param("patientId")))
}

func (h *Handler) GetAppointment(c echo.Context) error {
	a := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if a == nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateAppointment(c echo.Context) error {
	existing := h.svc.GetAppointment(c.Request().Context(), c.Param("id"))
	if existing == nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if err := c.Bind(existing); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateAppointment(c.Request().Context(), existing); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update appointment")
	}
	return c.JSON(http.StatusOK, existing)
}

package clinical

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padyhealth/portal/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	clinician := auth.RequireRole(auth.RoleDoctor, auth.RoleStaff)

	g := api.Group("", clinician)
	g.POST("/test-results", h.AddTestResult)
	g.GET("/patients/:patientId/test-results", h.ListPatientTestResults)
	g.POST("/operations", h.ScheduleOperation)
	g.GET("/operations", h.ListOperations)
	g.POST("/consultations", h.RecordConsultation)
	g.GET("/patients/:patientId/consultations", h.ListPatientConsultations)
}

func (h *Handler) AddTestResult(c echo.Context) error {
	var tr TestResult
	if err := c.Bind(&tr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uid, _ := auth.UserIDFromContext(c)
	if err := h.svc.AddTestResult(c.Request().Context(), &tr, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add test result")
	}
	return c.JSON(http.StatusCreated, tr)
}

func (h *Handler) ListPatientTestResults(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListPatientTestResults(c.Request().Context(), c.Param("patientId")))
}

func (h *Handler) ScheduleOperation(c echo.Context) error {
	var o Operation
	if err := c.Bind(&o); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uid, _ := auth.UserIDFromContext(c)
	if err := h.svc.ScheduleOperation(c.Request().Context(), &o, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to schedule operation")
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) ListOperations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListOperations(c.Request().Context()))
}

func (h *Handler) RecordConsultation(c echo.Context) error {
	var con Consultation
	if err := c.Bind(&con); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uid, _ := auth.UserIDFromContext(c)
	if err := h.svc.RecordConsultation(c.Request().Context(), &con, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to record consultation")
	}
	return c.JSON(http.StatusCreated, con)
}

func (h *Handler) ListPatientConsultations(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListPatientConsultations(c.Request().Context(), c.Param("patientId")))
}

package doctor

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
	read := api.Group("", auth.RequireRole(auth.RoleDoctor, auth.RoleStaff, auth.RolePatient))
	read.GET("/doctors", h.ListDoctors)
	read.GET("/doctors/:id", h.GetDoctor)

	write := api.Group("", auth.RequireRole(auth.RoleStaff))
	write.POST("/doctors", h.AddDoctor)
	write.PUT("/doctors/:id", h.UpdateDoctor)
}

func (h *Handler) AddDoctor(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uid, _ := auth.UserIDFromContext(c)
	if err := h.svc.AddDoctor(c.Request().Context(), &d, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add doctor")
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListDoctors(c.Request().Context()))
}

func (h *Handler) GetDoctor(c echo.Context) error {
	d := h.svc.GetDoctor(c.Request().Context(), c.Param("id"))
	if d == nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	existing := h.svc.GetDoctor(c.Request().Context(), c.Param("id"))
	if existing == nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	if err := c.Bind(existing); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdateDoctor(c.Request().Context(), existing); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update doctor")
	}
	return c.JSON(http.StatusOK, existing)
}

package hospital

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
	read.GET("/hospitals", h.ListHospitals)
	read.GET("/hospitals/:id", h.GetHospital)

	write := api.Group("", auth.RequireRole(auth.RoleStaff))
	write.POST("/hospitals", h.AddHospital)
}

func (h *Handler) AddHospital(c echo.Context) error {
	var hosp Hospital
	if err := c.Bind(&hosp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uid, _ := auth.UserIDFromContext(c)
	if err := h.svc.AddHospital(c.Request().Context(), &hosp, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to add hospital")
	}
	return c.JSON(http.StatusCreated, hosp)
}

func (h *Handler) ListHospitals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListHospitals(c.Request().Context()))
}

func (h *Handler) GetHospital(c echo.Context) error {
	hosp := h.svc.GetHospital(c.Request().Context(), c.Param("id"))
	if hosp == nil {
		return echo.NewHTTPError(http.StatusNotFound, "hospital not found")
	}
	return c.JSON(http.StatusOK, hosp)
}

package billing

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
	role := auth.RequireRole(auth.RoleStaff)

	g := api.Group("", role)
	g.POST("/bills", h.GenerateBill)
	g.GET("/bills/:id", h.GetBill)
	g.PUT("/bills/:id/status", h.UpdateStatus)

	read := api.Group("", auth.RequireRole(auth.RoleStaff, auth.RolePatient))
	read.GET("/patients/:patientId/bills", h.ListPatientBills)
}

func (h *Handler) GenerateBill(c echo.Context) error {
	var b Bill
	if err := c.Bind(&b); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uid, _ := auth.UserIDFromContext(c)
	if err := h.svc.GenerateBill(c.Request().Context(), &b, uid); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate bill")
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListPatientBills(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListPatientBills(c.Request().Context(), c.Param("patientId")))
}

func (h *Handler) GetBill(c echo.Context) error {
	b := h.svc.GetBill(c.Request().Context(), c.Param("id"))
	if b == nil {
		return echo.NewHTTPError(http.StatusNotFound, "bill not found")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var in struct {
		Status  string  `json:"status"`
		Payment Payment `json:"payment"`
	}
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if in.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	if err := h.svc.ProcessPayment(c.Request().Context(), c.Param("id"), in.Status, in.Payment); err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "bill not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to process payment")
	}
	return c.NoContent(http.StatusNoContent)
}

package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the identity endpoints.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the endpoints reachable without a token.
func (h *Handler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/auth/register", h.Register)
	g.POST("/auth/login", h.Login)
}

// RegisterProtectedRoutes mounts the endpoints that require a session.
func (h *Handler) RegisterProtectedRoutes(g *echo.Group) {
	g.POST("/auth/logout", h.Logout)
	g.GET("/auth/me", h.Me)
	g.PUT("/auth/me", h.UpdateMe)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegisterInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, session, err := h.service.Register(c.Request().Context(), in)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user":    user,
		"session": session,
	})
}

func (h *Handler) Login(c echo.Context) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, session, err := h.service.Login(c.Request().Context(), in.Email, in.Password)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":    user,
		"session": session,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	h.service.Logout(claims)
	return c.JSON(http.StatusOK, map[string]string{"redirect": "/login"})
}

func (h *Handler) Me(c echo.Context) error {
	uid, ok := UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	user, err := h.service.CurrentUserProfile(c.Request().Context(), uid)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateMe(c echo.Context) error {
	uid, ok := UserIDFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	var p Profile
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.service.UpdateProfile(c.Request().Context(), uid, p); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toHTTPError(err error) error {
	var authError *Error
	if !errors.As(err, &authError) {
		return echo.NewHTTPError(http.StatusInternalServerError, genericMessage)
	}
	status := http.StatusInternalServerError
	switch authError.Code {
	case CodeEmailInUse:
		status = http.StatusConflict
	case CodeInvalidEmail, CodeWeakPassword:
		status = http.StatusBadRequest
	case CodeUserNotFound, CodeWrongPassword:
		status = http.StatusUnauthorized
	case CodeTooManyRequests:
		status = http.StatusTooManyRequests
	case CodeUserDisabled, CodeOperationNotAllowed:
		status = http.StatusForbidden
	}
	return echo.NewHTTPError(status, map[string]string{
		"code":    authError.Code,
		"message": authError.Message(),
	})
}

package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/healthtrack/healthtrack/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/auth")
	g.POST("/login", h.Login)
	g.POST("/register", h.Register)
	g.POST("/logout", h.Logout)
	g.GET("/verify", h.Verify)
	g.GET("/me", h.Me)
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var body credentials
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.Email == "" || body.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	a, token, err := h.svc.Login(c.Request().Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Login failed")
	}

	h.logger.Info().Int("account_id", a.ID).Msg("login")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"user":    a.Public(),
		"token":   token,
	})
}

func (h *Handler) Register(c echo.Context) error {
	var body credentials
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.Name == "" || body.Email == "" || body.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name, email, and password are required")
	}

	a, token, err := h.svc.Register(c.Request().Context(), body.Name, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return echo.NewHTTPError(http.StatusConflict, "User with this email already exists")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Registration failed")
	}

	h.logger.Info().Int("account_id", a.ID).Msg("account registered")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Registration successful",
		"user":    a.Public(),
		"token":   token,
	})
}

// Logout always succeeds. Tokens are stateless, so there is nothing to
// invalidate server-side; the client drops its copy.
func (h *Handler) Logout(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logout successful",
	})
}

func (h *Handler) Verify(c echo.Context) error {
	token, err := auth.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}
	if _, err := h.svc.Verify(token); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Token is valid",
	})
}

func (h *Handler) Me(c echo.Context) error {
	token, err := auth.BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
	}
	a, err := h.svc.AccountFromToken(c.Request().Context(), token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    a.Public(),
	})
}

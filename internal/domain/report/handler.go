package report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reports", h.Summary)
	api.POST("/reports/generate", h.Generate)
	api.GET("/reports/download/:id", h.Download)
	api.GET("/dashboard", h.Dashboard)
}

func (h *Handler) Summary(c echo.Context) error {
	rep, err := h.svc.Build(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch reports")
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *Handler) Generate(c echo.Context) error {
	var rng DateRange
	if err := c.Bind(&rng); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	r, err := h.svc.Generate(c.Request().Context(), rng)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate report")
	}

	h.logger.Info().Str("report_id", r.ID).Msg("report generated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Report generated successfully",
		"reportId":    r.ID,
		"downloadUrl": fmt.Sprintf("/api/reports/download/%s", r.ID),
		"dateRange":   r.DateRange,
	})
}

func (h *Handler) Download(c echo.Context) error {
	r, err := h.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Report not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to download report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="health-report-%s.pdf"`, r.GeneratedAt.Format("2006-01-02")))
	return c.Blob(http.StatusOK, "application/pdf", r.PDF)
}

func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build dashboard")
	}
	return c.JSON(http.StatusOK, d)
}

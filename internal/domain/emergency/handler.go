package emergency

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
	g := api.Group("/emergency")
	g.POST("/ambulance", h.BookAmbulance)
	g.GET("/bookings", h.ListBookings)
	g.GET("/track/:bookingId", h.Track)
	g.PUT("/bookings/:bookingId", h.UpdateStatus)
	g.POST("/log", h.LogCall)
}

func (h *Handler) BookAmbulance(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b, err := h.svc.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to book ambulance")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"success":          true,
		"message":          "Ambulance booked successfully",
		"bookingId":        b.BookingID,
		"estimatedTime":    b.EstimatedTime,
		"ambulanceDetails": b.AmbulanceDetails,
		"trackingUrl":      fmt.Sprintf("/api/emergency/track/%s", b.BookingID),
	})
}

func (h *Handler) ListBookings(c echo.Context) error {
	items, err := h.svc.ListBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch bookings")
	}
	if items == nil {
		items = []*Booking{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Track(c echo.Context) error {
	info, err := h.svc.Track(c.Request().Context(), c.Param("bookingId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to track ambulance")
	}
	return c.JSON(http.StatusOK, info)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	b, err := h.svc.UpdateStatus(c.Request().Context(), c.Param("bookingId"), body.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update booking")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"booking": b,
	})
}

func (h *Handler) LogCall(c echo.Context) error {
	var body struct {
		EmergencyType string `json:"emergencyType"`
		ContactNumber string `json:"contactNumber"`
		Notes         string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	log := h.svc.LogCall(body.EmergencyType, body.ContactNumber, body.Notes)
	h.logger.Info().
		Int64("log_id", log.ID).
		Str("emergency_type", log.EmergencyType).
		Str("contact_number", log.ContactNumber).
		Str("notes", log.Notes).
		Msg("emergency call logged")

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Emergency call logged",
		"logId":   log.ID,
	})
}

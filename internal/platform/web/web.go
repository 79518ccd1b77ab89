// Package web holds the API-wide response envelope and the Echo error
// handler that renders every failure in one shape:
//
//	{"success": false, "message": "..."}
package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorResponse is the envelope every failed request is rendered with.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Message is the envelope for confirmation-style responses.
type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK returns a success Message with the given text.
func OK(msg string) Message {
	return Message{Success: true, Message: msg}
}

// ErrorHandler returns an echo.HTTPErrorHandler that renders errors in the
// unified envelope. echo.HTTPError messages are passed through; anything
// else becomes a generic 500 so internal details never leak to callers.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Something went wrong!"

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			}
		} else {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, ErrorResponse{Success: false, Message: message})
	}
}

package record

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/medical-records")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.DELETE("/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch medical records")
	}
	if items == nil {
		items = []*MedicalRecord{}
	}
	return c.JSON(http.StatusOK, items)
}

// Create accepts a multipart form with title, type, doctor fields and an
// optional "file" part.
func (h *Handler) Create(c echo.Context) error {
	rec := MedicalRecord{
		Title:  c.FormValue("title"),
		Type:   c.FormValue("type"),
		Doctor: c.FormValue("doctor"),
	}

	file, err := c.FormFile("file")
	if err != nil {
		// No file attached; the record is created with placeholder metadata.
		if err := h.svc.Create(c.Request().Context(), &rec, "", nil); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload medical record")
		}
		return c.JSON(http.StatusCreated, rec)
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload medical record")
	}
	defer src.Close()

	if err := h.svc.Create(c.Request().Context(), &rec, file.Filename, src); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to upload medical record")
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete record")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Record deleted successfully"})
}

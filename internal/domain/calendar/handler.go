package calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/therapia/opinions/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("secretary", "therapist")

	g := api.Group("/calendar", role)
	g.GET("/holidays", h.ListHolidays)
	g.GET("/closures", h.ListClosures)
	g.POST("/closures", h.AddClosure)
	g.DELETE("/closures/:date", h.RemoveClosure)
}

func (h *Handler) ListHolidays(c echo.Context) error {
	year := time.Now().Year()
	if raw := c.QueryParam("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1900 || y > 2099 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = y
	}
	return c.JSON(http.StatusOK, HolidaysForYear(year))
}

func (h *Handler) ListClosures(c echo.Context) error {
	dates, err := h.svc.Closures(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load closures")
	}
	return c.JSON(http.StatusOK, dates)
}

type addClosureRequest struct {
	Date string `json:"date"`
}

func (h *Handler) AddClosure(c echo.Context) error {
	var req addClosureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.AddClosure(c.Request().Context(), req.Date); err != nil {
		if errors.Is(err, ErrClosureExists) {
			return echo.NewHTTPError(http.StatusConflict, "closure already exists")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, map[string]string{"date": req.Date})
}

func (h *Handler) RemoveClosure(c echo.Context) error {
	if err := h.svc.RemoveClosure(c.Request().Context(), c.Param("date")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to remove closure")
	}
	return c.NoContent(http.StatusNoContent)
}

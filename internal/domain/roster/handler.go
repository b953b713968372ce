package roster

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/therapia/opinions/internal/platform/auth"
	"github.com/therapia/opinions/pkg/therapy"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/roster", auth.RequireRole("secretary"))
	g.GET("", h.GetRoster)
	g.POST("/therapists", h.AddTherapist)
	g.DELETE("/therapists/:id", h.DeleteTherapist)
	g.GET("/therapists/:id/working-days", h.WorkingDays)
	g.POST("/days/:day", h.AddToDay)
	g.DELETE("/days/:day/:index", h.RemoveFromDay)
}

func (h *Handler) GetRoster(c echo.Context) error {
	r, err := h.svc.Roster(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load roster")
	}
	return c.JSON(http.StatusOK, r)
}

type addTherapistRequest struct {
	Name      string       `json:"name"`
	Specialty therapy.Type `json:"specialty"`
}

func (h *Handler) AddTherapist(c echo.Context) error {
	var req addTherapistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t, err := h.svc.AddTherapist(c.Request().Context(), req.Name, req.Specialty)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) DeleteTherapist(c echo.Context) error {
	err := h.svc.DeleteTherapist(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrTherapistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "therapist not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete therapist")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) WorkingDays(c echo.Context) error {
	days, err := h.svc.WorkingDaysFor(c.Request().Context(), c.Param("id"))
	if errors.Is(err, ErrTherapistNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "therapist not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load roster")
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = strings.ToLower(d.String())
	}
	return c.JSON(http.StatusOK, map[string][]string{"working_days": names})
}

type addToDayRequest struct {
	TherapistID string `json:"therapist_id"`
}

func (h *Handler) AddToDay(c echo.Context) error {
	var req addToDayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	err := h.svc.AddToDay(c.Request().Context(), c.Param("day"), req.TherapistID)
	switch {
	case errors.Is(err, ErrInvalidWeekday):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid weekday")
	case errors.Is(err, ErrTherapistNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "therapist not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update roster")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RemoveFromDay(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid index")
	}
	err = h.svc.RemoveFromDay(c.Request().Context(), c.Param("day"), index)
	switch {
	case errors.Is(err, ErrInvalidWeekday):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid weekday")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update roster")
	}
	return c.NoContent(http.StatusNoContent)
}

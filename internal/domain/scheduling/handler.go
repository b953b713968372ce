package scheduling

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/therapia/opinions/internal/domain/roster"
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
	g := api.Group("/schedule", auth.RequireRole("secretary"))
	g.POST("/plan", h.PlanSessions)
	g.POST("/certificate", h.BuildCertificate)
}

type planRequest struct {
	TherapistID string       `json:"therapist_id"`
	Therapy     therapy.Type `json:"therapy"`
	Sessions    int          `json:"sessions"`
	Start       string       `json:"start"` // YYYY-MM-DD
	End         string       `json:"end"`   // YYYY-MM-DD
}

func (h *Handler) PlanSessions(c echo.Context) error {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid start date")
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid end date")
	}

	plan, err := h.svc.PlanSessions(c.Request().Context(), req.TherapistID, req.Therapy, req.Sessions, start, end)
	switch {
	case errors.Is(err, roster.ErrTherapistNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "therapist not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *Handler) BuildCertificate(c echo.Context) error {
	var req CertificateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	cert, err := h.svc.BuildCertificate(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, cert)
}

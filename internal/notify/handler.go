package notify

import (
	"net/http"
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
	g := api.Group("/notifications", auth.RequireRole("secretary"))
	g.POST("/summary", h.SendSummary)
}

// SendSummary triggers the digest email on demand.
func (h *Handler) SendSummary(c echo.Context) error {
	res, err := h.svc.SendSummary(c.Request().Context(), time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "failed to send summary email")
	}
	return c.JSON(http.StatusOK, res)
}

package opinion

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/therapia/opinions/internal/platform/auth"
	"github.com/therapia/opinions/pkg/pagination"
)

type Handler struct {
	svc        *Service
	windowDays int
}

// NewHandler builds the opinion handler. windowDays is the default expiry
// window for the expiring listing.
func NewHandler(svc *Service, windowDays int) *Handler {
	return &Handler{svc: svc, windowDays: windowDays}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("secretary", "therapist")

	g := api.Group("/opinions", role)
	g.GET("", h.List)
	g.GET("/expiring", h.ListExpiring)
	g.GET("/:id", h.Get)

	write := api.Group("/opinions", auth.RequireRole("secretary"))
	write.POST("", h.Create)
	write.PUT("/:id", h.Update)
	write.DELETE("/:id", h.Delete)
	write.POST("/:id/amka-resolution", h.ResolveAMKA)
}

func (h *Handler) Create(c echo.Context) error {
	var o Opinion
	if err := c.Bind(&o); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &o); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	o, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "opinion not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load opinion")
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list opinions")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListExpiring(c echo.Context) error {
	window := h.windowDays
	if raw := c.QueryParam("window"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid window")
		}
		window = w
	}
	items, err := h.svc.Expiring(c.Request().Context(), time.Now(), window)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list expiring opinions")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var o Opinion
	if err := c.Bind(&o); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	o.ID = id
	err = h.svc.Update(c.Request().Context(), &o)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "opinion not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, o)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err = h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "opinion not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete opinion")
	}
	return c.NoContent(http.StatusNoContent)
}

type resolveAMKARequest struct {
	DocumentAMKA string `json:"document_amka"`
	Choice       string `json:"choice"`
	Persist      bool   `json:"persist"`
}

func (h *Handler) ResolveAMKA(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req resolveAMKARequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.ResolveAMKA(c.Request().Context(), id, req.DocumentAMKA, req.Choice, req.Persist)
	if errors.Is(err, ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "opinion not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

package referral

import (
	"io"
	"net/http"

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
	g := api.Group("/referrals", auth.RequireRole("secretary"))
	g.POST("/extract", h.Extract)
}

// Extract accepts a referral PDF as the multipart field "file" and returns
// the parsed document.
func (h *Handler) Extract(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
	}

	res, err := h.svc.ExtractFromPDF(c.Request().Context(), data)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "could not parse document")
	}
	return c.JSON(http.StatusOK, res)
}

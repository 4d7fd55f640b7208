package export

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casetrack/casetrack/internal/platform/auth"
)

// Source produces the exportable views.
type Source interface {
	Requests(ctx context.Context) (*View, error)
	FollowUps(ctx context.Context) (*View, error)
}

// Handler serves CSV downloads of the case data.
type Handler struct {
	source Source
}

func NewHandler(source Source) *Handler {
	return &Handler{source: source}
}

// RegisterRoutes registers the export endpoints on the given group.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	exports := g.Group("/export", auth.RequireRole("case_manager", "volunteer", "intern"))
	exports.GET("/requests.csv", h.Requests)
	exports.GET("/follow-ups.csv", h.FollowUps)
}

func (h *Handler) Requests(c echo.Context) error {
	view, err := h.source.Requests(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export requests")
	}
	return h.serveCSV(c, "service_requests.csv", view)
}

func (h *Handler) FollowUps(c echo.Context) error {
	view, err := h.source.FollowUps(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export follow-ups")
	}
	return h.serveCSV(c, "follow_ups.csv", view)
}

func (h *Handler) serveCSV(c echo.Context, filename string, view *View) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(view.CSV()))
}

package reporting

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casetrack/casetrack/internal/platform/auth"
)

// Handler provides HTTP handlers for the reporting API.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the reporting API routes.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	reports := api.Group("/reports", auth.RequireRole("case_manager", "volunteer", "intern"))
	reports.GET("/dashboard", h.Dashboard)
	reports.GET("/demand-by-region", h.DemandByRegion)
	reports.GET("/staff-workload", h.StaffWorkload)
}

func (h *Handler) Dashboard(c echo.Context) error {
	m, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DemandByRegion(c echo.Context) error {
	items, err := h.svc.DemandByRegion(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []RegionDemand{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) StaffWorkload(c echo.Context) error {
	items, err := h.svc.StaffWorkloads(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if items == nil {
		items = []StaffWorkload{}
	}
	return c.JSON(http.StatusOK, items)
}

package fiber

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"slices"

	"social-analytics-dashboard/internal/analytics/adapters/chart"
	"social-analytics-dashboard/internal/analytics/adapters/report"
	"social-analytics-dashboard/internal/analytics/core/domain"
	"social-analytics-dashboard/internal/analytics/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type FetchAnalyticsUseCase interface {
	Execute(ctx context.Context) ([]domain.Row, error)
}

type GetDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.GetDashboardInput) (*domain.Dashboard, error)
}

type ChartRenderer interface {
	Render(w io.Writer, name string, d *domain.Dashboard) error
}

type ReportWriter func(w io.Writer, d *domain.Dashboard) error

type AnalyticsHandler struct {
	fetchUC     FetchAnalyticsUseCase
	dashboardUC GetDashboardUseCase
	charts      ChartRenderer
	report      ReportWriter
}

func NewAnalyticsHandler(fetchUC FetchAnalyticsUseCase, dashboardUC GetDashboardUseCase, charts ChartRenderer, rw ReportWriter) *AnalyticsHandler {
	if rw == nil {
		rw = report.WriteXLSX
	}
	return &AnalyticsHandler{
		fetchUC:     fetchUC,
		dashboardUC: dashboardUC,
		charts:      charts,
		report:      rw,
	}
}

// FetchAnalytics godoc
// @Summary Fetch parsed analytics rows
// @Description Downloads the published sheet CSV and returns one object per data line
// @Tags Analytics
// @Produce json
// @Success 200 {object} AnalyticsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/analytics [get]
func (h *AnalyticsHandler) FetchAnalytics(c *fiber.Ctx) error {
	rows, err := h.fetchUC.Execute(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: err.Error(),
		})
	}

	if rows == nil {
		rows = []domain.Row{}
	}
	return c.Status(http.StatusOK).JSON(AnalyticsResponse{Data: rows})
}

// GetDashboard godoc
// @Summary Dashboard aggregates
// @Description Filters the rows by platform and search term and returns KPIs, chart series, rendered charts and the detail table.
// @Description Everything in one response comes from a single upstream fetch.
// @Tags Analytics
// @Produce json
// @Param platform query string false "all | Instagram | LinkedIn | YouTube | X"
// @Param search query string false "Case-insensitive platform search"
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.dashboard(c)
	if err != nil {
		return h.fail(c, err)
	}

	charts, err := h.renderCharts(d)
	if err != nil {
		return h.fail(c, err)
	}

	resp := toDashboardResponse(d)
	resp.Charts = charts
	return c.Status(http.StatusOK).JSON(resp)
}

// renderCharts draws every chart of d as a PNG data URI. A chart with nothing
// to draw maps to "".
func (h *AnalyticsHandler) renderCharts(d *domain.Dashboard) (map[string]string, error) {
	out := make(map[string]string, len(chart.Names))
	for _, name := range chart.Names {
		var buf bytes.Buffer
		if err := h.charts.Render(&buf, name, d); err != nil {
			if errors.Is(err, chart.ErrNoData) {
				out[name] = ""
				continue
			}
			return nil, err
		}
		out[name] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
	}
	return out, nil
}

// GetChart godoc
// @Summary Dashboard chart
// @Description Renders one of the dashboard charts as PNG
// @Tags Analytics
// @Produce png
// @Param name path string true "followers | engagement | reach | posts"
// @Param platform query string false "Platform filter"
// @Param search query string false "Search term"
// @Success 200 {file} binary
// @Success 204 "No rows match the filter"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/charts/{name}.png [get]
func (h *AnalyticsHandler) GetChart(c *fiber.Ctx) error {
	name := c.Params("name")
	if !slices.Contains(chart.Names, name) {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error: chart.ErrUnknownChart.Error(),
		})
	}

	d, err := h.dashboard(c)
	if err != nil {
		return h.fail(c, err)
	}

	var buf bytes.Buffer
	if err := h.charts.Render(&buf, name, d); err != nil {
		if errors.Is(err, chart.ErrNoData) {
			return c.SendStatus(http.StatusNoContent)
		}
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("png")
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// DownloadReport godoc
// @Summary Download report
// @Description Exports the filtered table and aggregates as an XLSX workbook
// @Tags Analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param platform query string false "Platform filter"
// @Param search query string false "Search term"
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/report.xlsx [get]
func (h *AnalyticsHandler) DownloadReport(c *fiber.Ctx) error {
	d, err := h.dashboard(c)
	if err != nil {
		return h.fail(c, err)
	}

	var buf bytes.Buffer
	if err := h.report(&buf, d); err != nil {
		return h.fail(c, err)
	}

	c.Attachment("analytics-report.xlsx")
	c.Set(fiber.HeaderContentType, report.ContentType)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *AnalyticsHandler) dashboard(c *fiber.Ctx) (*domain.Dashboard, error) {
	in := usecase.GetDashboardInput{
		Platform: c.Query("platform", domain.PlatformAll),
		Search:   c.Query("search", ""),
	}
	return h.dashboardUC.Execute(c.UserContext(), in)
}

func (h *AnalyticsHandler) fail(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: err.Error(),
	})
}

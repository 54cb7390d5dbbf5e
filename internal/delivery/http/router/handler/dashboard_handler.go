package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vita/config"
	"vita/internal/delivery/http/response"
	"vita/internal/domain/entity"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Defensive defaults for dashboard query parameters. Bad client input degrades
// to these instead of surfacing an error.
const (
	defaultTrendLimit = 7
	maxTrendLimit     = 60
	defaultStatsDays  = 7
	maxStatsDays      = 90
)

// DashboardHandler holds dependencies for the aggregate dashboard endpoints.
type DashboardHandler struct {
	dashboardUc usecase.DashboardUsecase
	snapshotUc  usecase.SnapshotUsecase
	trendUc     usecase.TrendUsecase
	nutritionUc usecase.NutritionUsecase
	logger      *slog.Logger
	maxLimit    int
	maxDays     int
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(
	dashboardUc usecase.DashboardUsecase,
	snapshotUc usecase.SnapshotUsecase,
	trendUc usecase.TrendUsecase,
	nutritionUc usecase.NutritionUsecase,
	logger *slog.Logger,
	cfg *config.Config,
) *DashboardHandler {
	maxLimit := maxTrendLimit
	maxDays := maxStatsDays
	if cfg.Trend != nil {
		if cfg.Trend.MaxLimit > 0 {
			maxLimit = cfg.Trend.MaxLimit
		}
		if cfg.Trend.MaxDays > 0 {
			maxDays = cfg.Trend.MaxDays
		}
	}

	return &DashboardHandler{
		dashboardUc: dashboardUc,
		snapshotUc:  snapshotUc,
		trendUc:     trendUc,
		nutritionUc: nutritionUc,
		logger:      logger,
		maxLimit:    maxLimit,
		maxDays:     maxDays,
	}
}

// GetOverview handles the aggregate dashboard overview request.
func (h *DashboardHandler) GetOverview(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	overview, err := h.dashboardUc.GetOverview(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, overview, "Dashboard overview retrieved successfully")
}

// GetBodyMetricsRadar handles the radar-chart request.
func (h *DashboardHandler) GetBodyMetricsRadar(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	radar, err := h.dashboardUc.GetBodyMetricsRadar(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, radar, "Body metrics radar retrieved successfully")
}

// GetHealthTrends handles the trend series request. An unknown period falls
// back to daily; limit is clamped to the configured maximum.
func (h *DashboardHandler) GetHealthTrends(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	period := entity.TrendPeriod(c.QueryParam("period"))
	if !period.Valid() {
		period = entity.TrendDaily
	}
	limit := parseIntParam(c, "limit", defaultTrendLimit, h.maxLimit)

	series, err := h.trendUc.GetHealthTrends(c.Request().Context(), userID, period, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, series, "Health trends retrieved successfully")
}

// GetNutritionStats handles the nutrition window request.
func (h *DashboardHandler) GetNutritionStats(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	days := parseIntParam(c, "days", defaultStatsDays, h.maxDays)

	window, err := h.nutritionUc.GetNutritionWindow(c.Request().Context(), userID, days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, window, "Nutrition stats retrieved successfully")
}

// updateSnapshotRequest is the payload for the snapshot merge-update endpoint.
// Date is optional and defaults to today.
type updateSnapshotRequest struct {
	Date        string               `json:"date"`
	Stats       *usecase.StatsPatch  `json:"stats"`
	BodyMetrics *usecase.BodyPatch   `json:"body_metrics"`
	Scores      *usecase.ScoresPatch `json:"scores"`
}

// UpdateSnapshot handles the partial snapshot update request. The patch merges
// into the day's snapshot field by field; the overall score is recomputed
// server-side and cannot be set by the client.
func (h *DashboardHandler) UpdateSnapshot(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateSnapshotRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid snapshot update input")
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		}
		date = parsed
	}

	patch := &usecase.SnapshotPatch{
		Stats:       req.Stats,
		BodyMetrics: req.BodyMetrics,
		Scores:      req.Scores,
	}

	snapshot, err := h.snapshotUc.UpdateSnapshot(c.Request().Context(), userID, date, patch)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Snapshot updated successfully")
}

// GetSnapshot handles the read (or lazy create) of one day's snapshot.
func (h *DashboardHandler) GetSnapshot(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date := parseDateParam(c, "date")

	snapshot, err := h.snapshotUc.GetOrCreateSnapshot(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Snapshot retrieved successfully")
}

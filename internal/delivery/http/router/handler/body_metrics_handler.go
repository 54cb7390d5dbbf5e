package handler

import (
	"log/slog"
	"net/http"

	"vita/internal/delivery/http/response"
	"vita/internal/domain/entity"
	"vita/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BodyMetricsHandler holds dependencies for body measurement handlers.
type BodyMetricsHandler struct {
	uc     usecase.BodyMetricsUsecase
	logger *slog.Logger
}

// NewBodyMetricsHandler is the constructor for BodyMetricsHandler, injected by Fx.
func NewBodyMetricsHandler(uc usecase.BodyMetricsUsecase, logger *slog.Logger) *BodyMetricsHandler {
	return &BodyMetricsHandler{
		uc:     uc,
		logger: logger,
	}
}

// recordMeasurementRequest is the payload for a body measurement submission.
type recordMeasurementRequest struct {
	Height        float64 `json:"height" validate:"required,gt=0,lte=300"`
	Weight        float64 `json:"weight" validate:"required,gt=0,lte=500"`
	Age           int     `json:"age" validate:"required,gt=0,lte=150"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
}

// RecordMeasurement handles the request to record a new body measurement.
func (h *BodyMetricsHandler) RecordMeasurement(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req recordMeasurementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid measurement input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.MeasurementInput{
		Height:        req.Height,
		Weight:        req.Weight,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: entity.ActivityLevel(req.ActivityLevel),
	}

	record, err := h.uc.RecordMeasurement(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Body metrics recorded successfully")
}

// GetLatest handles the request to read the most recent measurement record.
func (h *BodyMetricsHandler) GetLatest(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	record, err := h.uc.GetLatest(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Latest body metrics retrieved successfully")
}

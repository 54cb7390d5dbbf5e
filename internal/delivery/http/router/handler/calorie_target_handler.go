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

// CalorieTargetHandler holds dependencies for calorie target handlers.
type CalorieTargetHandler struct {
	uc     usecase.CalorieTargetUsecase
	logger *slog.Logger
}

// NewCalorieTargetHandler is the constructor for CalorieTargetHandler, injected by Fx.
func NewCalorieTargetHandler(uc usecase.CalorieTargetUsecase, logger *slog.Logger) *CalorieTargetHandler {
	return &CalorieTargetHandler{
		uc:     uc,
		logger: logger,
	}
}

// calculateTargetRequest is the payload for a calorie target calculation.
type calculateTargetRequest struct {
	Height        float64 `json:"height" validate:"required,gt=0,lte=300"`
	Weight        float64 `json:"weight" validate:"required,gt=0,lte=500"`
	Age           int     `json:"age" validate:"required,gt=0,lte=150"`
	Gender        string  `json:"gender" validate:"required,oneof=male female"`
	ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary lightly_active moderately_active very_active extremely_active"`
	Goal          string  `json:"goal" validate:"required,oneof=lose maintain gain"`
}

// Calculate handles the request to derive and persist a new calorie target.
func (h *CalorieTargetHandler) Calculate(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req calculateTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calorie target input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.TargetInput{
		Height:        req.Height,
		Weight:        req.Weight,
		Age:           req.Age,
		Gender:        req.Gender,
		ActivityLevel: entity.ActivityLevel(req.ActivityLevel),
		Goal:          entity.Goal(req.Goal),
	}

	record, err := h.uc.Calculate(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Calorie target calculated successfully")
}

// GetActive handles the request to read the current active calorie target.
func (h *CalorieTargetHandler) GetActive(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	record, err := h.uc.GetActive(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Active calorie target retrieved successfully")
}

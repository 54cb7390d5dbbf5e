package handler

import (
	"log/slog"
	"net/http"
	"time"

	"vita/internal/delivery/http/response"
	"vita/internal/domain/entity"
	"vita/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiaryHandler holds dependencies for food diary handlers.
type DiaryHandler struct {
	uc     usecase.DiaryUsecase
	logger *slog.Logger
}

// NewDiaryHandler is the constructor for DiaryHandler, injected by Fx.
func NewDiaryHandler(uc usecase.DiaryUsecase, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{
		uc:     uc,
		logger: logger,
	}
}

// addEntryRequest is the payload for logging one food item.
type addEntryRequest struct {
	Date     string  `json:"date"`
	FoodName string  `json:"food_name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Unit     string  `json:"unit" validate:"required"`
	Calories float64 `json:"calories" validate:"gte=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Carbs    float64 `json:"carbs" validate:"gte=0"`
	Fat      float64 `json:"fat" validate:"gte=0"`
	Fiber    float64 `json:"fiber" validate:"gte=0"`
	MealType string  `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
}

// AddEntry handles the request to log a food item on a diary day.
func (h *DiaryHandler) AddEntry(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid diary entry input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
		if err != nil {
			return response.BadRequest(c, "INVALID_DATE", "Date must be formatted as YYYY-MM-DD")
		}
		date = parsed
	}

	input := &usecase.AddDiaryEntryInput{
		Date:     date,
		FoodName: req.FoodName,
		Quantity: req.Quantity,
		Unit:     req.Unit,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		Fiber:    req.Fiber,
		MealType: entity.MealType(req.MealType),
	}

	day, err := h.uc.AddEntry(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, day, "Diary entry added successfully")
}

// RemoveEntry handles the request to delete a food item from a diary day.
func (h *DiaryHandler) RemoveEntry(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ENTRY_ID", "Entry ID must be a valid UUID")
	}

	date := parseDateParam(c, "date")

	day, err := h.uc.RemoveEntry(c.Request().Context(), userID, date, entryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, day, "Diary entry removed successfully")
}

// GetDay handles the request to read one diary day with its entries.
func (h *DiaryHandler) GetDay(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date := parseDateParam(c, "date")

	day, err := h.uc.GetDay(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, day, "Diary day retrieved successfully")
}

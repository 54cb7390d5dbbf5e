package errors

import (
	"net/http"

	"vita/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are Vietnamese, matching the
// product's audience.
var (
	// Dashboard-related errors
	ErrSnapshotNotFound = NewBaseError(
		http.StatusNotFound,
		"SNAPSHOT_NOT_FOUND",
		"Không tìm thấy dữ liệu sức khỏe của ngày này",
		"",
	)

	ErrSnapshotUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"SNAPSHOT_UPDATE_FAILED",
		"Cập nhật dữ liệu sức khỏe thất bại",
		"",
	)

	ErrTrendGenerationFailed = NewBaseError(
		http.StatusInternalServerError,
		"TREND_GENERATION_FAILED",
		"Không thể tạo dữ liệu xu hướng sức khỏe",
		"",
	)

	// Diary-related errors
	ErrDiaryEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"DIARY_ENTRY_NOT_FOUND",
		"Không tìm thấy món ăn trong nhật ký",
		"",
	)

	ErrDiaryDayNotFound = NewBaseError(
		http.StatusNotFound,
		"DIARY_DAY_NOT_FOUND",
		"Không tìm thấy nhật ký ăn uống của ngày này",
		"",
	)

	// Calculator-related errors
	ErrBodyMetricsNotFound = NewBaseError(
		http.StatusNotFound,
		"BODY_METRICS_NOT_FOUND",
		"Bạn chưa có chỉ số cơ thể nào",
		"",
	)

	ErrCalorieTargetNotFound = NewBaseError(
		http.StatusNotFound,
		"CALORIE_TARGET_NOT_FOUND",
		"Bạn chưa có mục tiêu calo nào",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dữ liệu đầu vào không hợp lệ",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Giao dịch cơ sở dữ liệu thất bại",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Lỗi hệ thống, vui lòng thử lại sau",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Truy cập bị từ chối",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Không tìm thấy tài nguyên",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Xung đột tài nguyên",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Lỗi truy vấn cơ sở dữ liệu"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

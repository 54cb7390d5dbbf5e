package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"vita/internal/delivery/http/response"
	domainerrors "vita/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestErrorMiddleware() *ErrorMiddleware {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	return NewErrorMiddleware(logger)
}

func recordError(t *testing.T, err error) (*httptest.ResponseRecorder, *response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/diary/day", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	newTestErrorMiddleware().HandleHTTPError(err, c)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, &body
}

func TestErrorMiddleware_AppErrorRendersCatalogueEntry(t *testing.T) {
	err := errors.Wrap(domainerrors.ErrDiaryDayNotFound, "diary day not found")

	rec, body := recordError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, http.StatusNotFound, body.Code)
	assert.Equal(t, domainerrors.ErrDiaryDayNotFound.Message(), body.Message)
	require.NotNil(t, body.Error)
	assert.Equal(t, "DIARY_DAY_NOT_FOUND", body.Error.Code)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := recordError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorFallsBackToInternal(t *testing.T) {
	rec, body := recordError(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Equal(t, "connection reset", body.Error.Details)
}

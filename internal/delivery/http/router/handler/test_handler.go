package handler

import (
	"net/http"
	"time"

	"vita/internal/delivery/http/response"
	"vita/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// devTokenTTL keeps issued test tokens short-lived.
const devTokenTTL = 24 * time.Hour

// TestHandler handles development-only endpoints. Its routes are registered
// exclusively when testRoutes.enabled is set.
type TestHandler struct {
	tokenSvc service.TokenService
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(tokenSvc service.TokenService) *TestHandler {
	return &TestHandler{
		tokenSvc: tokenSvc,
	}
}

// issueTokenRequest optionally pins the user ID of the issued token.
type issueTokenRequest struct {
	UserID string `json:"user_id"`
}

// IssueToken issues a signed access token for manual API testing. Without a
// user_id in the body a random user is minted.
func (h *TestHandler) IssueToken(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token request input")
	}

	userID := uuid.New()
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil {
			return response.BadRequest(c, "INVALID_USER_ID", "User ID must be a valid UUID")
		}
		userID = parsed
	}

	token, err := h.tokenSvc.GenerateAccessToken(userID, devTokenTTL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"user_id":      userID.String(),
		"access_token": token,
	}, "Test token issued successfully")
}

package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"registration-api/internal/services"
	"registration-api/pkg/lambda"
)

// UserHandler handles user record reads
type UserHandler struct {
	userService services.RecordService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.RecordService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	records, err := h.userService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, records)
}

// HandleList handles a full-collection read in Lambda mode
func (h *UserHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	records, err := h.userService.List(ctx)
	if err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)}), nil
	}

	return lambda.JSONResponse(http.StatusOK, records), nil
}

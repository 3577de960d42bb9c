package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"registration-api/internal/services"
	"registration-api/pkg/lambda"
)

// SignUpHandler handles account registration requests
type SignUpHandler struct {
	registrationService services.RegistrationService
}

// NewSignUpHandler creates a new sign-up handler
func NewSignUpHandler(registrationService services.RegistrationService) *SignUpHandler {
	return &SignUpHandler{
		registrationService: registrationService,
	}
}

// SignUp handles POST /signup on the dev server. Any failure maps to a 500
// with the fault's message, matching the deployed function's contract.
func (h *SignUpHandler) SignUp(c *gin.Context) {
	var req services.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)})
		return
	}

	if err := h.registrationService.SignUp(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: signUpSuccessMessage})
}

// HandleSignUp handles the sign-up request in Lambda mode
func (h *SignUpHandler) HandleSignUp(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	var signUpReq services.SignUpRequest
	if err := json.Unmarshal(req.Body, &signUpReq); err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)}), nil
	}

	if err := h.registrationService.SignUp(ctx, &signUpReq); err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)}), nil
	}

	return lambda.JSONResponse(http.StatusOK, MessageResponse{Message: signUpSuccessMessage}), nil
}

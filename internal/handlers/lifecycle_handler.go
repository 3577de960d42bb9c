package handlers

import (
	"context"
	"net/http"

	"registration-api/internal/services"
	"registration-api/pkg/lambda"
)

// LifecycleHandler persists a record when an identity-lifecycle trigger fires.
// The create-order and post-confirmation triggers share this implementation
// and differ only in which collection their service writes to.
type LifecycleHandler struct {
	recordService services.RecordService
}

// NewLifecycleHandler creates a new lifecycle handler
func NewLifecycleHandler(recordService services.RecordService) *LifecycleHandler {
	return &LifecycleHandler{
		recordService: recordService,
	}
}

// HandleTrigger builds and stores a record from the trigger's user attributes.
// The returned response mirrors the stored record; the platform adapter is
// responsible for echoing the event back to the identity provider.
func (h *LifecycleHandler) HandleTrigger(ctx context.Context, attributes map[string]string) (*lambda.Response, error) {
	record, err := h.recordService.RecordFromAttributes(ctx, attributes["name"], attributes["email"])
	if err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)}), nil
	}

	return lambda.JSONResponse(http.StatusOK, record), nil
}

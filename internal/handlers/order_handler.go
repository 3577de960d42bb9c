package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"registration-api/internal/repositories"
	"registration-api/internal/services"
	"registration-api/pkg/lambda"
)

// OrderHandler handles order record reads
type OrderHandler struct {
	orderService services.RecordService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService services.RecordService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// GetOrder handles GET /orders/:email. A missing record is a 404, not an
// empty 200.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	record, err := h.orderService.Get(c.Request.Context(), c.Param("email"))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, MessageResponse{Message: "record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	records, err := h.orderService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)})
		return
	}

	c.JSON(http.StatusOK, records)
}

// HandleGet handles a single-record lookup in Lambda mode
func (h *OrderHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	record, err := h.orderService.Get(ctx, req.PathParams["email"])
	if err != nil {
		if repositories.IsNotFound(err) {
			return lambda.JSONResponse(http.StatusNotFound, MessageResponse{Message: "record not found"}), nil
		}
		return lambda.JSONResponse(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)}), nil
	}

	return lambda.JSONResponse(http.StatusOK, record), nil
}

// HandleList handles a full-collection read in Lambda mode
func (h *OrderHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	records, err := h.orderService.List(ctx)
	if err != nil {
		return lambda.JSONResponse(http.StatusInternalServerError, MessageResponse{Message: errorMessage(err)}), nil
	}

	return lambda.JSONResponse(http.StatusOK, records), nil
}

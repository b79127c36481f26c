package handler

import (
	"errors"
	"net/http"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles order requests
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Place handles placing a new order
// @Summary Place an order
// @Description Place a table, delivery or pickup order. Totals are computed server side.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body dto.OrderRequest true "Order request"
// @Success 201 {object} domain.Order
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyOrder), errors.Is(err, service.ErrInvalidCEP):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Bad request",
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrServiceInactive), errors.Is(err, service.ErrNoTierMatched):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
				Error:   "Unprocessable",
				Message: err.Error(),
			})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Bad request",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Internal server error",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// Get retrieves an order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// List lists orders, optionally filtered by status
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// SetStatus moves an order through its lifecycle
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	err := h.orderService.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Error:   "Conflict",
				Message: err.Error(),
			})
			return
		}
		writeRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Order status updated"})
}

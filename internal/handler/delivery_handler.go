package handler

import (
	"errors"
	"net/http"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// DeliveryHandler handles delivery fee and distance requests
type DeliveryHandler struct {
	deliveryService service.DeliveryService
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(deliveryService service.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService}
}

// Quote handles a delivery fee quote
// @Summary Quote a delivery fee
// @Description Compute the delivery cost for a customer postal code and order total
// @Tags delivery
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote request"
// @Success 200 {object} domain.DeliveryQuote
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /delivery/quote [post]
func (h *DeliveryHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	quote, err := h.deliveryService.Quote(c.Request.Context(), req.CEP, req.OrderTotal)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Distance handles a distance lookup
// @Summary Resolve a driving distance
// @Description Resolve the driving distance between two postal codes. Origin defaults to the store.
// @Tags delivery
// @Accept json
// @Produce json
// @Param request body dto.DistanceRequest true "Distance request"
// @Success 200 {object} domain.DistanceResult
// @Failure 400 {object} dto.ErrorResponse
// @Router /delivery/distance [post]
func (h *DeliveryHandler) Distance(c *gin.Context) {
	var req dto.DistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	result, err := h.deliveryService.Distance(c.Request.Context(), req.OriginCEP, req.DestinationCEP)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSettings returns the current delivery settings
func (h *DeliveryHandler) GetSettings(c *gin.Context) {
	settings, err := h.deliveryService.GetSettings(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SaveSettings updates the delivery settings
func (h *DeliveryHandler) SaveSettings(c *gin.Context) {
	var req dto.DeliverySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	settings, err := h.deliveryService.SaveSettings(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// ListTiers returns the tiered pricing bands
func (h *DeliveryHandler) ListTiers(c *gin.Context) {
	tiers, err := h.deliveryService.ListTiers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tiers)
}

// ReplaceTiers replaces the tiered pricing bands
func (h *DeliveryHandler) ReplaceTiers(c *gin.Context) {
	var reqs []dto.DeliveryTierRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	tiers, err := h.deliveryService.ReplaceTiers(c.Request.Context(), reqs)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, tiers)
}

func (h *DeliveryHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCEP):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrServiceInactive), errors.Is(err, service.ErrNoTierMatched):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:   "Unprocessable",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrSettingsUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   "Service unavailable",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: err.Error(),
		})
	}
}

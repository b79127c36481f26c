package handler

import (
	"net/http"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// TableHandler handles restaurant table requests
type TableHandler struct {
	tableService service.TableService
}

// NewTableHandler creates a new table handler
func NewTableHandler(tableService service.TableService) *TableHandler {
	return &TableHandler{tableService: tableService}
}

// List lists all tables
func (h *TableHandler) List(c *gin.Context) {
	tables, err := h.tableService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal server error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, tables)
}

// Create creates a table
func (h *TableHandler) Create(c *gin.Context) {
	var req dto.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	table, err := h.tableService.Create(c.Request.Context(), &req)
	if err != nil {
		writeRepoError(c, err)
		return
	}

	c.JSON(http.StatusCreated, table)
}

// SetStatus changes a table's status
func (h *TableHandler) SetStatus(c *gin.Context) {
	var req dto.TableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Message: err.Error(),
		})
		return
	}

	if !domain.ValidTableStatus(req.Status) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Bad request",
			Message: "unknown table status " + req.Status,
		})
		return
	}

	if err := h.tableService.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		writeRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Table status updated"})
}

// Delete deletes a table
func (h *TableHandler) Delete(c *gin.Context) {
	if err := h.tableService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Table deleted"})
}

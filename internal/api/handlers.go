package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mehrbod2002/brokerdb/internal/service"
)

type BootstrapHandler struct {
	bootstrapService service.BootstrapService
}

func NewBootstrapHandler(bootstrapService service.BootstrapService) *BootstrapHandler {
	return &BootstrapHandler{bootstrapService: bootstrapService}
}

func (h *BootstrapHandler) GetPlan(c *gin.Context) {
	doc, err := h.bootstrapService.Plan().Describe()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render plan"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Verify godoc
// @Summary Compare the live database with the plan
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "in_sync and drift report"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 500 {object} map[string]string "Failed to verify database"
// @Router /api/v1/admin/verify [get]
func (h *BootstrapHandler) Verify(c *gin.Context) {
	report, err := h.bootstrapService.Verify(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify database"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_sync": report.InSync(), "report": report})
}

type SymbolHandler struct {
	symbolService service.SymbolService
}

func NewSymbolHandler(symbolService service.SymbolService) *SymbolHandler {
	return &SymbolHandler{symbolService: symbolService}
}

func (h *SymbolHandler) GetAllSymbols(c *gin.Context) {
	symbols, err := h.symbolService.GetAllSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve symbols"})
		return
	}
	c.JSON(http.StatusOK, symbols)
}

func (h *SymbolHandler) GetSymbol(c *gin.Context) {
	symbol, err := h.symbolService.GetSymbol(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve symbol"})
		return
	}
	if symbol == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Symbol not found"})
		return
	}
	c.JSON(http.StatusOK, symbol)
}

type LogHandler struct {
	logService service.LogService
}

func NewLogHandler(logService service.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// GetAllLogs godoc
// @Summary List recorded bootstrap steps, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size, at most 500" default(50)
// @Success 200 {array} models.BootstrapLog
// @Failure 400 {object} map[string]string "Invalid page or limit"
// @Router /api/v1/admin/runs [get]
func (h *LogHandler) GetAllLogs(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	logs, err := h.logService.GetAllLogs(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *LogHandler) GetRunLogs(c *gin.Context) {
	logs, err := h.logService.GetLogsByRunID(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}

package handler

import (
	"net/http"
	"strconv"

	"access-log-service/internal/service"
	"access-log-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService *service.LogService
}

func NewLogHandler(logService *service.LogService) *LogHandler {
	return &LogHandler{
		logService: logService,
	}
}

type CreateLogRequest struct {
	Username string `json:"username" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type UpdateLogRequest struct {
	Action string `json:"action" binding:"required"`
}

// GetLogs returns every log entry, most recent first
func (h *LogHandler) GetLogs(c *gin.Context) {
	logs, err := h.logService.List(c.Request.Context())
	if err != nil {
		utils.ErrorFromErr(c, err, errorStatuses...)
		return
	}

	c.JSON(http.StatusOK, logs)
}

// CreateLog records a new log entry
func (h *LogHandler) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "username and action are required")
		return
	}

	entry, err := h.logService.Create(c.Request.Context(), req.Username, req.Action)
	if err != nil {
		utils.ErrorFromErr(c, err, errorStatuses...)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Log created successfully",
		"id":      entry.ID,
	})
}

// UpdateLog replaces the action of a log entry
func (h *LogHandler) UpdateLog(c *gin.Context) {
	id, ok := parseLogID(c)
	if !ok {
		return
	}

	var req UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "action is required")
		return
	}

	if _, err := h.logService.Update(c.Request.Context(), id, req.Action); err != nil {
		utils.ErrorFromErr(c, err, errorStatuses...)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Log updated successfully")
}

// DeleteLog removes a log entry
func (h *LogHandler) DeleteLog(c *gin.Context) {
	id, ok := parseLogID(c)
	if !ok {
		return
	}

	if err := h.logService.Delete(c.Request.Context(), id); err != nil {
		utils.ErrorFromErr(c, err, errorStatuses...)
		return
	}

	utils.MessageResponse(c, http.StatusOK, "Log deleted successfully")
}

func parseLogID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid log ID")
		return 0, false
	}
	return uint(id), true
}

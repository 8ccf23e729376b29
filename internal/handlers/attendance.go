package handlers

import (
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/models"
	"github.com/Ani07-05/brickdash/internal/services"
	"github.com/gin-gonic/gin"
)

// AttendanceHandler coordinates daily attendance HTTP handlers.
type AttendanceHandler struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *services.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
	}
}

// parseDate reads a YYYY-MM-DD date query parameter, defaulting to
// today when absent.
func parseDate(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

// Registry returns one entry per active employee for a date, with any
// saved attendance attached.
func (h *AttendanceHandler) Registry(c *gin.Context) {
	date, ok := parseDate(c)
	if !ok {
		return
	}

	entries, err := h.attendanceService.Registry(date)
	if err != nil {
		apierrors.InternalError(c, "Failed to load attendance registry")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    services.NormalizeDate(date).Format("2006-01-02"),
		"entries": entries,
	})
}

// Save upserts attendance records for a date.
func (h *AttendanceHandler) Save(c *gin.Context) {
	type SaveRequest struct {
		Date  string               `json:"date"`
		Marks []services.MarkInput `json:"marks" binding:"required"`
	}

	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	if err := h.attendanceService.Save(date, req.Marks); err != nil {
		apierrors.InternalError(c, "Failed to save attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance saved successfully",
		"count":   len(req.Marks),
	})
}

// MarkAll sets every active employee's status for a date in one call.
func (h *AttendanceHandler) MarkAll(c *gin.Context) {
	type MarkAllRequest struct {
		Date   string `json:"date"`
		Status string `json:"status"`
	}

	var req MarkAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	if err := h.attendanceService.MarkAll(date, models.AttendanceStatus(req.Status)); err != nil {
		apierrors.InternalError(c, "Failed to mark attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance marked successfully",
	})
}

// Records returns attendance records for a date, or recent records when
// no date is given.
func (h *AttendanceHandler) Records(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var date time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	records, err := h.attendanceService.Records(date, limit)
	if err != nil {
		apierrors.InternalError(c, "Failed to list attendance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

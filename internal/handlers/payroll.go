package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/services"
	"github.com/Ani07-05/brickdash/internal/utils"
	"github.com/gin-gonic/gin"
)

// PayrollHandler coordinates monthly payroll HTTP handlers.
type PayrollHandler struct {
	payrollService *services.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(payrollService *services.PayrollService) *PayrollHandler {
	return &PayrollHandler{
		payrollService: payrollService,
	}
}

// parsePeriod reads month and year query parameters, defaulting to the
// current period.
func parsePeriod(c *gin.Context) (int, int) {
	now := time.Now()
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	return month, year
}

// Generate creates salary records for active employees missing one for
// the period. Re-running a period never duplicates records.
func (h *PayrollHandler) Generate(c *gin.Context) {
	type GenerateRequest struct {
		Month int `json:"month" binding:"required,min=1,max=12"`
		Year  int `json:"year" binding:"required,gt=0"`
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.payrollService.Generate(req.Month, req.Year)
	if err != nil {
		respondPayrollError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payroll generated successfully",
		"created": created,
	})
}

// Report returns the period's salary records with totals.
func (h *PayrollHandler) Report(c *gin.Context) {
	month, year := parsePeriod(c)

	summary, err := h.payrollService.Report(month, year)
	if err != nil {
		respondPayrollError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// MarkPaid flags one salary record as paid.
func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	recordID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid salary record ID")
		return
	}

	record, err := h.payrollService.MarkPaid(recordID)
	if err != nil {
		respondPayrollError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ExportCSV streams the period's salary records as a CSV download.
func (h *PayrollHandler) ExportCSV(c *gin.Context) {
	month, year := parsePeriod(c)

	summary, err := h.payrollService.Report(month, year)
	if err != nil {
		respondPayrollError(c, err)
		return
	}

	filename := fmt.Sprintf("payroll_%04d_%02d.csv", year, month)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := utils.WriteSalaryCSV(c.Writer, summary.Records); err != nil {
		apierrors.InternalError(c, "Failed to write CSV")
		return
	}
}

func respondPayrollError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidPeriod):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrSalaryRecordNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

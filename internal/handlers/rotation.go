package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Ani07-05/brickdash/internal/dto"
	apierrors "github.com/Ani07-05/brickdash/internal/errors"
	"github.com/Ani07-05/brickdash/internal/services"
	"github.com/gin-gonic/gin"
)

// RotationHandler exposes the task rotation suggestion engine.
type RotationHandler struct {
	rotationService *services.RotationService
}

// NewRotationHandler creates a new RotationHandler.
func NewRotationHandler(rotationService *services.RotationService) *RotationHandler {
	return &RotationHandler{
		rotationService: rotationService,
	}
}

// Suggest returns the employee currently favored for a category, plus
// runners-up. Reading a suggestion changes nothing; only logging an
// assignment does.
func (h *RotationHandler) Suggest(c *gin.Context) {
	category := c.Query("type")

	suggestion, err := h.rotationService.Suggest(category, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownCategory):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrNoEligibleCandidates):
			apierrors.NoEligibleCandidate(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to compute suggestion")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSuggestionDTO(*suggestion))
}

// LogAssignment appends one event to the assignment ledger.
func (h *RotationHandler) LogAssignment(c *gin.Context) {
	type LogRequest struct {
		EmployeeID uint64 `json:"employee_id" binding:"required"`
		Category   string `json:"category"`
	}

	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.rotationService.LogAssignment(req.EmployeeID, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownCategory):
			apierrors.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrEmployeeNotFound):
			apierrors.NotFound(c, err.Error())
		default:
			apierrors.InternalError(c, "Failed to log assignment")
		}
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Matrix returns the employee-by-category count table for the trailing
// window, with the favored employee per category.
func (h *RotationHandler) Matrix(c *gin.Context) {
	matrix, err := h.rotationService.BuildMatrix(time.Now())
	if err != nil {
		apierrors.InternalError(c, "Failed to build rotation matrix")
		return
	}

	c.JSON(http.StatusOK, dto.ToMatrixDTO(*matrix))
}

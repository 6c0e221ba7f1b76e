package delivery

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/usecase"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUpdateBodyBytes caps a summary update document.
const maxUpdateBodyBytes = 1 << 20

// SummaryHandler handles summary-related HTTP requests
type SummaryHandler struct {
	summaryUsecase usecase.SummaryUsecase
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryUsecase usecase.SummaryUsecase) *SummaryHandler {
	return &SummaryHandler{
		summaryUsecase: summaryUsecase,
	}
}

// GenerateSummary summarizes an exchange for the authenticated user
// POST /api/summaries/:id/generate (id is the exchange ID)
func (h *SummaryHandler) GenerateSummary(c *gin.Context) {
	userID := c.GetString("userID")
	exchangeID := c.Param("id")

	summary, err := h.summaryUsecase.GenerateSummary(c.Request.Context(), userID, exchangeID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

// GetSummaries returns every summary of the authenticated user
// GET /api/summaries
func (h *SummaryHandler) GetSummaries(c *gin.Context) {
	userID := c.GetString("userID")

	summaries, err := h.summaryUsecase.ListSummaries(c.Request.Context(), userID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// UpdateSummary merges a partial summary document into a stored summary
// PUT /api/summaries/:id
func (h *SummaryHandler) UpdateSummary(c *gin.Context) {
	userID := c.GetString("userID")
	summaryID := c.Param("id")

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxUpdateBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("summary document exceeds %d bytes", tooLarge.Limit)})
			return
		}
		apperror.Respond(c, fmt.Errorf("failed to read body: %v: %w", err, apperror.ErrInvalidInput))
		return
	}

	summary, err := h.summaryUsecase.UpdateSummary(c.Request.Context(), userID, summaryID, body)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

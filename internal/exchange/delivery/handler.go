package delivery

import (
	"context"
	"net/http"

	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/dto"
	"github.com/aladdin-code/addvocate-meeting-summeriser/internal/exchange/usecase"
	summarydomain "github.com/aladdin-code/addvocate-meeting-summeriser/internal/summary/domain"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/apperror"
	"github.com/aladdin-code/addvocate-meeting-summeriser/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// SummaryLister loads the caller's summaries of one exchange
type SummaryLister interface {
	ListForExchange(ctx context.Context, userID, exchangeID string) ([]*summarydomain.View, error)
}

// ExchangeHandler handles exchange-related HTTP requests
type ExchangeHandler struct {
	exchangeUsecase usecase.ExchangeUsecase
	summaries       SummaryLister
	defaultLimit    int
	maxLimit        int
}

// NewExchangeHandler creates a new ExchangeHandler
func NewExchangeHandler(exchangeUsecase usecase.ExchangeUsecase, summaries SummaryLister, defaultLimit, maxLimit int) *ExchangeHandler {
	return &ExchangeHandler{
		exchangeUsecase: exchangeUsecase,
		summaries:       summaries,
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
	}
}

// ExchangeDetail is an exchange with its messages and the caller's summaries
type ExchangeDetail struct {
	*domain.Exchange
	Messages  []domain.Message      `json:"messages"`
	Summaries []*summarydomain.View `json:"summaries"`
}

// CreateExchange stores a new exchange from recorder segments
// POST /api/exchanges
func (h *ExchangeHandler) CreateExchange(c *gin.Context) {
	var req dto.CreateExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exchange, err := h.exchangeUsecase.CreateExchange(c.Request.Context(), req.Title, req.ToSegments())
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, exchange)
}

// GetExchanges returns one page of exchanges
// GET /api/exchanges?page=1&limit=10
func (h *ExchangeHandler) GetExchanges(c *gin.Context) {
	req := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.defaultLimit, h.maxLimit)

	page, err := h.exchangeUsecase.ListExchanges(c.Request.Context(), req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// SearchExchanges fuzzy-searches exchange titles and speakers
// GET /api/exchanges/search?q=budget&page=1&limit=10
func (h *ExchangeHandler) SearchExchanges(c *gin.Context) {
	req := pagination.FromQuery(c.Query("page"), c.Query("limit"), h.defaultLimit, h.maxLimit)

	page, err := h.exchangeUsecase.SearchExchanges(c.Request.Context(), c.Query("q"), req)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetExchangeByID returns an exchange with its messages and the caller's summaries
// GET /api/exchanges/:id
func (h *ExchangeHandler) GetExchangeByID(c *gin.Context) {
	userID := c.GetString("userID")
	exchangeID := c.Param("id")

	exchange, err := h.exchangeUsecase.GetExchange(c.Request.Context(), exchangeID)
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	summaries := []*summarydomain.View{}
	if h.summaries != nil {
		summaries, err = h.summaries.ListForExchange(c.Request.Context(), userID, exchangeID)
		if err != nil {
			apperror.Respond(c, err)
			return
		}
	}

	messages := exchange.Messages
	if messages == nil {
		messages = []domain.Message{}
	}

	c.JSON(http.StatusOK, ExchangeDetail{Exchange: exchange, Messages: messages, Summaries: summaries})
}

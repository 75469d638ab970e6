package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohanjsheth/Paper-Trader/internal/middleware"
	"github.com/rohanjsheth/Paper-Trader/internal/quote"
	"github.com/rohanjsheth/Paper-Trader/internal/services"
)

// APIHandler serves the token-authenticated JSON surface mirroring the
// browser pages.
type APIHandler struct {
	portfolioService *services.PortfolioService
	quotes           quote.Source
}

func NewAPIHandler(portfolioService *services.PortfolioService, quotes quote.Source) *APIHandler {
	return &APIHandler{
		portfolioService: portfolioService,
		quotes:           quotes,
	}
}

// GetPortfolio godoc
// Returns the authenticated user's holdings, cash, and totals.
func (h *APIHandler) GetPortfolio(c *gin.Context) {
	summary, err := h.portfolioService.Portfolio(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetHistory godoc
// Returns the authenticated user's ledger in insertion order.
func (h *APIHandler) GetHistory(c *gin.Context) {
	entries, err := h.portfolioService.History(middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetQuote godoc
// Returns the live quote for one symbol.
func (h *APIHandler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	q, err := h.quotes.Lookup(symbol)
	if err != nil {
		if errors.Is(err, quote.ErrTickerNotFound) || errors.Is(err, quote.ErrEmptySymbol) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "ticker not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, q)
}

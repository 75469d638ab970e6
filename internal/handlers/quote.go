package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohanjsheth/Paper-Trader/internal/quote"
)

type QuoteHandler struct {
	quotes quote.Source
}

func NewQuoteHandler(quotes quote.Source) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

type QuoteForm struct {
	Ticker string `form:"ticker"`
}

func (h *QuoteHandler) ShowQuote(c *gin.Context) {
	c.HTML(http.StatusOK, "quote.html", gin.H{})
}

func (h *QuoteHandler) Quote(c *gin.Context) {
	var form QuoteForm
	if err := c.ShouldBind(&form); err != nil || form.Ticker == "" {
		apology(c, http.StatusBadRequest, "please enter a ticker symbol to search")
		return
	}

	q, err := h.quotes.Lookup(form.Ticker)
	if err != nil {
		if errors.Is(err, quote.ErrTickerNotFound) || errors.Is(err, quote.ErrEmptySymbol) {
			apology(c, http.StatusBadRequest, "sorry, could not find ticker")
			return
		}
		apology(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, "quote_result.html", gin.H{
		"Name":   q.Name,
		"Symbol": q.Symbol,
		"Price":  q.Price.StringFixed(2),
	})
}

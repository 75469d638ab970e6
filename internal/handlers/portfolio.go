package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rohanjsheth/Paper-Trader/internal/middleware"
	"github.com/rohanjsheth/Paper-Trader/internal/quote"
	"github.com/rohanjsheth/Paper-Trader/internal/services"
)

type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

func NewPortfolioHandler(portfolioService *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

type TradeForm struct {
	Ticker string `form:"ticker"`
	Shares string `form:"shares"`
}

// Index shows current holdings priced live, plus cash and totals.
func (h *PortfolioHandler) Index(c *gin.Context) {
	summary, err := h.portfolioService.Portfolio(middleware.UserID(c))
	if err != nil {
		apology(c, http.StatusInternalServerError, err.Error())
		return
	}

	session := sessions.Default(c)
	flashes := session.Flashes()
	session.Save()

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Positions": summary.Positions,
		"Cash":      summary.Cash.StringFixed(2),
		"Invested":  summary.Invested.StringFixed(2),
		"Total":     summary.Total.StringFixed(2),
		"Flashes":   flashes,
	})
}

func (h *PortfolioHandler) ShowBuy(c *gin.Context) {
	c.HTML(http.StatusOK, "buy.html", gin.H{})
}

func (h *PortfolioHandler) Buy(c *gin.Context) {
	var form TradeForm
	if err := c.ShouldBind(&form); err != nil {
		apology(c, http.StatusBadRequest, "must enter a ticker and a number of shares")
		return
	}

	shares, err := strconv.ParseInt(form.Shares, 10, 64)
	if err != nil {
		apology(c, http.StatusBadRequest, "must enter a number of shares")
		return
	}

	receipt, err := h.portfolioService.Buy(middleware.UserID(c), form.Ticker, shares)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrTickerNotFound), errors.Is(err, quote.ErrEmptySymbol):
			apology(c, http.StatusBadRequest, fmt.Sprintf("could not find ticker for: %s", form.Ticker))
		case errors.Is(err, services.ErrInvalidShares):
			apology(c, http.StatusBadRequest, "invalid number of shares")
		case errors.Is(err, services.ErrInsufficientFunds):
			apology(c, http.StatusBadRequest, "sorry, this account has insufficient funds to make this purchase")
		default:
			apology(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	session := sessions.Default(c)
	session.AddFlash(fmt.Sprintf("You have successfully made a purchase of %d shares of %s for $%s",
		receipt.Shares, receipt.Ticker, receipt.Total.StringFixed(2)))
	session.Save()

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PortfolioHandler) ShowSell(c *gin.Context) {
	c.HTML(http.StatusOK, "sell.html", gin.H{})
}

func (h *PortfolioHandler) Sell(c *gin.Context) {
	var form TradeForm
	if err := c.ShouldBind(&form); err != nil {
		apology(c, http.StatusBadRequest, "must enter a ticker and a number of shares")
		return
	}

	shares, err := strconv.ParseInt(form.Shares, 10, 64)
	if err != nil {
		apology(c, http.StatusBadRequest, "must enter a number of shares")
		return
	}

	receipt, err := h.portfolioService.Sell(middleware.UserID(c), form.Ticker, shares)
	if err != nil {
		switch {
		case errors.Is(err, quote.ErrTickerNotFound), errors.Is(err, quote.ErrEmptySymbol):
			apology(c, http.StatusBadRequest, fmt.Sprintf("could not find ticker for: %s", form.Ticker))
		case errors.Is(err, services.ErrInvalidShares):
			apology(c, http.StatusBadRequest, "invalid number of shares")
		case errors.Is(err, services.ErrNoShares):
			apology(c, http.StatusBadRequest, fmt.Sprintf("you do not have any shares of %s", form.Ticker))
		case errors.Is(err, services.ErrInsufficientShares):
			apology(c, http.StatusBadRequest, "you cannot sell more shares than you have")
		default:
			apology(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	session := sessions.Default(c)
	session.AddFlash(fmt.Sprintf("You have successfully made a sale of %d shares of %s for $%s",
		receipt.Shares, receipt.Ticker, receipt.Total.StringFixed(2)))
	session.Save()

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *PortfolioHandler) History(c *gin.Context) {
	entries, err := h.portfolioService.History(middleware.UserID(c))
	if err != nil {
		apology(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"Entries": entries,
	})
}

package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrTickerNotFound = errors.New("ticker not found")
	ErrEmptySymbol    = errors.New("empty symbol")
)

// Quote is the price service's answer for one ticker.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Source resolves a ticker to a live quote. The HTTP client implements it
// for production; tests substitute a canned source.
type Source interface {
	Lookup(symbol string) (*Quote, error)
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type quoteResponse struct {
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"companyName"`
	LatestPrice decimal.Decimal `json:"latestPrice"`
}

func (c *Client) Lookup(symbol string) (*Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	url := fmt.Sprintf("%s/stock/%s/quote?token=%s", c.baseURL, symbol, c.apiKey)

	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrTickerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote service returned status %d", resp.StatusCode)
	}

	var result quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse quote: %w", err)
	}

	if result.Symbol == "" {
		return nil, ErrTickerNotFound
	}

	return &Quote{
		Symbol: result.Symbol,
		Name:   result.CompanyName,
		Price:  result.LatestPrice,
	}, nil
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohanjsheth/Paper-Trader/internal/repository"
	"github.com/shopspring/decimal"
)

type AdminHandler struct {
	userRepo     *repository.UserRepository
	purchaseRepo *repository.PurchaseRepository
}

func NewAdminHandler(userRepo *repository.UserRepository, purchaseRepo *repository.PurchaseRepository) *AdminHandler {
	return &AdminHandler{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
	}
}

type UserListResponse struct {
	Username  string          `json:"username"`
	Cash      decimal.Decimal `json:"cash"`
	CreatedAt string          `json:"created_at"`
}

type TradeListResponse struct {
	ID         uint            `json:"id"`
	Username   string          `json:"username"`
	Ticker     string          `json:"ticker"`
	Shares     int64           `json:"shares"`
	SharePrice decimal.Decimal `json:"share_price"`
	CreatedAt  string          `json:"created_at"`
}

// ListUsers godoc
// Returns every account with its cash balance. Admin only.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := make([]UserListResponse, len(users))
	for i, user := range users {
		response[i] = UserListResponse{
			Username:  user.Username,
			Cash:      user.Cash,
			CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	c.JSON(http.StatusOK, response)
}

// ListTrades godoc
// Returns the full ledger across all users. Admin only.
func (h *AdminHandler) ListTrades(c *gin.Context) {
	purchases, err := h.purchaseRepo.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	response := make([]TradeListResponse, len(purchases))
	for i, p := range purchases {
		response[i] = TradeListResponse{
			ID:         p.ID,
			Username:   p.User.Username,
			Ticker:     p.Ticker,
			Shares:     p.Shares,
			SharePrice: p.SharePrice,
			CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	c.JSON(http.StatusOK, response)
}

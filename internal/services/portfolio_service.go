package services

import (
	"errors"

	"github.com/rohanjsheth/Paper-Trader/internal/models"
	"github.com/rohanjsheth/Paper-Trader/internal/quote"
	"github.com/rohanjsheth/Paper-Trader/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidShares      = errors.New("invalid number of shares")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoShares           = errors.New("no shares held")
	ErrInsufficientShares = errors.New("cannot sell more shares than held")
)

type PortfolioService struct {
	userRepo     *repository.UserRepository
	purchaseRepo *repository.PurchaseRepository
	quotes       quote.Source
	db           *gorm.DB
}

func NewPortfolioService(userRepo *repository.UserRepository, purchaseRepo *repository.PurchaseRepository, quotes quote.Source, db *gorm.DB) *PortfolioService {
	return &PortfolioService{
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		quotes:       quotes,
		db:           db,
	}
}

// Position is one displayed holding, priced at the live quote.
type Position struct {
	Ticker string          `json:"ticker"`
	Name   string          `json:"name"`
	Shares int64           `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

type Summary struct {
	Positions []Position      `json:"positions"`
	Cash      decimal.Decimal `json:"cash"`
	Invested  decimal.Decimal `json:"invested"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt reports a completed buy or sell back to the handler.
type Receipt struct {
	Ticker string
	Shares int64
	Total  decimal.Decimal
}

// HistoryEntry is one ledger row prepared for display: the price is shown
// as its absolute value and NetEffect is the cash movement it caused
// (negative for buys, positive for sells).
type HistoryEntry struct {
	Ticker     string          `json:"ticker"`
	Shares     int64           `json:"shares"`
	SharePrice decimal.Decimal `json:"share_price"`
	NetEffect  decimal.Decimal `json:"net_effect"`
	When       string          `json:"when"`
}

// Portfolio aggregates the user's ledger per ticker, reprices each held
// position at the live quote, and totals cash plus invested value.
// Positions whose net share count has dropped below 1 are hidden.
func (s *PortfolioService) Portfolio(userID uint) (*Summary, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	holdings, err := s.purchaseRepo.HoldingsByUser(userID)
	if err != nil {
		return nil, err
	}

	positions := []Position{}
	invested := decimal.Zero
	for _, h := range holdings {
		if h.Shares < 1 {
			continue
		}

		q, err := s.quotes.Lookup(h.Ticker)
		if err != nil {
			return nil, err
		}

		value := q.Price.Mul(decimal.NewFromInt(h.Shares)).Round(2)
		invested = invested.Add(value)
		positions = append(positions, Position{
			Ticker: h.Ticker,
			Name:   q.Name,
			Shares: h.Shares,
			Price:  q.Price,
			Value:  value,
		})
	}

	return &Summary{
		Positions: positions,
		Cash:      user.Cash,
		Invested:  invested,
		Total:     user.Cash.Add(invested),
	}, nil
}

// Buy resolves the ticker, then executes the purchase as one database
// transaction: the user row is locked, the balance check, ledger insert,
// and cash debit commit together or not at all.
func (s *PortfolioService) Buy(userID uint, symbol string, shares int64) (*Receipt, error) {
	q, err := s.quotes.Lookup(symbol)
	if err != nil {
		return nil, err
	}

	if shares < 1 {
		return nil, ErrInvalidShares
	}

	cost := q.Price.Mul(decimal.NewFromInt(shares))

	err = s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByIDForUpdate(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if cost.GreaterThan(user.Cash) {
			return ErrInsufficientFunds
		}

		purchase := &models.Purchase{
			UserID:     userID,
			Ticker:     q.Symbol,
			Shares:     shares,
			SharePrice: q.Price,
		}
		if err := s.purchaseRepo.Create(tx, purchase); err != nil {
			return err
		}

		user.Cash = user.Cash.Sub(cost)
		return s.userRepo.UpdateInTx(tx, user)
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{Ticker: q.Symbol, Shares: shares, Total: cost}, nil
}

// Sell mirrors Buy: the holdings check runs inside the same transaction as
// the ledger insert and cash credit, against the locked user row. The sale
// is recorded with negative shares and the positive execution price.
func (s *PortfolioService) Sell(userID uint, symbol string, shares int64) (*Receipt, error) {
	q, err := s.quotes.Lookup(symbol)
	if err != nil {
		return nil, err
	}

	if shares < 1 {
		return nil, ErrInvalidShares
	}

	proceeds := q.Price.Mul(decimal.NewFromInt(shares))

	err = s.db.Transaction(func(tx *gorm.DB) error {
		user, err := s.userRepo.FindByIDForUpdate(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		held, err := s.purchaseRepo.SharesHeld(tx, userID, q.Symbol)
		if err != nil {
			return err
		}
		if held == 0 {
			return ErrNoShares
		}
		if held < shares {
			return ErrInsufficientShares
		}

		purchase := &models.Purchase{
			UserID:     userID,
			Ticker:     q.Symbol,
			Shares:     -shares,
			SharePrice: q.Price,
		}
		if err := s.purchaseRepo.Create(tx, purchase); err != nil {
			return err
		}

		user.Cash = user.Cash.Add(proceeds)
		return s.userRepo.UpdateInTx(tx, user)
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{Ticker: q.Symbol, Shares: shares, Total: proceeds}, nil
}

// History returns the user's ledger in insertion order.
func (s *PortfolioService) History(userID uint) ([]HistoryEntry, error) {
	purchases, err := s.purchaseRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, len(purchases))
	for i, p := range purchases {
		netEffect := p.SharePrice.Mul(decimal.NewFromInt(p.Shares)).Neg().Round(2)
		entries[i] = HistoryEntry{
			Ticker:     p.Ticker,
			Shares:     p.Shares,
			SharePrice: p.SharePrice.Abs(),
			NetEffect:  netEffect,
			When:       p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return entries, nil
}

package repository

import (
	"github.com/rohanjsheth/Paper-Trader/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

// Holding is one row of the per-ticker aggregation: the net share count
// and the average execution price across all of a user's ledger entries.
type Holding struct {
	Ticker   string
	Shares   int64
	AvgPrice decimal.Decimal
}

func (r *PurchaseRepository) Create(tx *gorm.DB, purchase *models.Purchase) error {
	return tx.Create(purchase).Error
}

func (r *PurchaseRepository) FindByUser(userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&purchases).Error
	return purchases, err
}

func (r *PurchaseRepository) FindAll() ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.
		Preload("User").
		Order("id ASC").
		Find(&purchases).Error
	return purchases, err
}

func (r *PurchaseRepository) HoldingsByUser(userID uint) ([]Holding, error) {
	var holdings []Holding
	err := r.db.Model(&models.Purchase{}).
		Select("ticker, SUM(shares) AS shares, AVG(share_price) AS avg_price").
		Where("user_id = ?", userID).
		Group("ticker").
		Order("ticker ASC").
		Scan(&holdings).Error
	return holdings, err
}

// SharesHeld sums the signed share counts for one (user, ticker) pair.
// Runs on tx so a sell can validate against a locked, consistent view.
func (r *PurchaseRepository) SharesHeld(tx *gorm.DB, userID uint, ticker string) (int64, error) {
	var held int64
	err := tx.Model(&models.Purchase{}).
		Select("COALESCE(SUM(shares), 0)").
		Where("user_id = ? AND ticker = ?", userID, ticker).
		Scan(&held).Error
	return held, err
}

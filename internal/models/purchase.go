package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Purchase is one ledger entry: positive shares record a buy, negative
// shares record a sell. Rows are never updated or deleted, so a user's
// holding in a ticker is the sum of shares over their rows for it.
type Purchase struct {
	gorm.Model
	UserID     uint            `gorm:"not null;index" json:"user_id"`
	User       User            `gorm:"foreignKey:UserID" json:"-"`
	Ticker     string          `gorm:"not null;index" json:"ticker"`
	Shares     int64           `gorm:"not null" json:"shares"`
	SharePrice decimal.Decimal `gorm:"type:numeric;not null" json:"share_price"`
}

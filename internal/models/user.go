package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string          `gorm:"uniqueIndex;not null" json:"username"`
	Hash      string          `gorm:"not null" json:"-"`
	Cash      decimal.Decimal `gorm:"type:numeric;not null" json:"cash"`
	Purchases []Purchase      `gorm:"foreignKey:UserID" json:"-"`
	APITokens []APIToken      `gorm:"foreignKey:UserID" json:"-"`
}

package models

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fabioramos-02/prisma-database/config"
)

var ErrAccountNotFound = errors.New("account.not_found")

type Account struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	UserID    int64           `json:"user_id" gorm:"index"`
	Balance   decimal.Decimal `json:"balance" gorm:"type:decimal(18,2);default:0.0" validate:"ValidateBalance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (a Account) ValidateBalance(Balance decimal.Decimal) bool {
	return Balance.GreaterThanOrEqual(decimal.Zero)
}

func (a *Account) User() *User {
	var user *User

	config.DataBase.First(&user, "id = ?", a.UserID)

	return user
}

// SufficientFunds reports whether the stored balance covers a debit of amount.
func (a *Account) SufficientFunds(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

func (a *Account) PlusFunds(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.New("Cannot add funds (account id: " + strconv.FormatInt(a.ID, 10) + ", amount: " + amount.String() + ", balance: " + a.Balance.String() + ").")
	}

	a.Balance = a.Balance.Add(amount)
	return tx.Save(a).Error
}

func (a *Account) SubFunds(tx *gorm.DB, amount decimal.Decimal) error {
	if !amount.IsPositive() || !a.SufficientFunds(amount) {
		return ErrInsufficientBalance
	}

	a.Balance = a.Balance.Sub(amount)
	return tx.Save(a).Error
}

// ApplyAdjustment adds a signed delta to the balance without the funds guard.
// Reversals (delete, update) may legitimately take the balance through values
// a fresh debit would be rejected for.
func (a *Account) ApplyAdjustment(tx *gorm.DB, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}

	a.Balance = a.Balance.Add(delta)
	return tx.Save(a).Error
}

func (a *Account) CacheKey() string {
	return "financas:accounts:" + strconv.FormatInt(a.UserID, 10)
}

func (a *Account) InvalidateCache() {
	if config.Redis == nil {
		return
	}

	if err := config.Redis.DeleteKey(a.CacheKey()); err != nil {
		config.Logger.Warnf("account cache invalidation failed: %v", err)
	}
}

type AccountJSON struct {
	ID      int64           `json:"id"`
	UserID  int64           `json:"user_id"`
	Balance decimal.Decimal `json:"balance"`
}

func (a *Account) ToJSON() AccountJSON {
	return AccountJSON{
		ID:      a.ID,
		UserID:  a.UserID,
		Balance: a.Balance,
	}
}

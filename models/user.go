package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fabioramos-02/prisma-database/config"
)

var (
	ErrUserNotFound        = errors.New("user.not_found")
	ErrUserHasTransactions = errors.New("user.has_transactions")
)

type User struct {
	ID        int64       `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" validate:"required"`
	Email     string      `json:"email" gorm:"uniqueIndex" validate:"required"`
	Config    *UserConfig `json:"config,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// UserConfig is the nested configuration profile carried by every user.
type UserConfig struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	UserID        int64           `json:"user_id" gorm:"uniqueIndex"`
	Currency      string          `json:"currency" gorm:"default:BRL"`
	Locale        string          `json:"locale" gorm:"default:pt-BR"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget" gorm:"type:decimal(18,2);default:0.0"`
}

func (UserConfig) TableName() string {
	return "user_configs"
}

func (u *User) GetAccount() *Account {
	var account *Account

	config.DataBase.FirstOrCreate(&account, Account{UserID: u.ID})

	return account
}

// CreateUser persists the user, its configuration profile and an empty
// account in one database transaction.
func CreateUser(user *User) error {
	if user.Config == nil {
		user.Config = &UserConfig{}
	}

	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		// gorm creates the nested config through the has-one association.
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		account := &Account{UserID: user.ID, Balance: decimal.Zero}

		return tx.Create(account).Error
	})
}

// DeleteUser removes the user, its configuration and its accounts. An account
// that is still referenced by transactions blocks the delete.
func DeleteUser(id int64) error {
	var user *User

	result := config.DataBase.First(&user, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}

	var count int64
	config.DataBase.Model(&Transaction{}).Where("user_id = ?", id).Count(&count)
	if count > 0 {
		return ErrUserHasTransactions
	}

	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&Account{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&UserConfig{}).Error; err != nil {
			return err
		}

		return tx.Delete(&User{}, "id = ?", id).Error
	})
}

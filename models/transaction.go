package models

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fabioramos-02/prisma-database/config"
)

var (
	ErrTransactionNotFound = errors.New("transaction.not_found")
	ErrInsufficientBalance = errors.New("account.insufficient_balance")
)

type TransactionKind string

const (
	KindEntrada TransactionKind = "ENTRADA"
	KindSaida   TransactionKind = "SAIDA"
)

func (k TransactionKind) Valid() bool {
	return k == KindEntrada || k == KindSaida
}

type Transaction struct {
	ID           int64           `json:"id" gorm:"primaryKey"`
	UUID         uuid.UUID       `json:"uuid" gorm:"default:gen_random_uuid()"`
	AccountID    int64           `json:"account_id" gorm:"index" validate:"required"`
	UserID       int64           `json:"user_id" gorm:"index"`
	Kind         TransactionKind `json:"kind" validate:"KindValidator"`
	Amount       decimal.Decimal `json:"amount" gorm:"type:decimal(18,2)" validate:"AmountValidator"`
	Description  string          `json:"description" validate:"required"`
	TransactedAt time.Time       `json:"transacted_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (t Transaction) KindValidator(kind TransactionKind) bool {
	return kind.Valid()
}

func (t Transaction) AmountValidator(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// PostingEffect is the signed balance delta of applying a transaction:
// positive for ENTRADA, negative for SAIDA.
func PostingEffect(kind TransactionKind, amount decimal.Decimal) decimal.Decimal {
	if kind == KindEntrada {
		return amount
	}

	return amount.Neg()
}

func (t *Transaction) Effect() decimal.Decimal {
	return PostingEffect(t.Kind, t.Amount)
}

// ReversalEffect undoes a previously applied transaction.
func (t *Transaction) ReversalEffect() decimal.Decimal {
	return t.Effect().Neg()
}

func (t *Transaction) Account() *Account {
	var account *Account

	config.DataBase.First(&account, "id = ?", t.AccountID)

	return account
}

func (t *Transaction) Categories() []Category {
	categories := make([]Category, 0)

	config.DataBase.
		Joins("JOIN transaction_categories ON transaction_categories.category_id = categories.id").
		Where("transaction_categories.transaction_id = ?", t.ID).
		Order("categories.id asc").
		Find(&categories)

	return categories
}

// TransactionChanges carries the partial-update payload of a PUT. A nil or
// invalid field keeps the stored value; CategoryIDs non-nil replaces every
// link, including with an empty set.
type TransactionChanges struct {
	Kind         TransactionKind
	Amount       decimal.NullDecimal
	Description  sql.NullString
	TransactedAt *time.Time
	CategoryIDs  *[]int64
}

func lockTable(tx *gorm.DB, table string) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: table}})
}

// PostTransaction runs the CREATE flow as one atomic unit: lock the account
// row, gate SAIDA on sufficient funds, write the row and its category links,
// move the balance and append the audit entry. Any failure rolls the whole
// unit back.
func PostTransaction(transaction *Transaction, categoryIDs []int64) error {
	var account *Account
	categoryIDs = dedupeIDs(categoryIDs)

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		account_tx := lockTable(tx, "accounts")
		result := account_tx.Where("id = ?", transaction.AccountID).First(&account)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		} else if result.Error != nil {
			return result.Error
		}

		if transaction.Kind == KindSaida && !account.SufficientFunds(transaction.Amount) {
			return ErrInsufficientBalance
		}

		if err := VerifyCategories(tx, categoryIDs); err != nil {
			return err
		}

		transaction.UserID = account.UserID
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		if err := CreateCategoryLinks(tx, transaction.ID, categoryIDs); err != nil {
			return err
		}

		if transaction.Kind == KindEntrada {
			if err := account.PlusFunds(tx, transaction.Amount); err != nil {
				return err
			}
		} else {
			if err := account.SubFunds(tx, transaction.Amount); err != nil {
				return err
			}
		}

		return AuditInsert(tx, transaction)
	})

	if err == nil {
		account.InvalidateCache()
	}

	return err
}

// RepostTransaction runs the UPDATE flow: reverse the old balance effect,
// apply the new one and replace the category links, atomically. The
// sufficient-funds gate for a SAIDA is evaluated reverse-then-check, that is
// against balance + oldEffect rather than the raw stored balance.
func RepostTransaction(id int64, changes *TransactionChanges) (*Transaction, error) {
	var transaction *Transaction
	var account *Account

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		result := lockTable(tx, "transactions").Where("id = ?", id).First(&transaction)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		} else if result.Error != nil {
			return result.Error
		}

		account_tx := lockTable(tx, "accounts")
		result = account_tx.Where("id = ?", transaction.AccountID).First(&account)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		} else if result.Error != nil {
			return result.Error
		}

		oldEffect := transaction.ReversalEffect()

		if changes.Kind.Valid() {
			transaction.Kind = changes.Kind
		}
		if changes.Amount.Valid {
			transaction.Amount = changes.Amount.Decimal
		}
		if changes.Description.Valid {
			transaction.Description = changes.Description.String
		}
		if changes.TransactedAt != nil {
			transaction.TransactedAt = *changes.TransactedAt
		}

		newEffect := transaction.Effect()

		if transaction.Kind == KindSaida {
			basis := account.Balance.Add(oldEffect)
			if basis.LessThan(transaction.Amount) {
				return ErrInsufficientBalance
			}
		}

		if err := tx.Save(transaction).Error; err != nil {
			return err
		}

		if changes.CategoryIDs != nil {
			ids := dedupeIDs(*changes.CategoryIDs)
			if err := VerifyCategories(tx, ids); err != nil {
				return err
			}
			if err := ReplaceCategoryLinks(tx, transaction.ID, ids); err != nil {
				return err
			}
		}

		if err := account.ApplyAdjustment(tx, oldEffect.Add(newEffect)); err != nil {
			return err
		}

		return AuditUpdate(tx, transaction)
	})

	if err != nil {
		return nil, err
	}

	account.InvalidateCache()

	return transaction, nil
}

// ReverseTransaction runs the DELETE flow: drop the links and the row, undo
// the balance effect and append the audit entry, atomically. The audit row
// keeps a snapshot of the description, so it survives the row delete.
func ReverseTransaction(id int64) error {
	var transaction *Transaction
	var account *Account

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		result := lockTable(tx, "transactions").Where("id = ?", id).First(&transaction)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrTransactionNotFound
		} else if result.Error != nil {
			return result.Error
		}

		account_tx := lockTable(tx, "accounts")
		result = account_tx.Where("id = ?", transaction.AccountID).First(&account)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		} else if result.Error != nil {
			return result.Error
		}

		if err := DeleteCategoryLinks(tx, transaction.ID); err != nil {
			return err
		}

		if err := tx.Delete(&Transaction{}, "id = ?", transaction.ID).Error; err != nil {
			return err
		}

		if err := account.ApplyAdjustment(tx, transaction.ReversalEffect()); err != nil {
			return err
		}

		return AuditDelete(tx, transaction)
	})

	if err == nil {
		account.InvalidateCache()
	}

	return err
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out
}

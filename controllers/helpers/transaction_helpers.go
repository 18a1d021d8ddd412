package helpers

import (
	"database/sql"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/fabioramos-02/prisma-database/models"
)

type CreateTransactionParams struct {
	AccountID   int64           `json:"account_id" form:"account_id" validate:"required"`
	Kind        string          `json:"kind" form:"kind" validate:"required|KindValidator"`
	Amount      decimal.Decimal `json:"amount" form:"amount" validate:"required|AmountValidator"`
	Date        string          `json:"date" form:"date" validate:"required|DateValidator"`
	Description string          `json:"description" form:"description" validate:"required"`
	CategoryIDs []int64         `json:"category_ids" form:"category_ids"`
}

func (p CreateTransactionParams) Messages() map[string]string {
	invalid_message := "transaction.missing_or_invalid_{field}"

	return validate.MS{
		"required":        invalid_message,
		"KindValidator":   "transaction.invalid_kind",
		"AmountValidator": "transaction.non_positive_amount",
		"DateValidator":   "transaction.unparseable_date",
	}
}

func (p CreateTransactionParams) KindValidator(kind string) bool {
	return models.TransactionKind(kind).Valid()
}

func (p CreateTransactionParams) AmountValidator(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

func (p CreateTransactionParams) DateValidator(date string) bool {
	_, ok := ParseDate(date)

	return ok
}

func (p CreateTransactionParams) BuildTransaction(err_src *Errors) *models.Transaction {
	transacted_at, _ := ParseDate(p.Date)

	transaction := &models.Transaction{
		AccountID:    p.AccountID,
		Kind:         models.TransactionKind(p.Kind),
		Amount:       p.Amount,
		Description:  p.Description,
		TransactedAt: transacted_at,
	}

	Validate(transaction, err_src)

	return transaction
}

type UpdateTransactionParams struct {
	Kind        string              `json:"kind" form:"kind" validate:"UpdateKindValidator"`
	Amount      decimal.NullDecimal `json:"amount" form:"amount" validate:"UpdateAmountValidator"`
	Date        string              `json:"date" form:"date" validate:"UpdateDateValidator"`
	Description *string             `json:"description" form:"description"`
	CategoryIDs *[]int64            `json:"category_ids" form:"category_ids"`
}

func (p UpdateTransactionParams) Messages() map[string]string {
	return validate.MS{
		"UpdateKindValidator":   "transaction.invalid_kind",
		"UpdateAmountValidator": "transaction.non_positive_amount",
		"UpdateDateValidator":   "transaction.unparseable_date",
	}
}

func (p UpdateTransactionParams) UpdateKindValidator(kind string) bool {
	return len(kind) == 0 || models.TransactionKind(kind).Valid()
}

func (p UpdateTransactionParams) UpdateAmountValidator(amount decimal.NullDecimal) bool {
	if !amount.Valid {
		return true
	}

	return amount.Decimal.IsPositive()
}

func (p UpdateTransactionParams) UpdateDateValidator(date string) bool {
	if len(date) == 0 {
		return true
	}

	_, ok := ParseDate(date)

	return ok
}

// HasChanges enforces the partial-update contract: at least one of amount,
// date or description must be present.
func (p UpdateTransactionParams) HasChanges() bool {
	return p.Amount.Valid || len(p.Date) > 0 || p.Description != nil
}

func (p UpdateTransactionParams) BuildChanges() *models.TransactionChanges {
	changes := &models.TransactionChanges{
		Kind:        models.TransactionKind(p.Kind),
		Amount:      p.Amount,
		CategoryIDs: p.CategoryIDs,
	}

	if p.Description != nil {
		changes.Description = sql.NullString{String: *p.Description, Valid: true}
	}

	if len(p.Date) > 0 {
		if transacted_at, ok := ParseDate(p.Date); ok {
			changes.TransactedAt = &transacted_at
		}
	}

	return changes
}

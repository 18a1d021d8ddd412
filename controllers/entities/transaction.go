package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fabioramos-02/prisma-database/models"
)

type TransactionEntity struct {
	ID           int64             `json:"id"`
	UUID         uuid.UUID         `json:"uuid"`
	AccountID    int64             `json:"account_id"`
	UserID       int64             `json:"user_id"`
	Kind         string            `json:"kind"`
	Amount       decimal.Decimal   `json:"amount"`
	Description  string            `json:"description"`
	TransactedAt time.Time         `json:"transacted_at"`
	CreatedAt    time.Time         `json:"created_at"`
	Categories   []models.Category `json:"categories"`
}

func TransactionToEntity(t *models.Transaction) TransactionEntity {
	return TransactionEntity{
		ID:           t.ID,
		UUID:         t.UUID,
		AccountID:    t.AccountID,
		UserID:       t.UserID,
		Kind:         string(t.Kind),
		Amount:       t.Amount,
		Description:  t.Description,
		TransactedAt: t.TransactedAt,
		CreatedAt:    t.CreatedAt,
		Categories:   t.Categories(),
	}
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type AuditOperation string

const (
	OperationInsert AuditOperation = "INSERT"
	OperationUpdate AuditOperation = "UPDATE"
	OperationDelete AuditOperation = "DELETE"
)

// AuditLogEntry is append-only: one row per mutating operation on a
// transaction, written inside the same database transaction as the mutation.
// It carries a description snapshot and does not foreign-key the transaction,
// so DELETE can be logged before the row goes away.
type AuditLogEntry struct {
	ID            int64          `json:"id" gorm:"primaryKey"`
	TransactionID int64          `json:"transaction_id" gorm:"index"`
	UserID        int64          `json:"user_id"`
	Operation     AuditOperation `json:"operation"`
	Description   string         `json:"description"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (AuditLogEntry) TableName() string {
	return "audit_log"
}

func AuditInsert(tx *gorm.DB, t *Transaction) error {
	return appendAudit(tx, t, OperationInsert)
}

func AuditUpdate(tx *gorm.DB, t *Transaction) error {
	return appendAudit(tx, t, OperationUpdate)
}

func AuditDelete(tx *gorm.DB, t *Transaction) error {
	return appendAudit(tx, t, OperationDelete)
}

func appendAudit(tx *gorm.DB, t *Transaction, op AuditOperation) error {
	entry := AuditLogEntry{
		TransactionID: t.ID,
		UserID:        t.UserID,
		Operation:     op,
		Description:   t.Description,
	}

	return tx.Create(&entry).Error
}

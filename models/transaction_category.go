package models

import (
	"gorm.io/gorm"
)

type TransactionCategory struct {
	TransactionID int64 `json:"transaction_id" gorm:"primaryKey;autoIncrement:false"`
	CategoryID    int64 `json:"category_id" gorm:"primaryKey;autoIncrement:false"`
}

func (TransactionCategory) TableName() string {
	return "transaction_categories"
}

// ReplaceCategoryLinks deletes every link of the transaction and recreates
// them from ids. Both referenced sides are verified by the caller before the
// insert happens inside the same database transaction.
func ReplaceCategoryLinks(tx *gorm.DB, transactionID int64, ids []int64) error {
	if err := tx.Where("transaction_id = ?", transactionID).Delete(&TransactionCategory{}).Error; err != nil {
		return err
	}

	return CreateCategoryLinks(tx, transactionID, ids)
}

func CreateCategoryLinks(tx *gorm.DB, transactionID int64, ids []int64) error {
	for _, id := range ids {
		link := TransactionCategory{TransactionID: transactionID, CategoryID: id}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}

	return nil
}

func DeleteCategoryLinks(tx *gorm.DB, transactionID int64) error {
	return tx.Where("transaction_id = ?", transactionID).Delete(&TransactionCategory{}).Error
}

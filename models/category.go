package models

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/fabioramos-02/prisma-database/config"
)

var (
	ErrCategoryNotFound  = errors.New("category.not_found")
	ErrCategoryNameTaken = errors.New("category.name_taken")
	ErrUnknownCategory   = errors.New("transaction.unknown_category")
)

type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryNameTaken checks uniqueness before insert and before rename.
func CategoryNameTaken(name string, excludeID int64) bool {
	var count int64

	config.DataBase.Model(&Category{}).Where("name = ? AND id <> ?", name, excludeID).Count(&count)

	return count > 0
}

func CreateCategory(name string) (*Category, error) {
	if CategoryNameTaken(name, 0) {
		return nil, ErrCategoryNameTaken
	}

	category := &Category{Name: name}
	if err := config.DataBase.Create(category).Error; err != nil {
		return nil, err
	}

	return category, nil
}

func RenameCategory(id int64, name string) (*Category, error) {
	var category *Category

	result := config.DataBase.First(&category, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}

	if CategoryNameTaken(name, id) {
		return nil, ErrCategoryNameTaken
	}

	category.Name = name
	if err := config.DataBase.Save(&category).Error; err != nil {
		return nil, err
	}

	return category, nil
}

// VerifyCategories checks that every supplied id exists; a partial match is an
// error, same as a full miss.
func VerifyCategories(tx *gorm.DB, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&Category{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return err
	}

	if count != int64(len(ids)) {
		return ErrUnknownCategory
	}

	return nil
}

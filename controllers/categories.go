package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fabioramos-02/prisma-database/config"
	"github.com/fabioramos-02/prisma-database/controllers/helpers"
	"github.com/fabioramos-02/prisma-database/models"
)

func GetCategories(c *fiber.Ctx) error {
	categories := make([]models.Category, 0)

	if err := config.DataBase.Order("id asc").Find(&categories).Error; err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(categories)
}

func CreateCategory(c *fiber.Ctx) error {
	payload := new(helpers.CategoryParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_message_body"})
	}

	validation_errors := new(helpers.Errors)
	helpers.Validate(payload, validation_errors)

	if validation_errors.Size() > 0 {
		return c.Status(400).JSON(validation_errors.ToResponse())
	}

	category, err := models.CreateCategory(payload.Name)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(category)
}

func UpdateCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "category.invalid_id"})
	}

	payload := new(helpers.CategoryParams)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_message_body"})
	}

	validation_errors := new(helpers.Errors)
	helpers.Validate(payload, validation_errors)

	if validation_errors.Size() > 0 {
		return c.Status(400).JSON(validation_errors.ToResponse())
	}

	category, err := models.RenameCategory(id, payload.Name)
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(category)
}

func DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "category.invalid_id"})
	}

	var category *models.Category

	result := config.DataBase.First(&category, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return renderError(c, models.ErrCategoryNotFound)
	}

	err = config.DataBase.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.TransactionCategory{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Category{}, "id = ?", id).Error
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{"message": "category.deleted"})
}

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

func GetUsers(c *fiber.Ctx) error {
	users := make([]models.User, 0)

	if err := config.DataBase.Preload("Config").Order("id asc").Find(&users).Error; err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(users)
}

func CreateUser(c *fiber.Ctx) error {
	payload := new(helpers.CreateUserParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_message_body"})
	}

	validation_errors := new(helpers.Errors)
	helpers.Validate(payload, validation_errors)

	if validation_errors.Size() > 0 {
		return c.Status(400).JSON(validation_errors.ToResponse())
	}

	user := payload.BuildUser()

	if err := models.CreateUser(user); err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(user)
}

func UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "user.invalid_id"})
	}

	payload := new(helpers.UpdateUserParams)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_message_body"})
	}

	if !payload.HasChanges() {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "user.nothing_to_update"})
	}

	var user *models.User

	result := config.DataBase.Preload("Config").First(&user, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return renderError(c, models.ErrUserNotFound)
	}

	if len(payload.Name) > 0 {
		user.Name = payload.Name
	}
	if len(payload.Email) > 0 {
		user.Email = payload.Email
	}

	err = config.DataBase.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}

		if payload.Config == nil {
			return nil
		}

		if user.Config == nil {
			user.Config = &models.UserConfig{UserID: user.ID}
		}

		if len(payload.Config.Currency) > 0 {
			user.Config.Currency = payload.Config.Currency
		}
		if len(payload.Config.Locale) > 0 {
			user.Config.Locale = payload.Config.Locale
		}
		if payload.Config.MonthlyBudget.Valid {
			user.Config.MonthlyBudget = payload.Config.MonthlyBudget.Decimal
		}

		return tx.Save(user.Config).Error
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(user)
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "user.invalid_id"})
	}

	if err := models.DeleteUser(id); err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{"message": "user.deleted"})
}

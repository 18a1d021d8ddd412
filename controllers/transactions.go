package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fabioramos-02/prisma-database/config"
	"github.com/fabioramos-02/prisma-database/controllers/entities"
	"github.com/fabioramos-02/prisma-database/controllers/helpers"
	"github.com/fabioramos-02/prisma-database/controllers/queries"
	"github.com/fabioramos-02/prisma-database/models"
)

func GetTransactions(c *fiber.Ctx) error {
	var transactions []models.Transaction

	params := new(queries.TransactionFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_query"})
	}

	tx := config.DataBase.Order("id asc")

	if len(params.Kind) > 0 {
		if !models.TransactionKind(params.Kind).Valid() {
			return c.Status(400).JSON(helpers.ErrorResponse{Error: "transaction.invalid_kind"})
		}

		tx = tx.Where("kind = ?", params.Kind)
	}

	if params.AccountID > 0 {
		tx = tx.Where("account_id = ?", params.AccountID)
	}

	if params.Limit > 0 {
		if params.Page == 0 {
			params.Page = 1
		}

		tx = tx.Offset(params.Page*params.Limit - params.Limit).Limit(params.Limit)
	}

	if err := tx.Find(&transactions).Error; err != nil {
		return renderError(c, err)
	}

	transactions_json := make([]entities.TransactionEntity, 0)
	for i := range transactions {
		transactions_json = append(transactions_json, entities.TransactionToEntity(&transactions[i]))
	}

	return c.Status(200).JSON(transactions_json)
}

func CreateTransaction(c *fiber.Ctx) error {
	payload := new(helpers.CreateTransactionParams)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_message_body"})
	}

	validation_errors := new(helpers.Errors)
	helpers.Validate(payload, validation_errors)

	if validation_errors.Size() > 0 {
		return c.Status(400).JSON(validation_errors.ToResponse())
	}

	transaction := payload.BuildTransaction(validation_errors)
	if validation_errors.Size() > 0 {
		return c.Status(400).JSON(validation_errors.ToResponse())
	}

	if err := models.PostTransaction(transaction, payload.CategoryIDs); err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(entities.TransactionToEntity(transaction))
}

func UpdateTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "transaction.invalid_id"})
	}

	payload := new(helpers.UpdateTransactionParams)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_message_body"})
	}

	validation_errors := new(helpers.Errors)
	helpers.Validate(payload, validation_errors)

	if validation_errors.Size() > 0 {
		return c.Status(400).JSON(validation_errors.ToResponse())
	}

	if !payload.HasChanges() {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "transaction.nothing_to_update"})
	}

	transaction, err := models.RepostTransaction(id, payload.BuildChanges())
	if err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(entities.TransactionToEntity(transaction))
}

func DeleteTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "transaction.invalid_id"})
	}

	if err := models.ReverseTransaction(id); err != nil {
		return renderError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{"message": "transaction.deleted"})
}

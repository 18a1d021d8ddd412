package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fabioramos-02/prisma-database/config"
	"github.com/fabioramos-02/prisma-database/controllers/helpers"
	"github.com/fabioramos-02/prisma-database/controllers/queries"
	"github.com/fabioramos-02/prisma-database/models"
)

const accountCacheTTL = 5 * time.Minute

// GetAccounts lists accounts, optionally scoped to a user. The per-user
// listing is served through the cache; the posting workflow invalidates it on
// every balance change.
func GetAccounts(c *fiber.Ctx) error {
	params := new(queries.AccountFilters)
	if err := c.QueryParser(params); err != nil {
		return c.Status(400).JSON(helpers.ErrorResponse{Error: "server.method.invalid_query"})
	}

	accounts_json := make([]models.AccountJSON, 0)

	if params.UserID > 0 {
		cache_key := "financas:accounts:" + strconv.FormatInt(params.UserID, 10)

		if config.Redis != nil && config.Redis.GetKey(cache_key, &accounts_json) == nil {
			return c.Status(200).JSON(accounts_json)
		}

		var accounts []models.Account
		if err := config.DataBase.Where("user_id = ?", params.UserID).Order("id asc").Find(&accounts).Error; err != nil {
			return renderError(c, err)
		}

		for i := range accounts {
			accounts_json = append(accounts_json, accounts[i].ToJSON())
		}

		if config.Redis != nil {
			if err := config.Redis.SetKey(cache_key, accounts_json, accountCacheTTL); err != nil {
				config.Logger.Warnf("account cache write failed: %v", err)
			}
		}

		return c.Status(200).JSON(accounts_json)
	}

	var accounts []models.Account
	if err := config.DataBase.Order("id asc").Find(&accounts).Error; err != nil {
		return renderError(c, err)
	}

	for i := range accounts {
		accounts_json = append(accounts_json, accounts[i].ToJSON())
	}

	return c.Status(200).JSON(accounts_json)
}

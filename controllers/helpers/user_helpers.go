package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/fabioramos-02/prisma-database/models"
)

type UserConfigParams struct {
	Currency      string              `json:"currency" form:"currency"`
	Locale        string              `json:"locale" form:"locale"`
	MonthlyBudget decimal.NullDecimal `json:"monthly_budget" form:"monthly_budget" validate:"BudgetValidator"`
}

type CreateUserParams struct {
	Name   string            `json:"name" form:"name" validate:"required"`
	Email  string            `json:"email" form:"email" validate:"required"`
	Config *UserConfigParams `json:"config" form:"config"`
}

func (p CreateUserParams) Messages() map[string]string {
	return validate.MS{
		"required": "user.missing_or_invalid_{field}",
	}
}

func (p UserConfigParams) BudgetValidator(budget decimal.NullDecimal) bool {
	if !budget.Valid {
		return true
	}

	return !budget.Decimal.IsNegative()
}

func (p UserConfigParams) BuildConfig() *models.UserConfig {
	cfg := &models.UserConfig{
		Currency: p.Currency,
		Locale:   p.Locale,
	}

	if p.MonthlyBudget.Valid {
		cfg.MonthlyBudget = p.MonthlyBudget.Decimal
	}

	return cfg
}

func (p CreateUserParams) BuildUser() *models.User {
	user := &models.User{
		Name:  p.Name,
		Email: p.Email,
	}

	if p.Config != nil {
		user.Config = p.Config.BuildConfig()
	}

	return user
}

type UpdateUserParams struct {
	Name   string            `json:"name" form:"name"`
	Email  string            `json:"email" form:"email"`
	Config *UserConfigParams `json:"config" form:"config"`
}

func (p UpdateUserParams) HasChanges() bool {
	return len(p.Name) > 0 || len(p.Email) > 0 || p.Config != nil
}

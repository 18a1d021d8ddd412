package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSufficientFunds(t *testing.T) {
	account := &Account{Balance: decimal.NewFromFloat(1000)}

	assert.True(t, account.SufficientFunds(decimal.NewFromFloat(1000)))
	assert.True(t, account.SufficientFunds(decimal.NewFromFloat(999.99)))
	assert.False(t, account.SufficientFunds(decimal.NewFromFloat(1000.01)))
}

func TestValidateBalance(t *testing.T) {
	account := Account{}

	assert.True(t, account.ValidateBalance(decimal.Zero))
	assert.True(t, account.ValidateBalance(decimal.NewFromFloat(0.01)))
	assert.False(t, account.ValidateBalance(decimal.NewFromFloat(-0.01)))
}

func TestAccountCacheKey(t *testing.T) {
	account := &Account{ID: 7, UserID: 42}

	assert.Equal(t, "financas:accounts:42", account.CacheKey())
}

package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestKindValid(t *testing.T) {
	assert.True(t, KindEntrada.Valid())
	assert.True(t, KindSaida.Valid())
	assert.False(t, TransactionKind("").Valid())
	assert.False(t, TransactionKind("TRANSFER").Valid())
}

func TestPostingEffect(t *testing.T) {
	amount := decimal.NewFromFloat(600)

	assert.True(t, PostingEffect(KindEntrada, amount).Equal(decimal.NewFromFloat(600)))
	assert.True(t, PostingEffect(KindSaida, amount).Equal(decimal.NewFromFloat(-600)))
}

func TestReversalEffect(t *testing.T) {
	entrada := &Transaction{Kind: KindEntrada, Amount: decimal.NewFromFloat(250.50)}
	saida := &Transaction{Kind: KindSaida, Amount: decimal.NewFromFloat(99.99)}

	assert.True(t, entrada.ReversalEffect().Equal(decimal.NewFromFloat(-250.50)))
	assert.True(t, saida.ReversalEffect().Equal(decimal.NewFromFloat(99.99)))
	assert.True(t, entrada.Effect().Add(entrada.ReversalEffect()).IsZero())
}

// Updating a transaction's amount from X to X must not move the balance.
func TestRepostUnchangedIsNeutral(t *testing.T) {
	transaction := &Transaction{Kind: KindSaida, Amount: decimal.NewFromFloat(120)}

	oldEffect := transaction.ReversalEffect()
	newEffect := transaction.Effect()

	assert.True(t, oldEffect.Add(newEffect).IsZero())
}

// Start at 1000.00: an oversized debit is rejected, a credit of 600 lands,
// a debit of 1500 lands, and deleting the debit restores the balance.
func TestPostingArithmeticScenario(t *testing.T) {
	account := &Account{Balance: decimal.NewFromFloat(1000)}

	overdraft := decimal.NewFromFloat(1500)
	assert.False(t, account.SufficientFunds(overdraft))

	entrada := &Transaction{Kind: KindEntrada, Amount: decimal.NewFromFloat(600)}
	account.Balance = account.Balance.Add(entrada.Effect())
	assert.True(t, account.Balance.Equal(decimal.NewFromFloat(1600)))

	saida := &Transaction{Kind: KindSaida, Amount: decimal.NewFromFloat(1500)}
	assert.True(t, account.SufficientFunds(saida.Amount))
	account.Balance = account.Balance.Add(saida.Effect())
	assert.True(t, account.Balance.Equal(decimal.NewFromFloat(100)))

	account.Balance = account.Balance.Add(saida.ReversalEffect())
	assert.True(t, account.Balance.Equal(decimal.NewFromFloat(1600)))
}

// Reverse-then-check: a SAIDA update is gated on balance + oldEffect, so
// growing a debit works as long as the freed old amount covers it.
func TestRepostSufficientFundsBasis(t *testing.T) {
	account := &Account{Balance: decimal.NewFromFloat(100)}
	existing := &Transaction{Kind: KindSaida, Amount: decimal.NewFromFloat(900)}

	basis := account.Balance.Add(existing.ReversalEffect())
	assert.True(t, basis.Equal(decimal.NewFromFloat(1000)))

	// 950 fits the reversed basis even though it exceeds the raw balance.
	assert.True(t, basis.GreaterThanOrEqual(decimal.NewFromFloat(950)))
	assert.False(t, basis.GreaterThanOrEqual(decimal.NewFromFloat(1050)))
}

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, dedupeIDs([]int64{1, 2, 1, 3, 2}))
	assert.Equal(t, []int64{}, dedupeIDs(nil))
}

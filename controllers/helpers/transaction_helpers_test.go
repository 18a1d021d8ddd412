package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fabioramos-02/prisma-database/models"
)

func validCreateParams() *CreateTransactionParams {
	return &CreateTransactionParams{
		AccountID:   1,
		Kind:        "SAIDA",
		Amount:      decimal.NewFromFloat(150.75),
		Date:        "2024-05-10",
		Description: "mercado",
		CategoryIDs: []int64{1, 2},
	}
}

func TestCreateParamsValid(t *testing.T) {
	errs := new(Errors)
	Validate(validCreateParams(), errs)

	assert.Equal(t, 0, errs.Size())
}

func TestCreateParamsMissingFields(t *testing.T) {
	cases := map[string]*CreateTransactionParams{
		"account": func() *CreateTransactionParams { p := validCreateParams(); p.AccountID = 0; return p }(),
		"kind":    func() *CreateTransactionParams { p := validCreateParams(); p.Kind = ""; return p }(),
		"amount": func() *CreateTransactionParams {
			p := validCreateParams()
			p.Amount = decimal.Decimal{}
			return p
		}(),
		"date":        func() *CreateTransactionParams { p := validCreateParams(); p.Date = ""; return p }(),
		"description": func() *CreateTransactionParams { p := validCreateParams(); p.Description = ""; return p }(),
	}

	for name, payload := range cases {
		errs := new(Errors)
		Validate(payload, errs)

		assert.NotEqual(t, 0, errs.Size(), "expected %s to be rejected", name)
	}
}

func TestCreateParamsInvalidKind(t *testing.T) {
	payload := validCreateParams()
	payload.Kind = "TRANSFER"

	errs := new(Errors)
	Validate(payload, errs)

	assert.NotEqual(t, 0, errs.Size())
}

func TestCreateParamsNegativeAmount(t *testing.T) {
	payload := validCreateParams()
	payload.Amount = decimal.NewFromFloat(-5)

	errs := new(Errors)
	Validate(payload, errs)

	assert.NotEqual(t, 0, errs.Size())
}

func TestCreateParamsUnparseableDate(t *testing.T) {
	payload := validCreateParams()
	payload.Date = "10/05/2024"

	errs := new(Errors)
	Validate(payload, errs)

	assert.NotEqual(t, 0, errs.Size())
}

func TestBuildTransaction(t *testing.T) {
	errs := new(Errors)
	transaction := validCreateParams().BuildTransaction(errs)

	assert.Equal(t, 0, errs.Size())
	assert.Equal(t, int64(1), transaction.AccountID)
	assert.Equal(t, models.KindSaida, transaction.Kind)
	assert.Equal(t, "mercado", transaction.Description)
	assert.Equal(t, 2024, transaction.TransactedAt.Year())
	assert.True(t, transaction.Amount.Equal(decimal.NewFromFloat(150.75)))
}

func TestUpdateParamsHasChanges(t *testing.T) {
	assert.False(t, (&UpdateTransactionParams{}).HasChanges())
	assert.False(t, (&UpdateTransactionParams{Kind: "ENTRADA"}).HasChanges())

	amount := UpdateTransactionParams{Amount: decimal.NewNullDecimal(decimal.NewFromFloat(10))}
	assert.True(t, amount.HasChanges())

	date := UpdateTransactionParams{Date: "2024-01-01"}
	assert.True(t, date.HasChanges())

	description := "ajuste"
	assert.True(t, (&UpdateTransactionParams{Description: &description}).HasChanges())
}

func TestUpdateParamsValidators(t *testing.T) {
	ok := UpdateTransactionParams{
		Kind:   "ENTRADA",
		Amount: decimal.NewNullDecimal(decimal.NewFromFloat(10)),
		Date:   "2024-01-01",
	}

	errs := new(Errors)
	Validate(&ok, errs)
	assert.Equal(t, 0, errs.Size())

	bad := UpdateTransactionParams{Kind: "TRANSFER"}
	errs = new(Errors)
	Validate(&bad, errs)
	assert.NotEqual(t, 0, errs.Size())

	negative := UpdateTransactionParams{Amount: decimal.NewNullDecimal(decimal.NewFromFloat(-1))}
	errs = new(Errors)
	Validate(&negative, errs)
	assert.NotEqual(t, 0, errs.Size())
}

func TestBuildChanges(t *testing.T) {
	description := "novo texto"
	ids := []int64{3, 4}
	payload := UpdateTransactionParams{
		Kind:        "ENTRADA",
		Amount:      decimal.NewNullDecimal(decimal.NewFromFloat(77)),
		Date:        "2024-03-15",
		Description: &description,
		CategoryIDs: &ids,
	}

	changes := payload.BuildChanges()

	assert.Equal(t, models.KindEntrada, changes.Kind)
	assert.True(t, changes.Amount.Valid)
	assert.True(t, changes.Description.Valid)
	assert.Equal(t, "novo texto", changes.Description.String)
	assert.NotNil(t, changes.TransactedAt)
	assert.Equal(t, []int64{3, 4}, *changes.CategoryIDs)
}

func TestBuildChangesKeepsAbsentFields(t *testing.T) {
	changes := (&UpdateTransactionParams{}).BuildChanges()

	assert.False(t, changes.Kind.Valid())
	assert.False(t, changes.Amount.Valid)
	assert.False(t, changes.Description.Valid)
	assert.Nil(t, changes.TransactedAt)
	assert.Nil(t, changes.CategoryIDs)
}

func TestParseDate(t *testing.T) {
	_, ok := ParseDate("2024-05-10")
	assert.True(t, ok)

	_, ok = ParseDate("2024-05-10T13:45:00Z")
	assert.True(t, ok)

	_, ok = ParseDate("2024-05-10 13:45:00")
	assert.True(t, ok)

	_, ok = ParseDate("10/05/2024")
	assert.False(t, ok)
}

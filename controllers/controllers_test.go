package controllers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fabioramos-02/prisma-database/models"
)

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, 404, ErrorStatus(models.ErrTransactionNotFound))
	assert.Equal(t, 404, ErrorStatus(models.ErrCategoryNotFound))
	assert.Equal(t, 404, ErrorStatus(models.ErrUserNotFound))

	assert.Equal(t, 400, ErrorStatus(models.ErrAccountNotFound))
	assert.Equal(t, 400, ErrorStatus(models.ErrInsufficientBalance))
	assert.Equal(t, 400, ErrorStatus(models.ErrUnknownCategory))
	assert.Equal(t, 400, ErrorStatus(models.ErrCategoryNameTaken))

	assert.Equal(t, 500, ErrorStatus(errors.New("connection refused")))
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSeeds(t *testing.T) {
	buf := []byte(`
categories:
  - Alimentação
  - Transporte

users:
  - name: Usuário Demo
    email: demo@financas.local
    currency: BRL
    locale: pt-BR
`)

	seeds, err := ParseSeeds(buf)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Alimentação", "Transporte"}, seeds.Categories)
	assert.Len(t, seeds.Users, 1)
	assert.Equal(t, "demo@financas.local", seeds.Users[0].Email)
	assert.Equal(t, "BRL", seeds.Users[0].Currency)
}

func TestParseSeedsInvalid(t *testing.T) {
	_, err := ParseSeeds([]byte("categories: {not: a list}"))

	assert.Error(t, err)
}

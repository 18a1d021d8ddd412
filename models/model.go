package models

import (
	"github.com/fabioramos-02/prisma-database/config"
)

func AutoMigrate() error {
	return config.DataBase.AutoMigrate(
		&User{},
		&UserConfig{},
		&Account{},
		&Category{},
		&Transaction{},
		&TransactionCategory{},
		&AuditLogEntry{},
	)
}

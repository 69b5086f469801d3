package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nassaupro/marketplace-api/internal/config"
	"github.com/nassaupro/marketplace-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// Os índices únicos (categories.name, clients.cpf) criados aqui são a
	// garantia final de unicidade por trás dos pre-checks dos usecases.
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Client{},
		&models.Service{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

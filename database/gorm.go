package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/marcosmapl/studium-backend-sub002/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the GORM database connection and configures its pool.
func Connect(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate runs AutoMigrate for every model, lookup tables first so the
// foreign key constraints on the larger tables can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// dealership lookups
		&models.Marca{},
		&models.TipoCombustivel{},
		&models.TipoCambio{},
		&models.EstadoVeiculo{},
		&models.CorVeiculo{},
		&models.SituacaoCompra{},
		&models.SituacaoVenda{},
		&models.SituacaoUsuario{},
		&models.GrupoUsuario{},
		// dealership
		&models.ModeloVeiculo{},
		&models.Unidade{},
		&models.Fornecedor{},
		&models.Cliente{},
		&models.Usuario{},
		&models.Veiculo{},
		&models.CompraVeiculo{},
		&models.VendaVeiculo{},
		// study planning lookups
		&models.SituacaoPlano{},
		&models.SituacaoTopico{},
		// study planning
		&models.Disciplina{},
		&models.PlanoEstudo{},
		&models.DisciplinaPlanejada{},
		&models.Topico{},
		&models.DiaEstudo{},
		&models.AlocacaoDia{},
		&models.SessaoEstudo{},
	)
}

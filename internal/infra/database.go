package infra

import (
	"fmt"

	"github.com/Hjanner/2MS/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over todos los modelos. TranslateError habilita la traduccion de errores del
// driver (duplicados, FK) que consumen los repositorios.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations crea o actualiza el esquema. Tambien la usan los tests de
// integracion sobre una base limpia.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.CategoriaProducto{},
		&model.Proveedor{},
		&model.Cliente{},
		&model.TasaCambio{},
		&model.Producto{},
		&model.ProductoNoPreparado{},
		&model.MovimientoInventario{},
		&model.Compra{},
		&model.DetalleCompra{},
		&model.Venta{},
		&model.DetalleVenta{},
		&model.Pago{},
		&model.Credito{},
		&model.Usuario{},
	)
}

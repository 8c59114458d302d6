package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB abre una base sqlite en memoria con el esquema completo.
// Las pruebas contra postgres real viven en los tests de integracion con
// testcontainers; estas cubren la logica de los repositorios.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Una sola conexion: cada conexion nueva a :memory: seria otra base.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.CategoriaProducto{},
		&model.Proveedor{},
		&model.Cliente{},
		&model.TasaCambio{},
		&model.Producto{},
		&model.ProductoNoPreparado{},
		&model.MovimientoInventario{},
	))
	return db
}

func TestClienteRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewClienteRepository(newTestDB(t))

	tel := "0414-1234567"
	cliente := &model.Cliente{CICliente: "V-12345678", Nombre: "Maria Perez", Telefono: &tel}
	require.NoError(t, repo.Create(ctx, cliente))

	got, err := repo.GetByKey(ctx, "V-12345678")
	require.NoError(t, err)
	assert.Equal(t, "Maria Perez", got.Nombre)

	ok, err := repo.Exists(ctx, "V-12345678")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, "V-99999999")
	require.NoError(t, err)
	assert.False(t, ok)

	cliente.Nombre = "Maria Gonzalez"
	require.NoError(t, repo.Update(ctx, "V-12345678", cliente))
	got, err = repo.GetByKey(ctx, "V-12345678")
	require.NoError(t, err)
	assert.Equal(t, "Maria Gonzalez", got.Nombre)

	require.NoError(t, repo.Delete(ctx, "V-12345678"))
	_, err = repo.GetByKey(ctx, "V-12345678")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClienteRepo_UpdateYDeleteInexistente(t *testing.T) {
	ctx := context.Background()
	repo := NewClienteRepository(newTestDB(t))

	err := repo.Update(ctx, "V-00000000", &model.Cliente{CICliente: "V-00000000", Nombre: "Nadie"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(ctx, "V-00000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestClienteRepo_ClaveDuplicada(t *testing.T) {
	ctx := context.Background()
	repo := NewClienteRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.Cliente{CICliente: "V-12345678", Nombre: "Maria"}))
	err := repo.Create(ctx, &model.Cliente{CICliente: "V-12345678", Nombre: "Otra Maria"})

	var de *apierror.DuplicateKeyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "ci_cliente", de.Field)
	assert.Equal(t, "V-12345678", de.Value)
}

func TestCategoriaRepo_DescripcionUnica(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoriaRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &model.CategoriaProducto{Descr: "Bebidas", Tipo: model.CategoriaNoPreparado}))
	err := repo.Create(ctx, &model.CategoriaProducto{Descr: "Bebidas", Tipo: model.CategoriaNoPreparado})

	var de *apierror.DuplicateKeyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "descr", de.Field)
}

func TestTasaRepo_VigenteEsLaMasReciente(t *testing.T) {
	ctx := context.Background()
	repo := NewTasaRepository(newTestDB(t), nil) // sin redis: lee de base

	vieja := &model.TasaCambio{
		Fecha:      time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		ValorUSDBs: decimal.RequireFromString("35.80"),
		Origen:     model.TasaBCV,
	}
	nueva := &model.TasaCambio{
		Fecha:      time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		ValorUSDBs: decimal.RequireFromString("36.50"),
		Origen:     model.TasaBCV,
	}
	require.NoError(t, repo.Create(ctx, vieja))
	require.NoError(t, repo.Create(ctx, nueva))

	vigente, err := repo.Vigente(ctx)
	require.NoError(t, err)
	assert.Equal(t, nueva.ID, vigente.ID)
	assert.True(t, vigente.ValorUSDBs.Equal(decimal.RequireFromString("36.50")))
}

func TestTasaRepo_VigenteSinTasas(t *testing.T) {
	repo := NewTasaRepository(newTestDB(t), nil)
	_, err := repo.Vigente(context.Background())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package repository

import (
	"context"
	"testing"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProductoInventariable(t *testing.T, db *gorm.DB, repo ProductoRepository, cod string, cantActual int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Producto{
		CodProducto: cod,
		Nombre:      "Harina de maiz",
		PrecioUSD:   decimal.RequireFromString("1.20"),
	}))
	require.NoError(t, repo.CreateNoPreparadoTx(db, &model.ProductoNoPreparado{
		CodProducto:  cod,
		CantActual:   cantActual,
		CantMin:      3,
		CostoCompra:  decimal.RequireFromString("0.90"),
		UnidadMedida: "unidad",
	}))
}

func TestProductoRepo_FindByCodPrecargaExtension(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductoRepository(db)
	seedProductoInventariable(t, db, repo, "REF001", 12)

	p, err := repo.FindByCod(context.Background(), "REF001")
	require.NoError(t, err)
	assert.True(t, p.Inventariable())
	assert.Equal(t, 12, p.NoPreparado.CantActual)
}

func TestProductoRepo_CreateDuplicado(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductoRepository(db)
	seedProductoInventariable(t, db, repo, "REF001", 12)

	err := repo.Create(context.Background(), &model.Producto{
		CodProducto: "REF001",
		Nombre:      "Otro producto",
		PrecioUSD:   decimal.RequireFromString("2.00"),
	})

	var de *apierror.DuplicateKeyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "cod_producto", de.Field)
}

func TestProductoRepo_DescontarInventarioCondicionado(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductoRepository(db)
	seedProductoInventariable(t, db, repo, "REF001", 12)

	rows, err := repo.DescontarInventarioTx(db, "REF001", 5)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	actual, err := repo.CantActualTx(db, "REF001")
	require.NoError(t, err)
	assert.Equal(t, 7, actual)

	// Cuando el stock no alcanza, el UPDATE no afecta filas y nada cambia.
	rows, err = repo.DescontarInventarioTx(db, "REF001", 8)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rows)

	actual, err = repo.CantActualTx(db, "REF001")
	require.NoError(t, err)
	assert.Equal(t, 7, actual)
}

func TestProductoRepo_IncrementarInventario(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductoRepository(db)
	seedProductoInventariable(t, db, repo, "REF001", 12)

	require.NoError(t, repo.IncrementarInventarioTx(db, "REF001", 10))
	actual, err := repo.CantActualTx(db, "REF001")
	require.NoError(t, err)
	assert.Equal(t, 22, actual)

	err = repo.IncrementarInventarioTx(db, "NOEXISTE", 10)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProductoRepo_ListBajoMinimo(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductoRepository(db)
	seedProductoInventariable(t, db, repo, "REF001", 1) // minimo 3
	seedProductoInventariable(t, db, repo, "REF002", 9)

	bajos, err := repo.ListBajoMinimo(context.Background())
	require.NoError(t, err)
	require.Len(t, bajos, 1)
	assert.Equal(t, "REF001", bajos[0].CodProducto)
}

func TestMovimientoRepo_SumDeltas(t *testing.T) {
	db := newTestDB(t)
	productos := NewProductoRepository(db)
	movimientos := NewMovimientoRepository(db)
	seedProductoInventariable(t, db, productos, "REF001", 0)

	require.NoError(t, movimientos.CreateTx(db, &model.MovimientoInventario{
		CodProducto:    "REF001",
		Referencia:     model.RefAjuste,
		TipoMovimiento: model.MovEntrada,
		CantMovida:     10,
	}))
	require.NoError(t, movimientos.CreateTx(db, &model.MovimientoInventario{
		CodProducto:    "REF001",
		Referencia:     model.RefDescarte,
		TipoMovimiento: model.MovSalida,
		CantMovida:     3,
	}))

	suma, err := movimientos.SumDeltas(context.Background(), "REF001")
	require.NoError(t, err)
	assert.Equal(t, 7, suma)

	suma, err = movimientos.SumDeltas(context.Background(), "SINMOVIMIENTOS")
	require.NoError(t, err)
	assert.Equal(t, 0, suma)
}

func TestMovimientoRepo_ListFiltraPorProducto(t *testing.T) {
	db := newTestDB(t)
	productos := NewProductoRepository(db)
	movimientos := NewMovimientoRepository(db)
	seedProductoInventariable(t, db, productos, "REF001", 0)
	seedProductoInventariable(t, db, productos, "REF002", 0)

	for _, cod := range []string{"REF001", "REF001", "REF002"} {
		require.NoError(t, movimientos.CreateTx(db, &model.MovimientoInventario{
			CodProducto:    cod,
			Referencia:     model.RefAjuste,
			TipoMovimiento: model.MovEntrada,
			CantMovida:     1,
		}))
	}

	movs, total, err := movimientos.List(context.Background(), MovimientoFilter{CodProducto: "REF001"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, movs, 2)
}

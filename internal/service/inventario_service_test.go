package service

import (
	"context"
	"testing"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inventarioEnv struct {
	svc         InventarioService
	productos   *stubProductoRepo
	movimientos *stubMovimientoRepo
}

func newInventarioEnv() *inventarioEnv {
	productos := newStubProductoRepo()
	movimientos := &stubMovimientoRepo{}
	return &inventarioEnv{
		svc:         NewInventarioService(productos, movimientos),
		productos:   productos,
		movimientos: movimientos,
	}
}

// ── Reglas de validacion de un movimiento ────────────────────────────────────

func TestRegistrarMovimiento_CantidadDebeSerPositiva(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefAjuste,
		TipoMovimiento: model.MovEntrada,
		CantMovida:     0,
	})

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cant_movida", ve.Field)
}

func TestRegistrarMovimiento_TipoDesconocido(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefAjuste,
		TipoMovimiento: "transferencia",
		CantMovida:     1,
	})

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tipo_movimiento", ve.Field)
}

func TestRegistrarMovimiento_ReferenciaDesconocida(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     "regalo",
		TipoMovimiento: model.MovEntrada,
		CantMovida:     1,
	})

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "referencia", ve.Field)
}

func TestRegistrarMovimiento_CompraRequiereCostoUnitario(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefCompra,
		TipoMovimiento: model.MovEntrada,
		CantMovida:     5,
	})

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "costo_unitario", ve.Field)
}

func TestRegistrarMovimiento_CompraSoloAdmiteEntradas(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	costo := dec("3.50")
	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefCompra,
		TipoMovimiento: model.MovSalida,
		CantMovida:     5,
		CostoUnitario:  &costo,
	})

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tipo_movimiento", ve.Field)
}

func TestRegistrarMovimiento_VentaSoloAdmiteSalidas(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefVenta,
		TipoMovimiento: model.MovEntrada,
		CantMovida:     5,
	})

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tipo_movimiento", ve.Field)
}

func TestRegistrarMovimiento_ProductoNoInventariable(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addPreparado("PREP01")

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "PREP01",
		Referencia:     model.RefDescarte,
		TipoMovimiento: model.MovSalida,
		CantMovida:     1,
	})

	var ve *apierror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cod_producto", ve.Field)
	assert.Empty(t, env.movimientos.movimientos)
}

// ── Aplicacion de movimientos ────────────────────────────────────────────────

func TestRegistrarMovimiento_EntradaIncrementaStock(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 5, 2)

	res, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefAjuste,
		TipoMovimiento: model.MovEntrada,
		CantMovida:     10,
		Comentario:     "conteo fisico",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.IDMovimiento)
	assert.Equal(t, 15, res.StockActual)
	assert.Equal(t, 15, env.productos.noPreparados["REF001"].CantActual)
	require.Len(t, env.movimientos.movimientos, 1)
	assert.Equal(t, "conteo fisico", env.movimientos.movimientos[0].Comentario)
}

func TestRegistrarMovimiento_SalidaConStockInsuficiente(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 2, 1)

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefDescarte,
		TipoMovimiento: model.MovSalida,
		CantMovida:     5,
	})

	var se *apierror.InsufficientStockError
	require.ErrorAs(t, err, &se)
	require.Len(t, se.Faltantes, 1)
	assert.Equal(t, 2, se.Faltantes[0].Disponible)
	assert.Equal(t, 5, se.Faltantes[0].Solicitado)

	// El libro no registra el movimiento fallido y el stock queda intacto.
	assert.Empty(t, env.movimientos.movimientos)
	assert.Equal(t, 2, env.productos.noPreparados["REF001"].CantActual)
}

func TestRegistrarMovimiento_SalidaDescuentaHastaAgotar(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 5, 1)

	res, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefAutoconsumo,
		TipoMovimiento: model.MovSalida,
		CantMovida:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.StockActual)
}

// ── Alta de productos no preparados ──────────────────────────────────────────

func TestRegistrarNoPreparado_ConExistenciaInicial(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addPreparado("REF009") // producto sin extension todavia

	err := env.svc.RegistrarNoPreparado(context.Background(), dto.RegistrarNoPreparadoRequest{
		CodProducto:  "REF009",
		CantMin:      2,
		CantActual:   8,
		CostoCompra:  dec("1.25"),
		UnidadMedida: "unidad",
	})
	require.NoError(t, err)

	np := env.productos.noPreparados["REF009"]
	require.NotNil(t, np)
	assert.Equal(t, 8, np.CantActual)
	assert.Equal(t, 2, np.CantMin)

	// La existencia inicial entra por el libro, como movimiento de ajuste.
	require.Len(t, env.movimientos.movimientos, 1)
	mov := env.movimientos.movimientos[0]
	assert.Equal(t, model.RefAjuste, mov.Referencia)
	assert.Equal(t, model.MovEntrada, mov.TipoMovimiento)
	assert.Equal(t, 8, mov.CantMovida)

	consistencia, err := env.svc.VerificarConsistencia(context.Background(), "REF009")
	require.NoError(t, err)
	assert.True(t, consistencia.Consistente)
}

func TestRegistrarNoPreparado_SinExistenciaNoGeneraMovimiento(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addPreparado("REF009")

	err := env.svc.RegistrarNoPreparado(context.Background(), dto.RegistrarNoPreparadoRequest{
		CodProducto:  "REF009",
		CantMin:      2,
		CantActual:   0,
		CostoCompra:  dec("1.25"),
		UnidadMedida: "unidad",
	})
	require.NoError(t, err)
	assert.Empty(t, env.movimientos.movimientos)
	assert.Equal(t, 0, env.productos.noPreparados["REF009"].CantActual)
}

func TestRegistrarNoPreparado_Duplicado(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	err := env.svc.RegistrarNoPreparado(context.Background(), dto.RegistrarNoPreparadoRequest{
		CodProducto:  "REF001",
		CantMin:      2,
		CostoCompra:  dec("1.25"),
		UnidadMedida: "unidad",
	})

	var de *apierror.DuplicateKeyError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "cod_producto", de.Field)
}

// ── Consistencia y alertas ───────────────────────────────────────────────────

func TestVerificarConsistencia_DetectaDesajuste(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 0, 2)

	_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
		CodProducto:    "REF001",
		Referencia:     model.RefAjuste,
		TipoMovimiento: model.MovEntrada,
		CantMovida:     10,
	})
	require.NoError(t, err)

	consistencia, err := env.svc.VerificarConsistencia(context.Background(), "REF001")
	require.NoError(t, err)
	assert.True(t, consistencia.Consistente)
	assert.Equal(t, 10, consistencia.CantActual)
	assert.Equal(t, 10, consistencia.SumaMovimientos)

	// Una mutacion por fuera del motor rompe la reconciliacion.
	env.productos.noPreparados["REF001"].CantActual = 7

	consistencia, err = env.svc.VerificarConsistencia(context.Background(), "REF001")
	require.NoError(t, err)
	assert.False(t, consistencia.Consistente)
	assert.Equal(t, 7, consistencia.CantActual)
	assert.Equal(t, 10, consistencia.SumaMovimientos)
}

func TestAlertasStockBajo_ListaSoloBajoMinimo(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 1, 5) // bajo minimo
	env.productos.addInventariable("REF002", 9, 5)

	alertas, err := env.svc.AlertasStockBajo(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.Equal(t, "REF001", alertas[0].CodProducto)
	assert.Equal(t, 1, alertas[0].CantActual)
	assert.Equal(t, 5, alertas[0].CantMin)
}

func TestListarMovimientos_FiltraPorReferencia(t *testing.T) {
	env := newInventarioEnv()
	env.productos.addInventariable("REF001", 10, 2)

	for _, ref := range []string{model.RefAjuste, model.RefTrasladoTienda} {
		_, err := env.svc.RegistrarMovimiento(context.Background(), dto.MovimientoRequest{
			CodProducto:    "REF001",
			Referencia:     ref,
			TipoMovimiento: model.MovEntrada,
			CantMovida:     1,
		})
		require.NoError(t, err)
	}

	resp, err := env.svc.ListarMovimientos(context.Background(), repository.MovimientoFilter{Referencia: model.RefAjuste})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, model.RefAjuste, resp.Data[0].Referencia)
}

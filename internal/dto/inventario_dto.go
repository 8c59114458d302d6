package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// MovimientoRequest registra un movimiento manual de inventario
// (descarte, ajuste, traslado_tienda, autoconsumo o compra suelta).
type MovimientoRequest struct {
	CodProducto    string           `json:"cod_producto"    validate:"required"`
	Referencia     string           `json:"referencia"      validate:"required,oneof=compra venta descarte ajuste traslado_tienda autoconsumo"`
	TipoMovimiento string           `json:"tipo_movimiento" validate:"required,oneof=entrada salida"`
	CantMovida     int              `json:"cant_movida"     validate:"required,min=1"`
	CostoUnitario  *decimal.Decimal `json:"costo_unitario"`
	Comentario     string           `json:"comentario"`
}

// RegistrarNoPreparadoRequest da de alta la extension de inventario de un
// producto existente. Si CantActual > 0 el motor registra el movimiento
// inicial de entrada.
type RegistrarNoPreparadoRequest struct {
	CodProducto  string          `json:"cod_producto"  validate:"required"`
	CantMin      int             `json:"cant_min"      validate:"min=0"`
	CantActual   int             `json:"cant_actual"   validate:"min=0"`
	CostoCompra  decimal.Decimal `json:"costo_compra"  validate:"required"`
	UnidadMedida string          `json:"unidad_medida" validate:"required"`
	RifProveedor *string         `json:"rif_proveedor"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID             string           `json:"id"`
	CodProducto    string           `json:"cod_producto"`
	Referencia     string           `json:"referencia"`
	TipoMovimiento string           `json:"tipo_movimiento"`
	CantMovida     int              `json:"cant_movida"`
	CostoUnitario  *decimal.Decimal `json:"costo_unitario,omitempty"`
	Comentario     string           `json:"comentario,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

type MovimientoListResponse struct {
	Data  []MovimientoResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}

// MovimientoResultado devuelve el stock resultante despues de aplicar un
// movimiento.
type MovimientoResultado struct {
	Success      bool   `json:"success"`
	IDMovimiento string `json:"id_movimiento"`
	CodProducto  string `json:"cod_producto"`
	StockActual  int    `json:"stock_actual"`
}

// ConsistenciaResponse reporta la reconciliacion del libro de movimientos
// contra el stock materializado de un producto.
type ConsistenciaResponse struct {
	CodProducto     string `json:"cod_producto"`
	CantActual      int    `json:"cant_actual"`
	SumaMovimientos int    `json:"suma_movimientos"`
	Consistente     bool   `json:"consistente"`
}

type AlertaStockItem struct {
	CodProducto string `json:"cod_producto"`
	CantActual  int    `json:"cant_actual"`
	CantMin     int    `json:"cant_min"`
}

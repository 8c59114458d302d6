package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Filter ──────────────────────────────────────────────────────────────────

type CompraFilter struct {
	Rif   string `form:"rif"`
	Fecha string `form:"fecha"` // YYYY-MM-DD
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleCompraRequest struct {
	CodProducto   string          `json:"cod_producto"   validate:"required"`
	CantComprada  int             `json:"cant_comprada"  validate:"required,min=1"`
	MontoUnitario decimal.Decimal `json:"monto_unitario" validate:"required"`
}

// RegistrarCompraRequest registra una compra a proveedor con sus lineas.
// Cada linea de producto inventariable produce un movimiento de entrada.
type RegistrarCompraRequest struct {
	Rif        string                 `json:"rif"         validate:"required"`
	Fecha      *time.Time             `json:"fecha"`
	GastoTotal decimal.Decimal        `json:"gasto_total" validate:"required"`
	Detalles   []DetalleCompraRequest `json:"detalles"    validate:"required,min=1,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleCompraResponse struct {
	CodProducto   string          `json:"cod_producto"`
	CantComprada  int             `json:"cant_comprada"`
	MontoUnitario decimal.Decimal `json:"monto_unitario"`
}

type CompraResponse struct {
	ID         string                  `json:"id"`
	Fecha      time.Time               `json:"fecha"`
	Rif        string                  `json:"rif"`
	GastoTotal decimal.Decimal         `json:"gasto_total"`
	Detalles   []DetalleCompraResponse `json:"detalles"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// CompraResultado devuelve la compra creada y el stock resultante de cada
// producto inventariable.
type CompraResultado struct {
	Success          bool           `json:"success"`
	IDCompra         string         `json:"id_compra"`
	StockActualizado map[string]int `json:"stock_actualizado"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Filter / List ──────────────────────────────────────────────────────────

// VentaFilter is bound from query string of GET /v1/ventas.
type VentaFilter struct {
	Fecha     string `form:"fecha"`            // YYYY-MM-DD; empty = all
	Tipo      string `form:"tipo,default=all"` // de_contado | credito | all
	CICliente string `form:"ci_cliente"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type VentaListItem struct {
	ID            string                 `json:"id"`
	MontoTotalBs  decimal.Decimal        `json:"monto_total_bs"`
	MontoTotalUSD decimal.Decimal        `json:"monto_total_usd"`
	FechaHora     time.Time              `json:"fecha_hora"`
	Tipo          string                 `json:"tipo"`
	CICliente     *string                `json:"ci_cliente,omitempty"`
	Detalles      []DetalleVentaResponse `json:"detalles"`
	Pagos         []PagoResponse         `json:"pagos"`
}

type VentaListResponse struct {
	Data  []VentaListItem `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

// VentaHeaderRequest carries the sale header. Totals come from the caller and
// are cross-checked against the line items before anything is written.
type VentaHeaderRequest struct {
	MontoTotalBs  decimal.Decimal `json:"monto_total_bs"  validate:"required"`
	MontoTotalUSD decimal.Decimal `json:"monto_total_usd" validate:"required"`
	FechaHora     *time.Time      `json:"fecha_hora"`
	Tipo          string          `json:"tipo" validate:"required,oneof=de_contado credito"`
	CICliente     *string         `json:"ci_cliente"`
	IDTasa        *string         `json:"id_tasa" validate:"omitempty,uuid"`
}

type DetalleVentaRequest struct {
	CodProducto    string          `json:"cod_producto"    validate:"required"`
	Cantidad       int             `json:"cantidad"        validate:"required,min=1"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required"`
}

type PagoRequest struct {
	Monto       decimal.Decimal `json:"monto"       validate:"required"`
	FechaPago   *time.Time      `json:"fecha_pago"`
	MetodoPago  string          `json:"metodo_pago" validate:"required,oneof=efectivo_bs efectivo_usd pago_movil debito transferencia"`
	Referencia  *string         `json:"referencia"`
	NumTelefono *string         `json:"num_telefono"`
}

// CreditoRequest describes the credit account opened with a credit sale.
// MontoPagado y Estado son opcionales: cuando faltan, el orquestador los
// deriva del pago inicial.
type CreditoRequest struct {
	FechaCredito *time.Time      `json:"fecha_credito"`
	MontoTotal   decimal.Decimal `json:"monto_total" validate:"required"`
	MontoPagado  decimal.Decimal `json:"monto_pagado"`
	Estado       string          `json:"estado" validate:"omitempty,oneof=Pagado Pendiente Parcial"`
}

// RegistrarVentaRequest is the unified payload of POST /v1/ventas.
// Pago is required for cash sales and optional for credit sales; Credito is
// only valid (and required) when the header tipo is credito.
type RegistrarVentaRequest struct {
	Venta    VentaHeaderRequest    `json:"venta"    validate:"required"`
	Detalles []DetalleVentaRequest `json:"detalles" validate:"required,min=1,dive"`
	Pago     *PagoRequest          `json:"pago"     validate:"omitempty"`
	Credito  *CreditoRequest       `json:"credito"  validate:"omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleVentaResponse struct {
	CodProducto    string          `json:"cod_producto"`
	Nombre         string          `json:"nombre,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type PagoResponse struct {
	ID         string          `json:"id"`
	Monto      decimal.Decimal `json:"monto"`
	FechaPago  time.Time       `json:"fecha_pago"`
	MetodoPago string          `json:"metodo_pago"`
	Referencia *string         `json:"referencia,omitempty"`
}

// VentaResultado is the success envelope of the sale orchestrators. It names
// every row the transaction produced plus the stock left by each discounted
// product.
type VentaResultado struct {
	Success          bool           `json:"success"`
	Message          string         `json:"message"`
	IDVenta          string         `json:"id_venta"`
	IDPago           *string        `json:"id_pago,omitempty"`
	IDCredito        *string        `json:"id_credito,omitempty"`
	StockActualizado map[string]int `json:"stock_actualizado"`
}

type VentaDetailResponse struct {
	VentaListItem
	Credito *CreditoResponse `json:"credito,omitempty"`
}

type CreditoResponse struct {
	ID               string          `json:"id"`
	CICliente        string          `json:"ci_cliente"`
	IDVenta          string          `json:"id_venta"`
	FechaCredito     time.Time       `json:"fecha_credito"`
	FechaUltimoAbono *time.Time      `json:"fecha_ultimo_abono,omitempty"`
	MontoTotal       decimal.Decimal `json:"monto_total"`
	MontoPagado      decimal.Decimal `json:"monto_pagado"`
	Estado           string          `json:"estado"`
}

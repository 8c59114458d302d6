package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProductoFilter struct {
	Nombre      string `form:"nombre"`
	IDCategoria string `form:"id_categoria" validate:"omitempty,uuid"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	CodProducto string          `json:"cod_producto" validate:"required"`
	Nombre      string          `json:"nombre"       validate:"required"`
	PrecioUSD   decimal.Decimal `json:"precio_usd"   validate:"required"`
	IDCategoria *string         `json:"id_categoria" validate:"omitempty,uuid"`
	Img         *string         `json:"img"`
	// NoPreparado da de alta el producto como inventariable en el mismo paso.
	NoPreparado *RegistrarNoPreparadoInline `json:"no_preparado" validate:"omitempty"`
}

// RegistrarNoPreparadoInline es la extension embebida en la creacion de un
// producto; el cod_producto se toma del padre.
type RegistrarNoPreparadoInline struct {
	CantMin      int             `json:"cant_min"      validate:"min=0"`
	CantActual   int             `json:"cant_actual"   validate:"min=0"`
	CostoCompra  decimal.Decimal `json:"costo_compra"  validate:"required"`
	UnidadMedida string          `json:"unidad_medida" validate:"required"`
	RifProveedor *string         `json:"rif_proveedor"`
}

type ActualizarProductoRequest struct {
	Nombre      string          `json:"nombre"     validate:"required"`
	PrecioUSD   decimal.Decimal `json:"precio_usd" validate:"required"`
	IDCategoria *string         `json:"id_categoria" validate:"omitempty,uuid"`
	Img         *string         `json:"img"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type NoPreparadoResponse struct {
	CantMin      int             `json:"cant_min"`
	CantActual   int             `json:"cant_actual"`
	CostoCompra  decimal.Decimal `json:"costo_compra"`
	UnidadMedida string          `json:"unidad_medida"`
	RifProveedor *string         `json:"rif_proveedor,omitempty"`
}

type ProductoResponse struct {
	CodProducto string               `json:"cod_producto"`
	Nombre      string               `json:"nombre"`
	PrecioUSD   decimal.Decimal      `json:"precio_usd"`
	IDCategoria *string              `json:"id_categoria,omitempty"`
	Categoria   *string              `json:"categoria,omitempty"`
	Img         *string              `json:"img,omitempty"`
	NoPreparado *NoPreparadoResponse `json:"no_preparado,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type ProductoListResponse struct {
	Data  []ProductoResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto es la ficha general de un producto vendible.
// Un producto es inventariable cuando tiene una fila asociada en
// productos_no_preparados; los preparados (comida de cocina) no llevan stock.
type Producto struct {
	CodProducto string          `gorm:"primaryKey;column:cod_producto"`
	Nombre      string          `gorm:"not null;index"`
	PrecioUSD   decimal.Decimal `gorm:"type:decimal(10,2);not null;column:precio_usd"`
	IDCategoria *uuid.UUID      `gorm:"type:uuid;column:id_categoria;index"`
	Img         *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Categoria   *CategoriaProducto   `gorm:"foreignKey:IDCategoria"`
	NoPreparado *ProductoNoPreparado `gorm:"foreignKey:CodProducto;references:CodProducto"`
}

func (Producto) TableName() string { return "productos" }

// Inventariable indica si el producto lleva control de stock.
func (p *Producto) Inventariable() bool { return p.NoPreparado != nil }

// ProductoNoPreparado extiende un producto con su inventario.
// cant_actual es el unico campo derivado mutable del sistema: lo recalcula el
// motor de inventario cada vez que se registra un movimiento.
type ProductoNoPreparado struct {
	CodProducto  string          `gorm:"primaryKey;column:cod_producto"`
	CantMin      int             `gorm:"not null;default:0"`
	CantActual   int             `gorm:"not null;default:0"`
	CostoCompra  decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UnidadMedida string          `gorm:"not null;default:'unidad'"`
	RifProveedor *string         `gorm:"column:rif_proveedor;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Proveedor *Proveedor `gorm:"foreignKey:RifProveedor;references:Rif"`
}

func (ProductoNoPreparado) TableName() string { return "productos_no_preparados" }

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Referencias validas de un movimiento de inventario.
const (
	RefCompra         = "compra"
	RefVenta          = "venta"
	RefDescarte       = "descarte"
	RefAjuste         = "ajuste"
	RefTrasladoTienda = "traslado_tienda"
	RefAutoconsumo    = "autoconsumo"
)

// Direcciones de un movimiento.
const (
	MovEntrada = "entrada"
	MovSalida  = "salida"
)

// MovimientoInventario es una entrada del libro de inventario.
// El libro es append-only: las filas nunca se actualizan ni se borran, y la
// suma de entradas menos salidas de un producto siempre reconcilia con
// productos_no_preparados.cant_actual.
type MovimientoInventario struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CodProducto    string           `gorm:"not null;index;column:cod_producto"`
	Referencia     string           `gorm:"not null"` // compra | venta | descarte | ajuste | traslado_tienda | autoconsumo
	TipoMovimiento string           `gorm:"not null"` // entrada | salida
	CantMovida     int              `gorm:"not null"`
	CostoUnitario  *decimal.Decimal `gorm:"type:decimal(10,2)"` // obligatorio cuando referencia = compra
	CompraID       *uuid.UUID       `gorm:"type:uuid"`
	Comentario     string
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:CodProducto;references:CodProducto"`
}

func (MovimientoInventario) TableName() string { return "movimientos_inventario" }

func (m *MovimientoInventario) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Delta devuelve el cambio de stock con signo que produce el movimiento.
func (m *MovimientoInventario) Delta() int {
	if m.TipoMovimiento == MovSalida {
		return -m.CantMovida
	}
	return m.CantMovida
}

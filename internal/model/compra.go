package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Compra registra una compra de mercancia a un proveedor.
type Compra struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fecha      time.Time       `gorm:"not null;index"`
	Rif        string          `gorm:"not null;index"`
	GastoTotal decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time

	Detalles  []DetalleCompra `gorm:"foreignKey:IDCompra"`
	Proveedor *Proveedor      `gorm:"foreignKey:Rif;references:Rif"`
}

func (Compra) TableName() string { return "compras" }

func (c *Compra) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// DetalleCompra es una linea de producto dentro de una compra.
// Clave compuesta (id_compra, cod_producto).
type DetalleCompra struct {
	IDCompra      uuid.UUID       `gorm:"type:uuid;primaryKey;column:id_compra"`
	CodProducto   string          `gorm:"primaryKey;column:cod_producto"`
	CantComprada  int             `gorm:"not null"`
	MontoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:CodProducto;references:CodProducto"`
}

func (DetalleCompra) TableName() string { return "detalles_compra" }

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estados de un credito.
const (
	CreditoPagado    = "Pagado"
	CreditoPendiente = "Pendiente"
	CreditoParcial   = "Parcial"
)

// Credito es el saldo que un cliente debe contra una venta a credito.
// Se crea junto con la venta; los abonos posteriores lo van saldando.
type Credito struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CICliente        string          `gorm:"not null;index;column:ci_cliente"`
	IDVenta          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex;column:id_venta"`
	FechaCredito     time.Time       `gorm:"not null"`
	FechaUltimoAbono *time.Time
	MontoTotal       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MontoPagado      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Estado           string          `gorm:"not null"` // Pagado | Pendiente | Parcial
	CreatedAt        time.Time

	Cliente *Cliente `gorm:"foreignKey:CICliente;references:CICliente"`
	Venta   *Venta   `gorm:"foreignKey:IDVenta"`
}

func (Credito) TableName() string { return "creditos" }

func (c *Credito) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

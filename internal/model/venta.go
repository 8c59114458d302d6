package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de venta.
const (
	VentaContado = "de_contado"
	VentaCredito = "credito"
)

// Metodos de pago aceptados.
const (
	PagoEfectivoBs    = "efectivo_bs"
	PagoEfectivoUSD   = "efectivo_usd"
	PagoMovil         = "pago_movil"
	PagoDebito        = "debito"
	PagoTransferencia = "transferencia"
)

// Venta registra una transaccion de venta, con sus detalles y pagos.
// Las filas se crean una unica vez dentro de la transaccion del orquestador
// y no se mutan despues.
type Venta struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MontoTotalBs  decimal.Decimal `gorm:"type:decimal(12,2);not null;column:monto_total_bs"`
	MontoTotalUSD decimal.Decimal `gorm:"type:decimal(12,2);not null;column:monto_total_usd"`
	FechaHora     time.Time       `gorm:"not null;index"`
	Tipo          string          `gorm:"not null"` // de_contado | credito
	CICliente     *string         `gorm:"column:ci_cliente;index"`
	IDTasa        *uuid.UUID      `gorm:"type:uuid;column:id_tasa"`
	CreatedAt     time.Time

	Detalles []DetalleVenta `gorm:"foreignKey:IDVenta"`
	Pagos    []Pago         `gorm:"foreignKey:IDVenta"`
	Cliente  *Cliente       `gorm:"foreignKey:CICliente;references:CICliente"`
	Tasa     *TasaCambio    `gorm:"foreignKey:IDTasa"`
}

func (Venta) TableName() string { return "ventas" }

func (v *Venta) BeforeCreate(*gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// DetalleVenta es una linea de producto dentro de una venta.
type DetalleVenta struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	IDVenta        uuid.UUID       `gorm:"type:uuid;not null;index;column:id_venta"`
	CodProducto    string          `gorm:"not null;column:cod_producto"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:CodProducto;references:CodProducto"`
}

func (DetalleVenta) TableName() string { return "detalles_venta" }

func (d *DetalleVenta) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// Pago registra un abono asociado a una venta.
type Pago struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	IDVenta     uuid.UUID       `gorm:"type:uuid;not null;index;column:id_venta"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaPago   time.Time       `gorm:"not null"`
	MetodoPago  string          `gorm:"not null"`
	Referencia  *string
	NumTelefono *string `gorm:"column:num_telefono"`
	CreatedAt   time.Time
}

func (Pago) TableName() string { return "pagos" }

func (p *Pago) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

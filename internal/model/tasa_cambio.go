package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Origenes de una tasa de cambio.
const (
	TasaBCV    = "BCV"
	TasaManual = "Manual"
)

// TasaCambio registra el valor de 1 USD en bolivares en una fecha dada.
// Las ventas referencian la tasa vigente al momento de registrarse.
type TasaCambio struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fecha      time.Time       `gorm:"not null;index"`
	ValorUSDBs decimal.Decimal `gorm:"type:decimal(14,4);not null;column:valor_usd_bs"`
	Origen     string          `gorm:"not null"` // BCV | Manual
}

func (TasaCambio) TableName() string { return "tasas_cambio" }

func (t *TasaCambio) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

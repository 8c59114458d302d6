package model

import "time"

// Proveedor de mercancia, identificado por su RIF.
type Proveedor struct {
	Rif             string `gorm:"primaryKey"`
	RazonSocial     string `gorm:"not null"`
	Direccion       *string
	Telefono        *string
	PersonaContacto *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Proveedor) TableName() string { return "proveedores" }

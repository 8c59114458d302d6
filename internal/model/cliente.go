package model

import "time"

// Cliente de la cantina, identificado por su cedula.
type Cliente struct {
	CICliente    string `gorm:"primaryKey;column:ci_cliente"`
	Nombre       string `gorm:"not null"`
	Telefono     *string
	DeptoEscuela *string `gorm:"column:depto_escuela"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Cliente) TableName() string { return "clientes" }

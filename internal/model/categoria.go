package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipos de categoria.
const (
	CategoriaPreparado   = "preparado"
	CategoriaNoPreparado = "noPreparado"
)

// CategoriaProducto clasifica los productos en preparados y no preparados.
type CategoriaProducto struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Descr string    `gorm:"not null;uniqueIndex"`
	Tipo  string    `gorm:"not null"` // preparado | noPreparado
}

func (CategoriaProducto) TableName() string { return "categorias_producto" }

func (c *CategoriaProducto) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

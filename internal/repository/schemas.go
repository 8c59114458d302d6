package repository

import (
	"github.com/Hjanner/2MS/internal/model"
)

// Esquemas explicitos de las entidades de referencia. El extractor Values
// enumera columna por columna; es la descripcion de campos que consume el
// repositorio generico.

func ClienteSchema() Schema[model.Cliente] {
	return Schema[model.Cliente]{
		Table: "clientes",
		Key:   []string{"ci_cliente"},
		Values: func(c *model.Cliente) map[string]any {
			return map[string]any{
				"ci_cliente":    c.CICliente,
				"nombre":        c.Nombre,
				"telefono":      c.Telefono,
				"depto_escuela": c.DeptoEscuela,
			}
		},
	}
}

func ProveedorSchema() Schema[model.Proveedor] {
	return Schema[model.Proveedor]{
		Table: "proveedores",
		Key:   []string{"rif"},
		Values: func(p *model.Proveedor) map[string]any {
			return map[string]any{
				"rif":              p.Rif,
				"razon_social":     p.RazonSocial,
				"direccion":        p.Direccion,
				"telefono":         p.Telefono,
				"persona_contacto": p.PersonaContacto,
			}
		},
	}
}

func CategoriaSchema() Schema[model.CategoriaProducto] {
	return Schema[model.CategoriaProducto]{
		Table:  "categorias_producto",
		Key:    []string{"id"},
		Unique: []string{"descr"},
		Values: func(c *model.CategoriaProducto) map[string]any {
			return map[string]any{
				"id":    c.ID,
				"descr": c.Descr,
				"tipo":  c.Tipo,
			}
		},
	}
}

func TasaSchema() Schema[model.TasaCambio] {
	return Schema[model.TasaCambio]{
		Table: "tasas_cambio",
		Key:   []string{"id"},
		Values: func(t *model.TasaCambio) map[string]any {
			return map[string]any{
				"id":           t.ID,
				"fecha":        t.Fecha,
				"valor_usd_bs": t.ValorUSDBs,
				"origen":       t.Origen,
			}
		},
	}
}

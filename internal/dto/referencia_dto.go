package dto

import "github.com/shopspring/decimal"

// DTOs de las entidades de referencia (clientes, proveedores, categorias,
// tasas de cambio).

// ─── Clientes ────────────────────────────────────────────────────────────────

type ClienteRequest struct {
	CICliente    string  `json:"ci_cliente" validate:"required"`
	Nombre       string  `json:"nombre"     validate:"required"`
	Telefono     *string `json:"telefono"`
	DeptoEscuela *string `json:"depto_escuela"`
}

type ClienteResponse struct {
	CICliente    string  `json:"ci_cliente"`
	Nombre       string  `json:"nombre"`
	Telefono     *string `json:"telefono,omitempty"`
	DeptoEscuela *string `json:"depto_escuela,omitempty"`
}

// ─── Proveedores ─────────────────────────────────────────────────────────────

type ProveedorRequest struct {
	Rif             string  `json:"rif"          validate:"required"`
	RazonSocial     string  `json:"razon_social" validate:"required"`
	Direccion       *string `json:"direccion"`
	Telefono        *string `json:"telefono"`
	PersonaContacto *string `json:"persona_contacto"`
}

type ProveedorResponse struct {
	Rif             string  `json:"rif"`
	RazonSocial     string  `json:"razon_social"`
	Direccion       *string `json:"direccion,omitempty"`
	Telefono        *string `json:"telefono,omitempty"`
	PersonaContacto *string `json:"persona_contacto,omitempty"`
}

// ─── Categorias ──────────────────────────────────────────────────────────────

type CategoriaRequest struct {
	Descr string `json:"descr" validate:"required"`
	Tipo  string `json:"tipo"  validate:"required,oneof=preparado noPreparado"`
}

type CategoriaResponse struct {
	ID    string `json:"id"`
	Descr string `json:"descr"`
	Tipo  string `json:"tipo"`
}

// ─── Tasas de cambio ─────────────────────────────────────────────────────────

type TasaRequest struct {
	ValorUSDBs decimal.Decimal `json:"valor_usd_bs" validate:"required"`
	Origen     string          `json:"origen"       validate:"required,oneof=BCV Manual"`
}

type TasaResponse struct {
	ID         string          `json:"id"`
	Fecha      string          `json:"fecha"`
	ValorUSDBs decimal.Decimal `json:"valor_usd_bs"`
	Origen     string          `json:"origen"`
}

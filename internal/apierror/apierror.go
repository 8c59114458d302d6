// Package apierror define la taxonomia de errores de negocio y el envelope
// JSON con el que se responden. Todos los errores que llegan al cliente pasan
// por aqui para que la capa HTTP pueda elegir un status code sin re-derivarlo
// y sin filtrar detalles internos (stack traces, errores de DB, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ── Taxonomia de negocio ─────────────────────────────────────────────────────

// ValidationError es una violacion de regla de negocio corregible por el
// cliente: montos que no cuadran, campos cruzados faltantes, tipos invalidos.
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StockFaltante describe un producto cuyo inventario no alcanza.
type StockFaltante struct {
	CodProducto string `json:"cod_producto"`
	Disponible  int    `json:"disponible"`
	Solicitado  int    `json:"solicitado"`
}

// InsufficientStockError agrega todos los faltantes de una operacion, de modo
// que el cliente vea cada deficit y no solo el primero.
type InsufficientStockError struct {
	Faltantes []StockFaltante `json:"faltantes"`
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Faltantes))
	for _, f := range e.Faltantes {
		parts = append(parts, fmt.Sprintf("%s (disponible %d, solicitado %d)", f.CodProducto, f.Disponible, f.Solicitado))
	}
	return "stock insuficiente: " + strings.Join(parts, "; ")
}

func NewInsufficientStock(faltantes ...StockFaltante) *InsufficientStockError {
	return &InsufficientStockError{Faltantes: faltantes}
}

// DuplicateKeyError es una violacion de unicidad, con el campo y valor en
// conflicto.
type DuplicateKeyError struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("ya existe un registro con %s = %v", e.Field, e.Value)
}

func NewDuplicateKey(field string, value any) *DuplicateKeyError {
	return &DuplicateKeyError{Field: field, Value: value}
}

// IntegrityViolationError cubre fallas de integridad referencial o de
// almacenamiento no clasificadas de otra forma. Se expone como error interno.
type IntegrityViolationError struct {
	Message string `json:"message"`
}

func (e *IntegrityViolationError) Error() string { return e.Message }

func NewIntegrityViolation(message string) *IntegrityViolationError {
	return &IntegrityViolationError{Message: message}
}

// ── Mapeo HTTP ───────────────────────────────────────────────────────────────

// Response representa el cuerpo de error que ven los clientes cuando hay
// detalle estructurado (tipo, campo, faltantes).
type Response struct {
	Detail    string          `json:"detail"`
	Kind      string          `json:"kind"`
	Field     string          `json:"field,omitempty"`
	Value     any             `json:"value,omitempty"`
	Faltantes []StockFaltante `json:"faltantes,omitempty"`
}

// Status traduce cualquier error del dominio a (status HTTP, body).
// Errores fuera de la taxonomia se responden como 500 genericos.
func Status(err error) (int, any) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, &Response{Detail: ve.Error(), Kind: "validation", Field: ve.Field}
	}
	var se *InsufficientStockError
	if errors.As(err, &se) {
		return http.StatusConflict, &Response{Detail: se.Error(), Kind: "insufficient_stock", Faltantes: se.Faltantes}
	}
	var de *DuplicateKeyError
	if errors.As(err, &de) {
		return http.StatusConflict, &Response{Detail: de.Error(), Kind: "duplicate_key", Field: de.Field, Value: de.Value}
	}
	var ie *IntegrityViolationError
	if errors.As(err, &ie) {
		return http.StatusInternalServerError, &Response{Detail: "Error de integridad", Kind: "integrity_violation"}
	}
	return http.StatusInternalServerError, New("Error interno del servidor")
}

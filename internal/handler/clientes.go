package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
)

type ClientesHandler struct {
	svc service.ClienteService
}

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// CrearCliente godoc
// @Summary      Crear un cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ClienteRequest true "Cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      409  {object} apierror.Response
// @Router       /v1/clientes [post]
func (h *ClientesHandler) CrearCliente(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarClientes godoc
// @Summary      Listar clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) ListarClientes(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerCliente godoc
// @Summary      Detalle de un cliente
// @Produce      json
// @Security     BearerAuth
// @Param        ci path string true "Cedula"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{ci} [get]
func (h *ClientesHandler) ObtenerCliente(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("ci"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarCliente godoc
// @Summary      Actualizar un cliente
// @Accept       json
// @Security     BearerAuth
// @Param        ci   path string true "Cedula"
// @Param        body body dto.ClienteRequest true "Campos actualizables"
// @Success      204
// @Router       /v1/clientes/{ci} [put]
func (h *ClientesHandler) ActualizarCliente(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), c.Param("ci"), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EliminarCliente godoc
// @Summary      Eliminar un cliente
// @Security     BearerAuth
// @Param        ci path string true "Cedula"
// @Success      204
// @Router       /v1/clientes/{ci} [delete]
func (h *ClientesHandler) EliminarCliente(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("ci")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

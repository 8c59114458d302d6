package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct {
	svc service.ProveedorService
}

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// CrearProveedor godoc
// @Summary      Crear un proveedor
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProveedorRequest true "Proveedor"
// @Success      201  {object} dto.ProveedorResponse
// @Failure      409  {object} apierror.Response
// @Router       /v1/proveedores [post]
func (h *ProveedoresHandler) CrearProveedor(c *gin.Context) {
	var req dto.ProveedorRequest
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

// ListarProveedores godoc
// @Summary      Listar proveedores
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ProveedorResponse
// @Router       /v1/proveedores [get]
func (h *ProveedoresHandler) ListarProveedores(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerProveedor godoc
// @Summary      Detalle de un proveedor
// @Produce      json
// @Security     BearerAuth
// @Param        rif path string true "RIF"
// @Success      200 {object} dto.ProveedorResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{rif} [get]
func (h *ProveedoresHandler) ObtenerProveedor(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("rif"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarProveedor godoc
// @Summary      Actualizar un proveedor
// @Accept       json
// @Security     BearerAuth
// @Param        rif  path string true "RIF"
// @Param        body body dto.ProveedorRequest true "Campos actualizables"
// @Success      204
// @Router       /v1/proveedores/{rif} [put]
func (h *ProveedoresHandler) ActualizarProveedor(c *gin.Context) {
	var req dto.ProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), c.Param("rif"), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EliminarProveedor godoc
// @Summary      Eliminar un proveedor
// @Security     BearerAuth
// @Param        rif path string true "RIF"
// @Success      204
// @Router       /v1/proveedores/{rif} [delete]
func (h *ProveedoresHandler) EliminarProveedor(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("rif")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

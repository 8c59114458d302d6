package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
)

type ProductosHandler struct {
	svc service.ProductoService
}

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// CrearProducto godoc
// @Summary      Crear un producto
// @Description  Da de alta la ficha del producto y, si trae extension, su inventario inicial en la misma transaccion.
// @Tags         productos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CrearProductoRequest true "Producto"
// @Success      201  {object} dto.ProductoResponse
// @Failure      409  {object} apierror.Response
// @Router       /v1/productos [post]
func (h *ProductosHandler) CrearProducto(c *gin.Context) {
	var req dto.CrearProductoRequest
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

// ListarProductos godoc
// @Summary      Listar productos
// @Produce      json
// @Security     BearerAuth
// @Param        nombre       query string false "Busqueda por nombre"
// @Param        id_categoria query string false "UUID de la categoria"
// @Success      200 {object} dto.ProductoListResponse
// @Router       /v1/productos [get]
func (h *ProductosHandler) ListarProductos(c *gin.Context) {
	var filter dto.ProductoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerProducto godoc
// @Summary      Detalle de un producto
// @Produce      json
// @Security     BearerAuth
// @Param        cod path string true "Codigo de producto"
// @Success      200 {object} dto.ProductoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/productos/{cod} [get]
func (h *ProductosHandler) ObtenerProducto(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context(), c.Param("cod"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarProducto godoc
// @Summary      Actualizar un producto
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        cod  path string true "Codigo de producto"
// @Param        body body dto.ActualizarProductoRequest true "Campos actualizables"
// @Success      204
// @Router       /v1/productos/{cod} [put]
func (h *ProductosHandler) ActualizarProducto(c *gin.Context) {
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), c.Param("cod"), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EliminarProducto godoc
// @Summary      Eliminar un producto
// @Security     BearerAuth
// @Param        cod path string true "Codigo de producto"
// @Success      204
// @Router       /v1/productos/{cod} [delete]
func (h *ProductosHandler) EliminarProducto(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("cod")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

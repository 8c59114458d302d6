package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
)

type InventarioHandler struct {
	svc service.InventarioService
}

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// RegistrarMovimiento godoc
// @Summary      Registrar un movimiento de inventario
// @Description  Descartes, ajustes, traslados, autoconsumos o compras sueltas. Siempre deja la fila del libro junto con el ajuste de stock.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MovimientoRequest true "Movimiento"
// @Success      201  {object} dto.MovimientoResultado
// @Failure      409  {object} apierror.Response
// @Failure      422  {object} apierror.Response
// @Router       /v1/inventario/movimientos [post]
func (h *InventarioHandler) RegistrarMovimiento(c *gin.Context) {
	var req dto.MovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarMovimientos godoc
// @Summary      Listar movimientos de inventario
// @Produce      json
// @Security     BearerAuth
// @Param        cod_producto query string false "Codigo de producto"
// @Param        referencia   query string false "compra | venta | descarte | ajuste | traslado_tienda | autoconsumo"
// @Success      200 {object} dto.MovimientoListResponse
// @Router       /v1/inventario/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	var filter struct {
		CodProducto string `form:"cod_producto"`
		Referencia  string `form:"referencia"`
		Page        int    `form:"page,default=1"`
		Limit       int    `form:"limit,default=100"`
	}
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), repository.MovimientoFilter{
		CodProducto: filter.CodProducto,
		Referencia:  filter.Referencia,
		Page:        filter.Page,
		Limit:       filter.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarNoPreparado godoc
// @Summary      Dar de alta el inventario de un producto
// @Description  Crea la extension de inventario de un producto existente, con su movimiento inicial cuando trae existencia.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarNoPreparadoRequest true "Extension de inventario"
// @Success      201
// @Router       /v1/inventario/no-preparados [post]
func (h *InventarioHandler) RegistrarNoPreparado(c *gin.Context) {
	var req dto.RegistrarNoPreparadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.RegistrarNoPreparado(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// VerificarConsistencia godoc
// @Summary      Reconciliar el libro contra el stock de un producto
// @Produce      json
// @Security     BearerAuth
// @Param        cod path string true "Codigo de producto"
// @Success      200 {object} dto.ConsistenciaResponse
// @Router       /v1/inventario/consistencia/{cod} [get]
func (h *InventarioHandler) VerificarConsistencia(c *gin.Context) {
	resp, err := h.svc.VerificarConsistencia(c.Request.Context(), c.Param("cod"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AlertasStockBajo godoc
// @Summary      Productos por debajo de su stock minimo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AlertaStockItem
// @Router       /v1/inventario/alertas [get]
func (h *InventarioHandler) AlertasStockBajo(c *gin.Context) {
	alertas, err := h.svc.AlertasStockBajo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alertas)
}

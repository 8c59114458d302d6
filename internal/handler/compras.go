package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ComprasHandler struct {
	svc service.CompraService
}

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// RegistrarCompra godoc
// @Summary      Registrar una compra a proveedor
// @Description  Crea la compra con sus lineas y el movimiento de entrada de cada producto inventariable, en una transaccion.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarCompraRequest true "Compra"
// @Success      201  {object} dto.CompraResultado
// @Failure      422  {object} apierror.Response
// @Router       /v1/compras [post]
func (h *ComprasHandler) RegistrarCompra(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarCompras godoc
// @Summary      Listar compras
// @Produce      json
// @Security     BearerAuth
// @Param        rif   query string false "RIF del proveedor"
// @Param        fecha query string false "Fecha YYYY-MM-DD"
// @Success      200 {object} dto.CompraListResponse
// @Router       /v1/compras [get]
func (h *ComprasHandler) ListarCompras(c *gin.Context) {
	var filter dto.CompraFilter
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

// ObtenerCompra godoc
// @Summary      Detalle de una compra
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la compra"
// @Success      200 {object} dto.CompraResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/compras/{id} [get]
func (h *ComprasHandler) ObtenerCompra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.ObtenerDetalle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

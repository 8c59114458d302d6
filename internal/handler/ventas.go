package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/config"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/infra"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct {
	svc  service.VentaService
	repo repository.VentaRepository
	cfg  *config.Config
}

func NewVentasHandler(svc service.VentaService, repo repository.VentaRepository, cfg *config.Config) *VentasHandler {
	return &VentasHandler{svc: svc, repo: repo, cfg: cfg}
}

// RegistrarVenta godoc
// @Summary      Registrar una venta
// @Description  Despacho unificado: crea una venta de contado o a credito segun el tipo del header, en una transaccion que descuenta inventario.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Venta con detalles, pago y credito opcional"
// @Success      201  {object} dto.VentaResultado
// @Failure      409  {object} apierror.Response
// @Failure      422  {object} apierror.Response
// @Router       /v1/ventas [post]
func (h *VentasHandler) RegistrarVenta(c *gin.Context) {
	var req dto.RegistrarVentaRequest
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

// RegistrarVentaContado godoc
// @Summary      Registrar una venta de contado
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Venta de contado con su pago"
// @Success      201  {object} dto.VentaResultado
// @Router       /v1/ventas/contado [post]
func (h *VentasHandler) RegistrarVentaContado(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarContado(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarVentaCredito godoc
// @Summary      Registrar una venta a credito
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RegistrarVentaRequest true "Venta a credito con abono inicial opcional"
// @Success      201  {object} dto.VentaResultado
// @Router       /v1/ventas/credito [post]
func (h *VentasHandler) RegistrarVentaCredito(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarCredito(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarVentas godoc
// @Summary      Listar ventas
// @Produce      json
// @Security     BearerAuth
// @Param        fecha      query string false "Fecha YYYY-MM-DD"
// @Param        tipo       query string false "de_contado | credito | all"
// @Param        ci_cliente query string false "Cedula del cliente"
// @Success      200 {object} dto.VentaListResponse
// @Router       /v1/ventas [get]
func (h *VentasHandler) ListarVentas(c *gin.Context) {
	var filter dto.VentaFilter
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

// ObtenerVenta godoc
// @Summary      Detalle de una venta
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {object} dto.VentaDetailResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/ventas/{id} [get]
func (h *VentasHandler) ObtenerVenta(c *gin.Context) {
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

// GenerarRecibo godoc
// @Summary      Recibo PDF de una venta
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "UUID de la venta"
// @Success      200 {file} file
// @Router       /v1/ventas/{id}/recibo [get]
func (h *VentasHandler) GenerarRecibo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	venta, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	path, err := infra.GenerateReciboPDF(venta, h.cfg.RecibosPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, "recibo_"+venta.ID.String()[:8]+".pdf")
}

package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
)

type TasasHandler struct {
	svc service.TasaService
}

func NewTasasHandler(svc service.TasaService) *TasasHandler {
	return &TasasHandler{svc: svc}
}

// CrearTasa godoc
// @Summary      Registrar una tasa de cambio
// @Tags         tasas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.TasaRequest true "Tasa"
// @Success      201  {object} dto.TasaResponse
// @Router       /v1/tasas [post]
func (h *TasasHandler) CrearTasa(c *gin.Context) {
	var req dto.TasaRequest
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

// ListarTasas godoc
// @Summary      Listar tasas de cambio
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.TasaResponse
// @Router       /v1/tasas [get]
func (h *TasasHandler) ListarTasas(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TasaVigente godoc
// @Summary      Tasa de cambio vigente
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.TasaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/tasas/vigente [get]
func (h *TasasHandler) TasaVigente(c *gin.Context) {
	resp, err := h.svc.Vigente(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

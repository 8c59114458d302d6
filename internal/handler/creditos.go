package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreditosHandler struct {
	repo repository.CreditoRepository
}

func NewCreditosHandler(repo repository.CreditoRepository) *CreditosHandler {
	return &CreditosHandler{repo: repo}
}

// ObtenerCredito godoc
// @Summary      Detalle de un credito
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del credito"
// @Success      200 {object} dto.CreditoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/creditos/{id} [get]
func (h *CreditosHandler) ObtenerCredito(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	credito, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, creditoResponse(credito))
}

// ListarCreditosCliente godoc
// @Summary      Creditos de un cliente
// @Produce      json
// @Security     BearerAuth
// @Param        ci path string true "Cedula del cliente"
// @Success      200 {array} dto.CreditoResponse
// @Router       /v1/creditos/cliente/{ci} [get]
func (h *CreditosHandler) ListarCreditosCliente(c *gin.Context) {
	creditos, err := h.repo.ListByCliente(c.Request.Context(), c.Param("ci"))
	if err != nil {
		respondError(c, err)
		return
	}
	items := make([]dto.CreditoResponse, 0, len(creditos))
	for i := range creditos {
		items = append(items, creditoResponse(&creditos[i]))
	}
	c.JSON(http.StatusOK, items)
}

func creditoResponse(cr *model.Credito) dto.CreditoResponse {
	return dto.CreditoResponse{
		ID:               cr.ID.String(),
		CICliente:        cr.CICliente,
		IDVenta:          cr.IDVenta.String(),
		FechaCredito:     cr.FechaCredito,
		FechaUltimoAbono: cr.FechaUltimoAbono,
		MontoTotal:       cr.MontoTotal,
		MontoPagado:      cr.MontoPagado,
		Estado:           cr.Estado,
	}
}

package handler

import (
	"net/http"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoriasHandler struct {
	svc service.CategoriaService
}

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// CrearCategoria godoc
// @Summary      Crear una categoria de producto
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CategoriaRequest true "Categoria"
// @Success      201  {object} dto.CategoriaResponse
// @Failure      409  {object} apierror.Response
// @Router       /v1/categorias [post]
func (h *CategoriasHandler) CrearCategoria(c *gin.Context) {
	var req dto.CategoriaRequest
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

// ListarCategorias godoc
// @Summary      Listar categorias
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.CategoriaResponse
// @Router       /v1/categorias [get]
func (h *CategoriasHandler) ListarCategorias(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarCategoria godoc
// @Summary      Actualizar una categoria
// @Accept       json
// @Security     BearerAuth
// @Param        id   path string true "UUID"
// @Param        body body dto.CategoriaRequest true "Campos actualizables"
// @Success      204
// @Router       /v1/categorias/{id} [put]
func (h *CategoriasHandler) ActualizarCategoria(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.CategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EliminarCategoria godoc
// @Summary      Eliminar una categoria
// @Security     BearerAuth
// @Param        id path string true "UUID"
// @Success      204
// @Router       /v1/categorias/{id} [delete]
func (h *CategoriasHandler) EliminarCategoria(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

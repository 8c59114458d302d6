package service

import (
	"context"
	"time"

	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
)

// Servicios finos sobre las entidades de referencia. Sin reglas de negocio
// mas alla del mapeo DTO; las restricciones de unicidad e integridad las
// traduce el repositorio generico.

// ── Clientes ─────────────────────────────────────────────────────────────────

type ClienteService interface {
	Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error)
	Obtener(ctx context.Context, ci string) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, ci string, req dto.ClienteRequest) error
	Eliminar(ctx context.Context, ci string) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		CICliente:    req.CICliente,
		Nombre:       req.Nombre,
		Telefono:     req.Telefono,
		DeptoEscuela: req.DeptoEscuela,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Obtener(ctx context.Context, ci string) (*dto.ClienteResponse, error) {
	c, err := s.repo.GetByKey(ctx, ci)
	if err != nil {
		return nil, err
	}
	resp := clienteToResponse(c)
	return &resp, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		items = append(items, clienteToResponse(&clientes[i]))
	}
	return items, nil
}

func (s *clienteService) Actualizar(ctx context.Context, ci string, req dto.ClienteRequest) error {
	return s.repo.Update(ctx, ci, &model.Cliente{
		CICliente:    ci,
		Nombre:       req.Nombre,
		Telefono:     req.Telefono,
		DeptoEscuela: req.DeptoEscuela,
	})
}

func (s *clienteService) Eliminar(ctx context.Context, ci string) error {
	return s.repo.Delete(ctx, ci)
}

func clienteToResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		CICliente:    c.CICliente,
		Nombre:       c.Nombre,
		Telefono:     c.Telefono,
		DeptoEscuela: c.DeptoEscuela,
	}
}

// ── Proveedores ──────────────────────────────────────────────────────────────

type ProveedorService interface {
	Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error)
	Obtener(ctx context.Context, rif string) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, rif string, req dto.ProveedorRequest) error
	Eliminar(ctx context.Context, rif string) error
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	p := &model.Proveedor{
		Rif:             req.Rif,
		RazonSocial:     req.RazonSocial,
		Direccion:       req.Direccion,
		Telefono:        req.Telefono,
		PersonaContacto: req.PersonaContacto,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Obtener(ctx context.Context, rif string) (*dto.ProveedorResponse, error) {
	p, err := s.repo.GetByKey(ctx, rif)
	if err != nil {
		return nil, err
	}
	resp := proveedorToResponse(p)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		items = append(items, proveedorToResponse(&proveedores[i]))
	}
	return items, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, rif string, req dto.ProveedorRequest) error {
	return s.repo.Update(ctx, rif, &model.Proveedor{
		Rif:             rif,
		RazonSocial:     req.RazonSocial,
		Direccion:       req.Direccion,
		Telefono:        req.Telefono,
		PersonaContacto: req.PersonaContacto,
	})
}

func (s *proveedorService) Eliminar(ctx context.Context, rif string) error {
	return s.repo.Delete(ctx, rif)
}

func proveedorToResponse(p *model.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		Rif:             p.Rif,
		RazonSocial:     p.RazonSocial,
		Direccion:       p.Direccion,
		Telefono:        p.Telefono,
		PersonaContacto: p.PersonaContacto,
	}
}

// ── Categorias ───────────────────────────────────────────────────────────────

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id any, req dto.CategoriaRequest) error
	Eliminar(ctx context.Context, id any) error
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CategoriaRequest) (*dto.CategoriaResponse, error) {
	c := &model.CategoriaProducto{Descr: req.Descr, Tipo: req.Tipo}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoriaResponse{ID: c.ID.String(), Descr: c.Descr, Tipo: c.Tipo}, nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		items = append(items, dto.CategoriaResponse{ID: c.ID.String(), Descr: c.Descr, Tipo: c.Tipo})
	}
	return items, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id any, req dto.CategoriaRequest) error {
	return s.repo.Update(ctx, id, &model.CategoriaProducto{Descr: req.Descr, Tipo: req.Tipo})
}

func (s *categoriaService) Eliminar(ctx context.Context, id any) error {
	return s.repo.Delete(ctx, id)
}

// ── Tasas de cambio ──────────────────────────────────────────────────────────

type TasaService interface {
	Crear(ctx context.Context, req dto.TasaRequest) (*dto.TasaResponse, error)
	Listar(ctx context.Context) ([]dto.TasaResponse, error)
	Vigente(ctx context.Context) (*dto.TasaResponse, error)
}

type tasaService struct {
	repo repository.TasaRepository
}

func NewTasaService(repo repository.TasaRepository) TasaService {
	return &tasaService{repo: repo}
}

func (s *tasaService) Crear(ctx context.Context, req dto.TasaRequest) (*dto.TasaResponse, error) {
	t := &model.TasaCambio{
		Fecha:      time.Now(),
		ValorUSDBs: req.ValorUSDBs,
		Origen:     req.Origen,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := tasaToResponse(t)
	return &resp, nil
}

func (s *tasaService) Listar(ctx context.Context) ([]dto.TasaResponse, error) {
	tasas, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TasaResponse, 0, len(tasas))
	for i := range tasas {
		items = append(items, tasaToResponse(&tasas[i]))
	}
	return items, nil
}

func (s *tasaService) Vigente(ctx context.Context) (*dto.TasaResponse, error) {
	t, err := s.repo.Vigente(ctx)
	if err != nil {
		return nil, err
	}
	resp := tasaToResponse(t)
	return &resp, nil
}

func tasaToResponse(t *model.TasaCambio) dto.TasaResponse {
	return dto.TasaResponse{
		ID:         t.ID.String(),
		Fecha:      t.Fecha.Format(time.RFC3339),
		ValorUSDBs: t.ValorUSDBs,
		Origen:     t.Origen,
	}
}

package service

import (
	"context"

	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductoService interface {
	// Crear da de alta el producto y, si viene la extension, su inventario
	// inicial en la misma transaccion.
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Obtener(ctx context.Context, cod string) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, cod string, req dto.ActualizarProductoRequest) error
	Eliminar(ctx context.Context, cod string) error
}

type productoService struct {
	repo       repository.ProductoRepository
	inventario InventarioService
}

func NewProductoService(repo repository.ProductoRepository, inventario InventarioService) ProductoService {
	return &productoService{repo: repo, inventario: inventario}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		CodProducto: req.CodProducto,
		Nombre:      req.Nombre,
		PrecioUSD:   req.PrecioUSD,
		Img:         req.Img,
	}
	if req.IDCategoria != nil {
		id, err := uuid.Parse(*req.IDCategoria)
		if err == nil {
			p.IDCategoria = &id
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, p); err != nil {
			return err
		}
		if req.NoPreparado == nil {
			return nil
		}
		return s.inventario.RegistrarNoPreparadoTx(ctx, tx, dto.RegistrarNoPreparadoRequest{
			CodProducto:  req.CodProducto,
			CantMin:      req.NoPreparado.CantMin,
			CantActual:   req.NoPreparado.CantActual,
			CostoCompra:  req.NoPreparado.CostoCompra,
			UnidadMedida: req.NoPreparado.UnidadMedida,
			RifProveedor: req.NoPreparado.RifProveedor,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Obtener(ctx, req.CodProducto)
}

func (s *productoService) Obtener(ctx context.Context, cod string) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByCod(ctx, cod)
	if err != nil {
		return nil, err
	}
	resp := productoToResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	productos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		items = append(items, productoToResponse(&productos[i]))
	}
	return &dto.ProductoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productoService) Actualizar(ctx context.Context, cod string, req dto.ActualizarProductoRequest) error {
	p := &model.Producto{
		CodProducto: cod,
		Nombre:      req.Nombre,
		PrecioUSD:   req.PrecioUSD,
		Img:         req.Img,
	}
	if req.IDCategoria != nil {
		if id, err := uuid.Parse(*req.IDCategoria); err == nil {
			p.IDCategoria = &id
		}
	}
	return s.repo.Update(ctx, p)
}

func (s *productoService) Eliminar(ctx context.Context, cod string) error {
	return s.repo.Delete(ctx, cod)
}

func productoToResponse(p *model.Producto) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		CodProducto: p.CodProducto,
		Nombre:      p.Nombre,
		PrecioUSD:   p.PrecioUSD,
		Img:         p.Img,
		CreatedAt:   p.CreatedAt,
	}
	if p.IDCategoria != nil {
		id := p.IDCategoria.String()
		resp.IDCategoria = &id
	}
	if p.Categoria != nil {
		resp.Categoria = &p.Categoria.Descr
	}
	if p.NoPreparado != nil {
		resp.NoPreparado = &dto.NoPreparadoResponse{
			CantMin:      p.NoPreparado.CantMin,
			CantActual:   p.NoPreparado.CantActual,
			CostoCompra:  p.NoPreparado.CostoCompra,
			UnidadMedida: p.NoPreparado.UnidadMedida,
			RifProveedor: p.NoPreparado.RifProveedor,
		}
	}
	return resp
}

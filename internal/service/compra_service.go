package service

import (
	"context"
	"errors"
	"time"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompraService interface {
	// Registrar crea la compra y, por cada linea inventariable, el movimiento
	// de entrada correspondiente, todo en una transaccion.
	Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResultado, error)
	ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error)
	Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
}

type compraService struct {
	repo          repository.CompraRepository
	proveedorRepo repository.ProveedorRepository
	productoRepo  repository.ProductoRepository
	inventario    InventarioService
}

func NewCompraService(
	repo repository.CompraRepository,
	proveedorRepo repository.ProveedorRepository,
	productoRepo repository.ProductoRepository,
	inventario InventarioService,
) CompraService {
	return &compraService{
		repo:          repo,
		proveedorRepo: proveedorRepo,
		productoRepo:  productoRepo,
		inventario:    inventario,
	}
}

func (s *compraService) Registrar(ctx context.Context, req dto.RegistrarCompraRequest) (*dto.CompraResultado, error) {
	ok, err := s.proveedorRepo.Exists(ctx, req.Rif)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.NewValidation("rif", "el proveedor no existe")
	}

	// El gasto declarado debe calzar con la suma de las lineas.
	suma := decimal.Zero
	for _, d := range req.Detalles {
		suma = suma.Add(d.MontoUnitario.Mul(decimal.NewFromInt(int64(d.CantComprada))))
	}
	if suma.Sub(req.GastoTotal).Abs().GreaterThan(toleranciaBs) {
		return nil, apierror.NewValidation("gasto_total", "no coincide con la suma de los detalles")
	}

	// Resolucion de productos fuera de la transaccion; solo las lineas
	// inventariables generan movimiento.
	type lineaEntrada struct {
		codProducto string
		cantidad    int
		costo       decimal.Decimal
	}
	var entradas []lineaEntrada
	for _, d := range req.Detalles {
		p, err := s.productoRepo.FindByCod(ctx, d.CodProducto)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apierror.NewValidation("cod_producto", "el producto "+d.CodProducto+" no existe")
			}
			return nil, err
		}
		if !p.Inventariable() {
			continue
		}
		entradas = append(entradas, lineaEntrada{
			codProducto: d.CodProducto,
			cantidad:    d.CantComprada,
			costo:       d.MontoUnitario,
		})
	}

	fecha := time.Now()
	if req.Fecha != nil {
		fecha = *req.Fecha
	}

	compra := &model.Compra{
		Fecha:      fecha,
		Rif:        req.Rif,
		GastoTotal: req.GastoTotal,
	}
	for _, d := range req.Detalles {
		compra.Detalles = append(compra.Detalles, model.DetalleCompra{
			CodProducto:   d.CodProducto,
			CantComprada:  d.CantComprada,
			MontoUnitario: d.MontoUnitario,
		})
	}

	stockActualizado := make(map[string]int)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, compra); err != nil {
			return err
		}
		for _, e := range entradas {
			costo := e.costo
			compraID := compra.ID
			mov := &model.MovimientoInventario{
				CodProducto:    e.codProducto,
				Referencia:     model.RefCompra,
				TipoMovimiento: model.MovEntrada,
				CantMovida:     e.cantidad,
				CostoUnitario:  &costo,
				CompraID:       &compraID,
			}
			actual, err := s.inventario.AplicarMovimientoTx(ctx, tx, mov)
			if err != nil {
				return err
			}
			stockActualizado[e.codProducto] = actual
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.CompraResultado{
		Success:          true,
		IDCompra:         compra.ID.String(),
		StockActualizado: stockActualizado,
	}, nil
}

func (s *compraService) ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.CompraResponse, error) {
	compra, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := compraToResponse(compra)
	return &resp, nil
}

func (s *compraService) Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	compras, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		items = append(items, compraToResponse(&compras[i]))
	}
	return &dto.CompraListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func compraToResponse(c *model.Compra) dto.CompraResponse {
	resp := dto.CompraResponse{
		ID:         c.ID.String(),
		Fecha:      c.Fecha,
		Rif:        c.Rif,
		GastoTotal: c.GastoTotal,
	}
	for _, d := range c.Detalles {
		resp.Detalles = append(resp.Detalles, dto.DetalleCompraResponse{
			CodProducto:   d.CodProducto,
			CantComprada:  d.CantComprada,
			MontoUnitario: d.MontoUnitario,
		})
	}
	return resp
}

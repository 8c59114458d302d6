package service

import (
	"context"
	"errors"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
	"gorm.io/gorm"
)

// InventarioService es el unico camino de mutacion de stock del sistema.
// Toda operacion que toca productos_no_preparados.cant_actual pasa por
// AplicarMovimientoTx, que deja siempre la fila del libro junto con el
// ajuste del contador dentro de la misma transaccion.
type InventarioService interface {
	// AplicarMovimientoTx valida y aplica un movimiento dentro de la
	// transaccion tx. Devuelve el stock resultante del producto.
	AplicarMovimientoTx(ctx context.Context, tx *gorm.DB, mov *model.MovimientoInventario) (int, error)

	// RegistrarMovimiento aplica un movimiento suelto (descarte, ajuste,
	// traslado_tienda, autoconsumo, compra sin orden) en su propia transaccion.
	RegistrarMovimiento(ctx context.Context, req dto.MovimientoRequest) (*dto.MovimientoResultado, error)

	// RegistrarNoPreparado da de alta la extension de inventario de un
	// producto existente, con su movimiento inicial cuando cant_actual > 0.
	RegistrarNoPreparado(ctx context.Context, req dto.RegistrarNoPreparadoRequest) error
	RegistrarNoPreparadoTx(ctx context.Context, tx *gorm.DB, req dto.RegistrarNoPreparadoRequest) error

	ListarMovimientos(ctx context.Context, filter repository.MovimientoFilter) (*dto.MovimientoListResponse, error)

	// VerificarConsistencia reconcilia el libro contra el stock materializado.
	VerificarConsistencia(ctx context.Context, cod string) (*dto.ConsistenciaResponse, error)

	// AlertasStockBajo lista los productos con cant_actual < cant_min.
	AlertasStockBajo(ctx context.Context) ([]dto.AlertaStockItem, error)
}

type inventarioService struct {
	productoRepo   repository.ProductoRepository
	movimientoRepo repository.MovimientoRepository
}

func NewInventarioService(
	productoRepo repository.ProductoRepository,
	movimientoRepo repository.MovimientoRepository,
) InventarioService {
	return &inventarioService{
		productoRepo:   productoRepo,
		movimientoRepo: movimientoRepo,
	}
}

var referenciasValidas = map[string]bool{
	model.RefCompra:         true,
	model.RefVenta:          true,
	model.RefDescarte:       true,
	model.RefAjuste:         true,
	model.RefTrasladoTienda: true,
	model.RefAutoconsumo:    true,
}

// validarMovimiento aplica las reglas cruzadas de un movimiento antes de
// tocar el almacenamiento.
func validarMovimiento(mov *model.MovimientoInventario) error {
	if mov.CantMovida <= 0 {
		return apierror.NewValidation("cant_movida", "debe ser mayor que cero")
	}
	if mov.TipoMovimiento != model.MovEntrada && mov.TipoMovimiento != model.MovSalida {
		return apierror.NewValidation("tipo_movimiento", "debe ser entrada o salida")
	}
	if !referenciasValidas[mov.Referencia] {
		return apierror.NewValidation("referencia", "referencia de movimiento desconocida")
	}
	if mov.Referencia == model.RefCompra {
		if mov.CostoUnitario == nil {
			return apierror.NewValidation("costo_unitario", "obligatorio cuando la referencia es compra")
		}
		if mov.TipoMovimiento != model.MovEntrada {
			return apierror.NewValidation("tipo_movimiento", "una compra solo admite entradas")
		}
	}
	if mov.Referencia == model.RefVenta && mov.TipoMovimiento != model.MovSalida {
		return apierror.NewValidation("tipo_movimiento", "una venta solo admite salidas")
	}
	return nil
}

func (s *inventarioService) AplicarMovimientoTx(ctx context.Context, tx *gorm.DB, mov *model.MovimientoInventario) (int, error) {
	if err := validarMovimiento(mov); err != nil {
		return 0, err
	}

	// El producto debe ser inventariable: sin extension no hay stock que mover.
	if _, err := s.productoRepo.FindNoPreparadoTx(tx, mov.CodProducto); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NewValidation("cod_producto", "el producto no es inventariable")
		}
		return 0, err
	}

	switch mov.TipoMovimiento {
	case model.MovSalida:
		// El UPDATE condicionado es la verificacion de stock: si no afecta
		// filas es porque cant_actual < cant_movida en este instante.
		rows, err := s.productoRepo.DescontarInventarioTx(tx, mov.CodProducto, mov.CantMovida)
		if err != nil {
			return 0, err
		}
		if rows == 0 {
			disponible, err := s.productoRepo.CantActualTx(tx, mov.CodProducto)
			if err != nil {
				return 0, err
			}
			return 0, apierror.NewInsufficientStock(apierror.StockFaltante{
				CodProducto: mov.CodProducto,
				Disponible:  disponible,
				Solicitado:  mov.CantMovida,
			})
		}
	case model.MovEntrada:
		if err := s.productoRepo.IncrementarInventarioTx(tx, mov.CodProducto, mov.CantMovida); err != nil {
			return 0, err
		}
	}

	if err := s.movimientoRepo.CreateTx(tx, mov); err != nil {
		return 0, err
	}

	return s.productoRepo.CantActualTx(tx, mov.CodProducto)
}

func (s *inventarioService) RegistrarMovimiento(ctx context.Context, req dto.MovimientoRequest) (*dto.MovimientoResultado, error) {
	mov := &model.MovimientoInventario{
		CodProducto:    req.CodProducto,
		Referencia:     req.Referencia,
		TipoMovimiento: req.TipoMovimiento,
		CantMovida:     req.CantMovida,
		CostoUnitario:  req.CostoUnitario,
		Comentario:     req.Comentario,
	}

	var stock int
	txErr := runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		var err error
		stock, err = s.AplicarMovimientoTx(ctx, tx, mov)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.MovimientoResultado{
		Success:      true,
		IDMovimiento: mov.ID.String(),
		CodProducto:  mov.CodProducto,
		StockActual:  stock,
	}, nil
}

func (s *inventarioService) RegistrarNoPreparado(ctx context.Context, req dto.RegistrarNoPreparadoRequest) error {
	return runTx(ctx, s.productoRepo.DB(), func(tx *gorm.DB) error {
		return s.RegistrarNoPreparadoTx(ctx, tx, req)
	})
}

// RegistrarNoPreparadoTx crea la extension con stock en cero y aplica el
// movimiento inicial de ajuste cuando hay existencia de arranque, de modo que
// el libro reconcilie desde la primera fila.
func (s *inventarioService) RegistrarNoPreparadoTx(ctx context.Context, tx *gorm.DB, req dto.RegistrarNoPreparadoRequest) error {
	if _, err := s.productoRepo.FindNoPreparadoTx(tx, req.CodProducto); err == nil {
		return apierror.NewDuplicateKey("cod_producto", req.CodProducto)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	np := &model.ProductoNoPreparado{
		CodProducto:  req.CodProducto,
		CantMin:      req.CantMin,
		CantActual:   0,
		CostoCompra:  req.CostoCompra,
		UnidadMedida: req.UnidadMedida,
		RifProveedor: req.RifProveedor,
	}
	if err := s.productoRepo.CreateNoPreparadoTx(tx, np); err != nil {
		return err
	}

	if req.CantActual > 0 {
		mov := &model.MovimientoInventario{
			CodProducto:    req.CodProducto,
			Referencia:     model.RefAjuste,
			TipoMovimiento: model.MovEntrada,
			CantMovida:     req.CantActual,
			Comentario:     "existencia inicial",
		}
		if _, err := s.AplicarMovimientoTx(ctx, tx, mov); err != nil {
			return err
		}
	}
	return nil
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter repository.MovimientoFilter) (*dto.MovimientoListResponse, error) {
	movs, total, err := s.movimientoRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dto.MovimientoResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, dto.MovimientoResponse{
			ID:             m.ID.String(),
			CodProducto:    m.CodProducto,
			Referencia:     m.Referencia,
			TipoMovimiento: m.TipoMovimiento,
			CantMovida:     m.CantMovida,
			CostoUnitario:  m.CostoUnitario,
			Comentario:     m.Comentario,
			CreatedAt:      m.CreatedAt,
		})
	}
	return &dto.MovimientoListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *inventarioService) VerificarConsistencia(ctx context.Context, cod string) (*dto.ConsistenciaResponse, error) {
	np, err := s.productoRepo.FindNoPreparado(ctx, cod)
	if err != nil {
		return nil, err
	}
	suma, err := s.movimientoRepo.SumDeltas(ctx, cod)
	if err != nil {
		return nil, err
	}
	return &dto.ConsistenciaResponse{
		CodProducto:     cod,
		CantActual:      np.CantActual,
		SumaMovimientos: suma,
		Consistente:     np.CantActual == suma,
	}, nil
}

func (s *inventarioService) AlertasStockBajo(ctx context.Context) ([]dto.AlertaStockItem, error) {
	nps, err := s.productoRepo.ListBajoMinimo(ctx)
	if err != nil {
		return nil, err
	}
	alertas := make([]dto.AlertaStockItem, 0, len(nps))
	for _, np := range nps {
		alertas = append(alertas, dto.AlertaStockItem{
			CodProducto: np.CodProducto,
			CantActual:  np.CantActual,
			CantMin:     np.CantMin,
		})
	}
	return alertas, nil
}

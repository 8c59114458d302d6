package service

import (
	"context"
	"errors"
	"time"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/Hjanner/2MS/internal/worker"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// toleranciaBs absorbe el redondeo de los montos en bolivares. Los montos en
// USD de un credito se comparan exactos.
var toleranciaBs = decimal.NewFromFloat(0.01)

type VentaService interface {
	// Registrar despacha al orquestador segun el tipo declarado en el header.
	Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResultado, error)
	RegistrarContado(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResultado, error)
	RegistrarCredito(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResultado, error)
	ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.VentaDetailResponse, error)
	Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	creditoRepo  repository.CreditoRepository
	productoRepo repository.ProductoRepository
	clienteRepo  repository.ClienteRepository
	tasaRepo     repository.TasaRepository
	inventario   InventarioService
	dispatcher   *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	creditoRepo repository.CreditoRepository,
	productoRepo repository.ProductoRepository,
	clienteRepo repository.ClienteRepository,
	tasaRepo repository.TasaRepository,
	inventario InventarioService,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:         repo,
		creditoRepo:  creditoRepo,
		productoRepo: productoRepo,
		clienteRepo:  clienteRepo,
		tasaRepo:     tasaRepo,
		inventario:   inventario,
		dispatcher:   dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Registrar (despacho unificado) ───────────────────────────────────────────

func (s *ventaService) Registrar(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResultado, error) {
	switch req.Venta.Tipo {
	case model.VentaContado:
		return s.RegistrarContado(ctx, req)
	case model.VentaCredito:
		return s.RegistrarCredito(ctx, req)
	default:
		return nil, apierror.NewValidation("tipo", "debe ser de_contado o credito")
	}
}

// ── RegistrarContado ─────────────────────────────────────────────────────────
// Pre-flight completo fuera de la transaccion (montos, cliente, stock);
// luego una unica transaccion crea venta + detalles + pago y descuenta el
// inventario por el motor de movimientos. Cualquier falla revierte todo.

func (s *ventaService) RegistrarContado(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResultado, error) {
	if req.Venta.Tipo != model.VentaContado {
		return nil, apierror.NewValidation("tipo", "la venta no es de contado")
	}
	if req.Pago == nil {
		return nil, apierror.NewValidation("pago", "una venta de contado requiere el pago completo")
	}
	if req.Credito != nil {
		return nil, apierror.NewValidation("credito", "una venta de contado no admite credito")
	}
	if err := s.validarMontos(req); err != nil {
		return nil, err
	}
	// El pago de contado cubre el total exacto.
	if req.Pago.Monto.Sub(req.Venta.MontoTotalBs).Abs().GreaterThan(toleranciaBs) {
		return nil, apierror.NewValidation("pago.monto", "el pago no coincide con el monto total de la venta")
	}
	if err := s.validarCliente(ctx, req.Venta.CICliente, false); err != nil {
		return nil, err
	}

	inventariables, err := s.preflightStock(ctx, req.Detalles)
	if err != nil {
		return nil, err
	}

	venta, pago := s.armarVenta(ctx, req)

	stockActualizado := make(map[string]int)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, venta); err != nil {
			return err
		}
		return s.descontarInventariables(ctx, tx, venta.ID, inventariables, stockActualizado)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.despacharAlertas(ctx, stockActualizado, inventariables)

	resultado := &dto.VentaResultado{
		Success:          true,
		Message:          "venta registrada",
		IDVenta:          venta.ID.String(),
		StockActualizado: stockActualizado,
	}
	if pago != nil {
		id := pago.ID.String()
		resultado.IDPago = &id
	}
	return resultado, nil
}

// ── RegistrarCredito ─────────────────────────────────────────────────────────
// Igual que la venta de contado mas la apertura del credito. El monto del
// credito debe calzar exacto con el total en USD de la venta; el abono
// inicial, cuando existe, no puede exceder el total en bolivares.

func (s *ventaService) RegistrarCredito(ctx context.Context, req dto.RegistrarVentaRequest) (*dto.VentaResultado, error) {
	if req.Venta.Tipo != model.VentaCredito {
		return nil, apierror.NewValidation("tipo", "la venta no es a credito")
	}
	if req.Credito == nil {
		return nil, apierror.NewValidation("credito", "una venta a credito requiere los datos del credito")
	}
	if err := s.validarMontos(req); err != nil {
		return nil, err
	}
	if !req.Credito.MontoTotal.Equal(req.Venta.MontoTotalUSD) {
		return nil, apierror.NewValidation("credito.monto_total", "no coincide con el monto total en USD de la venta")
	}
	if req.Pago != nil && req.Pago.Monto.GreaterThan(req.Venta.MontoTotalBs.Add(toleranciaBs)) {
		return nil, apierror.NewValidation("pago.monto", "el abono inicial excede el monto total de la venta")
	}
	if err := s.validarCliente(ctx, req.Venta.CICliente, true); err != nil {
		return nil, err
	}

	inventariables, err := s.preflightStock(ctx, req.Detalles)
	if err != nil {
		return nil, err
	}

	venta, pago := s.armarVenta(ctx, req)
	credito := s.armarCredito(req, venta)

	stockActualizado := make(map[string]int)
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, venta); err != nil {
			return err
		}
		credito.IDVenta = venta.ID
		if err := s.creditoRepo.CreateTx(tx, credito); err != nil {
			return err
		}
		return s.descontarInventariables(ctx, tx, venta.ID, inventariables, stockActualizado)
	})
	if txErr != nil {
		return nil, txErr
	}

	s.despacharAlertas(ctx, stockActualizado, inventariables)

	idCredito := credito.ID.String()
	resultado := &dto.VentaResultado{
		Success:          true,
		Message:          "venta a credito registrada",
		IDVenta:          venta.ID.String(),
		IDCredito:        &idCredito,
		StockActualizado: stockActualizado,
	}
	if pago != nil {
		id := pago.ID.String()
		resultado.IDPago = &id
	}
	return resultado, nil
}

// ── Validaciones pre-flight ──────────────────────────────────────────────────

// validarMontos cruza la suma de los detalles contra el total declarado.
func (s *ventaService) validarMontos(req dto.RegistrarVentaRequest) error {
	suma := decimal.Zero
	for _, d := range req.Detalles {
		suma = suma.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	if suma.Sub(req.Venta.MontoTotalBs).Abs().GreaterThan(toleranciaBs) {
		return apierror.NewValidation("monto_total_bs", "no coincide con la suma de los detalles")
	}
	return nil
}

func (s *ventaService) validarCliente(ctx context.Context, ci *string, obligatorio bool) error {
	if ci == nil || *ci == "" {
		if obligatorio {
			return apierror.NewValidation("ci_cliente", "una venta a credito requiere cliente")
		}
		return nil
	}
	ok, err := s.clienteRepo.Exists(ctx, *ci)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.NewValidation("ci_cliente", "el cliente no existe")
	}
	return nil
}

// detalleInventariable es una linea que descuenta stock; las lineas de
// productos preparados no generan movimiento.
type detalleInventariable struct {
	codProducto string
	cantidad    int
	cantMin     int
}

// preflightStock resuelve cada producto y agrega TODOS los deficits de stock
// en un solo InsufficientStockError, para que el cliente vea la falla
// completa y no solo la primera linea.
func (s *ventaService) preflightStock(ctx context.Context, detalles []dto.DetalleVentaRequest) ([]detalleInventariable, error) {
	var inventariables []detalleInventariable
	var faltantes []apierror.StockFaltante

	for _, d := range detalles {
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
		if p.NoPreparado.CantActual < d.Cantidad {
			faltantes = append(faltantes, apierror.StockFaltante{
				CodProducto: d.CodProducto,
				Disponible:  p.NoPreparado.CantActual,
				Solicitado:  d.Cantidad,
			})
			continue
		}
		inventariables = append(inventariables, detalleInventariable{
			codProducto: d.CodProducto,
			cantidad:    d.Cantidad,
			cantMin:     p.NoPreparado.CantMin,
		})
	}

	if len(faltantes) > 0 {
		return nil, apierror.NewInsufficientStock(faltantes...)
	}
	return inventariables, nil
}

// ── Construccion de modelos ──────────────────────────────────────────────────

func (s *ventaService) armarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (*model.Venta, *model.Pago) {
	fechaHora := time.Now()
	if req.Venta.FechaHora != nil {
		fechaHora = *req.Venta.FechaHora
	}

	venta := &model.Venta{
		MontoTotalBs:  req.Venta.MontoTotalBs,
		MontoTotalUSD: req.Venta.MontoTotalUSD,
		FechaHora:     fechaHora,
		Tipo:          req.Venta.Tipo,
		CICliente:     req.Venta.CICliente,
	}

	if req.Venta.IDTasa != nil {
		if id, err := uuid.Parse(*req.Venta.IDTasa); err == nil {
			venta.IDTasa = &id
		}
	} else if tasa, err := s.tasaRepo.Vigente(ctx); err == nil {
		venta.IDTasa = &tasa.ID
	}

	for _, d := range req.Detalles {
		venta.Detalles = append(venta.Detalles, model.DetalleVenta{
			CodProducto:    d.CodProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
		})
	}

	var pago *model.Pago
	if req.Pago != nil {
		fechaPago := fechaHora
		if req.Pago.FechaPago != nil {
			fechaPago = *req.Pago.FechaPago
		}
		venta.Pagos = append(venta.Pagos, model.Pago{
			Monto:       req.Pago.Monto,
			FechaPago:   fechaPago,
			MetodoPago:  req.Pago.MetodoPago,
			Referencia:  req.Pago.Referencia,
			NumTelefono: req.Pago.NumTelefono,
		})
		pago = &venta.Pagos[0]
	}
	return venta, pago
}

// armarCredito construye el credito; cuando el payload no trae estado, se
// deriva del abono inicial.
func (s *ventaService) armarCredito(req dto.RegistrarVentaRequest, venta *model.Venta) *model.Credito {
	fechaCredito := venta.FechaHora
	if req.Credito.FechaCredito != nil {
		fechaCredito = *req.Credito.FechaCredito
	}

	montoPagado := req.Credito.MontoPagado
	if montoPagado.IsZero() && req.Pago != nil {
		montoPagado = req.Pago.Monto
	}

	estado := req.Credito.Estado
	if estado == "" {
		switch {
		case montoPagado.IsZero():
			estado = model.CreditoPendiente
		case montoPagado.GreaterThanOrEqual(venta.MontoTotalBs):
			estado = model.CreditoPagado
		default:
			estado = model.CreditoParcial
		}
	}

	credito := &model.Credito{
		CICliente:    derefStr(venta.CICliente),
		FechaCredito: fechaCredito,
		MontoTotal:   req.Credito.MontoTotal,
		MontoPagado:  montoPagado,
		Estado:       estado,
	}
	if !montoPagado.IsZero() {
		credito.FechaUltimoAbono = &fechaCredito
	}
	return credito
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ── Descuento de inventario dentro de la transaccion ─────────────────────────

func (s *ventaService) descontarInventariables(ctx context.Context, tx *gorm.DB, idVenta uuid.UUID, detalles []detalleInventariable, stock map[string]int) error {
	for _, d := range detalles {
		mov := &model.MovimientoInventario{
			CodProducto:    d.codProducto,
			Referencia:     model.RefVenta,
			TipoMovimiento: model.MovSalida,
			CantMovida:     d.cantidad,
			Comentario:     "venta " + idVenta.String(),
		}
		actual, err := s.inventario.AplicarMovimientoTx(ctx, tx, mov)
		if err != nil {
			return err
		}
		stock[d.codProducto] = actual
	}
	return nil
}

// despacharAlertas encola, despues del commit, una alerta por cada producto
// que quedo por debajo de su minimo. Best effort: una cola caida no afecta la
// venta ya registrada.
func (s *ventaService) despacharAlertas(ctx context.Context, stock map[string]int, detalles []detalleInventariable) {
	if s.dispatcher == nil {
		return
	}
	for _, d := range detalles {
		actual, ok := stock[d.codProducto]
		if !ok || actual >= d.cantMin {
			continue
		}
		_ = s.dispatcher.EnqueueAlertaStock(ctx, worker.AlertaStockPayload{
			CodProducto: d.codProducto,
			CantActual:  actual,
			CantMin:     d.cantMin,
		})
	}
}

// ── Consultas ────────────────────────────────────────────────────────────────

func (s *ventaService) ObtenerDetalle(ctx context.Context, id uuid.UUID) (*dto.VentaDetailResponse, error) {
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &dto.VentaDetailResponse{VentaListItem: ventaToListItem(venta)}

	if venta.Tipo == model.VentaCredito {
		credito, err := s.creditoRepo.FindByVenta(ctx, venta.ID)
		if err == nil {
			resp.Credito = creditoToResponse(credito)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	return resp, nil
}

func (s *ventaService) Listar(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaListItem, 0, len(ventas))
	for i := range ventas {
		items = append(items, ventaToListItem(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// ── Mapeo a DTOs ─────────────────────────────────────────────────────────────

func ventaToListItem(v *model.Venta) dto.VentaListItem {
	item := dto.VentaListItem{
		ID:            v.ID.String(),
		MontoTotalBs:  v.MontoTotalBs,
		MontoTotalUSD: v.MontoTotalUSD,
		FechaHora:     v.FechaHora,
		Tipo:          v.Tipo,
		CICliente:     v.CICliente,
	}
	for _, d := range v.Detalles {
		det := dto.DetalleVentaResponse{
			CodProducto:    d.CodProducto,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))),
		}
		if d.Producto != nil {
			det.Nombre = d.Producto.Nombre
		}
		item.Detalles = append(item.Detalles, det)
	}
	for _, p := range v.Pagos {
		item.Pagos = append(item.Pagos, dto.PagoResponse{
			ID:         p.ID.String(),
			Monto:      p.Monto,
			FechaPago:  p.FechaPago,
			MetodoPago: p.MetodoPago,
			Referencia: p.Referencia,
		})
	}
	return item
}

func creditoToResponse(c *model.Credito) *dto.CreditoResponse {
	return &dto.CreditoResponse{
		ID:               c.ID.String(),
		CICliente:        c.CICliente,
		IDVenta:          c.IDVenta.String(),
		FechaCredito:     c.FechaCredito,
		FechaUltimoAbono: c.FechaUltimoAbono,
		MontoTotal:       c.MontoTotal,
		MontoPagado:      c.MontoPagado,
		Estado:           c.Estado,
	}
}

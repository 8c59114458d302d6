package service

import (
	"context"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/Hjanner/2MS/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stubs en memoria de los repositorios. DB() devuelve nil, de modo que runTx
// ejecuta fn(nil) sin transaccion real y los servicios se prueban puros.

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

// ── Producto ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos    map[string]*model.Producto
	noPreparados map[string]*model.ProductoNoPreparado
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos:    make(map[string]*model.Producto),
		noPreparados: make(map[string]*model.ProductoNoPreparado),
	}
}

func (s *stubProductoRepo) addInventariable(cod string, cantActual, cantMin int) {
	s.productos[cod] = &model.Producto{CodProducto: cod, Nombre: cod}
	s.noPreparados[cod] = &model.ProductoNoPreparado{CodProducto: cod, CantActual: cantActual, CantMin: cantMin}
}

func (s *stubProductoRepo) addPreparado(cod string) {
	s.productos[cod] = &model.Producto{CodProducto: cod, Nombre: cod}
}

func (s *stubProductoRepo) DB() *gorm.DB { return nil }

func (s *stubProductoRepo) Create(_ context.Context, p *model.Producto) error { return s.CreateTx(nil, p) }

func (s *stubProductoRepo) CreateTx(_ *gorm.DB, p *model.Producto) error {
	if _, ok := s.productos[p.CodProducto]; ok {
		return apierror.NewDuplicateKey("cod_producto", p.CodProducto)
	}
	s.productos[p.CodProducto] = p
	return nil
}

func (s *stubProductoRepo) FindByCod(_ context.Context, cod string) (*model.Producto, error) {
	p, ok := s.productos[cod]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	if np, ok := s.noPreparados[cod]; ok {
		npCopy := *np
		cp.NoPreparado = &npCopy
	}
	return &cp, nil
}

func (s *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	out := make([]model.Producto, 0, len(s.productos))
	for _, p := range s.productos {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (s *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if _, ok := s.productos[p.CodProducto]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.productos[p.CodProducto] = p
	return nil
}

func (s *stubProductoRepo) Delete(_ context.Context, cod string) error {
	if _, ok := s.productos[cod]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.productos, cod)
	return nil
}

func (s *stubProductoRepo) CreateNoPreparadoTx(_ *gorm.DB, np *model.ProductoNoPreparado) error {
	if _, ok := s.noPreparados[np.CodProducto]; ok {
		return apierror.NewDuplicateKey("cod_producto", np.CodProducto)
	}
	s.noPreparados[np.CodProducto] = np
	return nil
}

func (s *stubProductoRepo) FindNoPreparado(_ context.Context, cod string) (*model.ProductoNoPreparado, error) {
	return s.FindNoPreparadoTx(nil, cod)
}

func (s *stubProductoRepo) FindNoPreparadoTx(_ *gorm.DB, cod string) (*model.ProductoNoPreparado, error) {
	np, ok := s.noPreparados[cod]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *np
	return &cp, nil
}

func (s *stubProductoRepo) ListBajoMinimo(_ context.Context) ([]model.ProductoNoPreparado, error) {
	var out []model.ProductoNoPreparado
	for _, np := range s.noPreparados {
		if np.CantActual < np.CantMin {
			out = append(out, *np)
		}
	}
	return out, nil
}

func (s *stubProductoRepo) DescontarInventarioTx(_ *gorm.DB, cod string, cant int) (int64, error) {
	np, ok := s.noPreparados[cod]
	if !ok || np.CantActual < cant {
		return 0, nil
	}
	np.CantActual -= cant
	return 1, nil
}

func (s *stubProductoRepo) IncrementarInventarioTx(_ *gorm.DB, cod string, cant int) error {
	np, ok := s.noPreparados[cod]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	np.CantActual += cant
	return nil
}

func (s *stubProductoRepo) CantActualTx(_ *gorm.DB, cod string) (int, error) {
	np, ok := s.noPreparados[cod]
	if !ok {
		return 0, nil
	}
	return np.CantActual, nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

type stubMovimientoRepo struct {
	movimientos []model.MovimientoInventario
}

func (s *stubMovimientoRepo) CreateTx(_ *gorm.DB, m *model.MovimientoInventario) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.movimientos = append(s.movimientos, *m)
	return nil
}

func (s *stubMovimientoRepo) List(_ context.Context, filter repository.MovimientoFilter) ([]model.MovimientoInventario, int64, error) {
	var out []model.MovimientoInventario
	for _, m := range s.movimientos {
		if filter.CodProducto != "" && m.CodProducto != filter.CodProducto {
			continue
		}
		if filter.Referencia != "" && m.Referencia != filter.Referencia {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (s *stubMovimientoRepo) SumDeltas(_ context.Context, cod string) (int, error) {
	sum := 0
	for _, m := range s.movimientos {
		if m.CodProducto == cod {
			sum += m.Delta()
		}
	}
	return sum, nil
}

// ── Ventas ───────────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas []*model.Venta
}

func (s *stubVentaRepo) DB() *gorm.DB { return nil }

func (s *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Detalles {
		v.Detalles[i].ID = uuid.New()
		v.Detalles[i].IDVenta = v.ID
	}
	for i := range v.Pagos {
		v.Pagos[i].ID = uuid.New()
		v.Pagos[i].IDVenta = v.ID
	}
	s.ventas = append(s.ventas, v)
	return nil
}

func (s *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	for _, v := range s.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubVentaRepo) List(_ context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range s.ventas {
		if filter.Tipo != "" && filter.Tipo != "all" && v.Tipo != filter.Tipo {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

// ── Creditos ─────────────────────────────────────────────────────────────────

type stubCreditoRepo struct {
	creditos []*model.Credito
}

func (s *stubCreditoRepo) CreateTx(_ *gorm.DB, c *model.Credito) error {
	for _, e := range s.creditos {
		if e.IDVenta == c.IDVenta {
			return apierror.NewDuplicateKey("id_venta", c.IDVenta)
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.creditos = append(s.creditos, c)
	return nil
}

func (s *stubCreditoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Credito, error) {
	for _, c := range s.creditos {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCreditoRepo) FindByVenta(_ context.Context, idVenta uuid.UUID) (*model.Credito, error) {
	for _, c := range s.creditos {
		if c.IDVenta == idVenta {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCreditoRepo) ListByCliente(_ context.Context, ci string) ([]model.Credito, error) {
	var out []model.Credito
	for _, c := range s.creditos {
		if c.CICliente == ci {
			out = append(out, *c)
		}
	}
	return out, nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[string]*model.Cliente
}

func newStubClienteRepo(cis ...string) *stubClienteRepo {
	s := &stubClienteRepo{clientes: make(map[string]*model.Cliente)}
	for _, ci := range cis {
		s.clientes[ci] = &model.Cliente{CICliente: ci, Nombre: "cliente " + ci}
	}
	return s
}

func (s *stubClienteRepo) GetAll(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(s.clientes))
	for _, c := range s.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubClienteRepo) GetByKey(_ context.Context, ci any) (*model.Cliente, error) {
	c, ok := s.clientes[ci.(string)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (s *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if _, ok := s.clientes[c.CICliente]; ok {
		return apierror.NewDuplicateKey("ci_cliente", c.CICliente)
	}
	s.clientes[c.CICliente] = c
	return nil
}

func (s *stubClienteRepo) Update(_ context.Context, ci any, c *model.Cliente) error {
	if _, ok := s.clientes[ci.(string)]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.clientes[ci.(string)] = c
	return nil
}

func (s *stubClienteRepo) Delete(_ context.Context, ci any) error {
	if _, ok := s.clientes[ci.(string)]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.clientes, ci.(string))
	return nil
}

func (s *stubClienteRepo) Exists(_ context.Context, ci string) (bool, error) {
	_, ok := s.clientes[ci]
	return ok, nil
}

// ── Proveedores ──────────────────────────────────────────────────────────────

type stubProveedorRepo struct {
	proveedores map[string]*model.Proveedor
}

func newStubProveedorRepo(rifs ...string) *stubProveedorRepo {
	s := &stubProveedorRepo{proveedores: make(map[string]*model.Proveedor)}
	for _, rif := range rifs {
		s.proveedores[rif] = &model.Proveedor{Rif: rif, RazonSocial: "proveedor " + rif}
	}
	return s
}

func (s *stubProveedorRepo) GetAll(_ context.Context) ([]model.Proveedor, error) {
	out := make([]model.Proveedor, 0, len(s.proveedores))
	for _, p := range s.proveedores {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubProveedorRepo) GetByKey(_ context.Context, rif any) (*model.Proveedor, error) {
	p, ok := s.proveedores[rif.(string)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubProveedorRepo) Create(_ context.Context, p *model.Proveedor) error {
	if _, ok := s.proveedores[p.Rif]; ok {
		return apierror.NewDuplicateKey("rif", p.Rif)
	}
	s.proveedores[p.Rif] = p
	return nil
}

func (s *stubProveedorRepo) Update(_ context.Context, rif any, p *model.Proveedor) error {
	if _, ok := s.proveedores[rif.(string)]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.proveedores[rif.(string)] = p
	return nil
}

func (s *stubProveedorRepo) Delete(_ context.Context, rif any) error {
	if _, ok := s.proveedores[rif.(string)]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.proveedores, rif.(string))
	return nil
}

func (s *stubProveedorRepo) Exists(_ context.Context, rif string) (bool, error) {
	_, ok := s.proveedores[rif]
	return ok, nil
}

// ── Tasas ────────────────────────────────────────────────────────────────────

type stubTasaRepo struct {
	tasas []*model.TasaCambio
}

func (s *stubTasaRepo) GetAll(_ context.Context) ([]model.TasaCambio, error) {
	out := make([]model.TasaCambio, 0, len(s.tasas))
	for _, t := range s.tasas {
		out = append(out, *t)
	}
	return out, nil
}

func (s *stubTasaRepo) GetByKey(_ context.Context, id any) (*model.TasaCambio, error) {
	for _, t := range s.tasas {
		if t.ID.String() == id || t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubTasaRepo) Create(_ context.Context, t *model.TasaCambio) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.tasas = append(s.tasas, t)
	return nil
}

func (s *stubTasaRepo) Vigente(_ context.Context) (*model.TasaCambio, error) {
	if len(s.tasas) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	vigente := s.tasas[0]
	for _, t := range s.tasas[1:] {
		if t.Fecha.After(vigente.Fecha) {
			vigente = t
		}
	}
	return vigente, nil
}

// ── Compras ──────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras []*model.Compra
}

func (s *stubCompraRepo) DB() *gorm.DB { return nil }

func (s *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for i := range c.Detalles {
		c.Detalles[i].IDCompra = c.ID
	}
	s.compras = append(s.compras, c)
	return nil
}

func (s *stubCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	for _, c := range s.compras {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCompraRepo) List(_ context.Context, _ dto.CompraFilter) ([]model.Compra, int64, error) {
	out := make([]model.Compra, 0, len(s.compras))
	for _, c := range s.compras {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

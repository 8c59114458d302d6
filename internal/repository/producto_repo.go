package repository

import (
	"context"
	"errors"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products and their
// inventory extension. Services depend on this interface, not on the concrete
// GORM implementation, enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	CreateTx(tx *gorm.DB, p *model.Producto) error
	FindByCod(ctx context.Context, cod string) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, cod string) error

	// Extension de inventario
	CreateNoPreparadoTx(tx *gorm.DB, np *model.ProductoNoPreparado) error
	FindNoPreparado(ctx context.Context, cod string) (*model.ProductoNoPreparado, error)
	FindNoPreparadoTx(tx *gorm.DB, cod string) (*model.ProductoNoPreparado, error)
	ListBajoMinimo(ctx context.Context) ([]model.ProductoNoPreparado, error)

	// Mutaciones de stock, solo dentro de una transaccion.
	// DescontarInventarioTx ejecuta el UPDATE condicionado (cant_actual >= cant)
	// y devuelve las filas afectadas: 0 significa stock insuficiente.
	DescontarInventarioTx(tx *gorm.DB, cod string, cant int) (int64, error)
	IncrementarInventarioTx(tx *gorm.DB, cod string, cant int) error
	CantActualTx(tx *gorm.DB, cod string) (int, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) DB() *gorm.DB { return r.db }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.CreateTx(r.db.WithContext(ctx), p)
}

func (r *productoRepo) CreateTx(tx *gorm.DB, p *model.Producto) error {
	// Omit asegura que la extension se cree por el camino del motor de
	// inventario (con su movimiento inicial), nunca por asociacion implicita.
	err := tx.Omit("NoPreparado", "Categoria").Create(p).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.NewDuplicateKey("cod_producto", p.CodProducto)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.NewIntegrityViolation(err.Error())
	}
	return err
}

func (r *productoRepo) FindByCod(ctx context.Context, cod string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("NoPreparado").Preload("Categoria").
		Where("cod_producto = ?", cod).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	var productos []model.Producto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Producto{})
	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.IDCategoria != "" {
		q = q.Where("id_categoria = ?", filter.IDCategoria)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	err := q.Preload("NoPreparado").Preload("Categoria").
		Order("nombre ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("cod_producto = ?", p.CodProducto).
		Updates(map[string]any{
			"nombre":       p.Nombre,
			"precio_usd":   p.PrecioUSD,
			"id_categoria": p.IDCategoria,
			"img":          p.Img,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) Delete(ctx context.Context, cod string) error {
	res := r.db.WithContext(ctx).Where("cod_producto = ?", cod).Delete(&model.Producto{})
	if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
		return apierror.NewIntegrityViolation("el producto tiene movimientos o ventas asociadas")
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Extension de inventario

func (r *productoRepo) CreateNoPreparadoTx(tx *gorm.DB, np *model.ProductoNoPreparado) error {
	err := tx.Create(np).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.NewDuplicateKey("cod_producto", np.CodProducto)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.NewIntegrityViolation(err.Error())
	}
	return err
}

func (r *productoRepo) FindNoPreparado(ctx context.Context, cod string) (*model.ProductoNoPreparado, error) {
	return r.FindNoPreparadoTx(r.db.WithContext(ctx), cod)
}

func (r *productoRepo) FindNoPreparadoTx(tx *gorm.DB, cod string) (*model.ProductoNoPreparado, error) {
	var np model.ProductoNoPreparado
	err := tx.Where("cod_producto = ?", cod).First(&np).Error
	if err != nil {
		return nil, err
	}
	return &np, nil
}

func (r *productoRepo) ListBajoMinimo(ctx context.Context) ([]model.ProductoNoPreparado, error) {
	var nps []model.ProductoNoPreparado
	err := r.db.WithContext(ctx).
		Where("cant_actual < cant_min").
		Order("cod_producto ASC").
		Find(&nps).Error
	return nps, err
}

// DescontarInventarioTx es el punto de serializacion del chequeo de stock:
// el UPDATE condicionado toma el lock de fila, de modo que dos ventas
// concurrentes del mismo producto no pueden descontar ambas sobre el mismo
// valor previo.
func (r *productoRepo) DescontarInventarioTx(tx *gorm.DB, cod string, cant int) (int64, error) {
	res := tx.Model(&model.ProductoNoPreparado{}).
		Where("cod_producto = ? AND cant_actual >= ?", cod, cant).
		Update("cant_actual", gorm.Expr("cant_actual - ?", cant))
	return res.RowsAffected, res.Error
}

func (r *productoRepo) IncrementarInventarioTx(tx *gorm.DB, cod string, cant int) error {
	res := tx.Model(&model.ProductoNoPreparado{}).
		Where("cod_producto = ?", cod).
		Update("cant_actual", gorm.Expr("cant_actual + ?", cant))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoRepo) CantActualTx(tx *gorm.DB, cod string) (int, error) {
	var cant int
	err := tx.Model(&model.ProductoNoPreparado{}).
		Where("cod_producto = ?", cod).
		Select("cant_actual").Scan(&cant).Error
	return cant, err
}

package repository

import (
	"context"

	"github.com/Hjanner/2MS/internal/model"
	"gorm.io/gorm"
)

// MovimientoFilter defines filters for listing inventory movements.
type MovimientoFilter struct {
	CodProducto string
	Referencia  string
	Page        int
	Limit       int
}

// MovimientoRepository persiste el libro append-only de movimientos.
// No hay Update ni Delete: las filas son inmutables.
type MovimientoRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error
	List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoInventario, int64, error)
	// SumDeltas devuelve Σ(entradas) − Σ(salidas) de un producto.
	SumDeltas(ctx context.Context, cod string) (int, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository {
	return &movimientoRepo{db: db}
}

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoInventario) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) List(ctx context.Context, filter MovimientoFilter) ([]model.MovimientoInventario, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.MovimientoInventario{})
	if filter.CodProducto != "" {
		q = q.Where("cod_producto = ?", filter.CodProducto)
	}
	if filter.Referencia != "" {
		q = q.Where("referencia = ?", filter.Referencia)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var movimientos []model.MovimientoInventario
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&movimientos).Error
	return movimientos, total, err
}

func (r *movimientoRepo) SumDeltas(ctx context.Context, cod string) (int, error) {
	var sum int
	err := r.db.WithContext(ctx).Model(&model.MovimientoInventario{}).
		Select("COALESCE(SUM(CASE WHEN tipo_movimiento = ? THEN cant_movida ELSE -cant_movida END), 0)", model.MovEntrada).
		Where("cod_producto = ?", cod).
		Scan(&sum).Error
	return sum, err
}

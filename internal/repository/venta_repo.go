package repository

import (
	"context"
	"errors"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/dto"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	// CreateTx inserta la venta junto con sus detalles y pagos embebidos.
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	err := tx.Create(v).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apierror.NewIntegrityViolation(err.Error())
	}
	return err
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Preload("Detalles.Producto").Preload("Pagos").Preload("Cliente").
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filter.Tipo != "" && filter.Tipo != "all" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.CICliente != "" {
		q = q.Where("ci_cliente = ?", filter.CICliente)
	}
	if filter.Fecha != "" {
		q = q.Where("DATE(fecha_hora) = ?", filter.Fecha)
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
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var ventas []model.Venta
	err := q.Preload("Detalles.Producto").Preload("Pagos").
		Order("fecha_hora DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&ventas).Error
	return ventas, total, err
}

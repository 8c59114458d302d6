package repository

import (
	"context"
	"errors"

	"github.com/Hjanner/2MS/internal/apierror"
	"github.com/Hjanner/2MS/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreditoRepository interface {
	CreateTx(tx *gorm.DB, c *model.Credito) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Credito, error)
	FindByVenta(ctx context.Context, idVenta uuid.UUID) (*model.Credito, error)
	ListByCliente(ctx context.Context, ci string) ([]model.Credito, error)
}

type creditoRepo struct{ db *gorm.DB }

func NewCreditoRepository(db *gorm.DB) CreditoRepository { return &creditoRepo{db: db} }

func (r *creditoRepo) CreateTx(tx *gorm.DB, c *model.Credito) error {
	err := tx.Create(c).Error
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apierror.NewDuplicateKey("id_venta", c.IDVenta)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.NewIntegrityViolation(err.Error())
	}
	return err
}

func (r *creditoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Credito, error) {
	var c model.Credito
	err := r.db.WithContext(ctx).Preload("Cliente").First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *creditoRepo) FindByVenta(ctx context.Context, idVenta uuid.UUID) (*model.Credito, error) {
	var c model.Credito
	err := r.db.WithContext(ctx).First(&c, "id_venta = ?", idVenta).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *creditoRepo) ListByCliente(ctx context.Context, ci string) ([]model.Credito, error) {
	var creditos []model.Credito
	err := r.db.WithContext(ctx).
		Where("ci_cliente = ?", ci).
		Order("fecha_credito DESC").
		Find(&creditos).Error
	return creditos, err
}

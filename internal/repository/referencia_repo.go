package repository

import (
	"context"
	"errors"

	"github.com/Hjanner/2MS/internal/model"
	"gorm.io/gorm"
)

// Repositorios de las entidades de referencia. Cada uno es el repositorio
// generico mas un Exists, que usan los orquestadores para validar claves
// foraneas antes de abrir la transaccion.

type ClienteRepository interface {
	GetAll(ctx context.Context) ([]model.Cliente, error)
	GetByKey(ctx context.Context, ci any) (*model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) error
	Update(ctx context.Context, ci any, c *model.Cliente) error
	Delete(ctx context.Context, ci any) error
	Exists(ctx context.Context, ci string) (bool, error)
}

type clienteRepo struct {
	*EntityRepository[model.Cliente]
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepo{NewEntityRepository(db, ClienteSchema())}
}

func (r *clienteRepo) Exists(ctx context.Context, ci string) (bool, error) {
	_, err := r.GetByKey(ctx, ci)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type ProveedorRepository interface {
	GetAll(ctx context.Context) ([]model.Proveedor, error)
	GetByKey(ctx context.Context, rif any) (*model.Proveedor, error)
	Create(ctx context.Context, p *model.Proveedor) error
	Update(ctx context.Context, rif any, p *model.Proveedor) error
	Delete(ctx context.Context, rif any) error
	Exists(ctx context.Context, rif string) (bool, error)
}

type proveedorRepo struct {
	*EntityRepository[model.Proveedor]
}

func NewProveedorRepository(db *gorm.DB) ProveedorRepository {
	return &proveedorRepo{NewEntityRepository(db, ProveedorSchema())}
}

func (r *proveedorRepo) Exists(ctx context.Context, rif string) (bool, error) {
	_, err := r.GetByKey(ctx, rif)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type CategoriaRepository interface {
	GetAll(ctx context.Context) ([]model.CategoriaProducto, error)
	GetByKey(ctx context.Context, id any) (*model.CategoriaProducto, error)
	Create(ctx context.Context, c *model.CategoriaProducto) error
	Update(ctx context.Context, id any, c *model.CategoriaProducto) error
	Delete(ctx context.Context, id any) error
}

type categoriaRepo struct {
	*EntityRepository[model.CategoriaProducto]
}

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepo{NewEntityRepository(db, CategoriaSchema())}
}

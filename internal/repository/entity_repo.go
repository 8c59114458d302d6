package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hjanner/2MS/internal/apierror"
	"gorm.io/gorm"
)

// Schema describe explicitamente la tabla de una entidad: nombre, columnas
// clave, columnas unicas y un extractor columna→valor. Nada del esquema se
// infiere por inspeccion de tipos en este paquete; cada entidad declara el
// suyo en schemas.go.
type Schema[T any] struct {
	Table  string
	Key    []string // columnas de la clave primaria, en orden
	Unique []string // columnas con restriccion de unicidad (ademas de la clave)
	Values func(*T) map[string]any
}

// EntityRepository es la persistencia generica por clave que usan las
// entidades de referencia (clientes, proveedores, categorias, tasas).
// Las entidades transaccionales (ventas, creditos, movimientos) tienen
// repositorios dedicados porque participan en transacciones multi-tabla.
type EntityRepository[T any] struct {
	db     *gorm.DB
	schema Schema[T]
}

func NewEntityRepository[T any](db *gorm.DB, schema Schema[T]) *EntityRepository[T] {
	return &EntityRepository[T]{db: db, schema: schema}
}

func (r *EntityRepository[T]) DB() *gorm.DB { return r.db }

func (r *EntityRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var recs []T
	err := r.db.WithContext(ctx).Find(&recs).Error
	return recs, err
}

// GetByKey busca por la clave primaria simple (primera columna de Key).
func (r *EntityRepository[T]) GetByKey(ctx context.Context, value any) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", r.schema.Key[0]), value).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByCompositeKey busca por una clave compuesta columna→valor.
func (r *EntityRepository[T]) GetByCompositeKey(ctx context.Context, keys map[string]any) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).Where(keys).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetLast devuelve el registro con el mayor valor en orderKey.
func (r *EntityRepository[T]) GetLast(ctx context.Context, orderKey string) (*T, error) {
	var rec T
	err := r.db.WithContext(ctx).Order(orderKey + " DESC").First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserta un registro. Antes de escribir corre la guardia de unicidad
// sobre las columnas declaradas en el esquema; si la escritura aun asi viola
// una restriccion de unicidad o de clave foranea, el error se traduce a la
// misma taxonomia (DuplicateKey / IntegrityViolation).
func (r *EntityRepository[T]) Create(ctx context.Context, rec *T) error {
	values := r.schema.Values(rec)
	for _, field := range append(r.schema.Key, r.schema.Unique...) {
		v, ok := values[field]
		if !ok || v == nil {
			continue
		}
		var count int64
		if err := r.db.WithContext(ctx).Table(r.schema.Table).
			Where(fmt.Sprintf("%s = ?", field), v).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apierror.NewDuplicateKey(field, v)
		}
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return r.translate(err, values)
	}
	return nil
}

func (r *EntityRepository[T]) Update(ctx context.Context, keyValue any, rec *T) error {
	return r.UpdateByCompositeKey(ctx, map[string]any{r.schema.Key[0]: keyValue}, rec)
}

func (r *EntityRepository[T]) UpdateByCompositeKey(ctx context.Context, keys map[string]any, rec *T) error {
	values := r.schema.Values(rec)
	for col := range keys {
		delete(values, col)
	}
	res := r.db.WithContext(ctx).Table(r.schema.Table).Where(keys).Updates(values)
	if res.Error != nil {
		return r.translate(res.Error, values)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *EntityRepository[T]) Delete(ctx context.Context, keyValue any) error {
	return r.DeleteByCompositeKey(ctx, map[string]any{r.schema.Key[0]: keyValue})
}

func (r *EntityRepository[T]) DeleteByCompositeKey(ctx context.Context, keys map[string]any) error {
	var rec T
	res := r.db.WithContext(ctx).Where(keys).Delete(&rec)
	if res.Error != nil {
		return r.translate(res.Error, nil)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// translate convierte errores de integridad del almacenamiento a la taxonomia
// del dominio. Requiere gorm.Config{TranslateError: true} en la conexion.
func (r *EntityRepository[T]) translate(err error, values map[string]any) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		field := "unknown"
		var value any = "unknown"
		if len(r.schema.Unique) > 0 {
			field = r.schema.Unique[0]
		} else if len(r.schema.Key) > 0 {
			field = r.schema.Key[0]
		}
		if values != nil {
			if v, ok := values[field]; ok {
				value = v
			}
		}
		return apierror.NewDuplicateKey(field, value)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apierror.NewIntegrityViolation(err.Error())
	}
	return err
}

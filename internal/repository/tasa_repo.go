package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Hjanner/2MS/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	tasaVigenteKey = "tasa:vigente"
	tasaVigenteTTL = 5 * time.Minute
)

// TasaRepository envuelve el repositorio generico con una cache read-through
// en redis para la tasa vigente, que se consulta en cada venta registrada.
type TasaRepository interface {
	GetAll(ctx context.Context) ([]model.TasaCambio, error)
	GetByKey(ctx context.Context, id any) (*model.TasaCambio, error)
	Create(ctx context.Context, t *model.TasaCambio) error
	// Vigente devuelve la tasa mas reciente por fecha.
	Vigente(ctx context.Context) (*model.TasaCambio, error)
}

type tasaRepo struct {
	*EntityRepository[model.TasaCambio]
	rdb *redis.Client
}

// NewTasaRepository construye el repositorio de tasas. rdb puede ser nil;
// en ese caso Vigente consulta la base en cada llamada.
func NewTasaRepository(db *gorm.DB, rdb *redis.Client) TasaRepository {
	return &tasaRepo{
		EntityRepository: NewEntityRepository(db, TasaSchema()),
		rdb:              rdb,
	}
}

func (r *tasaRepo) Create(ctx context.Context, t *model.TasaCambio) error {
	if err := r.EntityRepository.Create(ctx, t); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *tasaRepo) Vigente(ctx context.Context) (*model.TasaCambio, error) {
	if r.rdb != nil {
		raw, err := r.rdb.Get(ctx, tasaVigenteKey).Bytes()
		if err == nil {
			var t model.TasaCambio
			if err := json.Unmarshal(raw, &t); err == nil {
				return &t, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("cache de tasa no disponible, leyendo de base")
		}
	}

	t, err := r.GetLast(ctx, "fecha")
	if err != nil {
		return nil, err
	}

	if r.rdb != nil {
		if raw, err := json.Marshal(t); err == nil {
			if err := r.rdb.Set(ctx, tasaVigenteKey, raw, tasaVigenteTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("no se pudo cachear la tasa vigente")
			}
		}
	}
	return t, nil
}

func (r *tasaRepo) invalidate(ctx context.Context) {
	if r.rdb == nil {
		return
	}
	if err := r.rdb.Del(ctx, tasaVigenteKey).Err(); err != nil {
		log.Warn().Err(err).Msg("no se pudo invalidar la cache de tasa")
	}
}

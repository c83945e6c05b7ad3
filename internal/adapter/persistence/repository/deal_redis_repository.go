package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dealdesk/internal/domain/entities"
	"dealdesk/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultDealsKey = "dealdesk:deals"

	maxTxAttempts = 10
)

// DealRedisRepository keeps the whole workspace as one JSON array under a
// single key. Per-deal writes run as optimistic WATCH transactions so
// concurrent edits to different deals do not overwrite each other.
//
// A stored value that is not a JSON array of deals is reported as an error
// rather than treated as an empty workspace.
type DealRedisRepository struct {
	rdb *redis.Client
	key string
}

var _ interfaces.IDealRepository = (*DealRedisRepository)(nil)

func NewDealRedisRepository(rdb *redis.Client, key string) *DealRedisRepository {
	if key == "" {
		key = DefaultDealsKey
	}
	return &DealRedisRepository{rdb: rdb, key: key}
}

func (r *DealRedisRepository) LoadDeals(ctx context.Context) ([]entities.Deal, error) {
	return r.read(ctx, r.rdb)
}

func (r *DealRedisRepository) SaveDeals(ctx context.Context, deals []entities.Deal) error {
	if deals == nil {
		deals = []entities.Deal{}
	}
	data, err := json.Marshal(deals)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key, data, 0).Err()
}

func (r *DealRedisRepository) GetByID(ctx context.Context, id string) (entities.Deal, error) {
	deals, err := r.read(ctx, r.rdb)
	if err != nil {
		return entities.Deal{}, err
	}
	for _, d := range deals {
		if d.ID == id {
			return d, nil
		}
	}
	return entities.Deal{}, nil
}

func (r *DealRedisRepository) Put(ctx context.Context, d entities.Deal) (entities.Deal, error) {
	err := r.update(ctx, func(deals []entities.Deal) ([]entities.Deal, bool) {
		for i := range deals {
			if deals[i].ID == d.ID {
				deals[i] = d
				return deals, true
			}
		}
		return append(deals, d), true
	})
	if err != nil {
		return entities.Deal{}, err
	}
	return d, nil
}

func (r *DealRedisRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.update(ctx, func(deals []entities.Deal) ([]entities.Deal, bool) {
		deleted = false
		out := deals[:0]
		for _, d := range deals {
			if d.ID == id {
				deleted = true
				continue
			}
			out = append(out, d)
		}
		return out, deleted
	})
	return deleted, err
}

// update runs fn inside a WATCH transaction on the workspace key. fn
// returns the new list and whether it changed anything.
func (r *DealRedisRepository) update(ctx context.Context, fn func([]entities.Deal) ([]entities.Deal, bool)) error {
	txf := func(tx *redis.Tx) error {
		deals, err := r.read(ctx, tx)
		if err != nil {
			return err
		}
		next, changed := fn(deals)
		if !changed {
			return nil
		}
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, r.key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxTxAttempts; i++ {
		err := r.rdb.Watch(ctx, txf, r.key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("redis: workspace update contended after %d attempts", maxTxAttempts)
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *DealRedisRepository) read(ctx context.Context, c stringGetter) ([]entities.Deal, error) {
	raw, err := c.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entities.Deal{}, nil
	}
	if err != nil {
		return nil, err
	}

	var deals []entities.Deal
	if err := json.Unmarshal(raw, &deals); err != nil {
		return nil, fmt.Errorf("redis: stored workspace is not a deal list: %w", err)
	}
	if deals == nil {
		deals = []entities.Deal{}
	}
	return deals, nil
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

type deadlineModel struct {
	Deadline time.Time `json:"deadline"`
}

// DeadlineRepo хранит дедлайн распродажи в Redis, чтобы все экземпляры витрины
// показывали один и тот же обратный отсчет.
type DeadlineRepo struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewDeadlineRepo(client *clients.RedisClient, logger logger.Logger) *DeadlineRepo {
	return &DeadlineRepo{
		client: client,
		logger: logger,
	}
}

// GetOrCreate атомарно (SETNX) сохраняет candidate на ttl, если ключа еще нет,
// иначе возвращает ранее сохраненный дедлайн.
func (d *DeadlineRepo) GetOrCreate(ctx context.Context, key string, candidate time.Time, ttl time.Duration) (time.Time, error) {
	data, err := json.Marshal(deadlineModel{Deadline: candidate.UTC()})
	if err != nil {
		return time.Time{}, e.Wrap(whereami.WhereAmI(), err)
	}

	created, err := d.client.Client.SetNX(ctx, key, data, ttl).Result()
	if err != nil {
		return time.Time{}, e.Wrap(whereami.WhereAmI(), err)
	}
	if created {
		d.logger.Infof("Stored new flash sale deadline under %s", key)
		return candidate, nil
	}

	stored, err := d.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, r.Nil) {
		// ключ истек между SETNX и GET
		return candidate, nil
	}
	if err != nil {
		return time.Time{}, e.Wrap(whereami.WhereAmI(), err)
	}

	var model deadlineModel
	if err := json.Unmarshal(stored, &model); err != nil {
		d.logger.Warnf("Corrupted deadline under %s, overwriting: %v", key, err)
		if err := d.client.Client.Set(ctx, key, data, ttl).Err(); err != nil {
			return time.Time{}, e.Wrap(whereami.WhereAmI(), err)
		}
		return candidate, nil
	}

	return model.Deadline, nil
}

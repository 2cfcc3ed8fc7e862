package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ApplicationRepository keeps applications as JSON documents with two
// sorted-set indexes (all, per merchant) scored by submission time.
type ApplicationRepository struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewApplicationRepository(rdb redis.UniversalClient, prefix string) *ApplicationRepository {
	if prefix == "" {
		prefix = "storefront"
	}
	return &ApplicationRepository{rdb: rdb, prefix: prefix}
}

func (r *ApplicationRepository) docKey(id string) string {
	return fmt.Sprintf("%s:application:%s", r.prefix, id)
}

func (r *ApplicationRepository) allKey() string {
	return r.prefix + ":applications"
}

func (r *ApplicationRepository) merchantKey(merchantID string) string {
	return fmt.Sprintf("%s:applications:merchant:%s", r.prefix, merchantID)
}

// CreateApplication watches the merchant index so two concurrent submissions
// cannot both pass the one-active-application check.
func (r *ApplicationRepository) CreateApplication(ctx context.Context, app *domain.Application) error {
	raw, err := json.Marshal(toDoc(app))
	if err != nil {
		return err
	}
	score := float64(app.SubmittedAt.UnixNano())
	merchantKey := r.merchantKey(app.MerchantID)

	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		ids, err := tx.ZRange(ctx, merchantKey, 0, -1).Result()
		if err != nil {
			return err
		}
		existing, err := r.load(ctx, tx, ids)
		if err != nil {
			return err
		}
		for _, other := range existing {
			if other.Status != domain.ApplicationRejected {
				return domain.ErrActiveApplicationExists
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.docKey(app.ID), raw, 0)
			pipe.ZAdd(ctx, r.allKey(), redis.Z{Score: score, Member: app.ID})
			pipe.ZAdd(ctx, merchantKey, redis.Z{Score: score, Member: app.ID})
			return nil
		})
		return err
	}, merchantKey)
	if errors.Is(err, redis.TxFailedErr) {
		return domain.ErrActiveApplicationExists
	}
	return err
}

func (r *ApplicationRepository) GetApplicationByID(ctx context.Context, id string) (*domain.Application, error) {
	raw, err := r.rdb.Get(ctx, r.docKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decode(raw)
}

func (r *ApplicationRepository) GetApplicationsByMerchantID(ctx context.Context, merchantID string) ([]*domain.Application, error) {
	ids, err := r.rdb.ZRevRange(ctx, r.merchantKey(merchantID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return r.load(ctx, r.rdb, ids)
}

func (r *ApplicationRepository) ListApplications(ctx context.Context, status *domain.ApplicationStatus) ([]*domain.Application, error) {
	ids, err := r.rdb.ZRevRange(ctx, r.allKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	apps, err := r.load(ctx, r.rdb, ids)
	if err != nil || status == nil {
		return apps, err
	}
	filtered := apps[:0]
	for _, app := range apps {
		if app.Status == *status {
			filtered = append(filtered, app)
		}
	}
	return filtered, nil
}

func (r *ApplicationRepository) UpdateApplication(ctx context.Context, app *domain.Application) error {
	key := r.docKey(app.ID)
	next := app.Clone()
	next.Version = app.Version + 1
	raw, err := json.Marshal(toDoc(next))
	if err != nil {
		return err
	}

	err = r.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrConcurrentUpdate
		}
		if err != nil {
			return err
		}
		stored, err := decode(current)
		if err != nil {
			return err
		}
		if stored.Version != app.Version {
			return domain.ErrConcurrentUpdate
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, 0)
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return domain.ErrConcurrentUpdate
	}
	if err != nil {
		return err
	}
	app.Version = next.Version
	return nil
}

type multiGetter interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

func (r *ApplicationRepository) load(ctx context.Context, c multiGetter, ids []string) ([]*domain.Application, error) {
	out := make([]*domain.Application, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.docKey(id)
	}
	values, err := c.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		app, err := decode([]byte(s))
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, nil
}

func decode(raw []byte) (*domain.Application, error) {
	var doc applicationDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode application: %w", err)
	}
	return doc.toDomain()
}

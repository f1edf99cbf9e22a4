package casts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/uuid"
)

// DefaultTTL is how long records live when no TTL is configured
const DefaultTTL = 24 * time.Hour

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
	ttl           time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
	TimeProvider  TimeProvider
	// TTL bounds how long a record can still be intercepted (default: 24 hours)
	TTL time.Duration
}

// NewRedisRepository creates a new Redis-backed cast record repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	repo := &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
		timeProvider:  cfg.TimeProvider,
		ttl:           cfg.TTL,
	}
	if repo.uuidGenerator == nil {
		repo.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if repo.timeProvider == nil {
		repo.timeProvider = SystemTime{}
	}
	if repo.ttl <= 0 {
		repo.ttl = DefaultTTL
	}
	return repo
}

// NewRedis creates a Redis repository with default settings
func NewRedis(client redis.UniversalClient, ttl time.Duration) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client, TTL: ttl})
}

func recordKey(id string) string {
	return fmt.Sprintf("cast:%s", id)
}

func actorCastsKey(actorID string) string {
	return fmt.Sprintf("actor:%s:casts", actorID)
}

func (r *redisRepo) Create(ctx context.Context, record *Record) error {
	if record == nil {
		return errors.InvalidArgument("record cannot be nil")
	}
	if record.ActorID == "" {
		return errors.InvalidArgument("record actor ID is required")
	}

	if record.ID == "" {
		record.ID = r.uuidGenerator.New()
	} else {
		exists, err := r.client.Exists(ctx, recordKey(record.ID)).Result()
		if err != nil {
			return errors.Wrap(err, "failed to check cast record existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf("cast record %s already exists", record.ID).
				WithMeta("cast_id", record.ID)
		}
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.timeProvider.Now()
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "failed to marshal cast record")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(record.ID), string(data), r.ttl)
	pipe.SAdd(ctx, actorCastsKey(record.ActorID), record.ID)
	pipe.Expire(ctx, actorCastsKey(record.ActorID), r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to create cast record %s", record.ID)
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, errors.InvalidArgument("cast record ID is required")
	}

	data, err := r.client.Get(ctx, recordKey(id)).Bytes()
	if err == redis.Nil {
		return nil, errors.NotFoundf("cast record %s not found", id).WithMeta("cast_id", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get cast record %s", id)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cast record %s", id)
	}
	return &record, nil
}

// ListByActor loads every indexed record concurrently. Records that expired
// since they were indexed are skipped and dropped from the index.
func (r *redisRepo) ListByActor(ctx context.Context, actorID string) ([]*Record, error) {
	if actorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	ids, err := r.client.SMembers(ctx, actorCastsKey(actorID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list casts for actor %s", actorID)
	}

	var (
		mu      sync.Mutex
		records = make([]*Record, 0, len(ids))
		expired []any
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			record, err := r.Get(gctx, id)
			mu.Lock()
			defer mu.Unlock()
			if errors.IsNotFound(err) {
				expired = append(expired, id)
				return nil
			}
			if err != nil {
				return err
			}
			records = append(records, record)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(expired) > 0 {
		if err := r.client.SRem(ctx, actorCastsKey(actorID), expired...).Err(); err != nil {
			log.Printf("Failed to prune expired casts for actor %s: %v", actorID, err)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	record, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, recordKey(id))
	pipe.SRem(ctx, actorCastsKey(record.ActorID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrapf(err, "failed to delete cast record %s", id)
	}
	return nil
}

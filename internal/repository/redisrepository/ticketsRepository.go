package redisrepository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Falokut/tickets_analyzer_service/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Network  string `yaml:"network" env:"TICKETS_REDIS_NETWORK"`
	Addr     string `yaml:"addr" env:"TICKETS_REDIS_ADDR"`
	DB       int    `yaml:"db" env:"TICKETS_REDIS_DB"`
	Password string `yaml:"password" env:"TICKETS_REDIS_PASSWORD"`
	Key      string `yaml:"key" env:"TICKETS_REDIS_KEY" env-default:"tickets"`
}

func NewRedisClient(opt *redis.Options) (*redis.Client, error) {
	rdb := redis.NewClient(opt)
	if rdb == nil {
		return nil, errors.New("can't create new redis client")
	}

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("connection is not established: %s", err.Error())
	}

	return rdb, nil
}

// TicketsRepository reads the tickets document stored as a plain string value.
type TicketsRepository struct {
	rdb    *redis.Client
	logger *logrus.Logger
	key    string
}

func NewTicketsRepository(rdb *redis.Client, logger *logrus.Logger, key string) *TicketsRepository {
	return &TicketsRepository{rdb: rdb, logger: logger, key: key}
}

func (r *TicketsRepository) PingContext(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("error while pinging tickets redis: %w", err)
	}
	return nil
}

func (r *TicketsRepository) FetchTickets(ctx context.Context) (document []byte, err error) {
	defer r.handleError(ctx, &err, "FetchTickets")

	return r.rdb.Get(ctx, r.key).Bytes()
}

func (r *TicketsRepository) handleError(ctx context.Context, err *error, functionName string) {
	if ctx.Err() != nil {
		var code models.ErrorCode
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			code = models.Canceled
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			code = models.DeadlineExceeded
		}
		*err = models.Error(code, ctx.Err().Error())
		r.logError(*err, functionName)
		return
	}

	if err == nil || *err == nil {
		return
	}

	r.logError(*err, functionName)
	var repoErr = &models.ServiceError{}
	if !errors.As(*err, &repoErr) {
		switch {
		case errors.Is(*err, redis.Nil):
			*err = models.Errorf(models.NotFound, "tickets key %s not found", r.key)
		default:
			*err = models.Error(models.Internal, "tickets redis internal error")
		}
	}
}

func (r *TicketsRepository) logError(err error, functionName string) {
	if err == nil {
		return
	}

	r.logger.WithFields(
		logrus.Fields{
			"error.function.name": functionName,
			"error.msg":           err.Error(),
			"tickets.key":         r.key,
		},
	).Error("tickets redis error occurred")
}

package repository

import (
	"context"
)

type SourceType = string

const (
	FileSource  SourceType = "FILE"
	MongoSource SourceType = "MONGO"
	RedisSource SourceType = "REDIS"
)

// TicketsSource returns the raw tickets document, {"tickets": [...]}.
// Every call reads the dataset again, nothing is cached.
type TicketsSource interface {
	FetchTickets(ctx context.Context) ([]byte, error)
	PingContext(ctx context.Context) error
}

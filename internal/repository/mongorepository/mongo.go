package mongorepository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const timeoutPingDuration = 10 * time.Second

type Config struct {
	ConnectionString string `yaml:"connection_string" env:"MONGO_CONNECTION_STRING"`
	DBName           string `yaml:"db_name" env:"MONGO_DB_NAME"`
	Collection       string `yaml:"collection" env:"MONGO_COLLECTION" env-default:"tickets"`
}

func NewMongoDB(connStr string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeoutPingDuration)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), timeoutPingDuration)
	defer pingCancel()
	if err = client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

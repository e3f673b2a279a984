package storage

import (
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

var Client *redis.Client

// Connect открывает соединение с хранилищем для черновиков
func Connect(storageHost, storagePass string) error {
	Client = redis.NewClient(&redis.Options{
		Addr:     storageHost,
		Password: storagePass,
		DB:       0,
	})

	if _, err := Client.Ping().Result(); err != nil {
		return errors.Wrap(err, "redis ping error")
	}

	return nil
}

func Close() error {
	if Client == nil {
		return nil
	}

	return Client.Close()
}

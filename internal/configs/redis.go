package config

import (
	"github.com/redis/rueidis"

	"project-hub.com/project-hub/internal/logging"
)

func NewRedisClient(addr string) rueidis.Client {
	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress:  []string{addr},
			DisableCache: true,
		},
	)
	if err != nil {
		logging.Logger.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}

package queue

import (
	"context"

	"github.com/redis/rueidis"
)

// RedisTokenManager stores send slots as elements of a Redis list so that
// every instance of the service shares one in-flight limit.
type RedisTokenManager struct {
	client rueidis.Client
	key    string
}

func NewRedisTokenManager(client rueidis.Client, key string) *RedisTokenManager {
	return &RedisTokenManager{
		client: client,
		key:    key,
	}
}

func (r *RedisTokenManager) AcquireToken(ctx context.Context) error {
	err := r.client.Do(ctx, r.client.B().Lpop().Key(r.key).Build()).Error()
	if rueidis.IsRedisNil(err) {
		return ErrNoTokenAvailable
	}
	return err
}

func (r *RedisTokenManager) ReleaseToken(ctx context.Context) error {
	return r.client.Do(ctx, r.client.B().Rpush().Key(r.key).Element("1").Build()).Error()
}

// InitializeTokens resets the list to exactly count slots.
func (r *RedisTokenManager) InitializeTokens(ctx context.Context, count int) error {
	cmds := make(rueidis.Commands, 0, count+1)
	cmds = append(cmds, r.client.B().Del().Key(r.key).Build())
	for i := 0; i < count; i++ {
		cmds = append(cmds, r.client.B().Rpush().Key(r.key).Element("1").Build())
	}

	for _, resp := range r.client.DoMulti(ctx, cmds...) {
		if err := resp.Error(); err != nil {
			return err
		}
	}
	return nil
}

func (r *RedisTokenManager) Available(ctx context.Context) (int64, error) {
	return r.client.Do(ctx, r.client.B().Llen().Key(r.key).Build()).AsInt64()
}

package sink

import (
	"context"

	"github.com/redis/rueidis"
)

type RedisSink struct {
	client rueidis.Client
}

func NewRedisSink(client rueidis.Client) *RedisSink {
	return &RedisSink{client: client}
}

func (r *RedisSink) Get(ctx context.Context, key string) (string, bool, error) {
	cmd := r.client.B().Get().Key(key).Build()
	value, err := r.client.Do(ctx, cmd).ToString()

	if err != nil {
		if rueidis.IsRedisNil(err) {
			return "", false, nil
		}
		return "", false, err
	}

	return value, true, nil
}

func (r *RedisSink) Set(ctx context.Context, key, value string) error {
	cmd := r.client.B().Set().Key(key).Value(value).Build()
	return r.client.Do(ctx, cmd).Error()
}

package messaging

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"button-box/internal/logger"
	"button-box/internal/types"
)

const (
	// Hash and pub/sub channel carrying everything the box reports.
	Channel = "button-box"

	publishTimeout = 500 * time.Millisecond
)

// RedisClient publishes box activity for dashboards and loggers. It never
// receives anything; the box takes no input from the host side.
type RedisClient struct {
	client *redis.Client
	logger *logger.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewRedisClient(addr string, l *logger.Logger) *RedisClient {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisClient{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   0,
		}),
		logger: l,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (r *RedisClient) Connect() error {
	r.logger.Infof("Attempting to connect to Redis at %s", r.client.Options().Addr)

	if err := r.client.Ping(r.ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection failed: %w", err)
	}
	r.logger.Infof("Successfully connected to Redis")
	return nil
}

// publishHashSet writes field into the box hash and announces it on the
// channel in one transaction.
func (r *RedisClient) publishHashSet(field string, value interface{}, payload string) error {
	ctx, cancel := context.WithTimeout(r.ctx, publishTimeout)
	defer cancel()

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, Channel, field, value)
	pipe.Publish(ctx, Channel, payload)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisClient) PublishDeviceState(state types.DeviceState) error {
	r.logger.Debugf("Publishing device state: %s", state)
	if err := r.publishHashSet("state", string(state), "state"); err != nil {
		return fmt.Errorf("failed to publish device state: %w", err)
	}
	return nil
}

// PublishButtonEvent records the last button press and the action it ran.
func (r *RedisClient) PublishButtonEvent(index int, action string) error {
	value := fmt.Sprintf("%d:%s", index, action)
	if err := r.publishHashSet("button", value, "button:"+value); err != nil {
		return fmt.Errorf("failed to publish button event: %w", err)
	}
	return nil
}

// PublishEncoderEvent records the last encoder movement. channel is 1-based.
func (r *RedisClient) PublishEncoderEvent(channel int, direction string, action string) error {
	value := fmt.Sprintf("%d:%s:%s", channel, direction, action)
	if err := r.publishHashSet("encoder", value, "encoder:"+value); err != nil {
		return fmt.Errorf("failed to publish encoder event: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	r.cancel()
	return r.client.Close()
}

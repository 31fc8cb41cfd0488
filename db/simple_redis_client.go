package db

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// SimpleRedisClient struct holds the Redis client and context
type SimpleRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewSimpleRedisClient initializes a Redis client wrapper around the given connection
func NewSimpleRedisClient(ctx context.Context, client *redis.Client) *SimpleRedisClient {
	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Connected to Redis")

	return &SimpleRedisClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *SimpleRedisClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *SimpleRedisClient) Get(key string) (string, error) {
	return r.client.Get(r.ctx, key).Result()
}

func (r *SimpleRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *SimpleRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *SimpleRedisClient) Keys(pattern string) ([]string, error) {
	return r.client.Keys(r.ctx, pattern).Result()
}

func (r *SimpleRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

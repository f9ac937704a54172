// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"quickcowork/config"
)

var (
	// RecordsClient persists bookings and owner-created listings.
	RecordsClient *redis.Client
	// ChatClient is the dedicated client for AI chat history.
	ChatClient *redis.Client
)

// InitRecordsStore initializes the Redis client backing the records store.
func InitRecordsStore() {
	RecordsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRecordsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RecordsClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Records): %v", err)
	}
}

// GetRecordsClient returns the records store client.
func GetRecordsClient() *redis.Client {
	if RecordsClient == nil {
		InitRecordsStore()
	}
	return RecordsClient
}

// InitChatStore initializes the Redis client for AI chat history.
func InitChatStore() {
	ChatClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ChatClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Chat): %v", err)
	}
}

// GetChatClient returns the Redis client for AI chat history.
func GetChatClient() *redis.Client {
	if ChatClient == nil {
		InitChatStore()
	}
	return ChatClient
}

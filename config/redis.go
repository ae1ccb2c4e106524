package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects when REDIS_URL is set. Redis is optional here: it
// backs cart persistence and rate limiting, and without it carts fall back
// to file storage and rate limiting is skipped.
func ConnectRedis() {
	// read Redis URL
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, carts will use file storage")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, continuing without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)

	// test connection
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("❌ failed to connect to Redis, continuing without it: %v", err)
		return
	}
	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
}

package cache

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"beneficios_saude/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from cfg and pings it with a short
// timeout. It returns nil when the server cannot be reached.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	var tlsConf *tls.Config
	if cfg.TLS {
		tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(&redis.Options{
		Addr:      cfg.Address(),
		Password:  cfg.Password,
		DB:        cfg.DB,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v", cfg.Address(), err)
		_ = client.Close()
		return nil
	}
	log.Printf("[cache][redis] connected addr=%s db=%d", cfg.Address(), cfg.DB)
	return client
}

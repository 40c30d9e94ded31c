package cache

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"homeinsight-catalog/pkg/config"
	"homeinsight-catalog/pkg/logger"
	"homeinsight-catalog/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// InitRedis connects the shared Redis client using the redis section of cfg.
func InitRedis(cfg *config.Config) error {
	tlsConfig, err := buildTLSConfig(cfg)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to build Redis TLS config: %v", err)
		return err
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		TLSConfig:    tlsConfig,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	err = client.Ping(ctx).Err()
	metrics.RedisOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("ping").Inc()
		_ = client.Close()
		logger.GlobalLogger.Errorf("failed to connect to Redis: %v", err)
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	RedisClient = client
	logger.GlobalLogger.Printf("Redis connected successfully: addr=%s, db=%d", client.Options().Addr, cfg.Redis.DB)
	return nil
}

// the cert file, when given, is a PEM CA bundle used to verify the server
func buildTLSConfig(cfg *config.Config) (*tls.Config, error) {
	if !cfg.Redis.TLSEnabled {
		return nil, nil
	}
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
	if cfg.Redis.TLSCertFile == "" {
		return tlsConfig, nil
	}
	pem, err := os.ReadFile(cfg.Redis.TLSCertFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read TLS certificate: %v", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", cfg.Redis.TLSCertFile)
	}
	tlsConfig.RootCAs = pool
	return tlsConfig, nil
}

// close the Redis client connection.
func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing Redis: %v", err)
		return
	}
	logger.GlobalLogger.Println("Redis connection closed")
}

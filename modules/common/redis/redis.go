package redis

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"product-studio-server/modules/common/config"
)

// JobQueueKey - 생성 작업 큐
const JobQueueKey = "jobs:queue"

// cancelKeyPrefix - 작업 취소 플래그 키 접두사
const cancelKeyPrefix = "jobs:cancel:"

// Connect - Redis 연결 생성
func Connect(cfg *config.Config) *redis.Client {
	log.Printf("🔌 Connecting to Redis: %s", cfg.GetRedisAddr())

	var tlsConfig *tls.Config
	if cfg.RedisUseTLS {
		tlsConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	// Redis 클라이언트 생성
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		TLSConfig:    tlsConfig,
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// 연결 테스트
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Printf("🔍 Testing Redis connection...")
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("❌ Redis ping failed: %v", err)
		return nil
	}

	return rdb
}

// EnqueueJob - 작업 ID를 큐에 추가, 큐 내 위치 반환
func EnqueueJob(ctx context.Context, rdb *redis.Client, jobID string) (int64, error) {
	if _, err := rdb.LPush(ctx, JobQueueKey, jobID).Result(); err != nil {
		return 0, err
	}
	queueLen, _ := rdb.LLen(ctx, JobQueueKey).Result()
	return queueLen, nil
}

// SetJobCancelled - 작업 취소 플래그 설정 (24시간 TTL)
func SetJobCancelled(rdb *redis.Client, jobID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return rdb.Set(ctx, cancelKeyPrefix+jobID, "1", 24*time.Hour).Err()
}

// IsJobCancelled - 작업 취소 플래그 확인
// Redis 장애 시에는 취소되지 않은 것으로 취급한다 (작업은 계속 진행)
func IsJobCancelled(rdb *redis.Client, jobID string) bool {
	if rdb == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	value, err := rdb.Get(ctx, cancelKeyPrefix+jobID).Result()
	if err != nil {
		return false
	}
	return value == "1"
}

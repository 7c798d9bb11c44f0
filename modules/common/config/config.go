package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Redis
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Gemini API
	GeminiAPIKey  string
	GeminiAPIKeys []string // 429 폴백용 추가 키 (쉼표 구분)
	GeminiModel   string

	// Server
	Port string

	// 이미지 정규화 - 원격 호출 전 긴 변 최대 픽셀
	MaxImageEdge int

	// 이미지 생성 동시 처리 수 (배치 세마포어 크기)
	MaxConcurrentShots int

	// WebP 변환 기본 품질
	WebPQuality float32
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	// Redis UseTLS 파싱
	useTLS := false
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	maxEdge := 1024 // 원격 서비스 첨부 전 정규화 상한
	if edgeStr := os.Getenv("MAX_IMAGE_EDGE"); edgeStr != "" {
		if parsed, err := strconv.Atoi(edgeStr); err == nil && parsed > 0 {
			maxEdge = parsed
		}
	}

	maxShots := 2
	if shotsStr := os.Getenv("MAX_CONCURRENT_SHOTS"); shotsStr != "" {
		if parsed, err := strconv.Atoi(shotsStr); err == nil && parsed > 0 {
			maxShots = parsed
		}
	}

	webpQuality := float32(90)
	if qStr := os.Getenv("WEBP_QUALITY"); qStr != "" {
		if parsed, err := strconv.ParseFloat(qStr, 32); err == nil && parsed > 0 {
			webpQuality = float32(parsed)
		}
	}

	// 폴백 API 키 목록 파싱
	var extraKeys []string
	if keysStr := os.Getenv("GEMINI_API_KEYS"); keysStr != "" {
		for _, key := range strings.Split(keysStr, ",") {
			if trimmed := strings.TrimSpace(key); trimmed != "" {
				extraKeys = append(extraKeys, trimmed)
			}
		}
	}

	globalConfig = &Config{
		// Redis
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		// Gemini API
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiAPIKeys: extraKeys,
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.5-flash-image"),

		// Server
		Port: getEnv("PORT", "8080"),

		MaxImageEdge:       maxEdge,
		MaxConcurrentShots: maxShots,
		WebPQuality:        webpQuality,
	}

	// 필수 환경변수 검증
	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Redis: %s:%s (TLS: %v)", globalConfig.RedisHost, globalConfig.RedisPort, globalConfig.RedisUseTLS)
	log.Printf("   Gemini: %s (%d fallback keys)", globalConfig.GeminiModel, len(globalConfig.GeminiAPIKeys))
	log.Printf("   Image edge limit: %dpx, concurrent shots: %d", globalConfig.MaxImageEdge, globalConfig.MaxConcurrentShots)

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// AllAPIKeys - 기본 키 + 폴백 키 전체 목록
func (c *Config) AllAPIKeys() []string {
	keys := make([]string, 0, len(c.GeminiAPIKeys)+1)
	if c.GeminiAPIKey != "" {
		keys = append(keys, c.GeminiAPIKey)
	}
	keys = append(keys, c.GeminiAPIKeys...)
	return keys
}

// validate - 필수 환경변수 검증
func (c *Config) validate() error {
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

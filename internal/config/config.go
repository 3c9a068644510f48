package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultPublicURL         = "https://your-r2-domain.com"
	DefaultServerPort        = 8080
	DefaultMaxUploadBytes    = 100 * 1024 * 1024 // 100 MiB
	DefaultRateLimitRequests = 60
	DefaultRateLimitWindow   = 60 // seconds
)

// Presence records which storage settings were provided at start-up.
// Values themselves are never exposed through it.
type Presence struct {
	R2Endpoint      bool
	AccessKeyID     bool
	SecretAccessKey bool
	Bucket          bool
	PublicURL       bool
}

type Settings struct {
	R2Endpoint      string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
	Presence        Presence

	ServerPort     int
	MaxUploadBytes int64

	JWTPublicKey string
	JWTIssuer    string
	JWTAudience  string

	RedisAddr         string
	RedisPassword     string
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads the settings once per process start. Missing storage settings
// are not an error: they are only reported by the health endpoint.
func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	v.SetDefault("SERVER_PORT", DefaultServerPort)
	v.SetDefault("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	v.SetDefault("RATE_LIMIT_REQUESTS", DefaultRateLimitRequests)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", DefaultRateLimitWindow)

	port, err := cast.ToIntE(v.Get("SERVER_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be a valid port")
	}
	maxUpload, err := cast.ToInt64E(v.Get("MAX_UPLOAD_BYTES"))
	if err != nil || maxUpload <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be a positive integer")
	}
	rlRequests, err := cast.ToIntE(v.Get("RATE_LIMIT_REQUESTS"))
	if err != nil || rlRequests <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS must be a positive integer")
	}
	rlWindow, err := cast.ToIntE(v.Get("RATE_LIMIT_WINDOW_SECONDS"))
	if err != nil || rlWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be a positive integer")
	}

	get := func(key string) string {
		return strings.TrimSpace(v.GetString(key))
	}

	s := &Settings{
		R2Endpoint:      get("R2_ENDPOINT"),
		AccessKeyID:     get("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: get("AWS_SECRET_ACCESS_KEY"),
		Bucket:          get("R2_BUCKET"),
		PublicURL:       get("R2_PUBLIC_URL"),

		ServerPort:     port,
		MaxUploadBytes: maxUpload,

		JWTPublicKey: get("JWT_PUBLIC_KEY"),
		JWTIssuer:    get("JWT_ISSUER"),
		JWTAudience:  get("JWT_AUDIENCE"),

		RedisAddr:         get("REDIS_ADDR"),
		RedisPassword:     v.GetString("REDIS_PASSWORD"),
		RateLimitRequests: rlRequests,
		RateLimitWindow:   time.Duration(rlWindow) * time.Second,
	}

	s.Presence = Presence{
		R2Endpoint:      s.R2Endpoint != "",
		AccessKeyID:     s.AccessKeyID != "",
		SecretAccessKey: s.SecretAccessKey != "",
		Bucket:          s.Bucket != "",
		PublicURL:       s.PublicURL != "",
	}
	if s.PublicURL == "" {
		s.PublicURL = DefaultPublicURL
	}

	return s, nil
}

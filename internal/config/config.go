package config

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress   = "localhost:8080"
	defaultDatabaseDSN     = "" // empty selects the in-memory store
	defaultJWTAccessExpire = time.Hour
)

type Config struct {
	ServerAddress   string
	DatabaseDSN     string
	JWTSecretKey    string // base64, at least 32 bytes decoded, HS256
	JWTAccessExpire time.Duration
}

func NewConfig() *Config {
	// .env is optional; real env vars win over file values
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		DatabaseDSN:     defaultDatabaseDSN,
		JWTAccessExpire: defaultJWTAccessExpire,
	}

	flag.StringVar(&cfg.ServerAddress, "server-address", cfg.ServerAddress, "Server address")
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", cfg.DatabaseDSN, "Database DSN (empty for in-memory)")
	flag.StringVar(&cfg.JWTSecretKey, "jwt-secret-key", cfg.JWTSecretKey, "JWT signing secret, base64")
	flag.DurationVar(&cfg.JWTAccessExpire, "jwt-access-expire", cfg.JWTAccessExpire, "JWT token expiration")
	flag.Parse()

	cfg.applyEnv("SERVER_ADDRESS", &cfg.ServerAddress)
	cfg.applyEnv("DATABASE_DSN", &cfg.DatabaseDSN)
	cfg.applyEnv("JWT_SECRET_KEY", &cfg.JWTSecretKey)
	cfg.applyEnvDuration("JWT_ACCESS_EXPIRE", &cfg.JWTAccessExpire)

	cfg.validateJWTSecret()
	cfg.normalizeServerAddress()

	return cfg
}

func (c *Config) applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvDuration(key string, target *time.Duration) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}

func (c *Config) validateJWTSecret() {
	if c.JWTSecretKey == "" {
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic("failed to generate JWT secret key")
		}
		c.JWTSecretKey = base64.StdEncoding.EncodeToString(key)
		fmt.Println("WARNING: Using auto-generated JWT secret key. For production, set JWT_SECRET_KEY environment variable.")
	}

	decoded, err := base64.StdEncoding.DecodeString(c.JWTSecretKey)
	if err != nil || len(decoded) < 32 {
		panic("JWT secret key must be at least 32 bytes long (base64 encoded)")
	}
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}

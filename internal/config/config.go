package config

import (
	"os"

	"github.com/Brunoalemao2017/novo-app/internal/redisx"
)

type Config struct {
	HTTPAddr       string
	RedisAddr      string
	StorageBackend string // "redis" | "memory"
	InventoryKey   string
	UsersKey       string
	ServiceName    string
}

func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8081"),
		RedisAddr:      getenv("REDIS_ADDR", "redis:6379"),
		StorageBackend: getenv("STORAGE_BACKEND", "redis"),
		InventoryKey:   getenv("INVENTORY_KEY", redisx.KeyInventory),
		UsersKey:       getenv("USERS_KEY", redisx.KeyUsers),
		ServiceName:    getenv("SERVICE_NAME", "estoque-api"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

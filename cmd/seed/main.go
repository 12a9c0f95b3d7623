// Command seed force-writes the seed snapshots into both namespaces,
// resetting a demo environment to its initial state.
package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Brunoalemao2017/novo-app/internal/config"
	"github.com/Brunoalemao2017/novo-app/internal/inventory"
	"github.com/Brunoalemao2017/novo-app/internal/mirror"
	"github.com/Brunoalemao2017/novo-app/internal/redisx"
	"github.com/Brunoalemao2017/novo-app/internal/users"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()
	m := mirror.NewRedis(rdb)

	state := inventory.Seed()
	b, err := json.Marshal(state)
	if err != nil {
		log.Fatalf("marshal inventory seed: %v", err)
	}
	if err := m.Save(ctx, cfg.InventoryKey, b); err != nil {
		log.Fatalf("write %s: %v", cfg.InventoryKey, err)
	}

	accounts := users.Seed()
	b, err = json.Marshal(users.Snapshot{Usuarios: accounts})
	if err != nil {
		log.Fatalf("marshal users seed: %v", err)
	}
	if err := m.Save(ctx, cfg.UsersKey, b); err != nil {
		log.Fatalf("write %s: %v", cfg.UsersKey, err)
	}

	log.Printf("seeded %d products, %d categories, %d accounts", len(state.Products), len(state.Categories), len(accounts))
}

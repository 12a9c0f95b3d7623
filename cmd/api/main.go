package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Brunoalemao2017/novo-app/internal/config"
	"github.com/Brunoalemao2017/novo-app/internal/httpx"
	"github.com/Brunoalemao2017/novo-app/internal/inventory"
	"github.com/Brunoalemao2017/novo-app/internal/mirror"
	"github.com/Brunoalemao2017/novo-app/internal/redisx"
	"github.com/Brunoalemao2017/novo-app/internal/users"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Mirror backend
	var m mirror.Mirror
	switch cfg.StorageBackend {
	case "redis":
		rdb := redisx.New(cfg.RedisAddr)
		defer rdb.Close()
		m = mirror.NewRedis(rdb)
	case "memory":
		m = mirror.NewMemory()
	default:
		log.Fatalf("unknown storage backend: %s", cfg.StorageBackend)
	}

	// Stores: loaded once at startup, seeded when no snapshot exists
	store := inventory.New(ctx, m, cfg.InventoryKey)
	directory := users.New(ctx, m, cfg.UsersKey)
	log.Printf("%s: %d products, %d categories loaded", cfg.ServiceName, store.TotalProducts(), len(store.Categories()))

	// Router & handlers
	router := httpx.NewRouter()
	ih := &httpx.InventoryHandler{Store: store}
	ih.Register(router)
	ah := &httpx.AuthHandler{Directory: directory}
	ah.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
}

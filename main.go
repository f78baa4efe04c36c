// file: main.go
package main

import (
	"log"

	"github.com/hemanthrajvardhan/ctf/config"
	"github.com/hemanthrajvardhan/ctf/database"
	"github.com/hemanthrajvardhan/ctf/routes"
	"github.com/hemanthrajvardhan/ctf/sessions"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 配置了 Redis 则用作会话存储，否则退回进程内存储
	var store sessions.Store
	if cfg.RedisAddr != "" {
		rdb, err := database.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store = sessions.NewRedisStore(rdb)
	} else {
		log.Println("REDIS_ADDR not set, using in-memory session store")
		store = sessions.NewMemoryStore()
	}

	r := routes.SetupRouter(db, store, cfg.SessionTTL)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

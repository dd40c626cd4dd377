package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/domvailm/barber-ledger/internal/catalog"
	"github.com/domvailm/barber-ledger/internal/config"
	"github.com/domvailm/barber-ledger/internal/kv"
	"github.com/domvailm/barber-ledger/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	store, err := kv.Open(cfg.KVBackend, cfg.DataDir, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("failed to open kv store: %v", err)
	}

	services, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load service catalog: %v", err)
	}

	promotions, err := catalog.LoadPromotions(cfg.PromotionsPath)
	if err != nil {
		log.Fatalf("failed to load promotions: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, services, promotions, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

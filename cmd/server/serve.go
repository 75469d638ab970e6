package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rohanjsheth/Paper-Trader/internal/config"
	"github.com/rohanjsheth/Paper-Trader/internal/database"
	"github.com/rohanjsheth/Paper-Trader/internal/quote"
	"github.com/rohanjsheth/Paper-Trader/internal/router"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Paper Trader web server",
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func runServe() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	var quotes quote.Source = quote.NewClient(cfg.Quote.APIURL, cfg.Quote.APIKey)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		quotes = quote.NewCachedSource(quotes, rdb)
		log.Printf("Quote caching enabled via Redis at %s", cfg.Redis.Addr)
	}

	r := router.Setup(cfg, db, quotes)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Paper Trader server on %s", addr)
	log.Fatal(r.Run(addr))
}

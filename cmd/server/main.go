package main

import (
	"fmt"
	"log"
	"net/http"

	snowbase "github.com/dracory/snowbase"
)

// @title        Snowbase API
// @version      1.0
// @description  HTTP proxy for Snowflake: open connections, run queries and preview relations.
// @BasePath     /
func main() {
	// Load configuration (flags override env)
	cfg, err := snowbase.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	h, err := snowbase.NewHandler(cfg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Printf("snowbase listening on %s (mount %s)", addr, cfg.BasePath)

	mux := http.NewServeMux()
	snowbase.Register(mux, cfg.BasePath, h)

	// Wrap with request logging middleware
	handler := snowbase.RequestLogger(mux)

	log.Fatal(http.ListenAndServe(addr, handler))
}

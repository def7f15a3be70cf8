package main

import (
	"argentbank/internal/config"
	"argentbank/internal/logger"
	"argentbank/internal/routing"
	"argentbank/internal/sqlite"
	"argentbank/pkg/middleware"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.LoadStub() // load env var from .env

	db := sqlite.LoadDB(cfg.DBPath)
	defer db.Close()

	logger := logger.Load()

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Panic(logger))

	routing.InitRoutes(api, db, logger)
	routing.StartServer(r, cfg.Addr)
}

package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"argentbank/pkg/handlers"
	"argentbank/pkg/middleware"
	"argentbank/pkg/user"
)

func InitRoutes(api *mux.Router, db *sql.DB, logger *slog.Logger) {

	userService := user.NewService(user.NewSQLiteRepo(db))
	userHandler := handlers.NewUserHandler(userService, logger)

	/* login is the only route without a bearer token */
	api.HandleFunc("/user/login", userHandler.Login).Methods("POST").Name("login")

	/* profile routes sit behind the JWT check */
	profileRouter := api.PathPrefix("/user/profile").Subrouter()
	profileRouter.Use(middleware.CheckJWT())
	profileRouter.HandleFunc("", userHandler.Profile).Methods("POST")
	profileRouter.HandleFunc("", userHandler.UpdateProfile).Methods("PUT")
}

func StartServer(r *mux.Router, addr string) {
	fmt.Println("\n\033[32m", "The Argent Bank stub API is running on http://localhost"+addr, "\033[0m")
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}

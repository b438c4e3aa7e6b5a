package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/cinelog/cinelog/internal/api"
	"github.com/cinelog/cinelog/internal/config"
	"github.com/cinelog/cinelog/internal/db"
	"github.com/cinelog/cinelog/internal/service"
	"github.com/cinelog/cinelog/internal/store/postgres"
	"github.com/cinelog/cinelog/pkg/middleware"
	"github.com/cinelog/cinelog/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer pool.Close()

	users := postgres.NewUserStore(pool)
	movies := postgres.NewMovieStore(pool)
	tokens := token.New(cfg.JWTSecret, cfg.JWTExpiresIn)

	authService := service.NewAuthService(users, tokens)
	catalogueService := service.NewCatalogueService(movies)
	reviewService := service.NewReviewService(movies)
	watchlistService := service.NewWatchlistService(users)

	authMiddleware := middleware.NewAuthMiddleware(tokens, users)

	r := gin.Default()
	r.Use(api.CORSMiddleware())
	r.SetTrustedProxies(nil)

	api.RegisterRoutes(
		r.Group("/api"),
		api.NewAuthHandler(authService),
		api.NewMovieHandler(catalogueService, reviewService),
		api.NewWatchlistHandler(watchlistService),
		authMiddleware,
	)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

// main.go - Entry point for the cafe directory backend

package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"go-cafe-backend/auth"
	"go-cafe-backend/config"
	"go-cafe-backend/database"
	"go-cafe-backend/handlers"
	"go-cafe-backend/middleware"
	"go-cafe-backend/store"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	db, err := database.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("db connection error")
	}

	sessions := auth.NewSessions(cfg.JWTSecret, cfg.SessionTTL)
	users := store.NewUsers(db)
	cafes := store.NewCafes(db)
	comments := store.NewComments(db)
	h := handlers.New(sessions, users, cafes, comments, log)

	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal().Err(err).Msg("validator setup error")
	}

	r := gin.Default()

	// Public routes
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/cafes", h.ListCafes)
	r.GET("/cafes/:id", h.GetCafe)

	// Routes requiring an authenticated session
	api := r.Group("/api")
	api.Use(middleware.Authenticate(sessions, users))
	{
		api.POST("/logout", h.Logout)
		api.POST("/cafes", h.AddCafe)
		api.POST("/cafes/:id/comments", h.AddComment)
	}

	// Routes reserved for the admin account
	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAdmin(sessions, users))
	{
		admin.GET("/users", h.ListUsers)
	}

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

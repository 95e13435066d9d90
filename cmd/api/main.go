package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"goblog/cmd/app"
	"goblog/internal/config"
	handlers "goblog/internal/handler"
	"goblog/internal/middleware"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig()

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.JWTSecretKey == "" {
		logger.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg, logger)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg, logger)

	r := mux.NewRouter()
	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	// public routes
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/categories", handler.GetCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", handler.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/comments/{postId}", handler.GetComments).Methods(http.MethodGet)

	// routes requiring a bearer token
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(mux.MiddlewareFunc(middleware.RequireAuth(services.Auth, logger)))
	protected.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	protected.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	protected.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	protected.HandleFunc("/posts/{id}/image", handler.UploadFeaturedImage).Methods(http.MethodPost)
	protected.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Infof("server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

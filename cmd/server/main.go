package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UkralStul/blog-posts-service/internal/config"
	"github.com/UkralStul/blog-posts-service/internal/dataloader"
	"github.com/UkralStul/blog-posts-service/internal/httpapi"
	"github.com/UkralStul/blog-posts-service/internal/logging"
	"github.com/UkralStul/blog-posts-service/internal/service"
	"github.com/UkralStul/blog-posts-service/internal/storage"
	"github.com/UkralStul/blog-posts-service/internal/storage/inmemory"
	"github.com/UkralStul/blog-posts-service/internal/storage/mongodb"
	"github.com/UkralStul/blog-posts-service/internal/storage/postgres"
)

// backend - хранилище постов, которое одновременно служит справочником пользователей.
type backend interface {
	storage.Storage
	storage.Directory
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	storageType := flag.String("storage", cfg.Database.Storage, "Storage type (in-memory, postgres or mongo)")
	flag.Parse()
	cfg.Database.Storage = *storageType

	log := logging.New(os.Stderr, cfg.Debug)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting server", "storage", cfg.Database.Storage)
	var store backend
	switch cfg.Database.Storage {
	case config.StoragePostgres:
		store, err = postgres.New(cfg.Database.PostgresDSN, cfg.Debug)
		if err != nil {
			log.Error("failed to connect to postgres", "err", err)
			os.Exit(1)
		}
	case config.StorageMongo:
		mongoStore, err := mongodb.New(ctx, cfg.Database.MongoURI, cfg.Database.MongoDatabase)
		if err != nil {
			log.Error("failed to connect to mongo", "err", err)
			os.Exit(1)
		}
		defer mongoStore.Close(context.Background())
		store = mongoStore
	default:
		memStore := inmemory.New()
		// Заполним данными для ручной проверки
		fillWithMockData(memStore, log)
		store = memStore
	}

	svc := service.New(store, dataloader.NameResolver{Directory: store}, log)
	auth := httpapi.NewAuthenticator(cfg.Server.JWTSecret)
	router := httpapi.NewRouter(svc, store, auth, cfg.Server.AllowedOrigins, log)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown failed", "err", err)
		}
	}()

	log.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func fillWithMockData(s *inmemory.Store, log *slog.Logger) {
	ctx := context.Background()

	s.PutUser("user-1", "Alice")
	s.PutUser("user-2", "Bob")
	s.PutUser("user-3", "Carol")

	svc := service.New(s, dataloader.NameResolver{Directory: s}, log)

	post, err := svc.CreatePost(ctx, "user-1", service.NewPost{
		Title:   "First steps with Go",
		Author:  "Alice",
		Content: "<p>Notes from a first week of writing Go services.</p>",
	})
	if err != nil {
		log.Error("fillWithMockData: failed to create post", "err", err)
		os.Exit(1)
	}

	post, err = svc.AddComment(ctx, post.ID, "user-2", "Nice story")
	if err != nil {
		log.Error("fillWithMockData: failed to add comment", "err", err)
		os.Exit(1)
	}

	if _, err := svc.AddReply(ctx, post.ID, post.Comments[0].ID, "user-1", "Thanks!"); err != nil {
		log.Error("fillWithMockData: failed to add reply", "err", err)
		os.Exit(1)
	}

	if _, err := svc.ToggleFavorite(ctx, post.ID, "user-3"); err != nil {
		log.Error("fillWithMockData: failed to favorite post", "err", err)
		os.Exit(1)
	}

	log.Info("mock data filled", "post_id", post.ID)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/careerpath/careerpath-go/internal/config"
	"github.com/careerpath/careerpath-go/internal/counselor"
	"github.com/careerpath/careerpath-go/internal/handler"
	"github.com/careerpath/careerpath-go/internal/repository"
	"github.com/careerpath/careerpath-go/internal/service"
)

type stores struct {
	users    service.UserStore
	profiles service.ProfileStore
	chats    service.ChatStore
	close    func(context.Context) error
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := openStores(ctx, cfg)
	cancel()
	if err != nil {
		slog.Error("store initialization failed", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	llm, err := counselor.NewCompleter(context.Background(), cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL)
	if err != nil {
		slog.Error("LLM client initialization failed", "provider", cfg.LLMProvider, "error", err)
		os.Exit(1)
	}
	advisor := counselor.New(llm)

	profileService := service.NewProfileService(st.profiles)
	router := handler.NewRouter(handler.Services{
		Auth:       service.NewAuthService(st.users, cfg.JWTSecret, cfg.JWTExpiry),
		Profile:    profileService,
		Assessment: service.NewAssessmentService(profileService, advisor),
		Chat:       service.NewChatService(st.chats, st.profiles, advisor),
	}, cfg.JWTSecret, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "store", cfg.StoreDriver, "llm", cfg.LLMProvider)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	if err := st.close(ctx); err != nil {
		slog.Error("closing store failed", "error", err)
	}

	slog.Info("server stopped")
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case "mongo":
		client, db, err := repository.NewMongo(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return stores{}, err
		}
		if err := repository.EnsureIndexes(ctx, db); err != nil {
			client.Disconnect(ctx)
			return stores{}, err
		}
		return stores{
			users:    repository.NewMongoUserRepository(db),
			profiles: repository.NewMongoProfileRepository(db),
			chats:    repository.NewMongoChatRepository(db),
			close:    client.Disconnect,
		}, nil

	case "mysql":
		db, err := repository.NewDB(cfg.DatabaseDSN)
		if err != nil {
			return stores{}, err
		}
		if err := repository.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return stores{}, err
		}
		return stores{
			users:    repository.NewUserRepository(db),
			profiles: repository.NewProfileRepository(db),
			chats:    repository.NewChatRepository(db),
			close:    func(context.Context) error { return db.Close() },
		}, nil

	case "memory":
		slog.Warn("using in-memory store, data is lost on restart")
		mem := repository.NewMemoryStore()
		return stores{
			users:    mem,
			profiles: mem,
			chats:    mem,
			close:    func(context.Context) error { return nil },
		}, nil

	default:
		return stores{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

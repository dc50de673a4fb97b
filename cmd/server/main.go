package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/brain-heist/config"
	"github.com/user/brain-heist/internal/game"
	"github.com/user/brain-heist/internal/interfaces"
	"github.com/user/brain-heist/internal/oracle"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Set up logger
	logger := setupLogger()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Set up persistence store
	store, cleanup, err := setupStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to set up storage", zap.Error(err))
	}
	defer cleanup()

	// Initialize game controller
	controller := game.NewGameController(cfg, store)
	controller.SetLogger(logger)
	controller.SetOracle(oracle.NewClient(cfg.Oracle, logger))
	defer controller.Detach()

	// Set up HTTP server for the presentation layer
	server := setupHTTPServer(cfg, controller, logger)

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(logger)
}

func setupLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

func setupStore(cfg config.Config, logger *zap.Logger) (interfaces.Store, func(), error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := game.NewSQLiteStore(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using sqlite store", zap.String("dsn", cfg.Storage.DSN))
		return store, func() { store.Close() }, nil
	default:
		logger.Info("Using file store", zap.String("data_dir", cfg.Storage.DataDir))
		return game.NewFileStore(cfg.Storage.DataDir), func() {}, nil
	}
}

func setupHTTPServer(cfg config.Config, controller *game.GameController, logger *zap.Logger) *http.Server {
	// Create router
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Identity boundary: attach/detach the active session
	router.Post("/session", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID   string `json:"user_id"`
			Username string `json:"username"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		if err := controller.Attach(req.UserID, req.Username); err != nil {
			logger.Error("Failed to attach session",
				zap.String("user_id", req.UserID),
				zap.Error(err))
			http.Error(w, "Failed to attach session", http.StatusInternalServerError)
			return
		}

		state, err := controller.Snapshot()
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, state)
	})

	router.Delete("/session", func(w http.ResponseWriter, r *http.Request) {
		controller.Detach()
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		state, err := controller.Snapshot()
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, state)
	})

	router.Get("/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		agents, err := controller.Leaderboard()
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, agents)
	})

	router.Post("/tasks/{task_id}/complete", func(w http.ResponseWriter, r *http.Request) {
		taskID := chi.URLParam(r, "task_id")
		if err := controller.CompleteTask(taskID); err != nil {
			writeGameError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	router.Get("/tasks/{task_id}/question", func(w http.ResponseWriter, r *http.Request) {
		taskID := chi.URLParam(r, "task_id")
		question, err := controller.GenerateTriviaQuestion(r.Context(), taskID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, map[string]string{"question": question})
	})

	router.Post("/tasks/{task_id}/answer", func(w http.ResponseWriter, r *http.Request) {
		taskID := chi.URLParam(r, "task_id")
		var req struct {
			Question string `json:"question"`
			Answer   string `json:"answer"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}

		correct, err := controller.SubmitTriviaAnswer(r.Context(), taskID, req.Question, req.Answer)
		if err != nil && !errors.Is(err, game.ErrTaskAlreadyCompleted) {
			writeGameError(w, err)
			return
		}
		writeJSON(w, map[string]bool{"correct": correct})
	})

	router.Post("/shop/{item_id}/purchase", func(w http.ResponseWriter, r *http.Request) {
		itemID := chi.URLParam(r, "item_id")
		purchased, err := controller.PurchaseItem(itemID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, map[string]bool{"purchased": purchased})
	})

	router.Post("/hack/{target_id}", func(w http.ResponseWriter, r *http.Request) {
		targetID := chi.URLParam(r, "target_id")
		result, err := controller.PerformHack(targetID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, map[string]string{"result": result})
	})

	// Create HTTP server
	return &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeGameError maps domain errors onto HTTP statuses
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNoSession):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, game.ErrTaskNotFound),
		errors.Is(err, game.ErrItemNotFound),
		errors.Is(err, game.ErrTargetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, game.ErrTaskAlreadyCompleted),
		errors.Is(err, game.ErrNotTriviaTask):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

func waitForShutdown(logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	// Perform cleanup
	logger.Info("Shutting down")
}

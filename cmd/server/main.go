package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suryapratap64/Fullstack-docs/internal/auth"
	"github.com/suryapratap64/Fullstack-docs/internal/config"
	"github.com/suryapratap64/Fullstack-docs/internal/dsa"
	"github.com/suryapratap64/Fullstack-docs/internal/journal"
	"github.com/suryapratap64/Fullstack-docs/internal/middleware"
	"github.com/suryapratap64/Fullstack-docs/internal/notes"
	"github.com/suryapratap64/Fullstack-docs/internal/store"
	"github.com/suryapratap64/Fullstack-docs/internal/tasks"
	"github.com/suryapratap64/Fullstack-docs/internal/uploads"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	secret := []byte(cfg.JWTSecret)

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect")
	}
	defer pgPool.Close()
	pgStore := store.NewPostgresStore(pgPool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("postgres migrate")
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	defer mongoClient.Disconnect(ctx)
	mongoDB := mongoClient.Database(cfg.MongoDB)

	noteStore := store.NewNoteStore(mongoDB)
	taskStore := store.NewTaskStore(mongoDB)
	dsaStore := store.NewDSAStore(mongoDB)
	journalStore := store.NewJournalStore(mongoDB)
	if err := journalStore.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	// ── Redis ────────────────────────────────────────────────
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()
	journalLocks := store.NewKeyLock(rdb)

	// ── Object storage ───────────────────────────────────────
	// Optional: without credentials the uploads endpoint answers
	// with a configuration error but everything else still works.
	var fileStore uploads.FileStore
	if cfg.HasS3() {
		objStore, err := store.NewObjectStore(
			cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Region, cfg.S3Bucket, cfg.S3UseSSL,
		)
		if err != nil {
			log.Fatal().Err(err).Msg("object storage client")
		}
		fileStore = objStore
	} else {
		log.Warn().Msg("object storage credentials missing; uploads disabled")
	}

	// ── Summarizer ───────────────────────────────────────────
	gemini := journal.NewGeminiClient(cfg.GeminiURL, cfg.GeminiAPIKey)

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(pgStore, secret, log)
	noteHandler := notes.NewHandler(noteStore)
	taskHandler := tasks.NewHandler(taskStore)
	dsaHandler := dsa.NewHandler(dsaStore)
	journalHandler := journal.NewHandler(journalStore, journalLocks, gemini, log)
	uploadHandler := uploads.NewHandler(fileStore, log)

	verify := func(token string) (string, string, error) {
		return auth.VerifyToken(token, secret)
	}
	requireAuth := middleware.RequireAuth(auth.TokenCookie, verify)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Auth routes (register/login public, the rest behind the gate)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/change-password", authHandler.ChangePassword)
		r.Post("/logout", authHandler.Logout)
		r.With(requireAuth).Get("/me", authHandler.Me)
	})

	// Resource routes (all protected)
	r.Route("/notes", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", noteHandler.List)
		r.Post("/", noteHandler.Create)
		r.Put("/", noteHandler.Update)
		r.Delete("/", noteHandler.Delete)
	})
	r.Route("/tasks", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", taskHandler.List)
		r.Post("/", taskHandler.Create)
		r.Put("/", taskHandler.Update)
		r.Delete("/", taskHandler.Delete)
	})
	r.Route("/dsa", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", dsaHandler.List)
		r.Post("/", dsaHandler.Create)
		r.Put("/", dsaHandler.Update)
		r.Delete("/", dsaHandler.Delete)
	})
	r.Route("/gpt-month", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", journalHandler.List)
		r.Post("/", journalHandler.Create)
		r.Put("/", journalHandler.Update)
		r.Delete("/", journalHandler.Delete)
		r.Post("/posts", journalHandler.AddPost)
		r.Put("/posts", journalHandler.UpdatePost)
		r.Delete("/posts", journalHandler.DeletePost)
		r.Post("/summarize", journalHandler.Summarize)
	})
	r.With(requireAuth).Post("/uploads", uploadHandler.Upload)

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("backend listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}

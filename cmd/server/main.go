package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"organease/internal/adapters/consent"
	httpadapter "organease/internal/adapters/http"
	"organease/internal/adapters/memory"
	pg "organease/internal/adapters/postgres"
	redisadapter "organease/internal/adapters/redis"
	"organease/internal/config"
	"organease/internal/ports"
	"organease/internal/services/matching"
	"organease/internal/services/profiles"
	"organease/internal/services/verification"
	"organease/internal/services/workflow"
	"organease/internal/workers/outbox"
)

// stores groups the repository ports so either adapter can back them.
type stores interface {
	ports.DonorRepository
	ports.RecipientRepository
	ports.HospitalRepository
	ports.MatchRepository
	ports.JobRepository
}

type notifier interface {
	ports.Notifier
	ports.Inbox
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if generated, err := cfg.EnsureJWTSecret(); err != nil {
		log.Fatalf("config: %v", err)
	} else if generated {
		log.Printf("JWT_SECRET not set, using generated development secret %s", cfg.JWTSecret)
	}
	auth, err := httpadapter.NewAuthenticator(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store stores
	mem := memory.New()
	if cfg.DatabaseURL != "" {
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		defer db.Close()
		if cfg.AutoMigrate {
			if err := db.Migrate(ctx); err != nil {
				log.Fatalf("migrate: %v", err)
			}
		}
		store = db
	} else {
		log.Printf("using in-memory store; data is lost on restart")
		store = mem
	}

	var notes notifier = mem
	if cfg.RedisURL != "" {
		rn, err := redisadapter.Connect(ctx, cfg.RedisURL, redisadapter.DefaultPrefix)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rn.Close()
		notes = rn
	}

	gen, err := consent.NewFileGenerator(cfg.ConsentDir, cfg.ConsentBaseURL)
	if err != nil {
		log.Fatalf("consent: %v", err)
	}

	logger := log.Default()
	matcher := matching.New(store, store, store, logger)
	verifier := verification.New(store, store, logger, matcher)
	wf := workflow.New(workflow.Deps{
		Matches: store, Donors: store, Recipients: store, Hospitals: store, Jobs: store,
		Consent: gen, Logger: logger,
	})
	handler := outbox.Mux{
		ports.JobSendNotification: outbox.NotificationHandler{Notifier: notes},
		ports.JobGenerateConsent:  outbox.HandlerFunc(wf.HandleConsentJob),
	}

	srv := httpadapter.New(httpadapter.Deps{
		Profiles:     profiles.New(store, store, store),
		Verification: verifier,
		Matching:     matcher,
		Workflow:     wf,
		Inbox:        notes,
		Documents:    gen,
		Jobs:         store,
		Outbox:       handler,
		MaxAttempts:  cfg.OutboxMaxAttempts,
		Auth:         auth,
		CORSOrigins:  cfg.Origins(),
		Logger:       logger,
	})
	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.OutboxWorkers > 0 {
		g.Go(func() error {
			log.Printf("outbox workers started: %d", cfg.OutboxWorkers)
			outbox.Run(gctx, store, handler, outbox.Options{
				Concurrency:  cfg.OutboxWorkers,
				PollInterval: cfg.PollInterval(),
				MaxAttempts:  cfg.OutboxMaxAttempts,
				Logger:       logger,
			})
			return nil
		})
	}
	g.Go(func() error {
		log.Printf("listening on %s", cfg.ListenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Printf("server error: %v", err)
		os.Exit(1)
	}
}

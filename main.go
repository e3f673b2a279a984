package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-park-mail-ru/2019_1_Remastered/config"
	"github.com/go-park-mail-ru/2019_1_Remastered/drafts"
	"github.com/go-park-mail-ru/2019_1_Remastered/games"
	"github.com/go-park-mail-ru/2019_1_Remastered/metrics"
	"github.com/go-park-mail-ru/2019_1_Remastered/pages"
	"github.com/go-park-mail-ru/2019_1_Remastered/profile"
	"github.com/go-park-mail-ru/2019_1_Remastered/storage"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jcftang/logentriesrus"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

func setupLogger(cfg *config.LoggingConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "log level parse error")
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)

	if cfg.LogentriesToken != "" {
		hook, err := logentriesrus.NewLogentriesrusHook(cfg.LogentriesToken)
		if err != nil {
			return errors.Wrap(err, "logentries hook error")
		}
		log.AddHook(hook)
	}

	return nil
}

func setupDrafts(cfg *config.Config) error {
	switch cfg.Drafts.Store {
	case config.DraftStoreRedis:
		if err := storage.Connect(cfg.Redis.Addr, cfg.Redis.Password); err != nil {
			return errors.Wrap(err, "redis connect error")
		}
		drafts.Drafts = drafts.NewRedisStore(cfg.Drafts.TTL)
	default:
		drafts.Drafts = drafts.NewMemoryStore(cfg.Drafts.TTL)
	}

	return nil
}

// NewRouter собирает все роуты сервиса
func NewRouter(cfg *config.Config, h *pages.Handler) http.Handler {
	submitLimiter := rate.NewLimiter(rate.Limit(cfg.Server.SubmitRPS), cfg.Server.SubmitBurst)

	r := mux.NewRouter()
	r.Use(RouteMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/games", games.GetGameList).Methods("GET")
	api.HandleFunc("/games/{game_id:[0-9]+}", games.GetGame).Methods("GET")
	api.HandleFunc("/categories", games.GetCategories).Methods("GET")
	api.HandleFunc("/templates", drafts.GetTemplates).Methods("GET")
	api.HandleFunc("/drafts", drafts.CreateDraft).Methods("POST")
	api.HandleFunc("/drafts/{draft_id}", drafts.GetDraft).Methods("GET")
	api.HandleFunc("/drafts/{draft_id}/template", drafts.ChooseDraftTemplate).Methods("PUT")
	api.HandleFunc("/drafts/{draft_id}/details", drafts.UpdateDraftDetails).Methods("PUT")
	api.HandleFunc("/drafts/{draft_id}/back", drafts.DraftBack).Methods("POST")
	api.HandleFunc("/drafts/{draft_id}/submit", WithLimiter(drafts.SubmitDraft, submitLimiter)).Methods("POST")
	api.HandleFunc("/profile", profile.GetProfile).Methods("GET")
	// preflight отвечает сам CORS, роут нужен, чтобы mux не отдал 405
	api.PathPrefix("/").Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	api.Use(handlers.CORS(
		handlers.AllowedOrigins(cfg.Server.CORSOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	))

	r.HandleFunc("/", h.Home).Methods("GET")
	r.HandleFunc("/profile", h.Profile).Methods("GET")
	r.HandleFunc("/create", h.CreateDialog).Methods("GET")
	r.HandleFunc("/create/template", h.ChooseTemplate).Methods("POST")
	r.HandleFunc("/create/details", WithLimiter(h.SubmitDetails, submitLimiter)).Methods("POST")
	r.PathPrefix("/static/").Handler(pages.Static())
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.NotFoundHandler = http.HandlerFunc(h.NotFound)

	return AccessLogMiddleware(RecoverMiddleware(handlers.CompressHandler(r)))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cant load config: %s", err)
	}

	if err = setupLogger(&cfg.Logging); err != nil {
		log.Fatalf("cant setup logger: %s", err)
	}

	if err = setupDrafts(cfg); err != nil {
		log.Fatalf("cant setup draft store: %s", err)
	}
	defer storage.Close() //nolint: errcheck

	h, err := pages.New()
	if err != nil {
		log.Fatalf("cant load templates: %s", err)
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: NewRouter(cfg, h),
	}

	idle := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("shutdown error: %s", err)
		}
		close(idle)
	}()

	log.WithFields(log.Fields{
		"addr":        cfg.Addr(),
		"draft_store": cfg.Drafts.Store,
	}).Info("MainService successfully started")
	if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Errorf("cant start main server. err: %s", err)
		return
	}

	<-idle
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/belezasmart/internal/audit"
	"github.com/BruksfildServices01/belezasmart/internal/cache"
	"github.com/BruksfildServices01/belezasmart/internal/config"
	dbpkg "github.com/BruksfildServices01/belezasmart/internal/db"
	infraRepo "github.com/BruksfildServices01/belezasmart/internal/infra/repository"
	"github.com/BruksfildServices01/belezasmart/internal/jobs"
	"github.com/BruksfildServices01/belezasmart/internal/logging"
	"github.com/BruksfildServices01/belezasmart/internal/metrics"
	"github.com/BruksfildServices01/belezasmart/internal/payment"
	"github.com/BruksfildServices01/belezasmart/internal/routes"
	"github.com/BruksfildServices01/belezasmart/internal/storage"
	"github.com/BruksfildServices01/belezasmart/internal/web"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg.LogLevel)
	db := dbpkg.NewDB(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	// ======================================================
	// 🔌 INTEGRAÇÕES OPCIONAIS
	// ======================================================
	var appCache cache.Cache = cache.Noop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.WithError(err).Warn("redis unavailable, subscription cache disabled")
		} else {
			defer rc.Close()
			appCache = rc
		}
	}

	var gateway payment.Gateway = payment.Disabled{}
	if cfg.MercadoPago.AccessToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MercadoPago)
		if err != nil {
			log.WithError(err).Warn("mercadopago disabled")
		} else {
			gateway = mp
		}
	}

	var uploader storage.Uploader
	if cfg.S3.Enabled() {
		uploader = storage.NewS3(cfg.S3)
	}

	// ======================================================
	// ⏰ ROTINAS
	// ======================================================
	scheduler := jobs.NewScheduler(log)
	digest := jobs.NewBirthdayDigest(
		infraRepo.NewAccountGormRepository(db),
		infraRepo.NewClientGormRepository(db),
		auditDispatcher,
		log,
	)
	if err := scheduler.Add("birthday_digest", cfg.BirthdayDigestCron, digest.Job()); err != nil {
		log.WithError(err).Fatal("invalid cron spec")
	}
	scheduler.Start()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(web.Templates())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Audit:    auditDispatcher,
		Metrics:  metrics.New(),
		Cache:    appCache,
		Gateway:  gateway,
		Uploader: uploader,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	scheduler.Stop()
	auditDispatcher.Close()
}

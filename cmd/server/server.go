package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexedwards/scs/v2"
	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
	"github.com/mayatech/storefront/api"
	"github.com/mayatech/storefront/config"
	"github.com/mayatech/storefront/core/cart"
	"github.com/mayatech/storefront/core/catalog"
	"github.com/mayatech/storefront/core/ids"
	"github.com/mayatech/storefront/core/notify"
	"github.com/mayatech/storefront/core/user"
	"github.com/mayatech/storefront/rate"
	"github.com/mayatech/storefront/storage"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	// A missing .env file is fine, the environment still applies.
	_ = godotenv.Load()

	const prefix = "MAYA"
	var cfg config.Config
	if _, err := conf.Parse(prefix, &cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	store, err := storage.OpenFileStore(cfg.Store.Dir)
	if err != nil {
		return fmt.Errorf("failed to open store at %s: %w", cfg.Store.Dir, err)
	}

	gen := ids.NewGenerator()

	cat := catalog.NewStore(store, gen)
	if err := cat.Load(); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	bag := cart.New(store)
	if err := bag.Load(); err != nil {
		return fmt.Errorf("loading cart: %w", err)
	}

	users := user.NewStore(store, gen, cfg.Mock.AuthLatency)
	if err := users.Load(); err != nil {
		return fmt.Errorf("loading users: %w", err)
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.Session.Lifetime

	toasts := notify.NewCenter(notify.DefaultTTL)

	limiter := rate.NewLimiter(cfg.Auth.RateBurst, int(cfg.Auth.RateTTL.Minutes()), cfg.Auth.RateRPS)

	mux := api.APIMux(api.APIConfig{
		CorsOrigin:      cfg.Cors.Origin,
		Log:             logger,
		Session:         sessionManager,
		Catalog:         cat,
		Cart:            bag,
		Users:           users,
		Toasts:          toasts,
		AuthLimiter:     limiter,
		CheckoutLatency: cfg.Mock.CheckoutLatency,
	})

	api := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}

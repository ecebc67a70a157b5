package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diwise/lora-mint/internal/app/api"
	app "github.com/diwise/lora-mint/internal/app/loramint"
	"github.com/diwise/lora-mint/internal/pkg/storage"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

const serviceName string = "lora-mint"

func main() {
	serviceVersion := buildinfo.SourceVersion()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ctx, log, cleanup := o11y.Init(ctx, serviceName, serviceVersion)
	defer cleanup()

	var opa, cfg string

	flag.StringVar(&opa, "policies", "/opt/diwise/config/authz.rego", "An authorization policy file")
	flag.StringVar(&cfg, "config", "/opt/diwise/config/lora-mint.yaml", "An application configuration file")
	flag.Parse()

	appKey := env.GetVariableOrDefault(ctx, "TTN_APP_KEY", "")
	if appKey == "" {
		log.Error("TTN_APP_KEY must be set")
		os.Exit(1)
	}

	s, err := storage.New(ctx, storage.LoadConfiguration(ctx))
	if err != nil {
		log.Error("could not configure storage", "err", err.Error())
		os.Exit(1)
	}

	var messenger messaging.MsgContext
	if env.GetVariableOrDefault(ctx, "RABBITMQ_HOST", "") != "" {
		config := messaging.LoadConfiguration(ctx, serviceName, log)
		messenger, err = messaging.Initialize(ctx, config)
		if err != nil {
			log.Error("failed to init messenger", "err", err.Error())
			os.Exit(1)
		}
		messenger.Start()
	} else {
		log.Info("RABBITMQ_HOST not set, stored records will not be published")
	}

	a := app.New(s, s, messenger)

	err = loadConfig(ctx, cfg, a)
	if err != nil {
		log.Error("file with configuration found but could not be loaded", "err", err.Error())
		os.Exit(1)
	}

	r, err := newRouter(ctx, opa, appKey, a)
	if err != nil {
		log.Error("could not setup router", "err", err.Error())
		os.Exit(1)
	}

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	webServer := &http.Server{Addr: ":" + port, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		log.Info("starting to listen for connections", "port", port)
		if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("could not listen and serve", "err", err.Error())
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()

	webServer.Shutdown(shutdownCtx)
	if messenger != nil {
		messenger.Close()
	}
	s.Close()
}

func newRouter(ctx context.Context, opa, appKey string, a app.App) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	policies, err := os.Open(opa)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to open opa policy file: %s", err.Error())
		}

		log.Debug("no policy file found, using built in policy", "path", opa)
		return api.Register(ctx, a, nil, appKey)
	}
	defer policies.Close()

	return api.Register(ctx, a, policies, appKey)
}

func loadConfig(ctx context.Context, fp string, a app.App) error {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(fp)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("no configuration file found, using defaults", "path", fp)
			return nil
		}
		return err
	}
	defer f.Close()

	return a.LoadConfig(ctx, f)
}

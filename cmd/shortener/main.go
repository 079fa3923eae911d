package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/atinyakov/tinyapp/internal/app/server"
	"github.com/atinyakov/tinyapp/internal/app/service"
	"github.com/atinyakov/tinyapp/internal/config"
	"github.com/atinyakov/tinyapp/internal/logger"
	"github.com/atinyakov/tinyapp/internal/shortcode"
	"github.com/atinyakov/tinyapp/internal/storage"
	"github.com/atinyakov/tinyapp/internal/worker"

	_ "net/http/pprof"
)

var buildVersion = "N/A"
var buildDate = "N/A"
var buildCommit = "N/A"

const shutdownTimeout = 5 * time.Second

type app struct {
	handler  http.Handler
	recorder *worker.VisitRecorder
}

func newApp(options *config.Options, zapLogger *zap.Logger) *app {
	users := storage.NewUserDirectory()
	urls := storage.NewURLRegistry(shortcode.NewGenerator())

	recorder := worker.NewVisitRecorder(zapLogger, urls, options.VisitFlushInterval)
	auth := service.NewAuth(users, options.SessionSecret)
	urlService := service.NewURL(urls, users, recorder.GetInChannel(), service.RealClock{}, zapLogger, options.ResultHostname)

	r := server.Init(server.Deps{
		URLs:          urlService,
		Users:         auth,
		Auth:          auth,
		Logger:        zapLogger,
		TrustedSubnet: options.TrustedSubnet,
	})

	return &app{handler: r, recorder: recorder}
}

func hostOf(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	return u.Hostname()
}

func main() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	options, err := config.New()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logger.New()
	defer log.Sync()

	if err := log.Init(options.LogLevel); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	zapLogger := log.Log

	if options.SessionSecret == config.DefaultSessionSecret {
		zapLogger.Warn("using the default session secret, set SESSION_SECRET or -k")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	a := newApp(options, zapLogger)

	recorderCtx, stopRecorder := context.WithCancel(context.Background())
	recorderDone := make(chan struct{})
	go func() {
		a.recorder.Run(recorderCtx)
		close(recorderDone)
	}()

	srv := &http.Server{
		Addr:    options.Port,
		Handler: a.handler,
	}

	serveErr := make(chan error, 1)
	go func() {
		if options.EnableHTTPS {
			manager := &autocert.Manager{
				Cache:      autocert.DirCache("cache-dir"),
				Prompt:     autocert.AcceptTOS,
				HostPolicy: autocert.HostWhitelist(hostOf(options.ResultHostname)),
			}
			srv.Addr = ":443"
			srv.TLSConfig = manager.TLSConfig()
			zapLogger.Info("Server is running with TLS", zap.String("addr", srv.Addr))
			serveErr <- srv.ListenAndServeTLS("", "")
			return
		}
		zapLogger.Info("Server is running", zap.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			stopRecorder()
			<-recorderDone
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		zapLogger.Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("shutdown", zap.Error(err))
	}

	stopRecorder()
	<-recorderDone
	return nil
}

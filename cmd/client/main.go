package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-rest-session/internal/adapter"
	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/logger"
	"github.com/MKhiriev/go-rest-session/internal/session"
	"github.com/MKhiriev/go-rest-session/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("go-rest-session-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Err(err).Msg("closing local storage failed")
		}
	}()

	auth, err := adapter.NewAuthService(cfg.Adapter, cfg.Session.RefreshRetryCount, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth service")
	}

	sess := session.New(localStorage.TokenRepository, auth, log, session.WithRefreshTimeout(cfg.Session.RefreshTimeout))
	if err = sess.Restore(ctx); err != nil {
		log.Err(err).Msg("restoring saved session failed, starting signed out")
	}

	client, err := adapter.NewClient(cfg.Adapter, sess, log, adapter.WithUnauthorizedHandler(expireSession(sess)))
	if err != nil {
		log.Fatal().Err(err).Msg("create http client")
	}

	c := &cli{
		api:    adapter.NewAPI(client, auth, sess, log),
		out:    os.Stdout,
		copyFn: clipboard.WriteAll,
	}

	if err = c.run(ctx, os.Args[0], commandArgs()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		log.Err(err).Msg("command failed")
		return 1
	}

	return 0
}

// expireSession drops saved tokens once the backend refuses to refresh
// them, so the next run starts signed out.
func expireSession(sess *session.Session) adapter.UnauthorizedHandler {
	return func(ctx context.Context, refreshErr error) (*resty.Response, error) {
		if err := sess.Clear(ctx); err != nil {
			logger.FromContext(ctx).Err(err).Msg("clearing expired session failed")
		}
		return nil, fmt.Errorf("%w, run login again: %w", errSessionExpired, refreshErr)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

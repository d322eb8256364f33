package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/techfolio/internal/analytics"
	"github.com/Zachkp/techfolio/internal/content"
	"github.com/Zachkp/techfolio/internal/logger"
	"github.com/Zachkp/techfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page over HTTP",
	Long: `The serve command starts the web server: the portfolio page, its HTMX
fragments, the snippets API and, when analytics is enabled, the admin
statistics endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

var addrFlag string

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if appConfig.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog, err := content.Default()
	if err != nil {
		return err
	}

	var (
		tracker web.Tracker
		store   *analytics.Store
	)
	if appConfig.AnalyticsEnabled {
		store, err = analytics.Open(ctx, appConfig.DBPath)
		if err != nil {
			return fmt.Errorf("opening analytics database: %w", err)
		}
		defer store.Close()
		tracker = store
		log.Info("analytics enabled", logger.String("db", appConfig.DBPath))
	}

	token := appConfig.AdminToken
	if token == "" && store != nil {
		token, err = analytics.NewToken()
		if err != nil {
			return fmt.Errorf("generating admin token: %w", err)
		}
		log.Info("generated a one-off admin token; set TECHFOLIO_ADMIN_TOKEN to pin it")
		log.Debug("admin token", logger.String("token", token))
	}
	if token != "" {
		log.Info("admin access available at /admin/login")
	}

	addr := appConfig.Addr
	if addrFlag != "" {
		addr = addrFlag
	}

	srv, err := web.New(web.Options{
		Addr:          addr,
		Catalog:       catalog,
		Tracker:       tracker,
		AdminToken:    token,
		AdminUsername: appConfig.AdminUsername,
		AdminPassword: appConfig.AdminPassword,
		ToastDuration: appConfig.ToastDuration,
		Contacts: web.Contacts{
			GithubURL: appConfig.GithubURL,
			Email:     appConfig.ContactEmail,
			Website:   appConfig.Website,
		},
		Logger: log,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})
	if store != nil {
		g.Go(func() error {
			cleanupLoop(gctx, store, appConfig.VisitorRetention, appConfig.CleanupInterval)
			return nil
		})
	}
	return g.Wait()
}

// cleanupLoop drops visitor records older than retention, once at startup
// and then every interval.
func cleanupLoop(ctx context.Context, store *analytics.Store, retention, interval time.Duration) {
	cleanup := func() {
		n, err := store.Cleanup(ctx, retention)
		if err != nil {
			if ctx.Err() == nil {
				log.Warn("analytics cleanup failed", logger.Error(err))
			}
			return
		}
		if n > 0 {
			log.Info("removed old visitor records", logger.Int64("count", n))
		}
	}

	cleanup()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cleanup()
		}
	}
}

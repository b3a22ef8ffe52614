package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	cartapp "github.com/dwikikusuma/soundshop/internal/cart/app"
	"github.com/dwikikusuma/soundshop/internal/cart/infra/memory"
	catalogapp "github.com/dwikikusuma/soundshop/internal/catalog/app"
	"github.com/dwikikusuma/soundshop/internal/catalog/infra/jsonfile"
	checkoutapp "github.com/dwikikusuma/soundshop/internal/checkout/app"
	"github.com/dwikikusuma/soundshop/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/soundshop/internal/web"
	"github.com/dwikikusuma/soundshop/pkg/config"
	"github.com/dwikikusuma/soundshop/pkg/logger"
	"github.com/dwikikusuma/soundshop/pkg/shutdown"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the storefront HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	opts := logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	}
	log := logger.New(opts)

	access, err := logger.NewAccess(opts)
	if err != nil {
		return fmt.Errorf("failed to build access logger: %w", err)
	}
	defer func() { _ = access.Sync() }()

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := shutdown.WithSignals(parent)
	defer cancel()

	catalog := catalogapp.LoadCatalog(ctx, jsonfile.NewProductSource(cfg.CatalogPath), log)
	catalogSvc := catalogapp.NewService(catalog)
	carts := cartapp.NewService(memory.NewCartRepo(cfg.MaxSessions, cfg.SessionTTL), catalogSvc)
	checkout := checkoutapp.NewService(adapter.NewCartServiceReader(carts), cfg.Currency)

	router, err := web.NewRouter(web.Deps{
		Catalog:  catalogSvc,
		Carts:    carts,
		Checkout: checkout,
		Sessions: web.NewSessions(cfg.SessionCookie, cfg.SessionSecret),
		Log:      log,
		Access:   access,
		Currency: cfg.Currency,
	})
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := shutdown.Gracefully(gctx, shutdownTimeout, server.Shutdown)
		log.Info("http server stopped")
		return err
	})

	if cfg.GRPCPort > 0 {
		if err := serveHealth(g, gctx, cfg.GRPCPort, log); err != nil {
			cancel()
			_ = g.Wait()
			return err
		}
	}

	err = g.Wait()
	log.Info("bye")
	return err
}

// serveHealth exposes grpc.health.v1 on port. The storefront reports SERVING once the
// catalog is loaded and NOT_SERVING as soon as shutdown starts.
func serveHealth(g *errgroup.Group, ctx context.Context, port int, log *slog.Logger) error {
	addr := fmt.Sprintf(":%d", port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	g.Go(func() error {
		log.Info("grpc health server starting", slog.String("addr", addr))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		err := shutdown.Gracefully(ctx, shutdownTimeout, func(stopCtx context.Context) error {
			hs.Shutdown()
			return shutdown.Stop(srv)(stopCtx)
		})
		if errors.Is(err, shutdown.ErrForced) {
			log.Warn("grpc server forced to stop")
			return nil
		}
		log.Info("grpc server stopped")
		return err
	})
	return nil
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Saadaqmacalin/houserent-gateway/internal/api/http"
	"github.com/Saadaqmacalin/houserent-gateway/internal/api/http/handlers"
	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/browse"
	"github.com/Saadaqmacalin/houserent-gateway/internal/config"
	"github.com/Saadaqmacalin/houserent-gateway/internal/events"
	"github.com/Saadaqmacalin/houserent-gateway/internal/observability"
	"github.com/Saadaqmacalin/houserent-gateway/internal/persistence"
	"github.com/Saadaqmacalin/houserent-gateway/internal/session"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
	"github.com/Saadaqmacalin/houserent-gateway/internal/worker"
	"github.com/Saadaqmacalin/houserent-gateway/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	sessions := session.NewStore(redis, cfg.Session.StoreTTL())
	cookies := session.NewCookieCodec(cfg.Session.CookieName, cfg.Session.CookieSecret, cfg.Session.CookieTTL())

	api := upstream.NewClient(cfg.Upstream)

	controller := auth.NewController(api, sessions, logger)
	guard := auth.NewGuard(controller)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	wf := workflow.NewService(api, redis, dispatcher, logger, workflow.Config{
		CheckoutTTL:       cfg.Workflow.CheckoutTTL(),
		InflightTTL:       cfg.Workflow.InflightTTL(),
		PaidRedirectDelay: cfg.Workflow.PaidRedirectDelaySec,
	})

	browseSvc := browse.NewService(api, cfg.Upstream.Timeout())
	liveSearch := browse.NewRegistry(func() *browse.Live {
		return browseSvc.NewLive(browse.DefaultDebounce)
	}, 0)

	janitorStop := make(chan struct{})
	liveSearch.StartJanitor(janitorStop)
	defer close(janitorStop)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis),
		Auth:     handlers.NewAuthHandler(controller),
		Rent:     handlers.NewRentHandler(browseSvc, liveSearch),
		Booking:  handlers.NewBookingHandler(wf, controller),
		Houses:   handlers.NewHousesHandler(api, controller),
		Owners:   handlers.NewOwnersHandler(api, controller),
		Admin:    handlers.NewAdminHandler(api, controller),
		Landlord: handlers.NewLandlordHandler(api, controller),
		Session:  cookies,
		Guard:    guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

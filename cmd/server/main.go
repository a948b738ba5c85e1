package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"

	"github.com/iliyamo/party-bliss/internal/booking"
	"github.com/iliyamo/party-bliss/internal/catalog"
	"github.com/iliyamo/party-bliss/internal/config"
	"github.com/iliyamo/party-bliss/internal/handler"
	"github.com/iliyamo/party-bliss/internal/middleware"
	"github.com/iliyamo/party-bliss/internal/router"
	queue_publisher "github.com/iliyamo/party-bliss/internal/service"
	"github.com/iliyamo/party-bliss/internal/session"
	"github.com/iliyamo/party-bliss/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional

	cfg := config.Load()
	bookingCfg := config.LoadBookingConfig()
	rlCfg := config.LoadRateLimitConfig()
	cacheCfg := config.LoadCacheConfig()
	queueCfg := config.LoadQueueConfig()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(glog.INFO)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer
	e.Static("/assets", cfg.PublicDir)

	rdb := config.NewRedisClient() // nil when Redis is disabled or unreachable

	// acceptance timestamps
	var throttle booking.ThrottleStore
	var memThrottle *booking.MemoryThrottle
	if bookingCfg.ThrottleStore == "redis" && rdb != nil {
		throttle = booking.NewRedisThrottle(rdb, bookingCfg.ThrottlePrefix, bookingCfg.ThrottleWindow)
	} else {
		memThrottle = booking.NewMemoryThrottle()
		throttle = memThrottle
	}

	var notifier booking.Notifier = booking.LogNotifier{Log: e.Logger}
	if queueCfg.Enabled {
		pub := queue_publisher.NewPublisher(queueCfg.URL, queueCfg.Queue, notifier)
		pub.DialTimeout = queueCfg.DialTimeout
		notifier = pub
		log.Printf("publishing accepted enquiries to queue %q", queueCfg.Queue)
	}

	guard := booking.NewGuard(bookingCfg.ThrottleWindow, throttle, notifier, e.Logger)
	pages := session.NewRegistry(cfg.SessionIdleTTL, func(id string) *booking.Page {
		return booking.NewPage(id, guard, bookingCfg.AckDuration)
	})
	if memThrottle != nil {
		pages.OnEvict = memThrottle.Forget
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go pages.Run(ctx, cfg.SweepInterval)

	feedClient := &http.Client{Timeout: cfg.CatalogTimeout}
	newLoader := func() *catalog.Loader {
		return catalog.NewLoader(feedClient, cfg.CatalogURL, e.Logger)
	}

	tokens := session.NewTokens(cfg.SessionSecret, cfg.SessionTTL)
	sess := middleware.Session(tokens, cfg.IsProd())
	limiter := middleware.NewTokenBucket(rlCfg, rdb)
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	router.RegisterRoutes(e)
	router.RegisterSite(e, &handler.PageHandler{Pages: pages, NewLoader: newLoader}, sess, limiter)
	router.RegisterBooking(e, &handler.BookingHandler{Pages: pages}, sess, limiter)
	router.RegisterPublic(e, &handler.PublicHandler{NewLoader: newLoader}, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	pages.Close()
	if rdb != nil {
		_ = rdb.Close()
	}
}

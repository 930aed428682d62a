package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/lib/pq"
	"github.com/nandinigupta-product/bmf-widget-demo/controller/catalog"
	"github.com/nandinigupta-product/bmf-widget-demo/controller/checkout"
	"github.com/nandinigupta-product/bmf-widget-demo/controller/quote"
	_ "github.com/nandinigupta-product/bmf-widget-demo/docs"
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/ratecard"
	"github.com/nandinigupta-product/bmf-widget-demo/service"
	"github.com/nandinigupta-product/bmf-widget-demo/service/bmf"
	"github.com/nandinigupta-product/bmf-widget-demo/storage"
	"github.com/nandinigupta-product/bmf-widget-demo/storage/cache"
	"github.com/nandinigupta-product/bmf-widget-demo/storage/persistence"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//	@title			BMF Quick Order Widget
//	@version		1.0
//	@description	Embeddable currency quick-order backend: live buy/sell quotes off the city rate card

// @host		localhost:3000
func main() {
	content, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Error().Err(err).Msg("unable to read configuration file")
		os.Exit(1)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		log.Error().Err(err).Msg("unable to read configuration file")
		os.Exit(1)
	}

	if err := New(cfg); err != nil {
		log.Error().Err(err).Msg("unable to initialize application")
		os.Exit(1)
	}
}

func New(cfg Config) error {
	a := Application{cfg: cfg}
	return a.init()
}

type Application struct {
	cfg        Config               // application configuration
	fiberApp   *fiber.App           // underlying fiber application
	db         storage.CatalogStore // catalog persistence, nil without a database
	dbConn     *sql.DB              // underlying persistence connection
	cache      *cache.RateCache     // cache for raw rate card documents
	rateSource service.RateSource   // upstream rate card provider
	stopC      chan os.Signal       // handle interrupt for clean up(close connections, etc)
}

func (a *Application) init() error {
	if level, err := zerolog.ParseLevel(a.cfg.LogLevel); err == nil && a.cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(level)
	}

	a.fiberApp = fiber.New()
	a.stopC = make(chan os.Signal)
	signal.Notify(a.stopC, os.Interrupt)

	if a.cfg.DBHost != "" {
		connStr := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
			a.cfg.DBUsername,
			a.cfg.DBPassword,
			a.cfg.DBHost,
			a.cfg.DBPort,
			a.cfg.DBName,
		)
		log.Debug().Str("connStr", connStr).Msg("initialize db connection")

		dbConn, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Error().Err(err).Msg("unable to connect to db")
			return err
		}

		a.dbConn = dbConn
		a.db = persistence.New(dbConn)
	}

	rateSource, err := bmf.New(bmf.Config{
		BaseURL: a.cfg.UpstreamBaseURL,
		Retries: a.cfg.FetchRetries,
	})
	if err != nil {
		log.Error().Err(err).Msg("unable to create rate card client")
		return err
	}

	a.rateSource = rateSource
	a.cache = cache.New(time.Duration(a.cfg.CacheTTLSeconds) * time.Second)

	if a.cfg.WarmCacheOnBoot {
		go a.warmCache()
	}

	a.buildRoutes()
	go a.stop()
	log.Debug().Msg("preparing fiber http server")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
	}

	return nil
}

func (a *Application) buildRoutes() {
	a.fiberApp.Get("/swagger/*", swagger.HandlerDefault)

	api := a.fiberApp.Group("/api/v1")
	api.Get("/quote", quote.New(a.cache, a.rateSource).Get)
	api.Get("/catalog", catalog.New(a.db).List)
	api.Get("/checkout-url", checkout.New(a.cfg.CheckoutBaseURL).Get)
}

// warmCache prefetches rate cards for the built-in cities and
// the default currency so the first quote on each city is warm.
func (a *Application) warmCache() {
	ctx, cancelFn := context.WithTimeout(context.Background(), time.Minute)
	defer cancelFn()

	defaults := model.DefaultCatalog()
	keys := make([]storage.Key, 0, len(defaults.Cities))
	for _, city := range defaults.Cities {
		keys = append(keys, storage.Key{CityCode: city.Code, Currency: defaults.Currencies[0]})
	}

	a.cache.Warm(ctx, keys, func(ctx context.Context, key storage.Key) (*ratecard.Value, error) {
		return a.rateSource.FetchRateCard(ctx, key.CityCode)
	})
}

func (a *Application) stop() {
	<-a.stopC
	a.fiberApp.Shutdown()
	if a.dbConn != nil {
		a.dbConn.Close()
	}
	os.Exit(0)
}

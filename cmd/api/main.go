package main

import (
	"context"
	"net/http"
	"os"

	"evcharge-dashboard/internal/api"
	"evcharge-dashboard/internal/cache"
	"evcharge-dashboard/internal/config"
	"evcharge-dashboard/internal/database"
	"evcharge-dashboard/internal/handler"
	"evcharge-dashboard/internal/places"
	"evcharge-dashboard/internal/repository"
	"evcharge-dashboard/internal/service"
	"evcharge-dashboard/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title			EV Charging Dashboard API
// @version		1.0
// @description	Charging station coverage by region and station drill-down.
// @BasePath		/api/v1
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if config.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	if config.MigrationsEnabled {
		if err := database.RunMigrations(config.DBSource); err != nil {
			log.Fatal().Err(err).Msg("cannot run migrations")
		}
	}

	// Database connection: one session per load, dialled or taken from a pool
	var connector repository.Connector = repository.NewDialConnector(config.DBSource)
	if config.DBPooled {
		pool, err := pgxpool.New(ctx, config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer pool.Close()
		connector = repository.NewPoolConnector(pool)
	}

	// Cache backend
	var store cache.Store = cache.NewMemoryStore()
	rdb, err := cache.NewRedisClient(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to redis")
	}
	if rdb != nil {
		defer rdb.Close()
		store = cache.NewRedisStore(rdb)
		log.Info().Str("addr", config.RedisAddr).Msg("using redis cache")
	}
	memo := cache.New(store)

	if config.KakaoAPIKey == "" {
		log.Warn().Msg("KAKAO_API_KEY is empty, nearby places will not load")
	}
	placesClient := places.NewClient(config.KakaoBaseURL, config.KakaoAPIKey, &http.Client{Timeout: config.PlacesTimeout})

	if err := views.LoadTemplates(); err != nil {
		log.Fatal().Err(err).Msg("cannot load templates")
	}

	// Initialize layers
	repo := repository.NewRepository(connector)

	analyticsService := service.NewAnalyticsService(repo, memo, config.SummaryYear)
	exploreService := service.NewExploreService(repo, placesClient, memo, config.PlacesRadius)

	r := api.SetupRouter(api.Handlers{
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Explore:   handler.NewExploreHandler(exploreService),
		Cache:     handler.NewCacheHandler(memo),
	})

	log.Info().Str("addr", config.ServerAddress).Int("year", config.SummaryYear).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iaamonline/member-portal/internal/cache"
	"github.com/iaamonline/member-portal/internal/cms"
	"github.com/iaamonline/member-portal/internal/config"
	"github.com/iaamonline/member-portal/internal/content"
	"github.com/iaamonline/member-portal/internal/session"
	"github.com/iaamonline/member-portal/internal/stream"
	"github.com/iaamonline/member-portal/internal/views"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Redis backs the response cache and the session store when configured;
	// without it both fall back to process memory.
	var responseCache cache.Cache = cache.NewMemory()
	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddress != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			Username: cfg.RedisUsername,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		responseCache = cache.NewRedis(client, "portal:")
		sessions = session.NewRedisStore(client)
		log.Info().Str("addr", cfg.RedisAddress).Msg("using redis for cache and sessions")
	} else {
		log.Info().Msg("redis not configured, using in-memory cache and sessions")
	}

	cmsClient := cms.New(cfg.CMSBaseURL, cfg.CMSToken)

	deps := Deps{
		CMS:      cmsClient,
		Issuer:   stream.NewIssuer(cfg.StreamPrivateKey, cfg.StreamKeyID),
		Metadata: stream.NewMetadataClient(cfg.StreamAccountID, cfg.StreamAPIToken, cfg.StreamSubdomain, responseCache),
		Views:    views.NewService(cmsClient),
		Composer: content.NewComposer(cmsClient, responseCache),
		Hero:     content.NewHeroCache(cmsClient),
		Sessions: sessions,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, deps)

	log.Info().Str("addr", cfg.ServerAddress).Msg("listening")
	if err := r.Run(cfg.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

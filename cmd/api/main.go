package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"github.com/sj-cantos/launchpad-jia/internal/cache"
	"github.com/sj-cantos/launchpad-jia/internal/config"
	"github.com/sj-cantos/launchpad-jia/internal/database"
	"github.com/sj-cantos/launchpad-jia/internal/handler"
	"github.com/sj-cantos/launchpad-jia/internal/logger"
	"github.com/sj-cantos/launchpad-jia/internal/repository"
	"github.com/sj-cantos/launchpad-jia/pkg"
	"go.uber.org/zap"
)

type application struct {
	DB         *pgxpool.Pool
	Redis      *redis.Client
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Handler    *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	pool, err := database.Connect(ctx, cfg.DB.DSN, cfg.DB.MaxOpenConns, cfg.DB.MaxIdleTime)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		sugar.Fatal(err)
	}

	crypto, err := pkg.NewCrypto(cfg.Crypto.Secret)
	if err != nil {
		sugar.Fatal(err)
	}

	repo := repository.NewRepository(pool, crypto)

	var rdb *redis.Client
	var orgCache *cache.OrgCache
	if cfg.Redis.Addr != "" {
		rdb = cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, rdb); err != nil {
			sugar.Warnw("redis unreachable, running without organization cache", "err", err)
			rdb = nil
		} else {
			orgCache = cache.NewOrgCache(rdb, cfg.Redis.OrgTTL)
		}
	}

	handlerApp := &handler.Handler{
		Logger:   log,
		Careers:  repo,
		Orgs:     repo,
		OrgCache: orgCache,
	}

	app := &application{
		DB:         pool,
		Redis:      rdb,
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Handler:    handlerApp,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}

package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/database/mongoclient"
	"github.com/bidhaus/goauction/base/database/redisclient"
	"github.com/bidhaus/goauction/base/goroutine"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/base/metrics"
	bValidator "github.com/bidhaus/goauction/base/validator"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	mmiddleware "github.com/bidhaus/goauction/middleware"
	"github.com/bidhaus/goauction/service/chain"
	"github.com/bidhaus/goauction/service/oracle"
	"github.com/bidhaus/goauction/service/query"
	"github.com/bidhaus/goauction/service/redis"
	auction_delivery "github.com/bidhaus/goauction/stores/auction/delivery/http"
	auction_repository "github.com/bidhaus/goauction/stores/auction/repository"
	auction_usecase "github.com/bidhaus/goauction/stores/auction/usecase"
	auth_delivery "github.com/bidhaus/goauction/stores/auth/delivery/http"
	auth_middleware "github.com/bidhaus/goauction/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/bidhaus/goauction/stores/auth/usecase"
	beacon_delivery "github.com/bidhaus/goauction/stores/beacon/delivery/http"
	beacon_repository "github.com/bidhaus/goauction/stores/beacon/repository"
	beacon_usecase "github.com/bidhaus/goauction/stores/beacon/usecase"
	escrow_repository "github.com/bidhaus/goauction/stores/escrow/repository"
	escrow_usecase "github.com/bidhaus/goauction/stores/escrow/usecase"
	event_delivery "github.com/bidhaus/goauction/stores/event/delivery/http"
	event_repository "github.com/bidhaus/goauction/stores/event/repository"
	hc_delivery "github.com/bidhaus/goauction/stores/healthcheck/delivery/http"
	hc_repo "github.com/bidhaus/goauction/stores/healthcheck/repository"
	hc_usecase "github.com/bidhaus/goauction/stores/healthcheck/usecase"
	item_delivery "github.com/bidhaus/goauction/stores/item/delivery/http"
	item_repository "github.com/bidhaus/goauction/stores/item/repository"
	item_usecase "github.com/bidhaus/goauction/stores/item/usecase"
	operator_delivery "github.com/bidhaus/goauction/stores/operator/delivery/http"
	operator_repository "github.com/bidhaus/goauction/stores/operator/repository"
	operator_usecase "github.com/bidhaus/goauction/stores/operator/usecase"
	pricefeed_delivery "github.com/bidhaus/goauction/stores/pricefeed/delivery/http"
	pricefeed_repository "github.com/bidhaus/goauction/stores/pricefeed/repository"
	pricefeed_usecase "github.com/bidhaus/goauction/stores/pricefeed/usecase"
	wallet_delivery "github.com/bidhaus/goauction/stores/wallet/delivery/http"
	wallet_repository "github.com/bidhaus/goauction/stores/wallet/repository"
	wallet_usecase "github.com/bidhaus/goauction/stores/wallet/usecase"
)

const (
	logicRefV1 = domain.LogicRef("v1")
	logicRefV2 = domain.LogicRef("v2")
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "config file path")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service for oracle reads
	chainId := domain.ChainId(viper.GetInt32("chain.chainId"))
	rpcs := map[int32]string{
		int32(chainId): viper.GetString("chain.rpcUrl"),
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	oracleService := oracle.New(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	operatorRepo := operator_repository.NewOperatorRepo(q)
	priceFeedRepo := pricefeed_repository.NewPriceFeedRepo(q)
	fungibleRepo := wallet_repository.NewFungibleRepo(q)
	itemRepo := item_repository.NewItemRepo(q)
	escrowRepo := escrow_repository.NewEscrowRepo(q)
	auctionRepo := auction_repository.NewAuctionRepo(q)
	beaconRepo := beacon_repository.NewBeaconRepo(q)
	instanceRepo := beacon_repository.NewInstanceRepo(q)
	eventRepo := event_repository.NewEventRepo(q)

	adminAddresses := []domain.Address{}
	for _, addr := range viper.GetStringSlice("admin.addresses") {
		adminAddresses = append(adminAddresses, domain.Address(addr))
	}

	hc := hc_usecase.New(hcRepo)
	operator := operator_usecase.New(operatorRepo, adminAddresses)
	priceFeed := pricefeed_usecase.New(chainId, priceFeedRepo, oracleService, operator)
	wallet := wallet_usecase.New(fungibleRepo, operator)
	item := item_usecase.New(itemRepo, operator)
	executorAddress := domain.Address(viper.GetString("escrow.executorAddress"))
	escrow := escrow_usecase.New(escrowRepo, wallet, item, executorAddress)

	engineV1 := auction_usecase.New(auctionRepo, priceFeed, escrow, item, eventRepo)
	engineV2 := auction_usecase.NewV2(auctionRepo, priceFeed, escrow, item, eventRepo)
	factory := beacon_usecase.New(beaconRepo, instanceRepo, operator, eventRepo, map[domain.LogicRef]auction.Engine{
		logicRefV1: engineV1,
		logicRefV2: engineV2,
	}, logicRefV1)

	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"), redisCache)
	authMiddleware := auth_middleware.New(auth, operator)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	auction_delivery.New(e, authMiddleware.Auth(), factory)
	beacon_delivery.New(e, authMiddleware.Auth(), factory)
	wallet_delivery.New(e, authMiddleware.Auth(), authMiddleware.IsOperator(), wallet)
	item_delivery.New(e, authMiddleware.Auth(), authMiddleware.IsOperator(), item)
	pricefeed_delivery.New(e, authMiddleware.Auth(), authMiddleware.IsOperator(), priceFeed)
	operator_delivery.New(e, authMiddleware.Auth(), operator)
	event_delivery.New(e, eventRepo)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"address": c.Get("address").(domain.Address),
		})
	}, authMiddleware.Auth())

	// expiry sweeper settles auctions nobody ends explicitly
	sweepInterval := viper.GetDuration("sweeper.interval")
	if sweepInterval <= 0 {
		sweepInterval = 10 * time.Second
	}
	sweeper := auction_usecase.NewSweeper(auctionRepo, factory, sweepInterval)
	sweeperCtx, stopSweeper := ctx.WithCancel(context)
	defer stopSweeper()
	goroutine.RecoverableGo(func() {
		sweeper.Run(sweeperCtx)
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/stakedash/stakedash-daemon/internal/config"
	"github.com/stakedash/stakedash-daemon/internal/core/application"
	"github.com/stakedash/stakedash-daemon/internal/infrastructure/walletbridge"
	httpinterface "github.com/stakedash/stakedash-daemon/internal/interfaces/http"
	"github.com/stakedash/stakedash-daemon/pkg/indexer/blockfrost"
	"github.com/stakedash/stakedash-daemon/pkg/pooldirectory/adapools"
	"github.com/stakedash/stakedash-daemon/pkg/stats"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("error while initializing config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	if err := config.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	indexerSvc, err := blockfrost.NewService(
		config.GetString(config.IndexerEndpointKey),
		config.GetString(config.IndexerProjectIDKey),
	)
	if err != nil {
		log.WithError(err).Fatal("error while connecting to chain indexer")
	}
	poolDirectory := adapools.NewService(
		config.GetString(config.PoolDirectoryEndpointKey),
	)

	bridge := walletbridge.NewBridge(config.GetDuration(config.BridgeCallTimeoutKey))

	settleDelay := time.Duration(config.GetInt(config.ConnectSettleMsKey)) * time.Millisecond
	sessionSvc := application.NewSessionService(bridge, settleDelay)
	balanceSvc := application.NewBalanceService(sessionSvc)
	poolSvc := application.NewPoolService(poolDirectory)
	stakeSvc := application.NewStakeService(
		sessionSvc, poolSvc,
		config.GetString(config.StakeDestinationAddressKey),
		config.GetInt(config.MinStakeAdaKey),
	)
	historySvc := application.NewHistoryService(sessionSvc, indexerSvc)

	dashboardSvc := httpinterface.NewService(
		sessionSvc, balanceSvc, stakeSvc, historySvc, poolSvc, bridge,
		config.GetInt(config.HistoryPageSizeKey),
	)

	addr := config.GetString(config.HTTPListenAddrKey)
	server := &http.Server{
		Addr:    addr,
		Handler: dashboardSvc.Routes(),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("error listening on dashboard interface")
		}
	}()
	log.Info("dashboard interface is listening on " + addr)

	statsCtx, stopStats := context.WithCancel(context.Background())
	if config.GetBool(config.EnableStatsKey) {
		stats.EnableMemoryStatistics(statsCtx, config.GetDuration(config.StatsIntervalKey))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	stopStats()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("error while shutting down dashboard interface")
	}

	log.Debug("exiting")
}

package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/api"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/assets"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/clock"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/config"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/db"
	dbmodel "github.com/meridianlabs-io/staking-rewards-ledger/internal/db/model"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/ledger"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/metrics"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/observability/tracing"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/queue"
	"github.com/meridianlabs-io/staking-rewards-ledger/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the staking rewards ledger server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up ledger db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	// Create a basic zap logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating zap logger")
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			log.Error().Err(err).Msg("error while syncing zap logger")
		}
	}()

	queueManager, err := queue.NewQueueManager(&cfg.Queue, zapLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	defer queueManager.Shutdown()

	tickSource, err := clock.NewIntervalClock(cfg.Ledger.GenesisTime, cfg.Ledger.TickInterval)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating tick source")
	}

	// TODO: wire real asset-contract adapters once the asset backends are
	// deployed; until then the in-memory assets run the ledger in mock mode.
	stakeAsset := assets.NewUnboundedStakeAsset()
	rewardAsset := assets.NewMemoryRewardAsset()

	ldg := ledger.New(
		cfg.Ledger.RewardPerTick,
		cfg.Ledger.AdminAddress,
		stakeAsset,
		rewardAsset,
	)

	service := services.NewService(cfg, ldg, dbClient, tickSource, queueManager)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	apiServer := api.New(&cfg.Server, service)
	go apiServer.Start(ctx)

	service.Start(ctx)
	return nil
}

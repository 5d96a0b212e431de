package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/stakegov/governance-engine/internal/api"
	"github.com/stakegov/governance-engine/internal/clients/bankclient"
	"github.com/stakegov/governance-engine/internal/clients/chainclient"
	"github.com/stakegov/governance-engine/internal/config"
	"github.com/stakegov/governance-engine/internal/db"
	dbmodel "github.com/stakegov/governance-engine/internal/db/model"
	"github.com/stakegov/governance-engine/internal/observability/metrics"
	"github.com/stakegov/governance-engine/internal/observability/tracing"
	"github.com/stakegov/governance-engine/internal/queue"
	"github.com/stakegov/governance-engine/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the governance engine server",
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
		log.Fatal().Err(err).Msg("error while setting up governance db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	var bankClient bankclient.BankInterface = bankclient.NewBankClient(&cfg.Bank)
	bankClient = bankclient.NewBankClientWithMetrics(bankClient)

	var chainClient chainclient.ChainInterface = chainclient.NewChainClient(&cfg.Chain)
	chainClient = chainclient.NewChainClientWithMetrics(chainClient)

	// the queue is optional: without it the engine runs but publishes no
	// events
	var qm *queue.QueueManager
	if cfg.Queue != nil {
		qm, err = queue.NewQueueManager(cfg.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("error while creating queue manager")
		}
		defer qm.Shutdown()
	}

	service := services.NewService(cfg, dbClient, bankClient, chainClient, qm)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	srv := api.New(cfg, service)
	return srv.Start(ctx)
}

package commands

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	"github.com/tendermint/tendermint/libs/log"
	tmos "github.com/tendermint/tendermint/libs/os"
	"github.com/tendermint/tendermint/libs/pubsub"

	"github.com/stationlabs/blobgate/chain"
	"github.com/stationlabs/blobgate/commitment"
	"github.com/stationlabs/blobgate/config"
	"github.com/stationlabs/blobgate/orchestrator"
	"github.com/stationlabs/blobgate/rpc"
	"github.com/stationlabs/blobgate/state"
	"github.com/stationlabs/blobgate/store"
)

const (
	purgeInterval   = 1 * time.Minute
	shutdownTimeout = 5 * time.Second
)

// NewRunNodeCmd returns the command that starts the gateway.
func NewRunNodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "start",
		Aliases: []string{"node", "run"},
		Short:   "Run the blobgate gateway",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			homeDir := viper.GetString(cli.HomeFlag)
			gateConfig.RootDir = homeDir
			return gateConfig.GetViperConfig(cmd, homeDir)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return startInProcess(&gateConfig, logger)
		},
	}

	config.AddNodeFlags(cmd)
	return cmd
}

func startInProcess(cfg *config.NodeConfig, logger log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kv, err := store.NewBadgerStore(cfg.RootDir, cfg.DBPath, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer kv.Close() // nolint:errcheck
	tracker := state.NewTracker(kv, logger)

	pubsubServer := pubsub.NewServer()
	if err := pubsubServer.Start(); err != nil {
		return fmt.Errorf("start pubsub server: %w", err)
	}
	defer pubsubServer.Stop() // nolint:errcheck

	chainClient, err := chain.NewClient(ctx, cfg.Chain, logger)
	if err != nil {
		return fmt.Errorf("chain client: %w", err)
	}
	grants := chain.NewRESTQuerier(cfg.Chain.RestAddress)
	resolver := commitment.NewClient(cfg.CommitURL, 0)

	orch, err := orchestrator.New(cfg.Orchestrator, logger, chainClient, resolver, grants, tracker, pubsubServer)
	if err != nil {
		return err
	}
	admin, err := orchestrator.NewAdmin(cfg.Orchestrator, logger, chainClient, grants, tracker, pubsubServer)
	if err != nil {
		return err
	}

	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				purged, err := orch.PurgeExpiredBlobs()
				if err != nil {
					logger.Error("Purge expired blob records.", "err", err)
				} else if purged > 0 {
					logger.Info("Purged expired blob records.", "count", purged)
				}
			}
		}
	}()

	if cfg.Instrumentation != nil && cfg.Instrumentation.Prometheus {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			// nolint:gosec
			err := http.ListenAndServe(cfg.Instrumentation.PrometheusListenAddr, nil)
			logger.Error("Prometheus server.", "err", err)
		}()
	}

	server := rpc.NewServer(cfg.RPCListenAddr, logger, orch, admin, tracker)
	server.Start()

	logger.Info("Gateway running.", "backend", chainClient.Address(), "chain_id", cfg.Chain.ChainID)

	trapCh := make(chan struct{})
	tmos.TrapSignal(logger, func() {
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error("Stop API server.", "err", err)
		}
		close(trapCh)
	})

	<-trapCh
	return nil
}

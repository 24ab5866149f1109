package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/stationlabs/blobgate/config"
)

var (
	gateConfig = config.DefaultNodeConfig
	logger     = log.NewTMLogger(log.NewSyncWriter(os.Stdout))
)

// RootCmd is the root command of the gateway CLI.
var RootCmd = &cobra.Command{
	Use:   "blobgate",
	Short: "On-behalf-of blob submission gateway",
	Long: `Blobgate pays gas and executes blob submissions for user addresses
without holding their keys, through authz grants and fee allowances.`,
}

package main

import (
	"os"
	"path/filepath"

	"github.com/tendermint/tendermint/libs/cli"

	"github.com/stationlabs/blobgate/cmd/blobgate/commands"
	"github.com/stationlabs/blobgate/config"
)

func main() {
	rootCmd := commands.RootCmd
	rootCmd.AddCommand(
		commands.NamespaceCmd(),
		commands.VersionCmd(),
		cli.NewCompletionCmd(rootCmd, true),
	)

	// Create & start the gateway
	rootCmd.AddCommand(commands.NewRunNodeCmd())

	cmd := cli.PrepareBaseCmd(rootCmd, "BG", os.ExpandEnv(filepath.Join("$HOME", config.DefaultBlobgateDir)))
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}

package config

import (
	"fmt"
	"path/filepath"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stationlabs/blobgate/chain"
	"github.com/stationlabs/blobgate/orchestrator"
)

const (
	// DefaultBlobgateDir is the default root directory for the gateway.
	DefaultBlobgateDir    = ".blobgate"
	DefaultConfigDirName  = "config"
	DefaultConfigFileName = "blobgate.toml"
)

// NodeConfig stores the gateway configuration.
type NodeConfig struct {
	// parameters below are translated from existing config
	RootDir string
	DBPath  string `mapstructure:"db_path"`

	// parameters below are gateway specific and read from config
	Chain        chain.Config        `mapstructure:",squash"`
	Orchestrator orchestrator.Config `mapstructure:",squash"`

	// CommitURL is the commitment sidecar endpoint.
	CommitURL string `mapstructure:"commit_url"`

	// RPCListenAddr is where the gateway's own JSON API listens.
	RPCListenAddr string `mapstructure:"rpc_listen_addr"`

	Instrumentation *InstrumentationConfig `mapstructure:"instrumentation"`
}

// InstrumentationConfig defines the Prometheus surface.
type InstrumentationConfig struct {
	Prometheus           bool   `mapstructure:"prometheus"`
	PrometheusListenAddr string `mapstructure:"prometheus_listen_addr"`
}

// GetViperConfig reads configuration parameters from Viper instance.
func (nc *NodeConfig) GetViperConfig(cmd *cobra.Command, homeDir string) error {
	v := viper.GetViper()

	// loads the blobgate toml config file, writing defaults on a fresh home dir
	EnsureRoot(homeDir, DefaultConfig(homeDir))
	v.SetConfigName("blobgate")
	v.AddConfigPath(homeDir)                                      // search root directory
	v.AddConfigPath(filepath.Join(homeDir, DefaultConfigDirName)) // search root directory /config

	// bind flags so we could override config file with flags
	err := BindFlags(cmd, v)
	if err != nil {
		return err
	}

	err = v.ReadInConfig()
	if err != nil {
		return err
	}

	err = viper.Unmarshal(&nc)
	if err != nil {
		return err
	}

	return nc.Validate()
}

// Validate rejects configs the gateway cannot run with.
func (nc NodeConfig) Validate() error {
	if nc.Chain.NodeAddress == "" {
		return fmt.Errorf("node address is empty: %w", gerrc.ErrInvalidArgument)
	}
	if nc.Chain.RestAddress == "" {
		return fmt.Errorf("rest address is empty: %w", gerrc.ErrInvalidArgument)
	}
	if nc.Chain.AddressPrefix == "" {
		return fmt.Errorf("address prefix is empty: %w", gerrc.ErrInvalidArgument)
	}
	if nc.Chain.AccountName == "" {
		return fmt.Errorf("account name is empty: %w", gerrc.ErrInvalidArgument)
	}
	if nc.CommitURL == "" {
		return fmt.Errorf("commit url is empty: %w", gerrc.ErrInvalidArgument)
	}
	if nc.RPCListenAddr == "" {
		return fmt.Errorf("rpc listen addr is empty: %w", gerrc.ErrInvalidArgument)
	}
	if err := nc.Orchestrator.Validate(); err != nil {
		return fmt.Errorf("orchestrator config: %w", err)
	}
	return nil
}

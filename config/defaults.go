package config

import (
	"path/filepath"

	"github.com/stationlabs/blobgate/chain"
	"github.com/stationlabs/blobgate/orchestrator"
)

// DefaultKeyringDir is where the backend signing key lives under the home dir.
const DefaultKeyringDir = "backend_keys"

// DefaultNodeConfig keeps default values of NodeConfig
var DefaultNodeConfig = *DefaultConfig("")

// DefaultConfig returns a default configuration for the gateway.
func DefaultConfig(home string) *NodeConfig {
	cfg := &NodeConfig{
		DBPath: "data",
		Chain: chain.Config{
			ChainID:        "mocha-4",
			NodeAddress:    "http://127.0.0.1:26657",
			RestAddress:    "http://127.0.0.1:1317",
			AddressPrefix:  "celestia",
			KeyringBackend: "test",
			AccountName:    "backend",
			GasLimit:       300_000,
			GasPrices:      "0.025utia",
		},
		Orchestrator:  orchestrator.DefaultConfig(),
		CommitURL:     "http://127.0.0.1:8090/commitment",
		RPCListenAddr: ":8547",
		Instrumentation: &InstrumentationConfig{
			Prometheus:           false,
			PrometheusListenAddr: ":2112",
		},
	}

	if home == "" {
		home = "/tmp"
	}
	cfg.Chain.KeyringHomeDir = filepath.Join(home, DefaultKeyringDir)

	return cfg
}

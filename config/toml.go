package config

import (
	"bytes"
	"path/filepath"
	"text/template"

	tmos "github.com/tendermint/tendermint/libs/os"
)

// DefaultDirPerm is the default permissions used when creating directories.
const DefaultDirPerm = 0o700

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate")
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root, config, and data directories if they don't exist,
// and panics if it fails.
func EnsureRoot(rootDir string, defaultConfig *NodeConfig) {
	if err := tmos.EnsureDir(rootDir, DefaultDirPerm); err != nil {
		panic(err.Error())
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, DefaultConfigDirName), DefaultDirPerm); err != nil {
		panic(err.Error())
	}

	if defaultConfig == nil {
		return
	}

	configFilePath := filepath.Join(rootDir, DefaultConfigDirName, DefaultConfigFileName)

	// Write default config file if missing.
	if !tmos.FileExists(configFilePath) {
		WriteConfigFile(configFilePath, defaultConfig)
	}
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *NodeConfig) {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, config); err != nil {
		panic(err)
	}

	tmos.MustWriteFile(configFilePath, buffer.Bytes(), 0o644)
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `
#######################################################
###          Blobgate Configuration Options         ###
#######################################################

### chain config ###
chain_id = "{{ .Chain.ChainID }}"
node_address = "{{ .Chain.NodeAddress }}"
rest_address = "{{ .Chain.RestAddress }}"
address_prefix = "{{ .Chain.AddressPrefix }}"
gas_limit = {{ .Chain.GasLimit }}
gas_prices = "{{ .Chain.GasPrices }}"
gas_fees = "{{ .Chain.GasFees }}"

# keyring and key name to be used for the backend signing account
keyring_backend = "{{ .Chain.KeyringBackend }}"
keyring_home_dir = "{{ .Chain.KeyringHomeDir }}"
account_name = "{{ .Chain.AccountName }}"

### orchestration config ###
commit_url = "{{ .CommitURL }}"
rpc_listen_addr = "{{ .RPCListenAddr }}"
denom = "{{ .Orchestrator.Denom }}"
dust_amount = {{ .Orchestrator.DustAmount }}
fee_grant_spend_limit = {{ .Orchestrator.FeeGrantSpendLimit }}
# reject blobs whose gas estimate exceeds this; 0 disables the gate
max_gas_wanted = {{ .Orchestrator.MaxGasWanted }}
blob_ttl = "{{ .Orchestrator.BlobTTL }}"
admin_grant_retry_attempts = {{ .Orchestrator.AdminGrantRetryAttempts }}
admin_grant_retry_delay = "{{ .Orchestrator.AdminGrantRetryDelay }}"

#######################################################
###       Instrumentation Configuration Options     ###
#######################################################
[instrumentation]

# When true, Prometheus metrics are served under /metrics on
# PrometheusListenAddr.
prometheus = {{ .Instrumentation.Prometheus }}

# Address to listen for Prometheus collector(s) connections
prometheus_listen_addr = "{{ .Instrumentation.PrometheusListenAddr }}"
`

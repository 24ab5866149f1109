package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/stationlabs/blobgate/config"
)

func TestViperAndCobra(t *testing.T) {
	assert := assert.New(t)

	cmd := &cobra.Command{}
	config.AddNodeFlags(cmd)

	dir := t.TempDir()
	nc := config.DefaultConfig("")
	config.EnsureRoot(dir, nc)

	assert.NoError(cmd.Flags().Set(config.FlagNodeAddress, "http://10.0.0.1:26657"))
	assert.NoError(cmd.Flags().Set(config.FlagDustAmount, "250000"))
	assert.NoError(cmd.Flags().Set(config.FlagBlobTTL, "5m"))

	assert.NoError(nc.GetViperConfig(cmd, dir))

	assert.Equal("http://10.0.0.1:26657", nc.Chain.NodeAddress)
	assert.Equal(int64(250000), nc.Orchestrator.DustAmount)
	assert.Equal(5*time.Minute, nc.Orchestrator.BlobTTL)
}

func TestViperFreshHomeDir(t *testing.T) {
	assert := assert.New(t)

	cmd := &cobra.Command{}
	config.AddNodeFlags(cmd)

	// nothing pre-created: GetViperConfig must write the default config
	// file itself so a first start works
	dir := t.TempDir()
	nc := config.DefaultConfig(dir)

	assert.NoError(nc.GetViperConfig(cmd, dir))
	assert.FileExists(filepath.Join(dir, config.DefaultConfigDirName, config.DefaultConfigFileName))
	assert.Equal("mocha-4", nc.Chain.ChainID)
	assert.Equal(":8547", nc.RPCListenAddr)
}

func TestNodeConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		malleate func(*config.NodeConfig)

		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "full config",
			wantErr: assert.NoError,
		}, {
			name: "missing node address",
			malleate: func(nc *config.NodeConfig) {
				nc.Chain.NodeAddress = ""
			},
			wantErr: assert.Error,
		}, {
			name: "missing rest address",
			malleate: func(nc *config.NodeConfig) {
				nc.Chain.RestAddress = ""
			},
			wantErr: assert.Error,
		}, {
			name: "missing account name",
			malleate: func(nc *config.NodeConfig) {
				nc.Chain.AccountName = ""
			},
			wantErr: assert.Error,
		}, {
			name: "missing commit url",
			malleate: func(nc *config.NodeConfig) {
				nc.CommitURL = ""
			},
			wantErr: assert.Error,
		}, {
			name: "zero dust amount",
			malleate: func(nc *config.NodeConfig) {
				nc.Orchestrator.DustAmount = 0
			},
			wantErr: assert.Error,
		}, {
			name: "zero blob ttl",
			malleate: func(nc *config.NodeConfig) {
				nc.Orchestrator.BlobTTL = 0
			},
			wantErr: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nc := config.DefaultConfig("")
			if tt.malleate != nil {
				tt.malleate(nc)
			}
			tt.wantErr(t, nc.Validate())
		})
	}
}

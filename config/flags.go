package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	FlagChainID        = "blobgate.chain_id"
	FlagNodeAddress    = "blobgate.node_address"
	FlagRestAddress    = "blobgate.rest_address"
	FlagAddressPrefix  = "blobgate.address_prefix"
	FlagKeyringBackend = "blobgate.keyring_backend"
	FlagKeyringHomeDir = "blobgate.keyring_home_dir"
	FlagAccountName    = "blobgate.account_name"
	FlagGasLimit       = "blobgate.gas_limit"
	FlagGasPrices      = "blobgate.gas_prices"
	FlagGasFees        = "blobgate.gas_fees"
)

const (
	FlagCommitURL          = "blobgate.commit_url"
	FlagRPCListenAddr      = "blobgate.rpc_listen_addr"
	FlagDenom              = "blobgate.denom"
	FlagDustAmount         = "blobgate.dust_amount"
	FlagFeeGrantSpendLimit = "blobgate.fee_grant_spend_limit"
	FlagMaxGasWanted       = "blobgate.max_gas_wanted"
	FlagBlobTTL            = "blobgate.blob_ttl"
)

// AddNodeFlags adds gateway configuration options to a cobra Command.
func AddNodeFlags(cmd *cobra.Command) {
	def := DefaultNodeConfig

	cmd.Flags().String(FlagChainID, def.Chain.ChainID, "chain ID of the target chain")
	cmd.Flags().String(FlagNodeAddress, def.Chain.NodeAddress, "chain RPC node address")
	cmd.Flags().String(FlagRestAddress, def.Chain.RestAddress, "chain LCD REST address")
	cmd.Flags().String(FlagAddressPrefix, def.Chain.AddressPrefix, "bech32 address prefix")
	cmd.Flags().String(FlagKeyringBackend, def.Chain.KeyringBackend, "backend keyring backend")
	cmd.Flags().String(FlagKeyringHomeDir, def.Chain.KeyringHomeDir, "backend keyring path")
	cmd.Flags().String(FlagAccountName, def.Chain.AccountName, "backend account name in keyring")
	cmd.Flags().Uint64(FlagGasLimit, def.Chain.GasLimit, "broadcast gas limit")
	cmd.Flags().String(FlagGasPrices, def.Chain.GasPrices, "gas prices")
	cmd.Flags().String(FlagGasFees, def.Chain.GasFees, "fixed gas fees")

	cmd.Flags().String(FlagCommitURL, def.CommitURL, "commitment sidecar endpoint")
	cmd.Flags().String(FlagRPCListenAddr, def.RPCListenAddr, "gateway API listen address")
	cmd.Flags().String(FlagDenom, def.Orchestrator.Denom, "native token denom")
	cmd.Flags().Int64(FlagDustAmount, def.Orchestrator.DustAmount, "dust transfer amount")
	cmd.Flags().Int64(FlagFeeGrantSpendLimit, def.Orchestrator.FeeGrantSpendLimit, "fee allowance spend limit per address")
	cmd.Flags().Uint64(FlagMaxGasWanted, def.Orchestrator.MaxGasWanted, "reject blobs whose gas estimate exceeds this (0 disables)")
	cmd.Flags().Duration(FlagBlobTTL, def.Orchestrator.BlobTTL, "pending blob record time to live")
}

// BindFlags binds the command's flags over the config file values.
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlag("chain_id", cmd.Flags().Lookup(FlagChainID)); err != nil {
		return err
	}
	if err := v.BindPFlag("node_address", cmd.Flags().Lookup(FlagNodeAddress)); err != nil {
		return err
	}
	if err := v.BindPFlag("rest_address", cmd.Flags().Lookup(FlagRestAddress)); err != nil {
		return err
	}
	if err := v.BindPFlag("address_prefix", cmd.Flags().Lookup(FlagAddressPrefix)); err != nil {
		return err
	}
	if err := v.BindPFlag("keyring_backend", cmd.Flags().Lookup(FlagKeyringBackend)); err != nil {
		return err
	}
	if err := v.BindPFlag("keyring_home_dir", cmd.Flags().Lookup(FlagKeyringHomeDir)); err != nil {
		return err
	}
	if err := v.BindPFlag("account_name", cmd.Flags().Lookup(FlagAccountName)); err != nil {
		return err
	}
	if err := v.BindPFlag("gas_limit", cmd.Flags().Lookup(FlagGasLimit)); err != nil {
		return err
	}
	if err := v.BindPFlag("gas_prices", cmd.Flags().Lookup(FlagGasPrices)); err != nil {
		return err
	}
	if err := v.BindPFlag("gas_fees", cmd.Flags().Lookup(FlagGasFees)); err != nil {
		return err
	}
	if err := v.BindPFlag("commit_url", cmd.Flags().Lookup(FlagCommitURL)); err != nil {
		return err
	}
	if err := v.BindPFlag("rpc_listen_addr", cmd.Flags().Lookup(FlagRPCListenAddr)); err != nil {
		return err
	}
	if err := v.BindPFlag("denom", cmd.Flags().Lookup(FlagDenom)); err != nil {
		return err
	}
	if err := v.BindPFlag("dust_amount", cmd.Flags().Lookup(FlagDustAmount)); err != nil {
		return err
	}
	if err := v.BindPFlag("fee_grant_spend_limit", cmd.Flags().Lookup(FlagFeeGrantSpendLimit)); err != nil {
		return err
	}
	if err := v.BindPFlag("max_gas_wanted", cmd.Flags().Lookup(FlagMaxGasWanted)); err != nil {
		return err
	}
	return v.BindPFlag("blob_ttl", cmd.Flags().Lookup(FlagBlobTTL))
}

package chain

// Config for the chain connection and the backend signing account.
type Config struct {
	ChainID        string `mapstructure:"chain_id"`
	NodeAddress    string `mapstructure:"node_address"`
	RestAddress    string `mapstructure:"rest_address"`
	AddressPrefix  string `mapstructure:"address_prefix"`
	KeyringBackend string `mapstructure:"keyring_backend"`
	KeyringHomeDir string `mapstructure:"keyring_home_dir"`
	AccountName    string `mapstructure:"account_name"`
	GasLimit       uint64 `mapstructure:"gas_limit"`
	GasPrices      string `mapstructure:"gas_prices"`
	GasFees        string `mapstructure:"gas_fees"`
}

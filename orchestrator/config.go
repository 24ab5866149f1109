package orchestrator

import (
	"fmt"
	"time"

	"github.com/dymensionxyz/gerr-cosmos/gerrc"
)

// Config holds the workflow knobs: dust sizing, fee allowance sizing, and the
// bounded retry used while waiting for the chain's grant index.
type Config struct {
	// Denom is the native token denom, in its base unit.
	Denom string `mapstructure:"denom"`
	// DustAmount is how much of Denom a fresh address receives, enough to
	// sign its first transaction.
	DustAmount int64 `mapstructure:"dust_amount"`
	// FeeGrantSpendLimit is the total fee allowance granted to each address.
	FeeGrantSpendLimit int64 `mapstructure:"fee_grant_spend_limit"`
	// MaxGasWanted rejects blob submissions whose estimated gas exceeds it.
	// Zero disables the gate.
	MaxGasWanted uint64 `mapstructure:"max_gas_wanted"`
	// BlobTTL bounds how long an in-flight blob record lives before it is
	// purgeable.
	BlobTTL time.Duration `mapstructure:"blob_ttl"`

	AdminGrantRetryAttempts uint          `mapstructure:"admin_grant_retry_attempts"`
	AdminGrantRetryDelay    time.Duration `mapstructure:"admin_grant_retry_delay"`
}

// DefaultConfig returns the workflow defaults.
func DefaultConfig() Config {
	return Config{
		Denom:                   "utia",
		DustAmount:              100_000,
		FeeGrantSpendLimit:      1_000_000,
		MaxGasWanted:            0,
		BlobTTL:                 10 * time.Minute,
		AdminGrantRetryAttempts: 3,
		AdminGrantRetryDelay:    2 * time.Second,
	}
}

// Validate rejects configs that would make workflows misbehave.
func (c Config) Validate() error {
	if c.Denom == "" {
		return fmt.Errorf("denom is empty: %w", gerrc.ErrInvalidArgument)
	}
	if c.DustAmount <= 0 {
		return fmt.Errorf("dust amount must be positive: %w", gerrc.ErrInvalidArgument)
	}
	if c.FeeGrantSpendLimit <= 0 {
		return fmt.Errorf("fee grant spend limit must be positive: %w", gerrc.ErrInvalidArgument)
	}
	if c.BlobTTL <= 0 {
		return fmt.Errorf("blob ttl must be positive: %w", gerrc.ErrInvalidArgument)
	}
	if c.AdminGrantRetryAttempts == 0 {
		return fmt.Errorf("admin grant retry attempts must be positive: %w", gerrc.ErrInvalidArgument)
	}
	return nil
}

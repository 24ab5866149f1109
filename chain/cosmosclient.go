package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdkclient "github.com/cosmos/cosmos-sdk/client"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/dymensionxyz/cosmosclient/cosmosclient"
	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/ignite/cli/ignite/pkg/cosmosaccount"
)

// CosmosClient is an interface for interacting with the chain through a
// signing client. It is a wrapper around the cosmos client in order to
// provide an interface which can easily be mocked for testing purposes.
// It contains only the methods used by the gateway.
type CosmosClient interface {
	Context() sdkclient.Context
	BroadcastTx(accountName string, msgs ...sdktypes.Msg) (cosmosclient.Response, error)
	BroadcastRawTx(ctx context.Context, txBytes []byte) (*sdktypes.TxResponse, error)
	SimulateGas(ctx context.Context, accountName string, msgs ...sdktypes.Msg) (uint64, error)
	GetAccount(accountName string) (cosmosaccount.Account, error)
	GetBalance(ctx context.Context, address string, denom string) (*sdktypes.Coin, error)
	GetAuthQueryClient() authtypes.QueryClient
	GetChainID() string
}

type cosmosClient struct {
	cosmosclient.Client
}

var _ CosmosClient = &cosmosClient{}

// NewCosmosClient creates a new cosmos client wrapper.
func NewCosmosClient(client cosmosclient.Client) CosmosClient {
	return &cosmosClient{client}
}

// BroadcastRawTx broadcasts already-signed transaction bytes as-is. Used for
// transactions the user signed client-side.
func (c *cosmosClient) BroadcastRawTx(ctx context.Context, txBytes []byte) (*sdktypes.TxResponse, error) {
	return c.Context().BroadcastTx(txBytes)
}

// SimulateGas runs gas simulation for the messages without broadcasting.
// Chain-side rejections ("fee allowance already exists" and friends) surface
// as errors here at no gas cost.
func (c *cosmosClient) SimulateGas(ctx context.Context, accountName string, msgs ...sdktypes.Msg) (uint64, error) {
	acc, err := c.GetAccount(accountName)
	if err != nil {
		return 0, fmt.Errorf("get account: %w", err)
	}
	txService, err := c.Client.CreateTx(ctx, acc, msgs...)
	if err != nil {
		return 0, err
	}
	return txService.Gas(), nil
}

func (c *cosmosClient) GetAuthQueryClient() authtypes.QueryClient {
	return authtypes.NewQueryClient(c.Context())
}

func (c *cosmosClient) GetAccount(accountName string) (cosmosaccount.Account, error) {
	acc, err := c.AccountRegistry.GetByName(accountName)
	if err != nil {
		if strings.Contains(err.Error(), "too many failed passphrase attempts") {
			return cosmosaccount.Account{}, fmt.Errorf("account registry get by name: %w:%w", gerrc.ErrUnauthenticated, err)
		}
		var accNotExistErr *cosmosaccount.AccountDoesNotExistError
		if errors.As(err, &accNotExistErr) {
			return cosmosaccount.Account{}, fmt.Errorf("account registry get by name: %w:%w", gerrc.ErrNotFound, err)
		}
	}
	return acc, err
}

func (c *cosmosClient) GetBalance(ctx context.Context, address string, denom string) (*sdktypes.Coin, error) {
	balance, err := c.Balance(ctx, address, denom)
	if err != nil {
		return &sdktypes.Coin{}, err
	}
	return balance.Balance, nil
}

func (c *cosmosClient) GetChainID() string {
	return c.Client.Context().ChainID
}

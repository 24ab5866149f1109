package chain

import (
	"context"
	"fmt"
	"sync"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdktypes "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/authz"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/cosmos-sdk/x/feegrant"
	"github.com/dymensionxyz/cosmosclient/cosmosclient"
	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	gatewaytypes "github.com/stationlabs/blobgate/types"
	blobtypes "github.com/stationlabs/blobgate/types/pb/celestia/blob"
)

// Client is the high level chain client used by the orchestrators. It owns
// the backend signing account and serializes broadcasts so that account
// sequence numbers never race.
type Client struct {
	config     Config
	logger     gatewaytypes.Logger
	client     CosmosClient
	protoCodec *codec.ProtoCodec
	address    string

	// txMu serializes all broadcasts from the backend account. Concurrent
	// broadcasts from one account trip over sequence numbers.
	txMu sync.Mutex
}

// Option modifies the client before connection is established.
type Option func(*Client)

// WithCosmosClient injects a pre-built cosmos client. Used in tests.
func WithCosmosClient(client CosmosClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a chain client, dialing the node unless a client was
// injected, and resolves the backend account's address.
func NewClient(ctx context.Context, config Config, logger gatewaytypes.Logger, options ...Option) (*Client, error) {
	interfaceRegistry := types.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	authz.RegisterInterfaces(interfaceRegistry)
	feegrant.RegisterInterfaces(interfaceRegistry)
	banktypes.RegisterInterfaces(interfaceRegistry)
	blobtypes.RegisterInterfaces(interfaceRegistry)
	protoCodec := codec.NewProtoCodec(interfaceRegistry)

	c := &Client{
		config:     config,
		logger:     logger,
		protoCodec: protoCodec,
	}
	for _, apply := range options {
		apply(c)
	}

	if c.client == nil {
		client, err := cosmosclient.New(ctx, getCosmosClientOptions(config)...)
		if err != nil {
			return nil, fmt.Errorf("dial node %s: %w", config.NodeAddress, err)
		}
		c.client = NewCosmosClient(client)
	}

	acc, err := c.client.GetAccount(config.AccountName)
	if err != nil {
		return nil, fmt.Errorf("resolve backend account %s: %w", config.AccountName, err)
	}
	addr, err := acc.Address(config.AddressPrefix)
	if err != nil {
		return nil, fmt.Errorf("backend account address: %w", err)
	}
	c.address = addr

	c.logger.Info("Chain client ready.", "chain_id", c.client.GetChainID(), "backend", addr)
	return c, nil
}

// Address returns the bech32 address of the backend signing account.
func (c *Client) Address() string {
	return c.address
}

// GetBalance returns the spendable balance of an address for a denom.
func (c *Client) GetBalance(ctx context.Context, address, denom string) (sdktypes.Coin, error) {
	balance, err := c.client.GetBalance(ctx, address, denom)
	if err != nil {
		return sdktypes.Coin{}, fmt.Errorf("query balance: %w", err)
	}
	if balance == nil {
		return sdktypes.NewCoin(denom, sdktypes.ZeroInt()), nil
	}
	return *balance, nil
}

// GetAccountInfo returns account number and sequence for an address. An
// address that has never appeared on-chain maps to gerrc.ErrNotFound.
func (c *Client) GetAccountInfo(ctx context.Context, address string) (accountNumber, sequence uint64, err error) {
	resp, err := c.client.GetAuthQueryClient().Account(ctx, &authtypes.QueryAccountRequest{Address: address})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, 0, fmt.Errorf("account %s has never appeared on-chain: %w", address, gerrc.ErrNotFound)
		}
		return 0, 0, fmt.Errorf("query account: %w", err)
	}
	var account authtypes.AccountI
	if err := c.protoCodec.UnpackAny(resp.Account, &account); err != nil {
		return 0, 0, fmt.Errorf("unpack account: %w", err)
	}
	return account.GetAccountNumber(), account.GetSequence(), nil
}

// SendTokens transfers amount from the backend account to toAddress.
func (c *Client) SendTokens(ctx context.Context, toAddress string, amount sdktypes.Coin) (*TxResult, error) {
	to, err := sdktypes.AccAddressFromBech32(toAddress)
	if err != nil {
		return nil, fmt.Errorf("recipient address: %w: %w", err, gerrc.ErrInvalidArgument)
	}
	from, err := sdktypes.AccAddressFromBech32(c.address)
	if err != nil {
		return nil, fmt.Errorf("backend address: %w", err)
	}
	msg := banktypes.NewMsgSend(from, to, sdktypes.NewCoins(amount))
	return c.SignAndBroadcast(ctx, msg)
}

// SignAndBroadcast signs msgs with the backend account and broadcasts them.
// A non-zero CheckTx code comes back as a TxError alongside the result.
func (c *Client) SignAndBroadcast(ctx context.Context, msgs ...sdktypes.Msg) (*TxResult, error) {
	c.txMu.Lock()
	defer c.txMu.Unlock()

	resp, err := c.client.BroadcastTx(c.config.AccountName, msgs...)
	if err != nil {
		return nil, fmt.Errorf("broadcast tx: %w", err)
	}
	result := &TxResult{
		Code:   resp.TxResponse.Code,
		TxHash: resp.TxResponse.TxHash,
		RawLog: resp.TxResponse.RawLog,
	}
	if result.Code != 0 {
		return result, &TxError{Code: result.Code, TxHash: result.TxHash, RawLog: result.RawLog}
	}
	return result, nil
}

// BroadcastRawTx broadcasts transaction bytes that were signed elsewhere,
// typically an authz grant signed by the user's own key.
func (c *Client) BroadcastRawTx(ctx context.Context, txBytes []byte) (*TxResult, error) {
	resp, err := c.client.BroadcastRawTx(ctx, txBytes)
	if err != nil {
		return nil, fmt.Errorf("broadcast raw tx: %w", err)
	}
	result := &TxResult{
		Code:   resp.Code,
		TxHash: resp.TxHash,
		RawLog: resp.RawLog,
	}
	if result.Code != 0 {
		return result, &TxError{Code: result.Code, TxHash: result.TxHash, RawLog: result.RawLog}
	}
	return result, nil
}

// Simulate runs gas simulation for msgs signed by the backend account without
// broadcasting. The returned gas is the simulated consumption.
func (c *Client) Simulate(ctx context.Context, msgs ...sdktypes.Msg) (uint64, error) {
	return c.client.SimulateGas(ctx, c.config.AccountName, msgs...)
}

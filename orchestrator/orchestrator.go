// Package orchestrator implements the on-behalf-of workflows: funding a fresh
// address, granting it a fee allowance, relaying its authz grant, and
// submitting blobs under its authority via MsgExec. Each address moves
// through dust, feegrant and authz before it may submit.
package orchestrator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/dymensionxyz/gerr-cosmos/gerrc"
	"github.com/google/uuid"
	"github.com/tendermint/tendermint/libs/pubsub"

	"github.com/stationlabs/blobgate/chain"
	"github.com/stationlabs/blobgate/commitment"
	"github.com/stationlabs/blobgate/msgbuilder"
	"github.com/stationlabs/blobgate/namespace"
	"github.com/stationlabs/blobgate/state"
	"github.com/stationlabs/blobgate/types"
	blobtypes "github.com/stationlabs/blobgate/types/pb/celestia/blob"
	uevent "github.com/stationlabs/blobgate/utils/event"
)

// simulateAllowanceExists is the substring the chain's feegrant keeper puts
// in simulation failures when a grant is already in place.
const simulateAllowanceExists = "fee allowance already exists"

// ChainClient is the slice of the chain client the workflows use.
type ChainClient interface {
	Address() string
	GetBalance(ctx context.Context, address, denom string) (sdk.Coin, error)
	SendTokens(ctx context.Context, toAddress string, amount sdk.Coin) (*chain.TxResult, error)
	Simulate(ctx context.Context, msgs ...sdk.Msg) (uint64, error)
	SignAndBroadcast(ctx context.Context, msgs ...sdk.Msg) (*chain.TxResult, error)
	BroadcastRawTx(ctx context.Context, txBytes []byte) (*chain.TxResult, error)
}

// TxOutcome reports a workflow step. Noop means the step had already
// completed earlier and no transaction was broadcast now.
type TxOutcome struct {
	TxHash string
	Noop   bool
}

// SubmitResult reports a successful blob submission.
type SubmitResult struct {
	TxHash     string
	Commitment []byte
}

// Orchestrator runs the user-facing workflows. Operations against the same
// address are serialized internally; operations against different addresses
// run freely (broadcasts still serialize inside the chain client).
type Orchestrator struct {
	config   Config
	logger   types.Logger
	chain    ChainClient
	resolver commitment.Resolver
	grants   chain.GrantQuerier
	tracker  *state.Tracker
	pubsub   *pubsub.Server

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the orchestrator. All collaborators are required.
func New(
	config Config,
	logger types.Logger,
	chainClient ChainClient,
	resolver commitment.Resolver,
	grants chain.GrantQuerier,
	tracker *state.Tracker,
	pubsubServer *pubsub.Server,
) (*Orchestrator, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("orchestrator config: %w", err)
	}
	return &Orchestrator{
		config:   config,
		logger:   logger,
		chain:    chainClient,
		resolver: resolver,
		grants:   grants,
		tracker:  tracker,
		pubsub:   pubsubServer,
		locks:    map[string]*sync.Mutex{},
	}, nil
}

// lockAddress serializes workflows against one address. The store's
// read-merge-write update loses writes under concurrency otherwise.
func (o *Orchestrator) lockAddress(address string) func() {
	o.mu.Lock()
	l, ok := o.locks[address]
	if !ok {
		l = &sync.Mutex{}
		o.locks[address] = l
	}
	o.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// Dust transfers a small fixed amount of the native token from the backend to
// the address so it can afford to sign its first transaction. Idempotent: a
// recorded dust is trusted and skipped.
func (o *Orchestrator) Dust(ctx context.Context, address string) (TxOutcome, error) {
	unlock := o.lockAddress(address)
	defer unlock()

	st, err := o.tracker.Bind(address)
	if err != nil {
		return TxOutcome{}, err
	}
	if st.Revoked {
		return TxOutcome{}, ErrAddressRevoked
	}
	if st.IsDusted {
		return TxOutcome{TxHash: st.DustTxHash, Noop: true}, nil
	}

	amount := sdk.NewInt64Coin(o.config.Denom, o.config.DustAmount)
	balance, err := o.chain.GetBalance(ctx, o.chain.Address(), o.config.Denom)
	if err != nil {
		return TxOutcome{}, fmt.Errorf("backend balance: %w", err)
	}
	if balance.Amount.LT(amount.Amount) {
		return TxOutcome{}, fmt.Errorf("have %s, need %s: %w", balance, amount, ErrFaucetDrained)
	}

	result, err := o.chain.SendTokens(ctx, address, amount)
	if err != nil {
		chainBroadcastFailures.Inc()
		return TxOutcome{}, fmt.Errorf("dust %s: %w", address, err)
	}

	if _, err := o.tracker.MutateAddress(address, func(st *types.AddressState) {
		st.IsDusted = true
		st.DustTxHash = result.TxHash
	}); err != nil {
		return TxOutcome{}, fmt.Errorf("dust broadcast %s but persist failed, reconcile before next op: %w", result.TxHash, err)
	}

	addressesDustedTotal.Inc()
	uevent.MustPublish(ctx, o.pubsub, &EventDataAddress{Address: address, TxHash: result.TxHash}, EventListAddressDusted)
	o.logger.Info("Dusted address.", "address", address, "tx_hash", result.TxHash)
	return TxOutcome{TxHash: result.TxHash}, nil
}

// GrantFeeAllowance grants the address a fee allowance from the backend,
// restricted to MsgSend and MsgPayForBlobs. A simulation probe runs first so
// a grant that already exists on-chain heals local state instead of burning
// gas on a doomed broadcast.
func (o *Orchestrator) GrantFeeAllowance(ctx context.Context, address string) (TxOutcome, error) {
	unlock := o.lockAddress(address)
	defer unlock()

	st, err := o.tracker.Bind(address)
	if err != nil {
		return TxOutcome{}, err
	}
	if st.Revoked {
		return TxOutcome{}, ErrAddressRevoked
	}
	if st.HasFeeGrant {
		return TxOutcome{TxHash: st.FeeGrantTxHash, Noop: true}, nil
	}

	granter, err := sdk.AccAddressFromBech32(o.chain.Address())
	if err != nil {
		return TxOutcome{}, fmt.Errorf("backend address: %w", err)
	}
	grantee, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return TxOutcome{}, fmt.Errorf("grantee address: %w: %w", err, gerrc.ErrInvalidArgument)
	}

	spendLimit := sdk.NewCoins(sdk.NewInt64Coin(o.config.Denom, o.config.FeeGrantSpendLimit))
	allowed := []string{msgbuilder.URLMsgSend, msgbuilder.URLMsgPayForBlobs}
	msg, err := msgbuilder.NewFeeAllowanceGrant(granter, grantee, spendLimit, nil, allowed)
	if err != nil {
		return TxOutcome{}, err
	}

	if _, err := o.chain.Simulate(ctx, msg); err != nil {
		if !strings.Contains(err.Error(), simulateAllowanceExists) {
			return TxOutcome{}, fmt.Errorf("simulate fee grant: %w", err)
		}
		// the chain already holds a grant this gateway never recorded,
		// adopt it
		if _, err := o.tracker.MutateAddress(address, func(st *types.AddressState) {
			st.HasFeeGrant = true
		}); err != nil {
			return TxOutcome{}, err
		}
		o.logger.Info("Fee allowance already on-chain, reconciled local state.", "address", address)
		return TxOutcome{Noop: true}, nil
	}

	result, err := o.chain.SignAndBroadcast(ctx, msg)
	if err != nil {
		chainBroadcastFailures.Inc()
		return TxOutcome{}, fmt.Errorf("broadcast fee grant for %s: %w", address, err)
	}

	if _, err := o.tracker.MutateAddress(address, func(st *types.AddressState) {
		st.HasFeeGrant = true
		st.FeeGrantTxHash = result.TxHash
		st.FeeAllowanceRemaining = strconv.FormatInt(o.config.FeeGrantSpendLimit, 10)
	}); err != nil {
		return TxOutcome{}, fmt.Errorf("fee grant broadcast %s but persist failed, reconcile before next op: %w", result.TxHash, err)
	}

	feeGrantsTotal.Inc()
	uevent.MustPublish(ctx, o.pubsub, &EventDataAddress{Address: address, TxHash: result.TxHash}, EventListFeeGranted)
	o.logger.Info("Granted fee allowance.", "address", address, "tx_hash", result.TxHash)
	return TxOutcome{TxHash: result.TxHash}, nil
}

// BroadcastAuthz relays a transaction the user signed client-side granting
// the backend authority over MsgPayForBlobs. The payload must be strict
// base64; nothing is sent for malformed input.
func (o *Orchestrator) BroadcastAuthz(ctx context.Context, address, signedTxBase64 string) (TxOutcome, error) {
	unlock := o.lockAddress(address)
	defer unlock()

	st, err := o.tracker.Bind(address)
	if err != nil {
		return TxOutcome{}, err
	}
	if st.Revoked {
		return TxOutcome{}, ErrAddressRevoked
	}
	if st.HasAuthzGranted {
		return TxOutcome{TxHash: st.AuthzTxHash, Noop: true}, nil
	}

	txBytes, err := base64.StdEncoding.Strict().DecodeString(signedTxBase64)
	if err != nil || len(txBytes) == 0 {
		return TxOutcome{}, ErrInvalidSignedTx
	}

	result, err := o.chain.BroadcastRawTx(ctx, txBytes)
	if err != nil {
		chainBroadcastFailures.Inc()
		return TxOutcome{}, fmt.Errorf("broadcast authz grant for %s: %w", address, err)
	}

	if _, err := o.tracker.MutateAddress(address, func(st *types.AddressState) {
		st.HasAuthzGranted = true
		st.AuthzTxHash = result.TxHash
	}); err != nil {
		return TxOutcome{}, fmt.Errorf("authz broadcast %s but persist failed, reconcile before next op: %w", result.TxHash, err)
	}

	authzGrantsTotal.Inc()
	uevent.MustPublish(ctx, o.pubsub, &EventDataAddress{Address: address, TxHash: result.TxHash}, EventListAuthzGranted)
	o.logger.Info("Relayed authz grant.", "address", address, "tx_hash", result.TxHash)
	return TxOutcome{TxHash: result.TxHash}, nil
}

// SubmitBlob submits a blob under the user's namespace with the user as the
// nominal signer, wrapped in a MsgExec broadcast and fee-paid by the backend.
// All validation and preconditions run before any network call.
func (o *Orchestrator) SubmitBlob(ctx context.Context, address, namespaceHex string, blob []byte) (*SubmitResult, error) {
	ns, err := namespace.FromHex(namespaceHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNamespace, err)
	}
	if len(blob) == 0 {
		return nil, ErrEmptyBlob
	}
	if len(blob) > blobtypes.MaxBlobSizeBytes {
		return nil, fmt.Errorf("%d bytes, max %d: %w", len(blob), blobtypes.MaxBlobSizeBytes, ErrBlobTooLarge)
	}

	unlock := o.lockAddress(address)
	defer unlock()

	st, err := o.tracker.GetAddress(address)
	if err != nil {
		if errors.Is(err, gerrc.ErrNotFound) {
			return nil, ErrAddressNotBound
		}
		return nil, err
	}
	if st.Revoked {
		return nil, ErrAddressRevoked
	}
	if !st.HasAuthzGranted {
		return nil, ErrAuthzNotGranted
	}

	gasWanted := msgbuilder.EstimateExecPFBGas(uint32(len(blob)))
	if o.config.MaxGasWanted != 0 && gasWanted > o.config.MaxGasWanted {
		return nil, fmt.Errorf("estimated %d, limit %d: %w", gasWanted, o.config.MaxGasWanted, ErrBlobGasTooHigh)
	}

	// the record survives a mid-pipeline death for operator audit and is
	// deleted once the broadcast settles
	pending := types.PendingBlob{
		ID:           uuid.NewString(),
		Address:      address,
		NamespaceHex: ns.Hex(),
		Size:         len(blob),
		ExpiresAt:    time.Now().UTC().Add(o.config.BlobTTL),
		CreatedAt:    time.Now().UTC(),
	}
	if err := o.tracker.CreatePending(pending); err != nil {
		return nil, fmt.Errorf("record pending blob: %w", err)
	}

	com, err := o.resolver.Resolve(ctx, ns.Hex(), blob)
	if err != nil {
		return nil, fmt.Errorf("resolve commitment: %w", err)
	}

	pfb, err := msgbuilder.NewPayForBlobs(address, ns, blob, com)
	if err != nil {
		return nil, err
	}
	backend, err := sdk.AccAddressFromBech32(o.chain.Address())
	if err != nil {
		return nil, fmt.Errorf("backend address: %w", err)
	}
	exec, err := msgbuilder.NewExec(backend, []sdk.Msg{pfb})
	if err != nil {
		return nil, err
	}

	result, err := o.chain.SignAndBroadcast(ctx, exec)
	if err != nil {
		chainBroadcastFailures.Inc()
		return nil, fmt.Errorf("broadcast blob for %s: %w", address, err)
	}

	if err := o.tracker.DeletePending(pending.ID); err != nil {
		o.logger.Error("Delete pending blob record.", "id", pending.ID, "err", err)
	}

	blobsSubmittedTotal.Inc()
	blobBytesSubmittedTotal.Add(float64(len(blob)))
	uevent.MustPublish(ctx, o.pubsub, &EventDataBlobSubmitted{
		Address:      address,
		NamespaceHex: ns.Hex(),
		Size:         len(blob),
		TxHash:       result.TxHash,
	}, EventListBlobSubmitted)
	o.logger.Info("Submitted blob.", "address", address, "namespace", ns.Hex(), "size", len(blob), "tx_hash", result.TxHash)
	return &SubmitResult{TxHash: result.TxHash, Commitment: com}, nil
}

// Revoke marks the address ineligible for submission. Terminal.
func (o *Orchestrator) Revoke(ctx context.Context, address string) error {
	unlock := o.lockAddress(address)
	defer unlock()

	if _, err := o.tracker.Revoke(address); err != nil {
		return err
	}
	uevent.MustPublish(ctx, o.pubsub, &EventDataAddress{Address: address}, EventListAddressRevoked)
	o.logger.Info("Revoked address.", "address", address)
	return nil
}

// RefreshAllowance reconciles the cached fee allowance figure against the
// chain. The chain wins: a grant revoked or exhausted out-of-band clears the
// local flag.
func (o *Orchestrator) RefreshAllowance(ctx context.Context, address string) (types.AddressState, error) {
	unlock := o.lockAddress(address)
	defer unlock()

	st, err := o.tracker.GetAddress(address)
	if err != nil {
		return types.AddressState{}, err
	}

	amount, found, err := o.grants.Allowance(ctx, o.chain.Address(), address, o.config.Denom)
	if err != nil {
		return types.AddressState{}, fmt.Errorf("query allowance: %w", err)
	}

	if !found && !st.HasFeeGrant {
		return st, nil
	}
	return o.tracker.MutateAddress(address, func(st *types.AddressState) {
		st.HasFeeGrant = found
		st.FeeAllowanceRemaining = amount
	})
}

// PurgeExpiredBlobs removes pending-blob records whose TTL passed.
func (o *Orchestrator) PurgeExpiredBlobs() (int, error) {
	return o.tracker.PurgeExpired(time.Now().UTC())
}
